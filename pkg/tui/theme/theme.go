package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Table  TableTheme
	Footer FooterTheme
	Panel  PanelTheme
	Report ReportTheme
}

// TableTheme groups styles for the habit table.
type TableTheme struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Pending  lipgloss.Style
	ID       lipgloss.Style
	Kind     lipgloss.Style
	Tags     lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Status  lipgloss.Style
	Summary lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

// PanelTheme styles the help overlay.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// ReportTheme styles the day report overlay.
type ReportTheme struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Line   lipgloss.Style
	Note   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Table: TableTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			ID:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Tags:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Footer: FooterTheme{
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Report: ReportTheme{
			Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
			Header: lipgloss.NewStyle().Bold(true),
			Line:   lipgloss.NewStyle(),
			Note:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}
