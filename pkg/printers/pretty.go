package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/habit100/pkg/tracker"
)

const (
	markDone    = "✅"
	markPending = "□"
)

type PrettyPrint struct {
	ShowType bool
}

var spacing = strings.Repeat(" ", 2)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" habit")
	default:
		_, _ = c.Println(" habits")
	}
}

// Rows renders the day view table: done mark, id, type, title, tags.
func (pp *PrettyPrint) Rows(rows ...tracker.Row) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(spacing)
		_, _ = f.Print("none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, row := range rows {
		mark := markPending
		if row.Done {
			mark = markDone
		}
		if pp.ShowType {
			tbl.AddRow(mark, fmt.Sprintf("#%d", row.Habit.ID), string(row.Habit.Type), row.Habit.Title, row.Habit.TagLine())
		} else {
			tbl.AddRow(mark, fmt.Sprintf("#%d", row.Habit.ID), row.Habit.Title, row.Habit.TagLine())
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Progress renders the done-count line that closes a day view.
func (pp *PrettyPrint) Progress(done, total int) {
	f := color.New(color.Faint)
	_, _ = f.Printf("done %d of %d\n", done, total)
}

// Report renders a day report: checked habits as [x] lines, log records with
// their text and timestamp.
func (pp *PrettyPrint) Report(report tracker.Report) {
	if len(report.Lines) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(spacing)
		_, _ = f.Print("nothing recorded\n\n")
		return
	}

	plain := color.New()
	faint := color.New(color.Faint)
	for _, line := range report.Lines {
		if line.Checked {
			_, _ = plain.Printf("[x] #%d %s\n", line.Habit.ID, line.Habit.Title)
			continue
		}
		_, _ = plain.Printf("    #%d %s: %s", line.Habit.ID, line.Habit.Title, line.Text)
		_, _ = faint.Printf(" (%s)\n", line.At.String())
	}
	_, _ = plain.Println("")
}

// Themes renders the filter theme cycle, marking the active one.
func (pp *PrettyPrint) Themes(themes []string, current string) {
	if len(themes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(spacing)
		_, _ = f.Print("none\n\n")
		return
	}

	plain := color.New()
	active := color.New(color.Bold, color.FgHiYellow)
	for _, theme := range themes {
		if theme == current {
			_, _ = active.Printf("* %s\n", theme)
			continue
		}
		_, _ = plain.Printf("  %s\n", theme)
	}
	_, _ = plain.Println("")
}
