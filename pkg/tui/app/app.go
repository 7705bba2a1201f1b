// Package teaui hosts the Bubble Tea program for the habit board.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
	"github.com/habit100/pkg/tui/theme"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
	modeReport
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
	actionLog
)

const (
	markDone    = "✅"
	markPending = "□"
)

// Model contains the habit board state.
type Model struct {
	svc    *tracker.Service
	ctx    context.Context
	cancel context.CancelFunc
	mode   mode
	action action

	day    string
	filter string
	themes []string

	rows   []tracker.Row
	done   int
	report tracker.Report
	cursor int

	// habit acted on by the pending insert or confirm overlay
	targetID int

	input  textinput.Model
	status string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	theme theme.Theme

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the tracker Service. The themes slice
// drives the tag filter cycle.
func New(svc *tracker.Service, themes []string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Focus()
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		mode:   modeNormal,
		action: actionNone,
		day:    timeutil.Today(time.Now()),
		themes: themes,
		input:  ti,
		status: "space toggle · a add · e edit · d delete · f filter · r report · ? help",
		theme:  theme.Default(),
	}
}

// Init loads the table and starts the store watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshRows(), startWatchCmd(m.ctx, m.svc))
}

func (m *Model) refreshRows() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	day, filter := m.day, m.filter
	return func() tea.Msg {
		if svc == nil {
			return rowsLoadedMsg{day: day}
		}
		rows, err := svc.Rows(ctx, day, filter)
		if err != nil {
			return errMsg{err}
		}
		done, err := svc.Progress(ctx, day)
		if err != nil {
			return errMsg{err}
		}
		return rowsLoadedMsg{day: day, rows: rows, done: done}
	}
}

func (m *Model) loadReport() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	day := m.day
	return func() tea.Msg {
		if svc == nil {
			return reportLoadedMsg{report: tracker.Report{Day: day}}
		}
		rep, err := svc.DayReport(ctx, day)
		if err != nil {
			return errMsg{err}
		}
		return reportLoadedMsg{report: rep}
	}
}

// messages
type errMsg struct{ err error }

type rowsLoadedMsg struct {
	day  string
	rows []tracker.Row
	done int
}

type reportLoadedMsg struct{ report tracker.Report }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *tracker.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	if m.svc == nil {
		return
	}
	if err := m.svc.Reload(m.ctx); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	switch ev.Type {
	case store.EventHabitsChanged:
		m.status = "Habits changed on disk"
	default:
		m.status = "Entries changed on disk"
	}
	*cmds = append(*cmds, m.refreshRows())
	if m.mode == modeReport {
		*cmds = append(*cmds, m.loadReport())
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case rowsLoadedMsg:
		// A day change may race a slow load; only keep rows for the day shown.
		if msg.day == m.day {
			m.rows = msg.rows
			m.done = msg.done
			m.clampCursor()
		}
	case reportLoadedMsg:
		m.report = msg.report
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "ERR: watch " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg)
	case modeReport:
		m.handleReportKey(msg)
	case modeInsert:
		m.handleInsertKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quit(cmds)

	// movement
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}

	// record for today: toggle a check, open the input for a log
	case "space":
		m.activateRow(cmds)

	case "a":
		m.targetID = 0
		m.enterInsert(actionAdd, "", "New habit title", cmds)
	case "e":
		if row := m.currentRow(); row != nil {
			m.targetID = row.Habit.ID
			m.enterInsert(actionEdit, row.Habit.Title, "Habit title", cmds)
		}
	case "d":
		if row := m.currentRow(); row != nil {
			m.targetID = row.Habit.ID
			m.enterConfirm(row.Habit.Title, cmds)
		}

	// day navigation
	case "t":
		m.setDay(timeutil.Today(time.Now()), cmds)
	case "[":
		m.shiftDay(-1, cmds)
	case "]":
		m.shiftDay(1, cmds)

	case "f":
		m.filter = tracker.CycleFilter(m.filter, m.themes)
		m.cursor = 0
		if m.filter == "" {
			m.status = "Filter cleared"
		} else {
			m.status = "Filter: " + m.filter
		}
		*cmds = append(*cmds, m.refreshRows())

	case "r":
		m.mode = modeReport
		*cmds = append(*cmds, m.loadReport())
	case "s":
		m.save(cmds)
	case "?", "f1":
		m.mode = modeHelp
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "q", "esc", "?", "f1":
		m.mode = modeNormal
	}
}

func (m *Model) handleReportKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "q", "esc", "r":
		m.mode = modeNormal
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		input := strings.TrimSpace(m.input.Value())
		m.applyInsert(input, cmds)
		m.leaveInput()
		*cmds = append(*cmds, m.refreshRows())
	case "esc":
		prev := m.action
		m.leaveInput()
		switch prev {
		case actionAdd:
			m.status = "Add cancelled"
		case actionEdit:
			m.status = "Edit cancelled"
		case actionLog:
			m.status = "Log cancelled"
		default:
			m.status = "Cancelled"
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) applyInsert(input string, cmds *[]tea.Cmd) {
	if m.svc == nil || input == "" {
		m.status = "Cancelled"
		return
	}
	switch m.action {
	case actionAdd:
		h, err := m.svc.Add(m.ctx, input, nil, habit.TypeCheck)
		if err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.status = fmt.Sprintf("Added #%d %s", h.ID, h.Title)
	case actionEdit:
		h, err := m.svc.Habit(m.ctx, m.targetID)
		if err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		if _, err := m.svc.Edit(m.ctx, m.targetID, input, h.Tags, h.Type); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.status = fmt.Sprintf("Edited #%d", m.targetID)
	case actionLog:
		r, err := m.svc.Log(m.ctx, m.targetID, m.day, input)
		if err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			return
		}
		m.status = fmt.Sprintf("Logged #%d at %s", m.targetID, r.At.String())
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.TrimSpace(strings.ToLower(m.input.Value())) != "yes" {
			m.status = "Type yes to confirm"
			m.input.SetValue("")
			return
		}
		if m.svc == nil {
			m.leaveInput()
			return
		}
		id := m.targetID
		if err := m.svc.Delete(m.ctx, id); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		} else {
			m.status = fmt.Sprintf("Deleted #%d", id)
			*cmds = append(*cmds, m.refreshRows())
		}
		m.leaveInput()
	case "esc":
		m.leaveInput()
		m.status = "Delete cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) activateRow(cmds *[]tea.Cmd) {
	row := m.currentRow()
	if row == nil || m.svc == nil {
		return
	}
	if row.Habit.Type == habit.TypeLog {
		m.targetID = row.Habit.ID
		m.enterInsert(actionLog, "", "Log entry", cmds)
		return
	}
	checked, err := m.svc.Toggle(m.ctx, row.Habit.ID, m.day)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	if checked {
		m.status = fmt.Sprintf("Checked #%d", row.Habit.ID)
	} else {
		m.status = fmt.Sprintf("Unchecked #%d", row.Habit.ID)
	}
	*cmds = append(*cmds, m.refreshRows())
}

func (m *Model) enterInsert(a action, value, placeholder string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) enterConfirm(title string, cmds *[]tea.Cmd) {
	m.mode = modeConfirm
	m.input.Placeholder = "yes"
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = fmt.Sprintf("Delete #%d %s and its history?", m.targetID, title)
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.action = actionNone
	m.targetID = 0
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) shiftDay(delta int, cmds *[]tea.Cmd) {
	day, err := timeutil.Shift(m.day, delta)
	if err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.setDay(day, cmds)
}

func (m *Model) setDay(day string, cmds *[]tea.Cmd) {
	if day == m.day {
		return
	}
	m.day = day
	m.cursor = 0
	m.status = ""
	*cmds = append(*cmds, m.refreshRows())
	if m.mode == modeReport {
		*cmds = append(*cmds, m.loadReport())
	}
}

func (m *Model) save(cmds *[]tea.Cmd) {
	if m.svc == nil {
		return
	}
	if err := m.svc.Flush(m.ctx); err != nil {
		*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		return
	}
	m.status = "Saved"
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	if m.svc != nil {
		if err := m.svc.Flush(m.ctx); err != nil {
			m.status = "ERR: " + err.Error()
		}
	}
	m.stopWatch()
	if m.cancel != nil {
		m.cancel()
	}
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) currentRow() *tracker.Row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the habit table plus the overlay for the current mode and the
// status bar.
func (m Model) View() string {
	sections := []string{m.viewTable()}

	switch m.mode {
	case modeInsert:
		prompt := map[action]string{actionAdd: "Add: ", actionEdit: "Edit: ", actionLog: "Log: "}[m.action]
		sections = append(sections, m.theme.Footer.Prompt.Render(prompt)+m.input.View())
	case modeConfirm:
		sections = append(sections, m.theme.Footer.Prompt.Render("Confirm delete (type yes): ")+m.input.View())
	case modeReport:
		sections = append(sections, m.viewReport())
	case modeHelp:
		sections = append(sections, m.viewHelp())
	}

	sections = append(sections, m.viewFooter())
	return strings.Join(sections, "\n\n")
}

func (m Model) title() string {
	label := timeutil.Label(m.day, time.Now())
	if m.filter != "" {
		return label + " · " + m.filter
	}
	return label
}

func (m Model) viewTable() string {
	title := m.theme.Table.Title.Render(m.title())
	if len(m.rows) == 0 {
		return title + "\n" + m.theme.Table.Empty.Render("no habits · press a to add one")
	}
	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, title)
	for i, row := range m.rows {
		lines = append(lines, m.renderRow(i, row))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, row tracker.Row) string {
	cursor := "  "
	if i == m.cursor {
		cursor = m.theme.Table.Cursor.Render("→ ")
	}
	mark := markDone
	if !row.Done {
		mark = m.theme.Table.Pending.Render(markPending)
	}
	id := m.theme.Table.ID.Render(fmt.Sprintf("#%-3d", row.Habit.ID))
	kind := m.theme.Table.Kind.Render(fmt.Sprintf("%-5s", row.Habit.Type))
	title := row.Habit.Title
	if i == m.cursor {
		title = m.theme.Table.Selected.Render(title)
	}
	line := fmt.Sprintf("%s%s %s %s %s", cursor, mark, id, kind, title)
	if tags := row.Habit.TagLine(); tags != "" {
		line += " " + m.theme.Table.Tags.Render(tags)
	}
	return line
}

func (m Model) viewReport() string {
	lines := []string{
		m.theme.Report.Header.Render(fmt.Sprintf("Report · %s", timeutil.Label(m.report.Day, time.Now()))),
		"",
	}
	if len(m.report.Lines) == 0 {
		lines = append(lines, m.theme.Report.Note.Render("nothing recorded"))
	}
	for _, line := range m.report.Lines {
		if line.Checked {
			lines = append(lines, m.theme.Report.Line.Render(fmt.Sprintf("[x] #%d %s", line.Habit.ID, line.Habit.Title)))
			continue
		}
		text := wordwrap.String(fmt.Sprintf("#%d %s: %s", line.Habit.ID, line.Habit.Title, line.Text), m.wrapWidth())
		note := m.theme.Report.Note.Render(fmt.Sprintf("(%s)", line.At.String()))
		lines = append(lines, m.theme.Report.Line.Render(text)+" "+note)
	}
	return m.theme.Report.Frame.Render(strings.Join(lines, "\n"))
}

func (m Model) viewHelp() string {
	keys := []string{
		"space   toggle check, or write a log entry",
		"j/k     move",
		"a       add a habit",
		"e       edit the selected title",
		"d       delete the selected habit",
		"f       cycle the tag filter",
		"t       jump to today",
		"[ / ]   previous or next day",
		"r       day report",
		"s       save to disk",
		"q/esc   quit",
	}
	body := m.theme.Panel.Title.Render("Keys") + "\n\n" + m.theme.Panel.Body.Render(strings.Join(keys, "\n"))
	return m.theme.Panel.Frame.Render(body)
}

func (m Model) viewFooter() string {
	modeStr := map[mode]string{
		modeNormal:  "NORMAL",
		modeInsert:  "INSERT",
		modeConfirm: "CONFIRM",
		modeReport:  "REPORT",
		modeHelp:    "HELP",
	}[m.mode]
	parts := []string{m.day, fmt.Sprintf("%d habits", len(m.rows))}
	if m.filter != "" {
		parts = append(parts, "filter "+m.filter)
	}
	parts = append(parts, fmt.Sprintf("done %d", m.done))
	summary := m.theme.Footer.Summary.Render(fmt.Sprintf("[%s] %s", modeStr, strings.Join(parts, " · ")))
	if m.status == "" {
		return summary
	}
	style := m.theme.Footer.Status
	if strings.HasPrefix(m.status, "ERR:") {
		style = m.theme.Footer.Error
	}
	return style.Render(m.status) + "\n" + summary
}

func (m Model) wrapWidth() int {
	w := m.termWidth - 8
	if w < 24 {
		w = 24
	}
	if w > 76 {
		w = 76
	}
	return w
}

// Run starts the program in the alternate screen.
func Run(svc *tracker.Service, themes []string) error {
	p := tea.NewProgram(New(svc, themes), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
