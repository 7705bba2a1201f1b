package tracker

import (
	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
)

// Line is one report line: either a checked check habit or a single log
// record with its text and timestamp.
type Line struct {
	Habit   *habit.Habit
	Checked bool
	Text    string
	At      entry.Clock
}

// Report is the per-day report. Lines cover active habits in ascending id
// order: a check habit contributes one line when checked, a log habit one
// line per record in stored order. An empty report is valid.
type Report struct {
	Day   string
	Lines []Line
}

// BuildReport computes the report for a day. Records whose value no longer
// matches the habit's current type are left out.
func BuildReport(s *State, day string) Report {
	byID := map[int][]*entry.Record{}
	for _, r := range s.Journal.Day(day) {
		byID[r.HabitID] = append(byID[r.HabitID], r)
	}

	report := Report{Day: day}
	for _, h := range sortedHabits(s) {
		if !h.Active {
			continue
		}
		records := byID[h.ID]
		switch h.Type {
		case habit.TypeLog:
			for _, r := range records {
				text, ok := r.Value.Text()
				if !ok {
					continue
				}
				report.Lines = append(report.Lines, Line{Habit: h, Text: text, At: r.At})
			}
		default:
			for _, r := range records {
				if r.IsCheck() {
					report.Lines = append(report.Lines, Line{Habit: h, Checked: true})
					break
				}
			}
		}
	}
	return report
}
