// Package mcp provides the Model Context Protocol server integration for habit100.
package mcp

import (
	"context"
	"time"

	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

// Service bridges the MCP handlers to the tracker.
type Service struct {
	Tracker *tracker.Service

	// Now anchors day-alias parsing; nil means time.Now.
	Now func() time.Time
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(p store.Persistence) *Service {
	return &Service{Tracker: tracker.NewService(p)}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ResolveDay parses a day argument: empty means today, and the aliases,
// signed offsets, and ISO dates of the CLI all work here too.
func (s *Service) ResolveDay(raw string) (string, error) {
	return timeutil.ParseDay(raw, s.now())
}

// HabitDTO is a transport-friendly projection of a habit.
type HabitDTO struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Type   string   `json:"type"`
	Active bool     `json:"active"`
}

// RowDTO annotates a habit with its recorded state for one day.
type RowDTO struct {
	HabitDTO
	Done bool `json:"done"`
}

// RecordDTO is a transport-friendly projection of a day record.
type RecordDTO struct {
	HabitID int    `json:"id"`
	At      string `json:"ts"`
	Check   bool   `json:"check"`
	Text    string `json:"text,omitempty"`
}

// ToggleResultDTO reports the outcome of a toggle.
type ToggleResultDTO struct {
	HabitID int    `json:"id"`
	Day     string `json:"day"`
	Checked bool   `json:"checked"`
}

// ReportLineDTO is one rendered line of a day report.
type ReportLineDTO struct {
	HabitID int    `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Checked bool   `json:"checked"`
	Text    string `json:"text,omitempty"`
	At      string `json:"ts,omitempty"`
}

// ReportDTO is a full day report with its progress counts.
type ReportDTO struct {
	Day   string          `json:"day"`
	Done  int             `json:"done"`
	Total int             `json:"total"`
	Lines []ReportLineDTO `json:"lines"`
}

// ListHabits returns the habits with their done state for the day. Inactive
// habits are included only when requested; tag narrows to one theme.
func (s *Service) ListHabits(ctx context.Context, day, tag string, includeInactive bool) ([]RowDTO, error) {
	var (
		rows []tracker.Row
		err  error
	)
	if includeInactive {
		rows, err = s.Tracker.AllRows(ctx, day)
	} else {
		rows, err = s.Tracker.Rows(ctx, day, tag)
	}
	if err != nil {
		return nil, err
	}

	out := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		if includeInactive && tag != "" && !row.Habit.HasTag(tag) {
			continue
		}
		out = append(out, RowDTO{HabitDTO: toHabitDTO(row.Habit), Done: row.Done})
	}
	return out, nil
}

// AddHabit creates a habit and returns its projection.
func (s *Service) AddHabit(ctx context.Context, title string, tags []string, typeRaw string) (*HabitDTO, error) {
	h, err := s.Tracker.Add(ctx, title, tags, habit.ParseType(typeRaw))
	if err != nil {
		return nil, err
	}
	dto := toHabitDTO(h)
	return &dto, nil
}

// EditHabit rewrites the provided fields; nil pointers keep current values.
func (s *Service) EditHabit(ctx context.Context, id int, title *string, tags *[]string, typeRaw *string) (*HabitDTO, error) {
	current, err := s.Tracker.Habit(ctx, id)
	if err != nil {
		return nil, err
	}

	newTitle := current.Title
	if title != nil {
		newTitle = *title
	}
	newTags := current.Tags
	if tags != nil {
		newTags = *tags
	}
	newType := current.Type
	if typeRaw != nil {
		newType = habit.ParseType(*typeRaw)
	}

	h, err := s.Tracker.Edit(ctx, id, newTitle, newTags, newType)
	if err != nil {
		return nil, err
	}
	dto := toHabitDTO(h)
	return &dto, nil
}

// DeleteHabit removes a habit and its records, returning the removed habit.
func (s *Service) DeleteHabit(ctx context.Context, id int) (*HabitDTO, error) {
	h, err := s.Tracker.Habit(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toHabitDTO(h)
	if err := s.Tracker.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ToggleCheck flips the check marker for (habit, day).
func (s *Service) ToggleCheck(ctx context.Context, id int, day string) (*ToggleResultDTO, error) {
	checked, err := s.Tracker.Toggle(ctx, id, day)
	if err != nil {
		return nil, err
	}
	return &ToggleResultDTO{HabitID: id, Day: day, Checked: checked}, nil
}

// AppendLog appends a log record for (habit, day).
func (s *Service) AppendLog(ctx context.Context, id int, day, text string) (*RecordDTO, error) {
	r, err := s.Tracker.Log(ctx, id, day, text)
	if err != nil {
		return nil, err
	}
	logText, _ := r.Value.Text()
	return &RecordDTO{
		HabitID: r.HabitID,
		At:      r.At.String(),
		Check:   r.IsCheck(),
		Text:    logText,
	}, nil
}

// DayReport assembles the report plus progress counts for a day.
func (s *Service) DayReport(ctx context.Context, day string) (*ReportDTO, error) {
	report, err := s.Tracker.DayReport(ctx, day)
	if err != nil {
		return nil, err
	}
	rows, err := s.Tracker.Rows(ctx, day, "")
	if err != nil {
		return nil, err
	}
	done, err := s.Tracker.Progress(ctx, day)
	if err != nil {
		return nil, err
	}

	lines := make([]ReportLineDTO, 0, len(report.Lines))
	for _, line := range report.Lines {
		dto := ReportLineDTO{
			HabitID: line.Habit.ID,
			Title:   line.Habit.Title,
			Type:    string(line.Habit.Type),
			Checked: line.Checked,
		}
		if !line.Checked {
			dto.Text = line.Text
			dto.At = line.At.String()
		}
		lines = append(lines, dto)
	}

	return &ReportDTO{
		Day:   day,
		Done:  done,
		Total: len(rows),
		Lines: lines,
	}, nil
}

func toHabitDTO(h *habit.Habit) HabitDTO {
	return HabitDTO{
		ID:     h.ID,
		Title:  h.Title,
		Tags:   h.Tags,
		Type:   string(h.Type),
		Active: h.Active,
	}
}
