// Package tracker implements the habit-tracking operations. The pure
// functions in this package transform a State the caller owns; Service wraps
// them with persistence for the UIs.
package tracker

import (
	"errors"
	"strings"
	"time"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
)

var (
	ErrNotFound   = errors.New("tracker: habit not found")
	ErrWrongType  = errors.New("tracker: wrong habit type")
	ErrEmptyTitle = errors.New("tracker: title required")
	ErrEmptyText  = errors.New("tracker: log text required")
)

// State is the in-memory pair of documents every operation works on.
type State struct {
	Habits  *habit.List
	Journal *entry.Journal
}

func NewState() *State {
	return &State{
		Habits:  &habit.List{Habits: []*habit.Habit{}},
		Journal: entry.NewJournal(),
	}
}

// AddHabit validates and appends a new habit, allocating the next id.
func AddHabit(s *State, title string, tags []string, t habit.Type) (*habit.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	h := habit.New(s.Habits.NextID(), title, cleanTags(tags), habit.ParseType(string(t)))
	s.Habits.Habits = append(s.Habits.Habits, h)
	return h, nil
}

// EditHabit replaces the title, tags, and type of an existing habit in place.
// The active flag and historical records are never touched, even when the
// type changes.
func EditHabit(s *State, id int, title string, tags []string, t habit.Type) (*habit.Habit, error) {
	h := s.Habits.Find(id)
	if h == nil {
		return nil, ErrNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	h.Title = title
	h.Tags = cleanTags(tags)
	h.Type = habit.ParseType(string(t))
	return h, nil
}

// DeleteHabit removes a habit and cascades over the journal, dropping every
// record that references its id. Emptied day buckets stay in the document.
func DeleteHabit(s *State, id int) error {
	if !s.Habits.Remove(id) {
		return ErrNotFound
	}
	s.Journal.RemoveHabit(id)
	return nil
}

// ToggleCheck flips the completion of a check habit for the day and reports
// the resulting state: true when the call checked, false when it unchecked.
// Two calls in a row always return to where things started.
func ToggleCheck(s *State, id int, day string, now time.Time) (bool, error) {
	h := s.Habits.Find(id)
	if h == nil {
		return false, ErrNotFound
	}
	if h.Type != habit.TypeCheck {
		return false, ErrWrongType
	}
	if s.Journal.RemoveCheck(day, id) {
		return false, nil
	}
	s.Journal.Append(day, entry.NewCheck(id, now))
	return true, nil
}

// AppendLog adds a log record for the day. Prior records are never removed
// and there is no per-day limit.
func AppendLog(s *State, id int, day string, now time.Time, text string) (*entry.Record, error) {
	h := s.Habits.Find(id)
	if h == nil {
		return nil, ErrNotFound
	}
	if h.Type != habit.TypeLog {
		return nil, ErrWrongType
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	r := entry.NewLog(id, now, text)
	s.Journal.Append(day, r)
	return r, nil
}

// cleanTags trims each tag and drops empties, keeping order and duplicates.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// SplitTags parses comma-separated tag input from a flag or text field.
func SplitTags(raw string) []string {
	return cleanTags(strings.Split(raw, ","))
}
