package tracker

import (
	"sort"

	"github.com/habit100/pkg/habit"
)

// Row is one line of the day view: a habit plus its done marker for the day.
type Row struct {
	Habit *habit.Habit
	Done  bool
}

// VisibleRows returns the active habits in ascending id order, narrowed to
// filterTag when set, each annotated with whether any record exists for the
// day. Log records count as done the same as check markers.
func VisibleRows(s *State, day, filterTag string) []Row {
	done := doneIDs(s, day)
	habits := sortedHabits(s)

	var rows []Row
	for _, h := range habits {
		if !h.Active {
			continue
		}
		if filterTag != "" && !h.HasTag(filterTag) {
			continue
		}
		rows = append(rows, Row{Habit: h, Done: done[h.ID]})
	}
	return rows
}

// AllRows is VisibleRows without the active cut, for audits and edits by id.
func AllRows(s *State, day string) []Row {
	done := doneIDs(s, day)

	var rows []Row
	for _, h := range sortedHabits(s) {
		rows = append(rows, Row{Habit: h, Done: done[h.ID]})
	}
	return rows
}

// DoneCount reports how many habits have at least one record on the day,
// regardless of active state or the current filter.
func DoneCount(s *State, day string) int {
	return len(doneIDs(s, day))
}

// CycleFilter advances the tag filter through the themes: unset moves to the
// first theme, each theme to the next, the last back to unset. A tag outside
// the list restarts at the first theme.
func CycleFilter(current string, themes []string) string {
	if len(themes) == 0 {
		return ""
	}
	if current == "" {
		return themes[0]
	}
	for i, theme := range themes {
		if theme == current {
			if i == len(themes)-1 {
				return ""
			}
			return themes[i+1]
		}
	}
	return themes[0]
}

func doneIDs(s *State, day string) map[int]bool {
	done := map[int]bool{}
	for _, r := range s.Journal.Day(day) {
		done[r.HabitID] = true
	}
	return done
}

func sortedHabits(s *State) []*habit.Habit {
	habits := append([]*habit.Habit(nil), s.Habits.Habits...)
	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].ID < habits[j].ID
	})
	return habits
}
