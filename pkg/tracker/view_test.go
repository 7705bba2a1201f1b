package tracker

import (
	"testing"

	"github.com/habit100/pkg/habit"
)

func viewState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	seeds := []struct {
		title string
		tags  []string
		typ   habit.Type
	}{
		{"11시 전에 자기", []string{"수면·환경"}, habit.TypeCheck},
		{"스쿼트", []string{"몸·에너지"}, habit.TypeCheck},
		{"기분 일기", []string{"정신·태도"}, habit.TypeLog},
	}
	for _, seed := range seeds {
		if _, err := AddHabit(s, seed.title, seed.tags, seed.typ); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return s
}

func TestVisibleRowsOrderAndDone(t *testing.T) {
	s := viewState(t)
	if _, err := ToggleCheck(s, 2, testDay, testNow); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := AppendLog(s, 3, testDay, testNow, "메모"); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Shuffle the backing list; rows must still come out id ascending.
	s.Habits.Habits[0], s.Habits.Habits[2] = s.Habits.Habits[2], s.Habits.Habits[0]

	rows := VisibleRows(s, testDay, "")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Habit.ID != i+1 {
			t.Fatalf("row %d has id %d, want %d", i, row.Habit.ID, i+1)
		}
	}
	if rows[0].Done {
		t.Fatal("habit 1 marked done without records")
	}
	if !rows[1].Done {
		t.Fatal("checked habit 2 not marked done")
	}
	if !rows[2].Done {
		t.Fatal("logged habit 3 not marked done")
	}
}

func TestVisibleRowsFilters(t *testing.T) {
	s := viewState(t)
	s.Habits.Find(2).Active = false

	rows := VisibleRows(s, testDay, "")
	if len(rows) != 2 {
		t.Fatalf("inactive habit not excluded: %d rows", len(rows))
	}

	rows = VisibleRows(s, testDay, "정신·태도")
	if len(rows) != 1 || rows[0].Habit.ID != 3 {
		t.Fatalf("tag filter wrong: %+v", rows)
	}

	rows = VisibleRows(s, testDay, "없는태그")
	if len(rows) != 0 {
		t.Fatalf("unknown tag matched rows: %+v", rows)
	}
}

func TestAllRowsIncludesInactive(t *testing.T) {
	s := viewState(t)
	s.Habits.Find(2).Active = false
	if _, err := ToggleCheck(s, 2, testDay, testNow); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	rows := AllRows(s, testDay)
	if len(rows) != 3 {
		t.Fatalf("AllRows returned %d rows, want 3", len(rows))
	}
	if rows[1].Habit.ID != 2 || !rows[1].Done {
		t.Fatalf("inactive habit row wrong: %+v", rows[1])
	}
}

func TestDoneCountIgnoresVisibility(t *testing.T) {
	s := viewState(t)
	if _, err := ToggleCheck(s, 1, testDay, testNow); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := AppendLog(s, 3, testDay, testNow, "메모"); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Habits.Find(1).Active = false

	// The progress figure counts recorded habits, hidden ones included.
	if got := DoneCount(s, testDay); got != 2 {
		t.Fatalf("DoneCount = %d, want 2", got)
	}
	if got := DoneCount(s, "2026-03-02"); got != 0 {
		t.Fatalf("DoneCount for empty day = %d, want 0", got)
	}
}

func TestCycleFilter(t *testing.T) {
	themes := []string{"수면·환경", "몸·에너지", "정신·태도"}
	tests := []struct {
		current string
		want    string
	}{
		{"", "수면·환경"},
		{"수면·환경", "몸·에너지"},
		{"몸·에너지", "정신·태도"},
		{"정신·태도", ""},
		{"없는태그", "수면·환경"},
	}
	for _, tc := range tests {
		if got := CycleFilter(tc.current, themes); got != tc.want {
			t.Errorf("CycleFilter(%q) = %q, want %q", tc.current, got, tc.want)
		}
	}

	if got := CycleFilter("수면·환경", nil); got != "" {
		t.Errorf("CycleFilter with no themes = %q, want unset", got)
	}
}
