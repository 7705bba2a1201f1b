package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/habit100/pkg/habit"
)

var testNow = time.Date(2026, 3, 1, 7, 15, 30, 0, time.Local)

const testDay = "2026-03-01"

func seedState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	if _, err := AddHabit(s, "11시 전에 자기", []string{"수면·환경"}, habit.TypeCheck); err != nil {
		t.Fatalf("seed check habit: %v", err)
	}
	if _, err := AddHabit(s, "기분 일기", []string{"정신·태도"}, habit.TypeLog); err != nil {
		t.Fatalf("seed log habit: %v", err)
	}
	return s
}

func TestAddHabitAllocation(t *testing.T) {
	s := NewState()

	h, err := AddHabit(s, "  물 마시기  ", []string{" 몸·에너지 ", "", "몸·에너지"}, "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if h.ID != 1 {
		t.Fatalf("first id = %d, want 1", h.ID)
	}
	if h.Title != "물 마시기" {
		t.Fatalf("title not trimmed: %q", h.Title)
	}
	if len(h.Tags) != 2 {
		t.Fatalf("tags = %v, want trimmed pair with duplicate kept", h.Tags)
	}
	if h.Type != habit.TypeCheck {
		t.Fatalf("empty type = %q, want check", h.Type)
	}
	if !h.Active {
		t.Fatal("new habit not active")
	}

	// Gaps do not get refilled: ids {1,3} allocate 4 next.
	h3 := habit.New(3, "스트레칭", nil, habit.TypeCheck)
	s.Habits.Habits = append(s.Habits.Habits, h3)
	h4, err := AddHabit(s, "저널", nil, habit.TypeLog)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if h4.ID != 4 {
		t.Fatalf("next id = %d, want 4", h4.ID)
	}
}

func TestAddHabitEmptyTitle(t *testing.T) {
	s := NewState()
	if _, err := AddHabit(s, "   ", nil, habit.TypeCheck); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if len(s.Habits.Habits) != 0 {
		t.Fatal("rejected add still appended a habit")
	}
}

func TestToggleCheckInvolution(t *testing.T) {
	s := seedState(t)

	checked, err := ToggleCheck(s, 1, testDay, testNow)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !checked {
		t.Fatal("first toggle should check")
	}
	records := s.Journal.Day(testDay)
	if len(records) != 1 || !records[0].IsCheck() {
		t.Fatalf("unexpected records after toggle on: %+v", records)
	}
	if records[0].At.String() != "07:15:30" {
		t.Fatalf("record timestamp = %q", records[0].At.String())
	}

	checked, err = ToggleCheck(s, 1, testDay, testNow)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if checked {
		t.Fatal("second toggle should uncheck")
	}
	if len(s.Journal.Day(testDay)) != 0 {
		t.Fatalf("records remain after toggle off: %+v", s.Journal.Day(testDay))
	}
	if _, ok := s.Journal.Days[testDay]; !ok {
		t.Fatal("day bucket dropped by toggle off")
	}
}

func TestToggleCheckErrors(t *testing.T) {
	s := seedState(t)

	if _, err := ToggleCheck(s, 99, testDay, testNow); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := ToggleCheck(s, 2, testDay, testNow); !errors.Is(err, ErrWrongType) {
		t.Fatalf("expected ErrWrongType for log habit, got %v", err)
	}
	if len(s.Journal.Day(testDay)) != 0 {
		t.Fatal("failed toggle left records behind")
	}
}

func TestAppendLogIsAppendOnly(t *testing.T) {
	s := seedState(t)

	if _, err := AppendLog(s, 2, testDay, testNow, "  great  "); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := AppendLog(s, 2, testDay, testNow, "tired"); err != nil {
		t.Fatalf("append: %v", err)
	}

	records := s.Journal.Day(testDay)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if text, _ := records[0].Value.Text(); text != "great" {
		t.Fatalf("first log = %q, want trimmed \"great\"", text)
	}
	if text, _ := records[1].Value.Text(); text != "tired" {
		t.Fatalf("second log = %q", text)
	}
}

func TestAppendLogErrors(t *testing.T) {
	s := seedState(t)

	if _, err := AppendLog(s, 2, testDay, testNow, "   "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := AppendLog(s, 1, testDay, testNow, "text"); !errors.Is(err, ErrWrongType) {
		t.Fatalf("expected ErrWrongType for check habit, got %v", err)
	}
	if _, err := AppendLog(s, 99, testDay, testNow, "text"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditHabit(t *testing.T) {
	s := seedState(t)
	s.Habits.Find(1).Active = false

	h, err := EditHabit(s, 1, "자정 전에 자기", []string{"수면·환경", "몸·에너지"}, habit.TypeLog)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if h.Title != "자정 전에 자기" || len(h.Tags) != 2 || h.Type != habit.TypeLog {
		t.Fatalf("edit did not apply: %+v", h)
	}
	if h.Active {
		t.Fatal("edit touched the active flag")
	}

	if _, err := EditHabit(s, 1, "", nil, habit.TypeCheck); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := EditHabit(s, 42, "x", nil, habit.TypeCheck); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditHabitKeepsRecords(t *testing.T) {
	s := seedState(t)
	if _, err := AppendLog(s, 2, testDay, testNow, "old note"); err != nil {
		t.Fatalf("append: %v", err)
	}

	if _, err := EditHabit(s, 2, "기분 일기", nil, habit.TypeCheck); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if len(s.Journal.Day(testDay)) != 1 {
		t.Fatal("type change migrated or dropped records")
	}
}

func TestDeleteHabitCascade(t *testing.T) {
	s := seedState(t)
	if _, err := ToggleCheck(s, 1, testDay, testNow); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := AppendLog(s, 2, testDay, testNow, "a"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := AppendLog(s, 2, "2026-03-02", testNow, "b"); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := DeleteHabit(s, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Habits.Find(2) != nil {
		t.Fatal("habit still in list after delete")
	}
	if len(s.Journal.Day(testDay)) != 1 {
		t.Fatalf("cascade left wrong records on %s: %+v", testDay, s.Journal.Day(testDay))
	}
	if _, ok := s.Journal.Days["2026-03-02"]; !ok {
		t.Fatal("emptied day bucket was dropped")
	}
	if len(s.Journal.Day("2026-03-02")) != 0 {
		t.Fatal("cascade missed a day")
	}

	if err := DeleteHabit(s, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags(" 수면·환경, ,몸·에너지 ,")
	if len(got) != 2 || got[0] != "수면·환경" || got[1] != "몸·에너지" {
		t.Fatalf("SplitTags = %v", got)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Fatalf("SplitTags(\"\") = %v, want empty", got)
	}
}
