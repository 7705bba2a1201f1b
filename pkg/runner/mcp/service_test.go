package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/tracker"
)

type memoryStore struct {
	habits  *habit.List
	journal *entry.Journal
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		habits:  &habit.List{Habits: []*habit.Habit{}},
		journal: entry.NewJournal(),
	}
}

func (m *memoryStore) Documents(ctx context.Context) (*habit.List, *entry.Journal, error) {
	return m.habits, m.journal, nil
}

func (m *memoryStore) Persist(ctx context.Context, habits *habit.List, journal *entry.Journal) error {
	m.habits, m.journal = habits, journal
	return nil
}

func (m *memoryStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, errors.New("watch not supported")
}

func newTestService() *Service {
	svc := NewService(newMemoryStore())
	now := func() time.Time {
		return time.Date(2026, 3, 1, 7, 15, 30, 0, time.Local)
	}
	svc.Now = now
	svc.Tracker.Now = now
	return svc
}

func TestServiceAddHabitDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddHabit(ctx, "물 마시기", tracker.SplitTags("몸·에너지"), "")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if dto.ID != 1 {
		t.Fatalf("expected id 1, got %d", dto.ID)
	}
	if dto.Type != "check" {
		t.Fatalf("expected default check type, got %s", dto.Type)
	}
	if !dto.Active {
		t.Fatalf("expected new habit to be active")
	}
	if len(dto.Tags) != 1 || dto.Tags[0] != "몸·에너지" {
		t.Fatalf("unexpected tags: %v", dto.Tags)
	}

	if _, err := svc.AddHabit(ctx, "   ", nil, ""); !errors.Is(err, tracker.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestServiceToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddHabit(ctx, "스쿼트", nil, "check")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	day, err := svc.ResolveDay("today")
	if err != nil {
		t.Fatalf("ResolveDay failed: %v", err)
	}
	if day != "2026-03-01" {
		t.Fatalf("expected anchored today, got %s", day)
	}

	result, err := svc.ToggleCheck(ctx, dto.ID, day)
	if err != nil {
		t.Fatalf("ToggleCheck failed: %v", err)
	}
	if !result.Checked {
		t.Fatalf("expected first toggle to check")
	}

	result, err = svc.ToggleCheck(ctx, dto.ID, day)
	if err != nil {
		t.Fatalf("second ToggleCheck failed: %v", err)
	}
	if result.Checked {
		t.Fatalf("expected second toggle to uncheck")
	}
}

func TestServiceDayReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	check, err := svc.AddHabit(ctx, "11시 전에 자기", nil, "check")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	logHabit, err := svc.AddHabit(ctx, "기분 일기", nil, "log")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	day := "2026-03-01"
	if _, err := svc.ToggleCheck(ctx, check.ID, day); err != nil {
		t.Fatalf("ToggleCheck failed: %v", err)
	}
	record, err := svc.AppendLog(ctx, logHabit.ID, day, "  컨디션 좋음  ")
	if err != nil {
		t.Fatalf("AppendLog failed: %v", err)
	}
	if record.Text != "컨디션 좋음" {
		t.Fatalf("expected trimmed log text, got %q", record.Text)
	}
	if record.At != "07:15:30" {
		t.Fatalf("expected injected clock, got %s", record.At)
	}

	report, err := svc.DayReport(ctx, day)
	if err != nil {
		t.Fatalf("DayReport failed: %v", err)
	}
	if report.Done != 2 || report.Total != 2 {
		t.Fatalf("expected 2/2 progress, got %d/%d", report.Done, report.Total)
	}
	if len(report.Lines) != 2 {
		t.Fatalf("expected 2 report lines, got %d", len(report.Lines))
	}
	if !report.Lines[0].Checked || report.Lines[0].HabitID != check.ID {
		t.Fatalf("unexpected first line: %+v", report.Lines[0])
	}
	if report.Lines[1].Text != "컨디션 좋음" || report.Lines[1].At != "07:15:30" {
		t.Fatalf("unexpected log line: %+v", report.Lines[1])
	}
}

func TestServiceEditKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddHabit(ctx, "명상", tracker.SplitTags("정신·태도"), "check")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	typeRaw := "log"
	edited, err := svc.EditHabit(ctx, dto.ID, nil, nil, &typeRaw)
	if err != nil {
		t.Fatalf("EditHabit failed: %v", err)
	}
	if edited.Title != "명상" {
		t.Fatalf("title changed unexpectedly: %s", edited.Title)
	}
	if len(edited.Tags) != 1 || edited.Tags[0] != "정신·태도" {
		t.Fatalf("tags changed unexpectedly: %v", edited.Tags)
	}
	if edited.Type != "log" {
		t.Fatalf("expected log type, got %s", edited.Type)
	}
}

func TestServiceDeleteHabit(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddHabit(ctx, "스쿼트", nil, "check")
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if _, err := svc.ToggleCheck(ctx, dto.ID, "2026-03-01"); err != nil {
		t.Fatalf("ToggleCheck failed: %v", err)
	}

	deleted, err := svc.DeleteHabit(ctx, dto.ID)
	if err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if deleted.Title != "스쿼트" {
		t.Fatalf("unexpected deleted habit: %+v", deleted)
	}

	if _, err := svc.DeleteHabit(ctx, dto.ID); !errors.Is(err, tracker.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	rows, err := svc.ListHabits(ctx, "2026-03-01", "", true)
	if err != nil {
		t.Fatalf("ListHabits failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty habit list, got %d rows", len(rows))
	}
}
