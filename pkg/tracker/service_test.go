package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/store"
)

// memoryPersistence keeps the two documents as JSON blobs so reads hand out
// independent copies, the way the disk store does.
type memoryPersistence struct {
	mu       sync.Mutex
	habits   []byte
	journal  []byte
	persists int
	failWith error
}

func newMemoryPersistence(t *testing.T) *memoryPersistence {
	t.Helper()
	m := &memoryPersistence{}
	if err := m.set(&habit.List{Habits: []*habit.Habit{}}, entry.NewJournal()); err != nil {
		t.Fatalf("seed persistence: %v", err)
	}
	return m
}

func (m *memoryPersistence) set(habits *habit.List, journal *entry.Journal) error {
	h, err := json.Marshal(habits)
	if err != nil {
		return err
	}
	j, err := json.Marshal(journal)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.habits, m.journal = h, j
	m.mu.Unlock()
	return nil
}

func (m *memoryPersistence) Documents(_ context.Context) (*habit.List, *entry.Journal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	habits := &habit.List{}
	if err := json.Unmarshal(m.habits, habits); err != nil {
		return nil, nil, err
	}
	journal := &entry.Journal{}
	if err := json.Unmarshal(m.journal, journal); err != nil {
		return nil, nil, err
	}
	habits.Normalize()
	journal.Normalize()
	return habits, journal, nil
}

func (m *memoryPersistence) Persist(_ context.Context, habits *habit.List, journal *entry.Journal) error {
	m.mu.Lock()
	if m.failWith != nil {
		err := m.failWith
		m.mu.Unlock()
		return err
	}
	m.persists++
	m.mu.Unlock()
	return m.set(habits, journal)
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func newTestService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	m := newMemoryPersistence(t)
	svc := NewService(m)
	svc.Now = func() time.Time { return testNow }
	return svc, m
}

func TestServiceMutationsPersist(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	h, err := svc.Add(ctx, "11시 전에 자기", []string{"수면·환경"}, habit.TypeCheck)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if h.ID != 1 {
		t.Fatalf("id = %d, want 1", h.ID)
	}
	checked, err := svc.Toggle(ctx, 1, testDay)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !checked {
		t.Fatal("toggle should have checked")
	}
	if m.persists != 2 {
		t.Fatalf("persists = %d, want one per mutation", m.persists)
	}

	// A second service over the same persistence sees the flushed state.
	other := NewService(m)
	rows, err := other.Rows(ctx, testDay, "")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 || !rows[0].Done {
		t.Fatalf("flushed state not visible: %+v", rows)
	}
}

func TestServiceValidationDoesNotPersist(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "  ", nil, habit.TypeCheck); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.Toggle(ctx, 9, testDay); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if m.persists != 0 {
		t.Fatalf("rejected mutations persisted %d times", m.persists)
	}
}

func TestServicePersistFailureKeepsMemoryState(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "기분 일기", nil, habit.TypeLog); err != nil {
		t.Fatalf("add: %v", err)
	}

	failure := errors.New("disk full")
	m.mu.Lock()
	m.failWith = failure
	m.mu.Unlock()

	if _, err := svc.Log(ctx, 1, testDay, "note"); !errors.Is(err, failure) {
		t.Fatalf("expected persist failure surfaced, got %v", err)
	}

	// The mutation stays applied in memory and flushes once the disk heals.
	report, err := svc.DayReport(ctx, testDay)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Lines) != 1 || report.Lines[0].Text != "note" {
		t.Fatalf("in-memory state lost: %+v", report.Lines)
	}

	m.mu.Lock()
	m.failWith = nil
	m.mu.Unlock()
	if err := svc.Flush(ctx); err != nil {
		t.Fatalf("flush after heal: %v", err)
	}

	other := NewService(m)
	report, err = other.DayReport(ctx, testDay)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Lines) != 1 {
		t.Fatalf("healed flush did not persist: %+v", report.Lines)
	}
}

func TestServiceReloadPicksUpExternalChanges(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Habits(ctx); err != nil {
		t.Fatalf("habits: %v", err)
	}

	// Another writer replaces the documents behind our back.
	external := &habit.List{Habits: []*habit.Habit{habit.New(7, "명상", nil, habit.TypeCheck)}}
	if err := m.set(external, entry.NewJournal()); err != nil {
		t.Fatalf("external write: %v", err)
	}

	habits, err := svc.Habits(ctx)
	if err != nil {
		t.Fatalf("habits: %v", err)
	}
	if len(habits) != 0 {
		t.Fatal("cached state should not see the external write yet")
	}

	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	habits, err = svc.Habits(ctx)
	if err != nil {
		t.Fatalf("habits: %v", err)
	}
	if len(habits) != 1 || habits[0].ID != 7 {
		t.Fatalf("reload missed external change: %+v", habits)
	}
}
