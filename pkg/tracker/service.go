package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/store"
)

// Service provides the shared mutation path for the TUI, the CLI runners,
// and the MCP server. The documents are loaded once and stay the in-memory
// source of truth; every mutating call flushes them back to disk before it
// returns. A persistence failure leaves the in-memory state applied and is
// reported to the caller.
type Service struct {
	Persistence store.Persistence

	// Now supplies record timestamps; nil means time.Now.
	Now func() time.Time

	mu    sync.Mutex
	state *State
}

func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) ensureLocked(ctx context.Context) (*State, error) {
	if s.Persistence == nil {
		return nil, errors.New("tracker: no persistence configured")
	}
	if s.state != nil {
		return s.state, nil
	}
	habits, journal, err := s.Persistence.Documents(ctx)
	if err != nil {
		return nil, err
	}
	s.state = &State{Habits: habits, Journal: journal}
	return s.state, nil
}

func (s *Service) persistLocked(ctx context.Context) error {
	return s.Persistence.Persist(ctx, s.state.Habits, s.state.Journal)
}

// Reload drops the cached documents and reads them from disk again. The TUI
// calls this when the watch reports an external change.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	_, err := s.ensureLocked(ctx)
	return err
}

// Habits lists every habit, active or not, in ascending id order.
func (s *Service) Habits(ctx context.Context) ([]*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	return sortedHabits(st), nil
}

// Habit returns a single habit by id.
func (s *Service) Habit(ctx context.Context, id int) (*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	h := st.Habits.Find(id)
	if h == nil {
		return nil, ErrNotFound
	}
	return h, nil
}

// Rows computes the day view for the table renderers.
func (s *Service) Rows(ctx context.Context, day, filterTag string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	return VisibleRows(st, day, filterTag), nil
}

// AllRows is the day view over every habit, inactive ones included.
func (s *Service) AllRows(ctx context.Context, day string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	return AllRows(st, day), nil
}

// DayReport computes the report for a day.
func (s *Service) DayReport(ctx context.Context, day string) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(st, day), nil
}

// Progress reports how many habits have a record on the day.
func (s *Service) Progress(ctx context.Context, day string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return 0, err
	}
	return DoneCount(st, day), nil
}

// Toggle flips a check habit for the day and persists, reporting the new
// completion state.
func (s *Service) Toggle(ctx context.Context, id int, day string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return false, err
	}
	checked, err := ToggleCheck(st, id, day, s.now())
	if err != nil {
		return false, err
	}
	return checked, s.persistLocked(ctx)
}

// Log appends a log record for the day and persists.
func (s *Service) Log(ctx context.Context, id int, day, text string) (*entry.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	r, err := AppendLog(st, id, day, s.now(), text)
	if err != nil {
		return nil, err
	}
	return r, s.persistLocked(ctx)
}

// Add creates a habit and persists.
func (s *Service) Add(ctx context.Context, title string, tags []string, t habit.Type) (*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	h, err := AddHabit(st, title, tags, t)
	if err != nil {
		return nil, err
	}
	return h, s.persistLocked(ctx)
}

// Edit updates a habit in place and persists.
func (s *Service) Edit(ctx context.Context, id int, title string, tags []string, t habit.Type) (*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return nil, err
	}
	h, err := EditHabit(st, id, title, tags, t)
	if err != nil {
		return nil, err
	}
	return h, s.persistLocked(ctx)
}

// Delete removes a habit with its records and persists.
func (s *Service) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.ensureLocked(ctx)
	if err != nil {
		return err
	}
	if err := DeleteHabit(st, id); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

// Flush writes the current in-memory documents to disk. The TUI binds this
// to the save key and runs it once more on exit.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.ensureLocked(ctx); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("tracker: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}
