package store

import (
	"context"
	"testing"
	"time"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Themes() []string {
	return DefaultThemes
}

func TestPersistenceWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	habits := &habit.List{Habits: []*habit.Habit{habit.New(1, "물 마시기", nil, habit.TypeCheck)}}
	if err := p.Persist(ctx, habits, entry.NewJournal()); err != nil {
		t.Fatalf("persist documents: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventHabitsChanged || evt.Type == EventEntriesChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}
