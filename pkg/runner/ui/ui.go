package ui

import (
	"context"
	"errors"

	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/tracker"
	tuiapp "github.com/habit100/pkg/tui/app"
)

// UI opens the interactive habit board. Themes drives the tag filter cycle.
type UI struct {
	Persistence store.Persistence
	Themes      []string
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open the board, no persistence")
	}
	// Load before entering the alternate screen so a broken store fails with
	// a readable error instead of a blank board.
	svc := tracker.NewService(n.Persistence)
	if err := svc.Reload(ctx); err != nil {
		return err
	}
	return tuiapp.Run(svc, n.Themes)
}
