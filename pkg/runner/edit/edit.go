package edit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

// Edit rewrites the given fields of a habit. A nil Tags or Type pointer and
// an empty Title keep the current value.
type Edit struct {
	ID    int
	Title string
	Tags  *[]string
	Type  *habit.Type

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	svc := tracker.NewService(n.Persistence)

	current, err := svc.Habit(ctx, n.ID)
	if err != nil {
		return err
	}

	title := strings.TrimSpace(n.Title)
	if title == "" {
		title = current.Title
	}
	tags := current.Tags
	if n.Tags != nil {
		tags = *n.Tags
	}
	t := current.Type
	if n.Type != nil {
		t = *n.Type
	}

	h, err := svc.Edit(ctx, n.ID, title, tags, t)
	if err != nil {
		return err
	}

	day := timeutil.Today(time.Now())
	rows, err := svc.AllRows(ctx, day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowType: true}
	pp.Title(fmt.Sprintf("edited #%d %s", h.ID, h.Title))
	pp.Rows(rows...)

	return nil
}
