package remove

import (
	"context"
	"fmt"
	"time"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Remove struct {
	ID int

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	svc := tracker.NewService(n.Persistence)

	h, err := svc.Habit(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := svc.Delete(ctx, n.ID); err != nil {
		return err
	}

	day := timeutil.Today(time.Now())
	rows, err := svc.AllRows(ctx, day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowType: true}
	pp.Title(fmt.Sprintf("deleted #%d %s", n.ID, h.Title))
	pp.Rows(rows...)

	return nil
}
