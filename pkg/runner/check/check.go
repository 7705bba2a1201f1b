package check

import (
	"context"
	"fmt"
	"time"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Check struct {
	ID  int
	Day string

	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	svc := tracker.NewService(n.Persistence)

	checked, err := svc.Toggle(ctx, n.ID, n.Day)
	if err != nil {
		return err
	}

	rows, err := svc.Rows(ctx, n.Day, "")
	if err != nil {
		return err
	}
	done, err := svc.Progress(ctx, n.Day)
	if err != nil {
		return err
	}

	verb := "unchecked"
	if checked {
		verb = "checked"
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%s · %s #%d", timeutil.Label(n.Day, time.Now()), verb, n.ID))
	pp.Rows(rows...)
	pp.Progress(done, len(rows))

	return nil
}
