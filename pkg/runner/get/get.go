package get

import (
	"context"
	"errors"
	"time"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Get struct {
	Day       string
	FilterTag string
	All       bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	svc := tracker.NewService(n.Persistence)

	var (
		rows []tracker.Row
		err  error
	)
	if n.All {
		rows, err = svc.AllRows(ctx, n.Day)
	} else {
		rows, err = svc.Rows(ctx, n.Day, n.FilterTag)
	}
	if err != nil {
		return err
	}

	done, err := svc.Progress(ctx, n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowType: true}
	pp.NewLine()
	pp.TitleWithCount(n.title(), len(rows))
	pp.Rows(rows...)
	pp.Progress(done, len(rows))

	return nil
}

func (n *Get) title() string {
	label := timeutil.Label(n.Day, time.Now())
	if n.FilterTag != "" {
		label += " · " + n.FilterTag
	}
	return label
}
