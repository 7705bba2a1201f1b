package log

import (
	"context"
	"fmt"
	"time"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Log struct {
	ID   int
	Day  string
	Text string

	Persistence store.Persistence
}

func (n *Log) Do(ctx context.Context) error {
	svc := tracker.NewService(n.Persistence)

	r, err := svc.Log(ctx, n.ID, n.Day, n.Text)
	if err != nil {
		return err
	}

	report, err := svc.DayReport(ctx, n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("%s · logged #%d at %s", timeutil.Label(n.Day, time.Now()), n.ID, r.At.String()))
	pp.Report(report)

	return nil
}
