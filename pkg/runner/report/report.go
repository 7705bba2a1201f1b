package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Report struct {
	Day string

	Persistence store.Persistence
}

func (n *Report) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report, no persistence")
	}
	svc := tracker.NewService(n.Persistence)

	report, err := svc.DayReport(ctx, n.Day)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(fmt.Sprintf("report · %s", timeutil.Label(n.Day, time.Now())))
	pp.Report(report)

	return nil
}
