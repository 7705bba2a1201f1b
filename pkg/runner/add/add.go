package add

import (
	"context"
	"fmt"
	"time"

	"github.com/habit100/pkg/habit"
	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
	"github.com/habit100/pkg/timeutil"
	"github.com/habit100/pkg/tracker"
)

type Add struct {
	Title string
	Tags  []string
	Type  habit.Type

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	svc := tracker.NewService(n.Persistence)

	h, err := svc.Add(ctx, n.Title, n.Tags, n.Type)
	if err != nil {
		return err
	}

	day := timeutil.Today(time.Now())
	rows, err := svc.Rows(ctx, day, "")
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowType: true}
	pp.Title(fmt.Sprintf("added #%d %s", h.ID, h.Title))
	pp.Rows(rows...)

	return nil
}
