package themes

import (
	"context"
	"errors"

	"github.com/habit100/pkg/printers"
	"github.com/habit100/pkg/store"
)

type Themes struct {
	Config store.Config
}

func (n *Themes) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not list themes, no config")
	}

	pp := printers.PrettyPrint{}
	pp.Title("themes")
	pp.Themes(n.Config.Themes(), "")

	return nil
}
