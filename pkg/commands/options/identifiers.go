package options

import (
	"fmt"
	"strconv"
	"strings"
)

// IDOptions
type IDOptions struct {
	ID int
}

// ParseID reads a habit id from a positional argument, tolerating a leading #.
func (o *IDOptions) ParseID(arg string) error {
	raw := strings.TrimPrefix(strings.TrimSpace(arg), "#")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return fmt.Errorf("invalid habit id %q", arg)
	}
	o.ID = id
	return nil
}
