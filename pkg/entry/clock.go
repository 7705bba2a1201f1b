package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

const clockLayout = "15:04:05"

func ParseClock(v string) (time.Time, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Clock is the wall-clock time a record was written, stored as "HH:MM:SS".
type Clock struct {
	time.Time
}

func At(t time.Time) Clock {
	return Clock{t}
}

func (c *Clock) MarshalJSON() ([]byte, error) {
	if c == nil || c.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", c)), nil
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var clock string
	if err := json.Unmarshal(b, &clock); err != nil {
		return err
	}
	if clock == "" {
		c.Time = time.Time{}
		return nil
	}
	var err error
	c.Time, err = ParseClock(clock)
	return err
}

func (c Clock) String() string {
	return c.Format(clockLayout)
}
