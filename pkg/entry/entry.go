// Package entry models the day-partitioned record journal.
package entry

import (
	"time"
)

func NewCheck(habitID int, at time.Time) *Record {
	return &Record{
		HabitID: habitID,
		At:      At(at),
		Value:   CheckValue(),
	}
}

func NewLog(habitID int, at time.Time, text string) *Record {
	return &Record{
		HabitID: habitID,
		At:      At(at),
		Value:   LogValue(text),
	}
}

type Record struct {
	HabitID int   `json:"id"`
	At      Clock `json:"ts"`
	Value   Value `json:"val"`
}

func (r *Record) IsCheck() bool {
	return r.Value.IsCheck()
}
