package entry

import (
	"sort"
)

// Journal is the entries document, persisted as {"days": {"YYYY-MM-DD": [...]}}.
// Day buckets appear when the first record lands and survive emptying; an
// empty bucket is a valid shape and round-trips as written.
type Journal struct {
	Days map[string][]*Record `json:"days"`
}

func NewJournal() *Journal {
	return &Journal{Days: map[string][]*Record{}}
}

// Day returns the records for a day in stored order, nil when the bucket
// does not exist.
func (j *Journal) Day(day string) []*Record {
	if j.Days == nil {
		return nil
	}
	return j.Days[day]
}

// Append adds a record to a day, creating the bucket if needed.
func (j *Journal) Append(day string, r *Record) {
	if j.Days == nil {
		j.Days = map[string][]*Record{}
	}
	j.Days[day] = append(j.Days[day], r)
}

// HasRecord reports whether any record for the habit exists on the day,
// whatever its value holds.
func (j *Journal) HasRecord(day string, habitID int) bool {
	for _, r := range j.Day(day) {
		if r.HabitID == habitID {
			return true
		}
	}
	return false
}

// RemoveCheck deletes the first check-marker record for the habit on the day,
// reporting whether one was found. Log records are never touched.
func (j *Journal) RemoveCheck(day string, habitID int) bool {
	records := j.Day(day)
	for i, r := range records {
		if r.HabitID == habitID && r.IsCheck() {
			j.Days[day] = append(records[:i], records[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveHabit drops every record for the habit across all days and returns
// how many were removed. Buckets left empty stay in the document.
func (j *Journal) RemoveHabit(habitID int) int {
	removed := 0
	for day, records := range j.Days {
		kept := records[:0]
		for _, r := range records {
			if r.HabitID == habitID {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		j.Days[day] = kept
	}
	return removed
}

// DayKeys returns the day keys in chronological order.
func (j *Journal) DayKeys() []string {
	keys := make([]string, 0, len(j.Days))
	for day := range j.Days {
		keys = append(keys, day)
	}
	sort.Strings(keys)
	return keys
}

// Normalize gives a freshly decoded journal its invariant shape. A bucket
// decoded from null becomes an empty list so it re-encodes as [].
func (j *Journal) Normalize() {
	if j.Days == nil {
		j.Days = map[string][]*Record{}
	}
	for day, records := range j.Days {
		if records == nil {
			j.Days[day] = []*Record{}
		}
	}
}
