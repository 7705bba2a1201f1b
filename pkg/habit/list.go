package habit

// List is the habits document, persisted as {"habits": [...]}.
type List struct {
	Habits []*Habit `json:"habits"`
}

// NextID returns one past the highest id in use, or 1 for an empty list.
// Deleting the highest habit frees its id for the next add.
func (l *List) NextID() int {
	max := 0
	for _, h := range l.Habits {
		if h.ID > max {
			max = h.ID
		}
	}
	return max + 1
}

// Find returns the habit with the given id, or nil.
func (l *List) Find(id int) *Habit {
	for _, h := range l.Habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Remove deletes the habit with the given id, reporting whether it existed.
func (l *List) Remove(id int) bool {
	for i, h := range l.Habits {
		if h.ID == id {
			l.Habits = append(l.Habits[:i], l.Habits[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the active habits in list order.
func (l *List) Active() []*Habit {
	var out []*Habit
	for _, h := range l.Habits {
		if h.Active {
			out = append(out, h)
		}
	}
	return out
}

// Normalize repairs fields a hand-edited document may have mangled: unknown
// types fall back to check and missing tag lists become empty.
func (l *List) Normalize() {
	for _, h := range l.Habits {
		if !h.Type.Valid() {
			h.Type = ParseType(string(h.Type))
		}
		if h.Tags == nil {
			h.Tags = []string{}
		}
	}
}
