package habit

import (
	"strings"
)

func New(id int, title string, tags []string, t Type) *Habit {
	return &Habit{
		ID:     id,
		Title:  title,
		Tags:   tags,
		Type:   t,
		Active: true,
	}
}

type Habit struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Tags   []string `json:"tags"`
	Type   Type     `json:"type"`
	Active bool     `json:"active"`
}

// HasTag reports whether tag is present, order and duplicates notwithstanding.
func (h *Habit) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TagLine renders the tags for single-line display, empty when there are none.
func (h *Habit) TagLine() string {
	return strings.Join(h.Tags, ", ")
}

func (h *Habit) String() string {
	return h.Title
}
