package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDay is the canonical day-key layout used across storage and CLI.
	LayoutDay = "2006-01-02"
)

var (
	offsetPattern = regexp.MustCompile(`^[+-]\d+$`)
	aliasOffsets  = map[string]int{
		"today":     0,
		"yesterday": -1,
		"tomorrow":  1,
	}
)

// Today returns the day key for the local date of now.
func Today(now time.Time) string {
	return now.Format(LayoutDay)
}

// Shift moves a day key by delta days.
func Shift(day string, delta int) (string, error) {
	t, err := time.Parse(LayoutDay, day)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", day, err)
	}
	return t.AddDate(0, 0, delta).Format(LayoutDay), nil
}

// ParseDay resolves a human-friendly day argument to a canonical day key. It
// accepts the aliases "today", "yesterday" and "tomorrow", signed offsets
// like "-1" or "+7", and exact "YYYY-MM-DD" dates. Empty input means today.
func ParseDay(input string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Today(now), nil
	}

	lower := strings.ToLower(trimmed)
	if offset, ok := aliasOffsets[lower]; ok {
		return now.AddDate(0, 0, offset).Format(LayoutDay), nil
	}
	if offsetPattern.MatchString(lower) {
		offset, err := strconv.Atoi(lower)
		if err != nil {
			return "", fmt.Errorf("invalid day offset %q: %w", trimmed, err)
		}
		return now.AddDate(0, 0, offset).Format(LayoutDay), nil
	}

	t, err := time.Parse(LayoutDay, trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid day %q, want YYYY-MM-DD, an alias, or a signed offset", trimmed)
	}
	return t.Format(LayoutDay), nil
}

// Label renders a day key for display, substituting relative names for the
// days around now.
func Label(day string, now time.Time) string {
	switch day {
	case Today(now):
		return "today"
	case now.AddDate(0, 0, -1).Format(LayoutDay):
		return "yesterday"
	case now.AddDate(0, 0, 1).Format(LayoutDay):
		return "tomorrow"
	}
	if t, err := time.Parse(LayoutDay, day); err == nil {
		return fmt.Sprintf("%s (%s)", day, t.Format("Mon"))
	}
	return day
}
