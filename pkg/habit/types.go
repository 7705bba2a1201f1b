// Package habit defines the habit model and the habits document.
package habit

import (
	"strings"
)

// Type identifies how a habit records progress for a day.
type Type string

const (
	// TypeCheck is a binary done/not-done habit.
	TypeCheck Type = "check"
	// TypeLog collects free-form text notes, any number per day.
	TypeLog Type = "log"
)

// AllTypes returns the list of supported habit types.
func AllTypes() []Type {
	return []Type{
		TypeCheck,
		TypeLog,
	}
}

// ParseType converts a string to a Type. Empty and unrecognized values fall
// back to TypeCheck so that hand-edited documents keep loading.
func ParseType(raw string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate
		}
	}
	return TypeCheck
}

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	for _, candidate := range AllTypes() {
		if candidate == t {
			return true
		}
	}
	return false
}
