package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/habit100/pkg/entry"
	"github.com/habit100/pkg/habit"
)

const (
	habitsDocument  = "habits.json"
	entriesDocument = "entries.json"
)

// Persistence defines the storage contract for the two documents. Documents
// bootstraps missing files with their empty shapes; Persist rewrites both
// files whole.
type Persistence interface {
	Documents(ctx context.Context) (*habit.List, *entry.Journal, error)
	Persist(ctx context.Context, habits *habit.List, journal *entry.Journal) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// The documents live flat in the base path under their own names,
		// matching the layout older installs already have on disk.
		AdvancedTransform: docToPathTransform,
		InverseTransform:  pathToDocTransform,
		// Writes land in a temp file first and move into place, so an
		// interrupted save never truncates a document.
		TempDir:      filepath.Join(basePath, ".tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Documents loads both documents, creating either one with its empty shape on
// first run.
func (p *persistence) Documents(ctx context.Context) (*habit.List, *entry.Journal, error) {
	habits := &habit.List{Habits: []*habit.Habit{}}
	if err := p.readDocument(habitsDocument, habits); err != nil {
		return nil, nil, err
	}
	journal := entry.NewJournal()
	if err := p.readDocument(entriesDocument, journal); err != nil {
		return nil, nil, err
	}
	habits.Normalize()
	journal.Normalize()
	return habits, journal, nil
}

func (p *persistence) readDocument(key string, target any) error {
	if !p.d.Has(key) {
		data, err := encodeDocument(target)
		if err != nil {
			return fmt.Errorf("store: encode %s: %w", key, err)
		}
		if err := p.d.Write(key, data); err != nil {
			return fmt.Errorf("store: bootstrap %s: %w", key, err)
		}
		return nil
	}

	data, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

// Persist writes both documents. The habits document goes first; a failure
// leaves at most one document stale, never truncated.
func (p *persistence) Persist(ctx context.Context, habits *habit.List, journal *entry.Journal) error {
	if habits == nil || journal == nil {
		return errors.New("store: nil document")
	}

	data, err := encodeDocument(habits)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", habitsDocument, err)
	}
	if err := p.d.Write(habitsDocument, data); err != nil {
		return fmt.Errorf("store: write %s: %w", habitsDocument, err)
	}

	data, err = encodeDocument(journal)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", entriesDocument, err)
	}
	if err := p.d.Write(entriesDocument, data); err != nil {
		return fmt.Errorf("store: write %s: %w", entriesDocument, err)
	}
	return nil
}

// encodeDocument pretty-prints a document. HTML escaping is off so titles,
// tags, and log text in any script round-trip verbatim.
func encodeDocument(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func docToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToDocTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
