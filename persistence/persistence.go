// Package persistence remembers the checkpoint positions of the previous run so
// a changed layout can be flagged: the respawn table in the game's checkpoint
// manager is pasted by hand and silently goes stale otherwise.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/quasilyte/gdata"

	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/factory"
)

// Store is the subset of *gdata.Manager used for history.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Record is one saved checkpoint position.
type Record struct {
	Number   int     `json:"number"`
	Building string  `json:"building"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

// History loads and saves checkpoint records under one item key.
type History struct {
	store Store
	key   string
}

func NewHistory(store Store, key string) *History {
	return &History{store: store, key: key}
}

// Open returns a history backed by the per-user gdata directory.
func Open(cfg config.HistoryConfig) (*History, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return NewHistory(m, cfg.ItemKey), nil
}

// Load returns the records saved by the previous run, or nil when there are none.
func (h *History) Load() ([]Record, error) {
	data, err := h.store.LoadItem(h.key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(data) == 0 {
		// No saved history yet
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return records, nil
}

func (h *History) Save(records []Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("serialize history: %w", err)
	}
	if err := h.store.SaveItem(h.key, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Records converts generator output to history records.
func Records(positions []factory.CheckpointPosition) []Record {
	out := make([]Record, 0, len(positions))
	for _, p := range positions {
		out = append(out, Record{Number: p.Number, Building: p.Building, X: p.X, Y: p.Y, Z: p.Z})
	}
	return out
}

type DriftKind string

const (
	Added   DriftKind = "added"
	Removed DriftKind = "removed"
	Moved   DriftKind = "moved"
)

// Drift is a checkpoint whose respawn position differs from the previous run.
type Drift struct {
	Kind   DriftKind
	Number int
	Before *Record
	After  *Record
}

// Diff compares two runs by checkpoint number. Changes come out in the order of
// cur, followed by the removed checkpoints in the order of prev.
func Diff(prev, cur []Record) []Drift {
	before := make(map[int]Record, len(prev))
	for _, r := range prev {
		before[r.Number] = r
	}

	var out []Drift
	seen := make(map[int]bool, len(cur))
	for _, r := range cur {
		r := r
		seen[r.Number] = true
		old, ok := before[r.Number]
		switch {
		case !ok:
			out = append(out, Drift{Kind: Added, Number: r.Number, After: &r})
		case old != r:
			out = append(out, Drift{Kind: Moved, Number: r.Number, Before: &old, After: &r})
		}
	}
	for _, r := range prev {
		r := r
		if !seen[r.Number] {
			out = append(out, Drift{Kind: Removed, Number: r.Number, Before: &r})
		}
	}
	return out
}
