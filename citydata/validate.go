package citydata

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// Validate checks that a layout loaded from outside the binary can be turned
// into scene text. Every problem found is reported, not just the first.
// Cross-entry concerns such as checkpoint numbering are left to lint.
func (l *Layout) Validate() error {
	var err error

	if len(l.Palette) == 0 {
		err = multierr.Append(err, fmt.Errorf("palette is empty"))
	}
	keys := make(map[string]bool, len(l.Palette))
	for i, m := range l.Palette {
		switch {
		case m.Key == "":
			err = multierr.Append(err, fmt.Errorf("palette[%d]: key must be set", i))
		case keys[m.Key]:
			err = multierr.Append(err, fmt.Errorf("palette[%d]: duplicate key %q", i, m.Key))
		}
		keys[m.Key] = true
		for _, c := range m.Color {
			if !finite(c) || c < 0 || c > 1 {
				err = multierr.Append(err, fmt.Errorf("palette[%d] %s: color component %v outside [0, 1]", i, m.Key, c))
				break
			}
		}
	}

	for i, b := range l.Buildings {
		err = multierr.Append(err, validateBox("buildings", i, b, keys))
	}
	for i, b := range l.Decorations {
		err = multierr.Append(err, validateBox("decorations", i, b, keys))
		if b.HasCheckpoint() {
			err = multierr.Append(err, fmt.Errorf("decorations[%d] %s: decorations cannot carry a checkpoint", i, b.Name))
		}
	}
	for i, h := range l.HookTargets {
		if h.Name == "" {
			err = multierr.Append(err, fmt.Errorf("hook_targets[%d]: name must be set", i))
		}
		if !finiteVec(h.Position) {
			err = multierr.Append(err, fmt.Errorf("hook_targets[%d] %s: position must be finite, got %v", i, h.Name, h.Position))
		}
	}
	for i, p := range l.Platforms {
		if p.Name == "" {
			err = multierr.Append(err, fmt.Errorf("platforms[%d]: name must be set", i))
		}
		if !finiteVec(p.Start) || !finiteVec(p.End) {
			err = multierr.Append(err, fmt.Errorf("platforms[%d] %s: start and end must be finite, got %v and %v", i, p.Name, p.Start, p.End))
		}
	}
	return err
}

func validateBox(section string, i int, b Building, materials map[string]bool) error {
	var err error
	if b.Name == "" {
		err = multierr.Append(err, fmt.Errorf("%s[%d]: name must be set", section, i))
	}
	if !finiteVec(b.Position) {
		err = multierr.Append(err, fmt.Errorf("%s[%d] %s: position must be finite, got %v", section, i, b.Name, b.Position))
	}
	if !positive(b.Size) {
		err = multierr.Append(err, fmt.Errorf("%s[%d] %s: size must be positive and finite, got %v", section, i, b.Name, b.Size))
	}
	if !materials[b.Material] {
		err = multierr.Append(err, fmt.Errorf("%s[%d] %s: unknown material %q", section, i, b.Name, b.Material))
	}
	return err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVec(v Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func positive(d Dimensions) bool {
	for _, v := range d {
		if !finite(v) || v <= 0 {
			return false
		}
	}
	return true
}
