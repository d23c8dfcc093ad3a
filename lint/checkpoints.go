package lint

import (
	"sort"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
)

// checkCheckpoints reports reused numbers and holes in the sequence. The
// sequence may start above 1; the level's first checkpoint can live outside the
// city.
func checkCheckpoints(r *Report, layout *citydata.Layout) {
	owners := make(map[int]string)
	var numbers []int
	for _, b := range layout.CheckpointBuildings() {
		n := *b.Checkpoint
		if first, ok := owners[n]; ok {
			r.add(Error, CheckCheckpoints, b.Name, "checkpoint %d already used by %s", n, first)
			continue
		}
		owners[n] = b.Name
		numbers = append(numbers, n)
	}

	sort.Ints(numbers)
	for i := 1; i < len(numbers); i++ {
		if numbers[i] > numbers[i-1]+1 {
			r.add(Warning, CheckCheckpoints, owners[numbers[i]], "checkpoint numbers jump from %d to %d", numbers[i-1], numbers[i])
		}
	}

	for _, d := range layout.Decorations {
		if d.HasCheckpoint() {
			r.add(Error, CheckCheckpoints, d.Name, "decoration carries checkpoint %d, which is never emitted", *d.Checkpoint)
		}
	}
}

// checkNames reports sibling nodes sharing a name; Godot renames them on load
// and node paths in the fragment stop resolving.
func checkNames(r *Report, layout *citydata.Layout, cfg *config.Config) {
	city := newSiblings(cfg.CityParent())
	city.add(r, cfg.Scene.HookContainer)
	for _, b := range layout.Boxes() {
		city.add(r, b.Name)
	}
	for _, p := range layout.Platforms {
		city.add(r, p.Name)
	}

	hooks := newSiblings(cfg.HookParent())
	for _, h := range layout.HookTargets {
		hooks.add(r, h.Name)
	}
}

type siblings struct {
	parent string
	seen   map[string]bool
}

func newSiblings(parent string) *siblings {
	return &siblings{parent: parent, seen: make(map[string]bool)}
}

func (s *siblings) add(r *Report, name string) {
	if s.seen[name] {
		r.add(Error, CheckNames, name, "duplicate node name under %s", s.parent)
		return
	}
	s.seen[name] = true
}

func checkMaterials(r *Report, layout *citydata.Layout, cfg *config.Config) {
	for _, b := range layout.Boxes() {
		if _, ok := layout.Material(b.Material); !ok {
			r.add(Error, CheckMaterials, b.Name, "unknown material %q", b.Material)
		}
	}
	if len(layout.HookTargets) > 0 {
		if _, ok := layout.Material(cfg.Scene.HookMaterial); !ok {
			r.add(Error, CheckMaterials, cfg.Scene.HookContainer, "hook material %q missing from the palette", cfg.Scene.HookMaterial)
		}
	}
}
