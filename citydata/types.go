// Package citydata holds the rooftop city layout tables and loads alternative
// layouts from YAML or Tiled files. It is pure data: nothing here knows about the
// scene text format.
package citydata

// Vec3 is a world-space position (x, y, z).
type Vec3 [3]float64

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Dimensions is an axis-aligned box size (width, height, depth).
type Dimensions [3]float64

func (d Dimensions) W() float64 { return d[0] }
func (d Dimensions) H() float64 { return d[1] }
func (d Dimensions) D() float64 { return d[2] }

// Color is an RGBA color with components in [0, 1].
type Color [4]float64

// Material is one palette entry, referenced by key from buildings.
type Material struct {
	Key   string `yaml:"key"`
	Color Color  `yaml:"color,flow"`
}

// Building is a solid box. Position is the box center, so the rooftop sits at
// Position.Y() + Size.H()/2. Decorations use the same record and never carry a
// checkpoint.
type Building struct {
	Name       string     `yaml:"name"`
	Position   Vec3       `yaml:"position,flow"`
	Size       Dimensions `yaml:"size,flow"`
	Material   string     `yaml:"material"`
	Checkpoint *int       `yaml:"checkpoint,omitempty"`
}

// Rooftop returns the world height of the building's top face.
func (b Building) Rooftop() float64 {
	return b.Position.Y() + b.Size.H()/2
}

// HasCheckpoint reports whether the building carries a checkpoint trigger.
func (b Building) HasCheckpoint() bool {
	return b.Checkpoint != nil
}

// HookTarget is a grapple point placed between buildings.
type HookTarget struct {
	Name     string `yaml:"name"`
	Position Vec3   `yaml:"position,flow"`
}

// MovingPlatform oscillates between Start and End at runtime.
type MovingPlatform struct {
	Name  string `yaml:"name"`
	Start Vec3   `yaml:"start,flow"`
	End   Vec3   `yaml:"end,flow"`
}

// Layout is the complete, immutable input of one generator run.
type Layout struct {
	Palette     []Material       `yaml:"palette,omitempty"`
	Buildings   []Building       `yaml:"buildings"`
	Decorations []Building       `yaml:"decorations"`
	HookTargets []HookTarget     `yaml:"hook_targets"`
	Platforms   []MovingPlatform `yaml:"platforms"`
}

// Boxes returns buildings followed by decorations, the order every generator
// stage walks them in.
func (l *Layout) Boxes() []Building {
	boxes := make([]Building, 0, len(l.Buildings)+len(l.Decorations))
	boxes = append(boxes, l.Buildings...)
	boxes = append(boxes, l.Decorations...)
	return boxes
}

// Material looks up a palette entry by key.
func (l *Layout) Material(key string) (Material, bool) {
	for _, m := range l.Palette {
		if m.Key == key {
			return m, true
		}
	}
	return Material{}, false
}

// CheckpointBuildings returns the checkpoint-bearing buildings in declaration order.
func (l *Layout) CheckpointBuildings() []Building {
	var out []Building
	for _, b := range l.Buildings {
		if b.HasCheckpoint() {
			out = append(out, b)
		}
	}
	return out
}

// Bounds returns the corners of the axis-aligned box enclosing every box,
// hook target and platform endpoint. An empty layout has zero bounds.
func (l *Layout) Bounds() (lo, hi Vec3) {
	first := true
	grow := func(a, b Vec3) {
		for i := range lo {
			if first || a[i] < lo[i] {
				lo[i] = a[i]
			}
			if first || b[i] > hi[i] {
				hi[i] = b[i]
			}
		}
		first = false
	}

	for _, b := range l.Boxes() {
		var a, c Vec3
		for i := range a {
			a[i] = b.Position[i] - b.Size[i]/2
			c[i] = b.Position[i] + b.Size[i]/2
		}
		grow(a, c)
	}
	for _, h := range l.HookTargets {
		grow(h.Position, h.Position)
	}
	for _, p := range l.Platforms {
		grow(p.Start, p.Start)
		grow(p.End, p.End)
	}
	return lo, hi
}
