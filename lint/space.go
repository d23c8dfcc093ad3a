package lint

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/tags"
)

// solid is the Data carried by every box object in the layout space.
type solid struct {
	index int // Position in Layout.Boxes
	box   citydata.Building
}

// layoutSpace is a top-down resolv space of the layout: world X maps to space X
// and world Z to space Y. Space cells only cover positive coordinates, so the
// layout bounds are shifted to start at a one unit margin.
type layoutSpace struct {
	space  *resolv.Space
	solids []*resolv.Object
	scale  float64
	offX   float64
	offZ   float64
	tol    float64
}

const spaceMargin = 1.0

func newLayoutSpace(layout *citydata.Layout, cfg config.LintConfig) *layoutSpace {
	lo, hi := layout.Bounds()
	s := &layoutSpace{
		scale: cfg.SpaceScale,
		offX:  spaceMargin - lo.X(),
		offZ:  spaceMargin - lo.Z(),
		tol:   cfg.Tolerance,
	}

	w := int(math.Ceil((hi.X() - lo.X() + 2*spaceMargin) * s.scale))
	h := int(math.Ceil((hi.Z() - lo.Z() + 2*spaceMargin) * s.scale))
	cell := int(math.Max(1, float64(cfg.CellSize)*s.scale))
	s.space = resolv.NewSpace(w, h, cell, cell)

	for i, b := range layout.Boxes() {
		x, y, bw, bh := s.footprint(b.Position.X(), b.Position.Z(), b.Size.W(), b.Size.D())
		obj := resolv.NewObject(x, y, bw, bh, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
		obj.Data = &solid{index: i, box: b}
		s.space.Add(obj)
		s.solids = append(s.solids, obj)
	}
	return s
}

// footprint converts a centered world rectangle to a space rectangle.
func (s *layoutSpace) footprint(cx, cz, w, d float64) (x, y, sw, sh float64) {
	return (cx - w/2 + s.offX) * s.scale, (cz - d/2 + s.offZ) * s.scale, w * s.scale, d * s.scale
}

// near returns the boxes sharing space cells with obj, in layout order.
func (s *layoutSpace) near(obj *resolv.Object) []*solid {
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	var out []*solid
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if sd, ok := o.Data.(*solid); ok {
			out = append(out, sd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

// solidsAt returns the boxes whose footprint cells cover the world point p.
func (s *layoutSpace) solidsAt(p citydata.Vec3) []*solid {
	x, y, w, h := s.footprint(p.X(), p.Z(), 1/s.scale, 1/s.scale)
	query := resolv.NewObject(x, y, w, h)
	s.space.Add(query)
	defer s.space.Remove(query)

	return s.near(query)
}

// containing returns the boxes that strictly contain p.
func (s *layoutSpace) containing(p citydata.Vec3) []citydata.Building {
	var out []citydata.Building
	for _, sd := range s.solidsAt(p) {
		if contains(sd.box, p, s.tol) {
			out = append(out, sd.box)
		}
	}
	return out
}

// extent returns the min and max of a box along one axis.
func extent(b citydata.Building, axis int) (float64, float64) {
	half := b.Size[axis] / 2
	return b.Position[axis] - half, b.Position[axis] + half
}

// overlaps reports whether two boxes share volume deeper than tol on every axis.
func overlaps(a, b citydata.Building, tol float64) bool {
	for axis := 0; axis < 3; axis++ {
		a0, a1 := extent(a, axis)
		b0, b1 := extent(b, axis)
		if math.Min(a1, b1)-math.Max(a0, b0) <= tol {
			return false
		}
	}
	return true
}

// contains reports whether p lies inside b by more than tol on every axis.
func contains(b citydata.Building, p citydata.Vec3, tol float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo, hi := extent(b, axis)
		if p[axis] <= lo+tol || p[axis] >= hi-tol {
			return false
		}
	}
	return true
}
