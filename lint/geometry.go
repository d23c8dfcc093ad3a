package lint

import (
	"math"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/motion"
)

// checkOverlap reports boxes sharing volume. Touching faces are fine.
func checkOverlap(r *Report, s *layoutSpace) {
	for _, obj := range s.solids {
		a := obj.Data.(*solid)
		for _, b := range s.near(obj) {
			if b.index <= a.index {
				continue
			}
			if overlaps(a.box, b.box, s.tol) {
				r.add(Warning, CheckOverlap, a.box.Name, "overlaps %s", b.box.Name)
			}
		}
	}
}

// checkHooks reports hook targets buried inside a box, where the grapple
// raycast can never reach them.
func checkHooks(r *Report, layout *citydata.Layout, s *layoutSpace) {
	for _, h := range layout.HookTargets {
		for _, b := range s.containing(h.Position) {
			r.add(Error, CheckHooks, h.Name, "inside %s", b.Name)
		}
	}
}

// checkGrappleRange reports hook targets farther than the grapple raycast from
// every rooftop a player can stand on.
func checkGrappleRange(r *Report, layout *citydata.Layout, cfg config.GrappleConfig) {
	boxes := layout.Boxes()
	if len(boxes) == 0 {
		return
	}
	for _, h := range layout.HookTargets {
		nearest := math.Inf(1)
		for _, b := range boxes {
			nearest = math.Min(nearest, rooftopDistance(b, h.Position))
		}
		if nearest > cfg.MaxRaycastDistance {
			r.add(Warning, CheckGrapple, h.Name, "%.1f from the nearest rooftop, grapple reaches %.1f", nearest, cfg.MaxRaycastDistance)
		}
	}
}

// rooftopDistance is the distance from p to the closest point of b's top face.
func rooftopDistance(b citydata.Building, p citydata.Vec3) float64 {
	x0, x1 := extent(b, 0)
	z0, z1 := extent(b, 2)
	dx := p.X() - math.Max(x0, math.Min(p.X(), x1))
	dz := p.Z() - math.Max(z0, math.Min(p.Z(), z1))
	dy := p.Y() - b.Rooftop()
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// checkPlatforms sweeps each platform along its runtime path and reports the
// boxes its center passes through.
func checkPlatforms(r *Report, layout *citydata.Layout, s *layoutSpace, cfg config.PlatformConfig) {
	for _, p := range layout.Platforms {
		hit := make(map[string]bool)
		for _, pos := range motion.Sample(p, cfg) {
			for _, b := range s.containing(pos) {
				if hit[b.Name] {
					continue
				}
				hit[b.Name] = true
				r.add(Warning, CheckPlatforms, p.Name, "path passes through %s", b.Name)
			}
		}
	}
}
