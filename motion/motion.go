// Package motion reproduces the runtime movement of moving platforms so
// build-time checks can see where a platform travels, not just its endpoints.
package motion

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
)

// Path is one platform's trip from start to end, one linear tween per axis.
// The return trip plays the same tweens backwards.
type Path struct {
	axes  [3]*gween.Tween
	leg   float32
	delay float32
}

// NewPath builds the motion of p with the runtime timing in cfg.
func NewPath(p citydata.MovingPlatform, cfg config.PlatformConfig) *Path {
	path := &Path{leg: cfg.LegDuration, delay: cfg.LegDelay}
	for i := range path.axes {
		path.axes[i] = gween.New(float32(p.Start[i]), float32(p.End[i]), cfg.LegDuration, ease.Linear)
	}
	return path
}

// Cycle is the time to go out and back, holding at each endpoint.
func (p *Path) Cycle() float32 {
	return 2 * (p.delay + p.leg)
}

// At returns the platform position elapsed seconds after the scene starts.
// The platform holds at the start for the delay, moves to the end, holds again
// and moves back.
func (p *Path) At(elapsed float32) citydata.Vec3 {
	t := float32(math.Mod(float64(elapsed), float64(p.Cycle())))
	if t < 0 {
		t += p.Cycle()
	}

	switch {
	case t < p.delay:
		return p.legAt(0)
	case t < p.delay+p.leg:
		return p.legAt(t - p.delay)
	case t < 2*p.delay+p.leg:
		return p.legAt(p.leg)
	default:
		return p.legAt(p.leg - (t - 2*p.delay - p.leg))
	}
}

// legAt returns the position t seconds into the outbound leg.
func (p *Path) legAt(t float32) citydata.Vec3 {
	var v citydata.Vec3
	for i, tw := range p.axes {
		cur, _ := tw.Set(t)
		v[i] = float64(cur)
	}
	return v
}

// Sample returns evenly spaced positions along the outbound leg at the
// configured sample rate, including both endpoints.
func Sample(p citydata.MovingPlatform, cfg config.PlatformConfig) []citydata.Vec3 {
	path := NewPath(p, cfg)
	n := int(math.Ceil(float64(cfg.LegDuration * cfg.SampleRate)))
	if n < 1 {
		n = 1
	}

	out := make([]citydata.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, path.legAt(cfg.LegDuration*float32(i)/float32(n)))
	}
	return out
}
