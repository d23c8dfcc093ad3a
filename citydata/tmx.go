package citydata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a Tiled layout.
const (
	GroupBuildings   = "Buildings"
	GroupDecorations = "Decorations"
	GroupHookTargets = "HookTargets"
	GroupPlatforms   = "MovingPlatforms"
)

// LoadTMX reads a top-down layout drawn in Tiled. The map's X axis is world X and
// its Y axis is world Z; one tile is one world unit. Heights come from custom
// properties:
//
//   - Buildings / Decorations (rectangles): "height", "material", optional "y"
//     (box center, defaults to height/2 so the box stands on the ground) and, for
//     buildings, optional "checkpoint".
//   - HookTargets (points): "y".
//   - MovingPlatforms (polylines, first and last point): "start_y", "end_y".
//
// Object order inside each group is kept, since size ids depend on it.
func LoadTMX(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be positive", tmxPath)
	}

	unitX := float64(levelMap.TileWidth)
	unitZ := float64(levelMap.TileHeight)
	layout := &Layout{Palette: DefaultPalette()}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupBuildings:
			for _, o := range og.Objects {
				layout.Buildings = append(layout.Buildings, boxFromObject(o, unitX, unitZ))
			}
		case GroupDecorations:
			for _, o := range og.Objects {
				layout.Decorations = append(layout.Decorations, boxFromObject(o, unitX, unitZ))
			}
		case GroupHookTargets:
			for _, o := range og.Objects {
				layout.HookTargets = append(layout.HookTargets, HookTarget{
					Name:     o.Name,
					Position: Vec3{o.X / unitX, o.Properties.GetFloat("y"), o.Y / unitZ},
				})
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				p, err := platformFromObject(o, unitX, unitZ)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				layout.Platforms = append(layout.Platforms, p)
			}
		}
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", tmxPath, err)
	}
	return layout, nil
}

func boxFromObject(o *tiled.Object, unitX, unitZ float64) Building {
	w := o.Width / unitX
	d := o.Height / unitZ
	h := o.Properties.GetFloat("height")

	y := h / 2
	if hasProperty(o.Properties, "y") {
		y = o.Properties.GetFloat("y")
	}

	b := Building{
		Name:     o.Name,
		Position: Vec3{(o.X + o.Width/2) / unitX, y, (o.Y + o.Height/2) / unitZ},
		Size:     Dimensions{w, h, d},
		Material: o.Properties.GetString("material"),
	}
	if hasProperty(o.Properties, "checkpoint") {
		// Decorations keep the number so Validate can reject it.
		n := o.Properties.GetInt("checkpoint")
		b.Checkpoint = &n
	}
	return b
}

func platformFromObject(o *tiled.Object, unitX, unitZ float64) (MovingPlatform, error) {
	if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil || len(*o.PolyLines[0].Points) < 2 {
		return MovingPlatform{}, fmt.Errorf("platform %q must be a polyline with at least two points", o.Name)
	}
	points := *o.PolyLines[0].Points
	first := points[0]
	last := points[len(points)-1]

	return MovingPlatform{
		Name:  o.Name,
		Start: Vec3{(o.X + first.X) / unitX, o.Properties.GetFloat("start_y"), (o.Y + first.Y) / unitZ},
		End:   Vec3{(o.X + last.X) / unitX, o.Properties.GetFloat("end_y"), (o.Y + last.Y) / unitZ},
	}, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
