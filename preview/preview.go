// Package preview renders a top-down image of a city layout: building
// footprints in their material colors, hook targets, platform paths and
// checkpoint numbers. It is a review aid; nothing reads it back.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sort"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/fileutil"
	"github.com/automoto/citygen/motion"
)

var (
	Background = color.RGBA{R: 0x16, G: 0x18, B: 0x1d, A: 0xff}
	PathColor  = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
	LabelColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// Used when the hook material is missing from the palette
	fallbackHook = color.RGBA{R: 0xe5, G: 0x8c, B: 0x26, A: 0xff}
)

// projection maps world X/Z to image pixels. World -Z is up in the image.
type projection struct {
	lo     citydata.Vec3
	scale  float64
	margin int
}

func (p projection) point(x, z float64) image.Point {
	return image.Point{
		X: int(math.Round((x-p.lo.X())*p.scale)) + p.margin,
		Y: int(math.Round((z-p.lo.Z())*p.scale)) + p.margin,
	}
}

func (p projection) footprint(b citydata.Building) image.Rectangle {
	return image.Rectangle{
		Min: p.point(b.Position.X()-b.Size.W()/2, b.Position.Z()-b.Size.D()/2),
		Max: p.point(b.Position.X()+b.Size.W()/2, b.Position.Z()+b.Size.D()/2),
	}
}

// Render draws layout. face may be nil, in which case checkpoints are not
// labeled.
func Render(layout *citydata.Layout, cfg *config.Config, face font.Face) *image.RGBA {
	lo, hi := layout.Bounds()
	proj := projection{lo: lo, scale: cfg.Preview.PixelsPerUnit, margin: cfg.Preview.Margin}

	size := proj.point(hi.X(), hi.Z()).Add(image.Pt(cfg.Preview.Margin+1, cfg.Preview.Margin+1))
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	// Lower rooftops first so taller buildings stay visible.
	boxes := layout.Boxes()
	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Rooftop() < boxes[j].Rooftop() })
	for _, b := range boxes {
		fill := materialColor(layout, b.Material, Background)
		r := proj.footprint(b)
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
		outline(img, r, shade(fill, 0.6))
	}

	for _, p := range layout.Platforms {
		for _, pos := range motion.Sample(p, cfg.Platform) {
			pt := proj.point(pos.X(), pos.Z())
			img.Set(pt.X, pt.Y, PathColor)
		}
		for _, end := range []citydata.Vec3{p.Start, p.End} {
			square(img, proj.point(end.X(), end.Z()), 3, PathColor)
		}
	}

	hook := materialColor(layout, cfg.Scene.HookMaterial, fallbackHook)
	for _, h := range layout.HookTargets {
		square(img, proj.point(h.Position.X(), h.Position.Z()), cfg.Preview.HookPixels, hook)
	}

	if face != nil {
		for _, b := range layout.CheckpointBuildings() {
			label(img, face, proj.point(b.Position.X(), b.Position.Z()), strconv.Itoa(*b.Checkpoint))
		}
	}
	return img
}

func materialColor(layout *citydata.Layout, key string, fallback color.RGBA) color.RGBA {
	m, ok := layout.Material(key)
	if !ok {
		return fallback
	}
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{R: channel(m.Color[0]), G: channel(m.Color[1]), B: channel(m.Color[2]), A: 0xff}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

func outline(img draw.Image, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// square fills a side x side square centered on p.
func square(img draw.Image, p image.Point, side int, c color.Color) {
	half := side / 2
	r := image.Rect(p.X-half, p.Y-half, p.X-half+side, p.Y-half+side)
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// label draws text centered on p.
func label(img draw.Image, face font.Face, p image.Point, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: face,
	}
	width := d.MeasureString(text)
	ascent := face.Metrics().Ascent
	d.Dot = fixed.Point26_6{
		X: fixed.I(p.X) - width/2,
		Y: fixed.I(p.Y) + ascent/2,
	}
	d.DrawString(text)
}

// Encode returns img as PNG bytes.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img as PNG and writes it to path atomically.
func WriteFile(path string, img image.Image) error {
	data, err := Encode(img)
	if err != nil {
		return err
	}
	return fileutil.WriteAtomic(path, data)
}
