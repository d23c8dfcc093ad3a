package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
	"github.com/automoto/citygen/fonts"
)

func tinyLayout() *citydata.Layout {
	two := 2
	return &citydata.Layout{
		Palette: citydata.DefaultPalette(),
		Buildings: []citydata.Building{
			{Name: "A", Position: citydata.Vec3{0, 5, 0}, Size: citydata.Dimensions{4, 10, 4}, Material: "mat_a", Checkpoint: &two},
		},
		HookTargets: []citydata.HookTarget{{Name: "H", Position: citydata.Vec3{10, 12, 0}}},
	}
}

func TestRenderGeometry(t *testing.T) {
	img := Render(tinyLayout(), config.Default(), nil)

	assert.Equal(t, image.Rect(0, 0, 97, 65), img.Bounds())
	assert.Equal(t, Background, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 82, G: 84, B: 92, A: 0xff}, img.RGBAAt(32, 32), "building fill")
	assert.Equal(t, color.RGBA{R: 49, G: 50, B: 55, A: 0xff}, img.RGBAAt(24, 24), "building outline")
	assert.Equal(t, color.RGBA{R: 230, G: 140, B: 38, A: 0xff}, img.RGBAAt(72, 32), "hook target")
}

func TestRenderTallerBuildingOnTop(t *testing.T) {
	l := tinyLayout()
	l.Buildings[0].Checkpoint = nil
	l.Decorations = []citydata.Building{
		{Name: "Low", Position: citydata.Vec3{0, 1, 0}, Size: citydata.Dimensions{2, 2, 2}, Material: "mat_b"},
	}

	img := Render(l, config.Default(), nil)
	assert.Equal(t, color.RGBA{R: 82, G: 84, B: 92, A: 0xff}, img.RGBAAt(32, 32))
}

func TestRenderPlatformPath(t *testing.T) {
	l := tinyLayout()
	l.Platforms = []citydata.MovingPlatform{{Name: "P", Start: citydata.Vec3{0, 20, 8}, End: citydata.Vec3{8, 20, 8}}}

	img := Render(l, config.Default(), nil)
	// (4, 8) is halfway along the path
	assert.Equal(t, PathColor, img.RGBAAt(48, 64))
}

func TestRenderLabels(t *testing.T) {
	require.NoError(t, fonts.LoadDefaults(config.Default().Preview.LabelSize))
	face, err := fonts.Label.Get()
	require.NoError(t, err)

	plain := Render(tinyLayout(), config.Default(), nil)
	labeled := Render(tinyLayout(), config.Default(), face)
	require.Equal(t, plain.Bounds(), labeled.Bounds())

	changed := 0
	for i := range plain.Pix {
		if plain.Pix[i] != labeled.Pix[i] {
			changed++
		}
	}
	assert.Positive(t, changed)
}

func TestRenderDefaultLayout(t *testing.T) {
	img := Render(citydata.Default(), config.Default(), nil)
	assert.Greater(t, img.Bounds().Dx(), 100)
	assert.Greater(t, img.Bounds().Dy(), 100)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city_preview.png")
	img := Render(tinyLayout(), config.Default(), nil)
	require.NoError(t, WriteFile(path, img))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 97, cfg.Width)
	assert.Equal(t, 65, cfg.Height)
}
