package citydata

import (
	"math"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultLayout(t *testing.T) {
	l := Default()

	assert.Len(t, l.Palette, 6)
	assert.Len(t, l.Buildings, 27)
	assert.Len(t, l.Decorations, 10)
	assert.Len(t, l.HookTargets, 26)
	assert.Len(t, l.Platforms, 3)
	require.NoError(t, l.Validate())

	var numbers []int
	for _, b := range l.CheckpointBuildings() {
		numbers = append(numbers, *b.Checkpoint)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, numbers)

	for _, d := range l.Decorations {
		assert.False(t, d.HasCheckpoint(), d.Name)
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Buildings[0].Name = "Changed"
	*a.Buildings[5].Checkpoint = 99

	b := Default()
	assert.Equal(t, "Transition01", b.Buildings[0].Name)
	assert.Equal(t, 2, *b.Buildings[5].Checkpoint)
}

func TestRooftop(t *testing.T) {
	b := Building{Position: Vec3{10, 5, -20}, Size: Dimensions{4, 10, 4}}
	assert.Equal(t, 10.0, b.Rooftop())
}

func TestBoxesOrder(t *testing.T) {
	l := Default()
	boxes := l.Boxes()
	require.Len(t, boxes, 37)
	assert.Equal(t, "Transition01", boxes[0].Name)
	assert.Equal(t, "SpireTop", boxes[26].Name)
	assert.Equal(t, "Deco01", boxes[27].Name)
}

func TestBounds(t *testing.T) {
	l := &Layout{
		Buildings:   []Building{{Name: "A", Position: Vec3{0, 5, 0}, Size: Dimensions{4, 10, 4}}},
		HookTargets: []HookTarget{{Name: "H", Position: Vec3{-10, 20, 3}}},
		Platforms:   []MovingPlatform{{Name: "P", Start: Vec3{5, 1, -8}, End: Vec3{6, 1, -9}}},
	}
	lo, hi := l.Bounds()
	assert.Equal(t, Vec3{-10, 0, -9}, lo)
	assert.Equal(t, Vec3{6, 20, 3}, hi)

	lo, hi = (&Layout{}).Bounds()
	assert.Equal(t, Vec3{}, lo)
	assert.Equal(t, Vec3{}, hi)
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := MarshalYAML(Default())
	require.NoError(t, err)

	got, err := ParseYAML(data)
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("layout changed through YAML (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
buildings:
  - name: B1
    position: [10, 5, -20]
    size: [4, 10, 4]
    material: mat_a
    checkpoint: 1
decorations:
  - name: D1
    position: [30, 10, -20]
    size: [6, 20, 8]
    material: mat_c
hook_targets:
  - name: H1
    position: [12, 14, -22]
platforms:
  - name: P1
    start: [10, 12, -20]
    end: [14, 15, -22]
`
	l, err := ParseYAML([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, DefaultPalette(), l.Palette, "missing palette falls back to the default")
	require.Len(t, l.Buildings, 1)
	assert.Equal(t, Vec3{10, 5, -20}, l.Buildings[0].Position)
	assert.Equal(t, Dimensions{4, 10, 4}, l.Buildings[0].Size)
	require.NotNil(t, l.Buildings[0].Checkpoint)
	assert.Equal(t, 1, *l.Buildings[0].Checkpoint)
	assert.Nil(t, l.Decorations[0].Checkpoint)
	assert.Equal(t, Vec3{14, 15, -22}, l.Platforms[0].End)
}

func TestParseYAMLRejectsUnknownFields(t *testing.T) {
	_, err := ParseYAML([]byte("buildings:\n  - name: B1\n    colour: red\n"))
	require.Error(t, err)
}

func TestParseYAMLCollectsValidationErrors(t *testing.T) {
	src := `
buildings:
  - name: B1
    position: [0, 0, 0]
    size: [0, 10, 4]
    material: mat_z
decorations:
  - name: D1
    position: [0, 0, 0]
    size: [1, 1, 1]
    material: mat_a
    checkpoint: 3
hook_targets:
  - position: [0, 0, 0]
`
	_, err := ParseYAML([]byte(src))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "size must be positive")
	assert.Contains(t, msg, `unknown material "mat_z"`)
	assert.Contains(t, msg, "decorations cannot carry a checkpoint")
	assert.Contains(t, msg, "hook_targets[0]: name must be set")
}

func TestValidateCountsEveryProblem(t *testing.T) {
	l := &Layout{
		Palette: []Material{{Key: "mat_a", Color: Color{1, 1, 1, 1}}, {Key: "mat_a", Color: Color{2, 0, 0, 1}}},
		Buildings: []Building{
			{Name: "", Size: Dimensions{1, 1, 1}, Material: "mat_a"},
		},
	}
	err := l.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestValidateRejectsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	valid := func() *Layout {
		return &Layout{
			Palette:     DefaultPalette(),
			Buildings:   []Building{{Name: "B1", Position: Vec3{10, 5, -20}, Size: Dimensions{4, 10, 4}, Material: "mat_a"}},
			Decorations: []Building{{Name: "D1", Position: Vec3{0, 1, 0}, Size: Dimensions{2, 2, 2}, Material: "mat_b"}},
			HookTargets: []HookTarget{{Name: "H1", Position: Vec3{12, 14, -22}}},
			Platforms:   []MovingPlatform{{Name: "P1", Start: Vec3{10, 12, -20}, End: Vec3{14, 15, -22}}},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(l *Layout)
		want   string
	}{
		{"building size NaN", func(l *Layout) { l.Buildings[0].Size[0] = nan }, "buildings[0] B1: size must be positive and finite"},
		{"building size Inf", func(l *Layout) { l.Buildings[0].Size[1] = inf }, "buildings[0] B1: size must be positive and finite"},
		{"building position Inf", func(l *Layout) { l.Buildings[0].Position[0] = inf }, "buildings[0] B1: position must be finite"},
		{"building position NaN", func(l *Layout) { l.Buildings[0].Position[1] = nan }, "buildings[0] B1: position must be finite"},
		{"decoration size NaN", func(l *Layout) { l.Decorations[0].Size[2] = nan }, "decorations[0] D1: size must be positive and finite"},
		{"decoration position -Inf", func(l *Layout) { l.Decorations[0].Position[2] = -inf }, "decorations[0] D1: position must be finite"},
		{"hook position NaN", func(l *Layout) { l.HookTargets[0].Position[1] = nan }, "hook_targets[0] H1: position must be finite"},
		{"platform start Inf", func(l *Layout) { l.Platforms[0].Start[0] = inf }, "platforms[0] P1: start and end must be finite"},
		{"platform end NaN", func(l *Layout) { l.Platforms[0].End[2] = nan }, "platforms[0] P1: start and end must be finite"},
		{"palette color NaN", func(l *Layout) { l.Palette[0].Color[0] = nan }, "palette[0] mat_a: color component NaN outside [0, 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid()
			tt.mutate(l)
			err := l.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseYAMLRejectsNonFinite(t *testing.T) {
	tests := map[string]string{
		"nan size":     "buildings:\n  - name: B1\n    position: [10, 5, -20]\n    size: [.nan, 10, 4]\n    material: mat_a\n",
		"inf position": "buildings:\n  - name: B1\n    position: [.inf, 5, -20]\n    size: [4, 10, 4]\n    material: mat_a\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(src))
			assert.ErrorContains(t, err, "invalid layout")
		})
	}
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"city.yml": &fstest.MapFile{Data: []byte("buildings: []\n")},
		"city.txt": &fstest.MapFile{Data: []byte("")},
	}

	l, err := Load(fsys, "city.yml")
	require.NoError(t, err)
	assert.Empty(t, l.Buildings)

	_, err = Load(fsys, "city.txt")
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestLoadFileEmptyPathIsDefault(t *testing.T) {
	l, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, l.Buildings, 27)
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="64" height="64" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="5">
 <objectgroup id="1" name="Buildings">
  <object id="1" name="B1" x="128" y="-352" width="64" height="64">
   <properties>
    <property name="height" type="float" value="10"/>
    <property name="y" type="float" value="5"/>
    <property name="material" value="mat_a"/>
    <property name="checkpoint" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Decorations">
  <object id="2" name="D1" x="432" y="-384" width="96" height="128">
   <properties>
    <property name="height" type="float" value="20"/>
    <property name="material" value="mat_c"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="HookTargets">
  <object id="3" name="H1" x="192" y="-352">
   <properties>
    <property name="y" type="float" value="14"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="MovingPlatforms">
  <object id="4" name="P1" x="160" y="-320">
   <properties>
    <property name="start_y" type="float" value="12"/>
    <property name="end_y" type="float" value="15"/>
   </properties>
   <polyline points="0,0 64,-32"/>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/rooftops.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	l, err := Load(fsys, "levels/rooftops.tmx")
	require.NoError(t, err)

	require.Len(t, l.Buildings, 1)
	b := l.Buildings[0]
	assert.Equal(t, "B1", b.Name)
	assert.Equal(t, Vec3{10, 5, -20}, b.Position)
	assert.Equal(t, Dimensions{4, 10, 4}, b.Size)
	assert.Equal(t, "mat_a", b.Material)
	require.NotNil(t, b.Checkpoint)
	assert.Equal(t, 1, *b.Checkpoint)

	require.Len(t, l.Decorations, 1)
	d := l.Decorations[0]
	assert.Equal(t, Vec3{30, 10, -20}, d.Position, "missing y stands the box on the ground")
	assert.Equal(t, Dimensions{6, 20, 8}, d.Size)
	assert.Nil(t, d.Checkpoint)

	require.Len(t, l.HookTargets, 1)
	assert.Equal(t, Vec3{12, 14, -22}, l.HookTargets[0].Position)

	require.Len(t, l.Platforms, 1)
	assert.Equal(t, Vec3{10, 12, -20}, l.Platforms[0].Start)
	assert.Equal(t, Vec3{14, 15, -22}, l.Platforms[0].End)
}
