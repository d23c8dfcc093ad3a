package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(11))

	face, err := Label.Get()
	require.NoError(t, err)
	assert.Positive(t, font.MeasureString(face, "CP 2").Ceil())
}

func TestMissingFont(t *testing.T) {
	_, err := FontName("missing").Get()
	assert.EqualError(t, err, "font missing not loaded")
}

func TestBadFontData(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 10)
	assert.ErrorContains(t, err, "parse font broken")
}
