// Package fonts loads the faces used to label preview images.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label FontName = "label"
)

func (f FontName) Get() (font.Face, error) {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go Regular face as Label.
func LoadDefaults(size float64) error {
	return LoadFontWithSize(Label, goregular.TTF, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) (font.Face, error) {
	f, ok := fonts[name]
	if !ok {
		return nil, fmt.Errorf("font %s not loaded", name)
	}
	return f, nil
}
