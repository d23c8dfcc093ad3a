package citydata

import (
	"bytes"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a layout from a YAML file in fsys. A layout without a palette
// gets the default one.
func LoadYAML(fsys fs.FS, path string) (*Layout, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes and validates a YAML layout. Unknown fields are rejected so
// typos in hand-written layouts surface instead of silently dropping data.
func ParseYAML(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var layout Layout
	if err := dec.Decode(&layout); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if len(layout.Palette) == 0 {
		layout.Palette = DefaultPalette()
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return &layout, nil
}

// MarshalYAML encodes a layout in the format ParseYAML reads.
func MarshalYAML(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return buf.Bytes(), nil
}
