package citydata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a layout from fsys, choosing the format from the file extension.
// It takes an fs.FS so tests can pass fstest.MapFS and the CLI can pass os.DirFS.
func Load(fsys fs.FS, path string) (*Layout, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(fsys, path)
	case ".tmx":
		return LoadTMX(fsys, path)
	default:
		return nil, fmt.Errorf("load layout %s: unsupported extension %q (want .yaml, .yml or .tmx)", path, ext)
	}
}

// LoadFile loads a layout from a path on disk. An empty path returns the
// embedded default layout.
func LoadFile(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
