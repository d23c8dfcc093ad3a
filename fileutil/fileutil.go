// Package fileutil writes generated files in one step.
package fileutil

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteAtomic writes data to path with mode 0644. The content goes to a
// temporary file in the same directory which is then renamed over path, so
// readers never see a partial file.
func WriteAtomic(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
