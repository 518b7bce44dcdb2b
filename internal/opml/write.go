package opml

import (
	"fmt"

	"github.com/google/renameio/v2"
)

// WriteFile replaces path with data. The data is written to a temporary file
// in the same directory and renamed into place, so path is either left as it
// was or fully written.
func WriteFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
