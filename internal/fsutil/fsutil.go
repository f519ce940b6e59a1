// Package fsutil provides filesystem helpers shared by the scaffolding steps.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/storekit/internal/messages"
)

// WriteFileWithParents creates any missing parent directories of filename and
// atomically replaces its contents with data.
func WriteFileWithParents(filename string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf(messages.FSCreateDirFailedFmt, filename, err)
	}
	if err := WriteFileAtomic(filename, data, perm); err != nil {
		return fmt.Errorf(messages.FSWriteFailedFmt, filename, err)
	}
	return nil
}
