//go:build windows

package fsutil

import "os"

// WriteFileAtomic writes data to filename. Windows has no atomic rename over an
// open file, so this falls back to a plain truncating write.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
