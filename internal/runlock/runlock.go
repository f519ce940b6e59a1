// Package runlock keeps two storekit runs from scaffolding the same project at once.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/storekit/internal/messages"
)

// ErrLocked is returned when another run already holds the project lock.
var ErrLocked = errors.New(messages.RunLockHeld)

var userCacheDir = os.UserCacheDir

// Lock is a held project lock. Release it when the run finishes.
type Lock struct {
	path string
	file *os.File
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// DefaultDir returns the directory lock files live in: the user cache dir,
// falling back to the system temp dir.
func DefaultDir() string {
	base, err := userCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, "storekit", "locks")
}

// FileName returns the lock file name for a project root.
func FileName(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf(messages.RunLockResolveDirFmt, err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return hex.EncodeToString(sum[:8]) + ".lock", nil
}

// Acquire takes the exclusive lock for root without waiting. dir overrides
// DefaultDir when non-empty. A held lock fails with ErrLocked.
func Acquire(root string, dir string) (*Lock, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	name, err := FileName(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.RunLockCreateDirFmt, dir, err)
	}
	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.RunLockOpenFmt, path, err)
	}
	if err := lockFileFn(file); err != nil {
		_ = file.Close()
		if errors.Is(err, ErrLocked) {
			return nil, err
		}
		return nil, fmt.Errorf(messages.RunLockFmt, path, err)
	}
	return &Lock{path: path, file: file}, nil
}

// Release unlocks and closes the lock file. It is safe on a nil Lock and
// safe to call twice.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	file := l.file
	l.file = nil
	if err := unlockFileFn(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
