//go:build !unix

package runlock

import "os"

var lockFileFn = func(*os.File) error { return nil }
var unlockFileFn = func(*os.File) error { return nil }
