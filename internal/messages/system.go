package messages

// System messages for internal operations.
const (
	FSWriteFailedFmt     = "failed to write %s: %w"
	FSCreateDirFailedFmt = "failed to create directory for %s: %w"

	RunLockResolveDirFmt = "resolve lock dir: %w"
	RunLockCreateDirFmt  = "create lock dir %s: %w"
	RunLockOpenFmt       = "open lock %s: %w"
	RunLockFmt           = "lock %s: %w"
	RunLockHeld          = "another storekit run is already in progress for this project"
)
