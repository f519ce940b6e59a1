package messages

// Config messages for storekit.toml loading and validation.
const (
	ConfigReadFailedFmt            = "failed to read config %s: %w"
	ConfigInvalidFmt               = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt      = "config %s has unrecognized keys: %w"
	ConfigPackageManagerInvalidFmt = "%s: package_manager must be one of npm, yarn, pnpm (got %q)"
	ConfigAppDirInvalidFmt         = "%s: app_dir must be a relative path inside the project (got %q)"
	ConfigDiffLinesInvalidFmt      = "%s: diff_lines must not be negative (got %d)"
)
