package messages

// Package manager, template, and layout messages.
const (
	PkgInstallFailed           = "dependency installation failed"
	PkgReadPackageJSONFmt      = "failed to read %s: %w"
	PkgParsePackageJSONFmt     = "failed to parse %s: %w"
	PkgReadWorkspaceFmt        = "failed to read %s: %w"
	PkgParseWorkspaceFmt       = "failed to parse %s: %w"
	PkgInstallCommandFailedFmt = "%w: %s: %w"

	ScaffoldRootRequired    = "project root is required"
	ScaffoldSystemRequired  = "scaffold system is required"
	ScaffoldReadTemplateFmt = "failed to read template %s: %w"
	ScaffoldReadExistingFmt = "failed to read %s: %w"

	LayoutReadFailedFmt      = "failed to read layout %s: %w"
	LayoutIsDirFmt           = "layout %s is a directory"
	LayoutNoReturnBlock      = "no `return (` block found"
	LayoutAmbiguousReturn    = "more than one `return (` block found"
	LayoutUnbalancedReturn   = "the `return (` block does not close before the end of the function"
	LayoutAmbiguousReturnFmt = "%w (%d matches)"
)
