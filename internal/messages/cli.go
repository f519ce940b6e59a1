package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "storekit"
	// RootShort is the short description for the root command.
	RootShort = "Scaffold a Redux store into a Next.js app"
	RootLong  = "Install Redux Toolkit with the project's package manager, write a demo slice, a store factory\n" +
		"and a Providers component under the app directory, then wrap the root layout in <Providers>.\n\n" +
		"Run it once from the root of an existing Next.js project."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagPNPM        = "Install dependencies with pnpm"
	FlagYarn        = "Install dependencies with yarn"
	FlagNPM         = "Install dependencies with npm"
	FlagDir         = "Project root to scaffold into (defaults to the current directory)"
	FlagSkipInstall = "Skip installing dependencies"
	FlagDryRun      = "Show what would change without installing or writing anything"
	FlagInteractive = "Choose the package manager from a prompt"
	FlagDiffLines   = "Maximum diff lines shown per file in --dry-run"

	RootResolveDirFmt       = "resolve project dir %s: %w"
	RootDirNotFoundFmt      = "project dir %s does not exist"
	RootDirNotDirFmt        = "%s exists but is not a directory"
	RootStatDirFmt          = "check project dir %s: %w"
	RootInteractiveNeedsTTY = "--interactive requires an interactive terminal"

	RunManagerSelectedFmt     = "Using %s (%s)\n"
	RunManagerSelectedNoteFmt = "Using %s (%s: %s)\n"
	RunInstallingFmt          = "Installing %s with %s...\n"
	RunInstallSkipped         = "Skipping dependency installation."
	RunWritingTemplates       = "Writing Redux files:"
	RunFileStatusFmt          = "  %-9s %s\n"
	RunLayoutCreatedFmt       = "Created %s with <Providers>.\n"
	RunLayoutPatchedFmt       = "Wrapped %s in <Providers>.\n"
	RunLayoutAlreadyFmt       = "%s already uses Providers; leaving it unchanged.\n"
	RunLayoutSkippedFmt       = "Warning: could not patch %s: %v\nWrap the returned markup in <Providers> manually and import it from \"./redux/provider\".\n"
	RunMissingPackageJSONFmt  = "Warning: no package.json in %s; is this a JavaScript project?\n"
	RunMissingNextFmt         = "Warning: %s does not list next as a dependency; the generated files assume the Next.js app router.\n"
	RunSuccess                = "Redux store scaffolded."

	DryRunHeader        = "Dry run: nothing will be installed or written."
	DryRunCommandFmt    = "Would run: %s\n"
	DryRunNoChangeFmt   = "No change: %s\n"
	DryRunLayoutSkipFmt = "Would skip %s: %v\n"
	DiffTruncatedFmt    = "... (truncated to %d lines; rerun with %s <n> to see more)"

	// PickerTitle is the interactive package manager prompt title.
	PickerTitle       = "Which package manager should install Redux?"
	PickerDetectedFmt = "%s (detected: %s)"
	PickerCancelled   = "package manager selection cancelled"
)
