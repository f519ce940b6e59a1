package pkgmanager

import (
	"context"
	"path/filepath"
)

// Source names the detection tier that chose a Manager.
type Source string

// Detection tiers, highest precedence first.
const (
	SourceFlag        Source = "flag"
	SourceConfig      Source = "config"
	SourceLockFile    Source = "lock file"
	SourcePackageJSON Source = "package.json"
	SourceProbe       Source = "installed"
	SourceDefault     Source = "default"
	SourcePrompt      Source = "selected"
)

// Flags are the explicit manager switches from the command line.
type Flags struct {
	PNPM bool
	Yarn bool
	NPM  bool
}

// DetectRequest carries everything detection needs. Configured is the
// manager from storekit.toml, or "" when unset.
type DetectRequest struct {
	Root       string
	Flags      Flags
	Configured Manager
}

// Selection is the chosen manager and the reason it was chosen.
type Selection struct {
	Manager Manager
	Source  Source
	Detail  string
}

// lockFileOrder is the order lock files are checked in.
var lockFileOrder = []Manager{PNPM, Yarn, NPM}

// probeOrder is the order executables are probed in. npm is the default and is never probed.
var probeOrder = []Manager{PNPM, Yarn}

// Detect picks a manager. It never fails: every tier that cannot decide falls
// through to the next, ending at npm.
func Detect(ctx context.Context, req DetectRequest, sys System) Selection {
	if sel, ok := fromFlags(req.Flags); ok {
		return sel
	}
	if req.Configured != "" {
		return Selection{Manager: req.Configured, Source: SourceConfig}
	}
	if sel, ok := fromLockFiles(sys, req.Root); ok {
		return sel
	}
	if sel, ok := fromPackageJSON(sys, req.Root); ok {
		return sel
	}
	if sel, ok := fromProbes(ctx, sys); ok {
		return sel
	}
	return Selection{Manager: NPM, Source: SourceDefault}
}

func fromFlags(flags Flags) (Selection, bool) {
	switch {
	case flags.PNPM:
		return Selection{Manager: PNPM, Source: SourceFlag, Detail: "--pnpm"}, true
	case flags.Yarn:
		return Selection{Manager: Yarn, Source: SourceFlag, Detail: "--yarn"}, true
	case flags.NPM:
		return Selection{Manager: NPM, Source: SourceFlag, Detail: "--npm"}, true
	default:
		return Selection{}, false
	}
}

func fromLockFiles(sys System, root string) (Selection, bool) {
	for _, m := range lockFileOrder {
		name := m.LockFile()
		info, err := sys.Stat(filepath.Join(root, name))
		if err != nil || info.IsDir() {
			continue
		}
		return Selection{Manager: m, Source: SourceLockFile, Detail: name}, true
	}
	return Selection{}, false
}

// fromPackageJSON ignores unreadable or malformed package.json files; the
// install step surfaces those through the manager itself.
func fromPackageJSON(sys System, root string) (Selection, bool) {
	pkg, found, err := LoadPackageJSON(sys, root)
	if err != nil || !found {
		return Selection{}, false
	}
	m, ok := pkg.DeclaredManager()
	if !ok {
		return Selection{}, false
	}
	return Selection{Manager: m, Source: SourcePackageJSON, Detail: pkg.PackageManager}, true
}

func fromProbes(ctx context.Context, sys System) (Selection, bool) {
	for _, m := range probeOrder {
		result := sys.Probe(ctx, m)
		if !result.OK {
			continue
		}
		return Selection{Manager: m, Source: SourceProbe, Detail: result.Version}, true
	}
	return Selection{}, false
}
