package config

import "path/filepath"

// DefaultAppDir is the Next.js app router directory, relative to the project root.
const DefaultAppDir = "src/app"

// Paths holds the resolved locations storekit reads and writes.
type Paths struct {
	Root     string
	AppDir   string
	Slice    string
	Store    string
	Provider string
	Layout   string
}

// DefaultPaths returns the paths for a project using the default app directory.
func DefaultPaths(root string) Paths {
	return PathsFor(root, DefaultAppDir)
}

// PathsFor returns the paths for a project whose app router lives at appDir
// (slash-separated, relative to root).
func PathsFor(root string, appDir string) Paths {
	if appDir == "" {
		appDir = DefaultAppDir
	}
	app := filepath.Join(root, filepath.FromSlash(appDir))
	redux := filepath.Join(app, "redux")
	return Paths{
		Root:     root,
		AppDir:   app,
		Slice:    filepath.Join(redux, "features", "demo", "demoSlice.js"),
		Store:    filepath.Join(redux, "store.js"),
		Provider: filepath.Join(redux, "provider.jsx"),
		Layout:   filepath.Join(app, "layout.js"),
	}
}
