package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	root := t.TempDir()
	paths := DefaultPaths(root)

	if paths.Root != root {
		t.Fatalf("expected root %s, got %s", root, paths.Root)
	}
	if paths.AppDir != filepath.Join(root, "src", "app") {
		t.Fatalf("unexpected app dir: %s", paths.AppDir)
	}
	if paths.Slice != filepath.Join(root, "src", "app", "redux", "features", "demo", "demoSlice.js") {
		t.Fatalf("unexpected slice path: %s", paths.Slice)
	}
	if paths.Store != filepath.Join(root, "src", "app", "redux", "store.js") {
		t.Fatalf("unexpected store path: %s", paths.Store)
	}
	if paths.Provider != filepath.Join(root, "src", "app", "redux", "provider.jsx") {
		t.Fatalf("unexpected provider path: %s", paths.Provider)
	}
	if paths.Layout != filepath.Join(root, "src", "app", "layout.js") {
		t.Fatalf("unexpected layout path: %s", paths.Layout)
	}
}

func TestPathsForCustomAppDir(t *testing.T) {
	root := t.TempDir()
	paths := PathsFor(root, "app")

	if paths.Store != filepath.Join(root, "app", "redux", "store.js") {
		t.Fatalf("unexpected store path: %s", paths.Store)
	}
	if paths.Layout != filepath.Join(root, "app", "layout.js") {
		t.Fatalf("unexpected layout path: %s", paths.Layout)
	}
}

func TestPathsForEmptyAppDirUsesDefault(t *testing.T) {
	root := t.TempDir()
	if PathsFor(root, "") != DefaultPaths(root) {
		t.Fatalf("expected empty app dir to fall back to %s", DefaultAppDir)
	}
}
