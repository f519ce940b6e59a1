package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/storekit/internal/picker"
	"github.com/conn-castle/storekit/internal/testutil"
)

const nextPackageJSON = `{"name":"app","dependencies":{"next":"14.2.3"}}`

// setupProject returns a Next.js project root and a PATH dir holding an npm stub.
func setupProject(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	testutil.WriteFile(t, root, "package.json", nextPackageJSON)
	bin := t.TempDir()
	testutil.WritePackageManagerStub(t, bin, "npm", "10.8.0", 0)
	testutil.UsePath(t, bin)
	return root, bin
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"storekit"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRootScaffoldsProject(t *testing.T) {
	root, bin := setupProject(t)

	stdout, stderr, err := run(t, "--dir", root)
	require.NoError(t, err, stderr)

	assert.Equal(t, []string{"install --save @reduxjs/toolkit react-redux redux"}, testutil.StubCalls(t, bin, "npm"))
	for _, rel := range []string{
		"src/app/redux/features/demo/demoSlice.js",
		"src/app/redux/store.js",
		"src/app/redux/provider.jsx",
		"src/app/layout.js",
	} {
		assert.FileExists(t, filepath.Join(root, filepath.FromSlash(rel)))
	}
	assert.Contains(t, stdout, "Using npm (default)")
	assert.Contains(t, stdout, "Redux store scaffolded.")
}

func TestRootUsesWorkingDirectory(t *testing.T) {
	root, _ := setupProject(t)

	testutil.WithWorkingDir(t, root, func() {
		_, stderr, err := run(t, "--skip-install")
		require.NoError(t, err, stderr)
	})
	assert.FileExists(t, filepath.Join(root, "src", "app", "redux", "store.js"))
}

func TestRootGetwdError(t *testing.T) {
	orig := getwd
	t.Cleanup(func() { getwd = orig })
	getwd = func() (string, error) { return "", errors.New("getwd failed") }

	_, _, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getwd failed")
}

func TestRootInstallFailureExitsOne(t *testing.T) {
	root, _ := setupProject(t)
	bin := t.TempDir()
	testutil.WritePackageManagerStub(t, bin, "npm", "10.8.0", 7)
	testutil.UsePath(t, bin)

	var out bytes.Buffer
	code := 0
	runMain([]string{"storekit", "--dir", root}, &out, &out, func(c int) { code = c })

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "dependency installation failed")
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestRootFlagPrecedence(t *testing.T) {
	root, bin := setupProject(t)
	testutil.WritePackageManagerStub(t, bin, "pnpm", "9.1.0", 0)
	testutil.WritePackageManagerStub(t, bin, "yarn", "1.22.22", 0)

	stdout, stderr, err := run(t, "--dir", root, "--npm", "--yarn", "--pnpm")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Using pnpm (flag: --pnpm)")
	assert.Equal(t, []string{"add @reduxjs/toolkit react-redux redux"}, testutil.StubCalls(t, bin, "pnpm"))
	assert.Nil(t, testutil.StubCalls(t, bin, "yarn"))
	assert.Nil(t, testutil.StubCalls(t, bin, "npm"))
}

func TestRootProbesInstalledManagers(t *testing.T) {
	root, bin := setupProject(t)
	testutil.WritePackageManagerStub(t, bin, "yarn", "1.22.22", 0)

	stdout, stderr, err := run(t, "--dir", root)
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Using yarn (installed: 1.22.22)")
	assert.Equal(t, []string{"add @reduxjs/toolkit react-redux redux"}, testutil.StubCalls(t, bin, "yarn"))
}

func TestRootConfigFile(t *testing.T) {
	root, bin := setupProject(t)
	testutil.WritePackageManagerStub(t, bin, "yarn", "1.22.22", 0)
	testutil.WriteFile(t, root, "storekit.toml", "package_manager = \"yarn\"\napp_dir = \"app\"\n")

	stdout, stderr, err := run(t, "--dir", root)
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Using yarn (config)")
	assert.FileExists(t, filepath.Join(root, "app", "redux", "store.js"))
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestRootConfigSkipInstallOverriddenByFlag(t *testing.T) {
	root, bin := setupProject(t)
	testutil.WriteFile(t, root, "storekit.toml", "skip_install = true\n")

	_, stderr, err := run(t, "--dir", root)
	require.NoError(t, err, stderr)
	assert.Nil(t, testutil.StubCalls(t, bin, "npm"))

	_, stderr, err = run(t, "--dir", root, "--skip-install=false")
	require.NoError(t, err, stderr)
	assert.Len(t, testutil.StubCalls(t, bin, "npm"), 1)
}

func TestRootInvalidConfig(t *testing.T) {
	root, _ := setupProject(t)
	testutil.WriteFile(t, root, "storekit.toml", "package_manager = \"bun\"\n")

	_, _, err := run(t, "--dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bun")
}

func TestRootDryRun(t *testing.T) {
	root, bin := setupProject(t)

	stdout, stderr, err := run(t, "--dir", root, "--dry-run", "--diff-lines", "5")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Would run: npm install --save @reduxjs/toolkit react-redux redux")
	assert.Contains(t, stdout, "truncated to 5 lines")
	assert.Nil(t, testutil.StubCalls(t, bin, "npm"))
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestRootIgnoresUnknownFlags(t *testing.T) {
	root, _ := setupProject(t)

	_, stderr, err := run(t, "--dir", root, "--skip-install", "--typescript")
	require.NoError(t, err, stderr)
}

func TestRootDirErrors(t *testing.T) {
	setupProject(t)
	file := testutil.WriteFile(t, t.TempDir(), "file.txt", "x")

	_, _, err := run(t, "--dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, _, err = run(t, "--dir", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestResolveProjectRootExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	require.NoError(t, os.Mkdir(filepath.Join(home, "web"), 0o755))

	got, err := resolveProjectRoot("~/web")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "web"), got)
}

type cancelUI struct{}

func (cancelUI) Select(string, []string, *string) error { return picker.ErrCancelled }

type pickUI struct{ choice string }

func (p pickUI) Select(_ string, _ []string, current *string) error {
	*current = p.choice
	return nil
}

func TestRootInteractiveCancel(t *testing.T) {
	root, bin := setupProject(t)
	orig := newPickerUI
	t.Cleanup(func() { newPickerUI = orig })
	newPickerUI = func() picker.UI { return cancelUI{} }

	_, stderr, err := run(t, "--dir", root, "--interactive")

	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, stderr, "cancelled")
	assert.Nil(t, testutil.StubCalls(t, bin, "npm"))
}

func TestRootInteractivePick(t *testing.T) {
	root, bin := setupProject(t)
	testutil.WritePackageManagerStub(t, bin, "pnpm", "9.1.0", 0)
	orig := newPickerUI
	t.Cleanup(func() { newPickerUI = orig })
	newPickerUI = func() picker.UI { return pickUI{choice: "npm"} }

	stdout, stderr, err := run(t, "--dir", root, "--interactive")
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, "Using npm (selected)")
	assert.Len(t, testutil.StubCalls(t, bin, "npm"), 1)
	assert.Nil(t, testutil.StubCalls(t, bin, "pnpm"))
}

func TestRootHelpMentionsFlags(t *testing.T) {
	stdout, _, err := run(t, "--help")
	require.NoError(t, err)
	for _, flag := range []string{"--pnpm", "--yarn", "--npm", "--dry-run", "--interactive"} {
		assert.True(t, strings.Contains(stdout, flag), flag)
	}
}
