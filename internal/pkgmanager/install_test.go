package pkgmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	assert.Equal(t, []string{"npm", "install", "--save", "@reduxjs/toolkit", "react-redux", "redux"}, Command(NPM, false))
	assert.Equal(t, []string{"yarn", "add", "@reduxjs/toolkit", "react-redux", "redux"}, Command(Yarn, false))
	assert.Equal(t, []string{"pnpm", "add", "@reduxjs/toolkit", "react-redux", "redux"}, Command(PNPM, false))
	assert.Equal(t, []string{"pnpm", "add", "@reduxjs/toolkit", "react-redux", "redux", "-w"}, Command(PNPM, true))
	assert.Equal(t, Command(Yarn, false), Command(Yarn, true), "workspace flag is pnpm-only")
}

func TestInstallRunsInRoot(t *testing.T) {
	root := t.TempDir()
	sys := &fakeSystem{}

	require.NoError(t, Install(context.Background(), InstallRequest{Root: root, Manager: Yarn}, sys))

	require.Len(t, sys.runs, 1)
	assert.Equal(t, Command(Yarn, false), sys.runs[0])
	assert.Equal(t, root, sys.runDirs[0])
}

func TestInstallPNPMWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "pnpm-workspace.yaml", "packages:\n  - \"apps/*\"\n  - \"packages/*\"\n")
	sys := &fakeSystem{}

	require.NoError(t, Install(context.Background(), InstallRequest{Root: root, Manager: PNPM}, sys))

	require.Len(t, sys.runs, 1)
	assert.Equal(t, "-w", sys.runs[0][len(sys.runs[0])-1])
}

func TestInstallPNPMWorkspaceWithoutPackages(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "pnpm-workspace.yaml", "onlyBuiltDependencies:\n  - esbuild\n")

	argv, err := InstallCommand(InstallRequest{Root: root, Manager: PNPM}, &fakeSystem{})

	require.NoError(t, err)
	assert.NotContains(t, argv, "-w")
}

func TestInstallInvalidWorkspace(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "pnpm-workspace.yaml", "packages: [unterminated\n")
	sys := &fakeSystem{}

	err := Install(context.Background(), InstallRequest{Root: root, Manager: PNPM}, sys)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
	assert.Empty(t, sys.runs)
}

func TestInstallFailureWrapsSentinel(t *testing.T) {
	cause := errors.New("exit status 1")
	sys := &fakeSystem{runErr: cause}

	err := Install(context.Background(), InstallRequest{Root: t.TempDir(), Manager: NPM}, sys)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInstallFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "npm install --save @reduxjs/toolkit react-redux redux")
}
