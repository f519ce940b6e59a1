package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/storekit/internal/messages"
)

// Packages are the dependencies the generated store, slice and provider import.
var Packages = []string{"@reduxjs/toolkit", "react-redux", "redux"}

// ErrInstallFailed marks a failed or unstartable install subprocess.
var ErrInstallFailed = errors.New(messages.PkgInstallFailed)

// InstallRequest names the project and the manager to install with.
type InstallRequest struct {
	Root    string
	Manager Manager
}

// Command returns the argv that installs Packages with m. workspaceRoot adds
// pnpm's -w so it accepts adding to a workspace root.
func Command(m Manager, workspaceRoot bool) []string {
	var argv []string
	switch m {
	case Yarn:
		argv = []string{"yarn", "add"}
	case PNPM:
		argv = []string{"pnpm", "add"}
	default:
		argv = []string{"npm", "install", "--save"}
	}
	argv = append(argv, Packages...)
	if m == PNPM && workspaceRoot {
		argv = append(argv, "-w")
	}
	return argv
}

// InstallCommand resolves the full install argv for req, inspecting the
// project for a pnpm workspace when needed.
func InstallCommand(req InstallRequest, sys System) ([]string, error) {
	workspaceRoot := false
	if req.Manager == PNPM {
		ws, err := isPNPMWorkspaceRoot(sys, req.Root)
		if err != nil {
			return nil, err
		}
		workspaceRoot = ws
	}
	return Command(req.Manager, workspaceRoot), nil
}

// Install runs the install command in req.Root and blocks until the manager
// exits. Any failure wraps ErrInstallFailed.
func Install(ctx context.Context, req InstallRequest, sys System) error {
	argv, err := InstallCommand(req, sys)
	if err != nil {
		return err
	}
	if err := sys.Run(ctx, req.Root, argv); err != nil {
		return fmt.Errorf(messages.PkgInstallCommandFailedFmt, ErrInstallFailed, strings.Join(argv, " "), err)
	}
	return nil
}
