package pkgmanager

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout bounds each `<manager> --version` probe.
const probeTimeout = 5 * time.Second

// ProbeResult reports whether a manager executable answered a version query.
type ProbeResult struct {
	OK      bool
	Version string
}

// System abstracts the filesystem and process operations used for detection and install.
// This interface is package-local so tests can replace probes and installs without
// touching PATH.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Probe(ctx context.Context, m Manager) ProbeResult
	Run(ctx context.Context, dir string, argv []string) error
}

// RealSystem implements System using the OS. Nil writers fall back to the
// process's own standard streams.
type RealSystem struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Probe runs `<m> --version`. Any failure, including a missing executable, is a
// result with OK=false rather than an error.
func (RealSystem) Probe(ctx context.Context, m Manager) ProbeResult {
	path, err := exec.LookPath(m.String())
	if err != nil {
		return ProbeResult{}
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return ProbeResult{}
	}
	version, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return ProbeResult{OK: true, Version: strings.TrimSpace(version)}
}

// Run executes argv in dir with the standard streams attached so the package
// manager's own progress and prompts reach the user.
func (s RealSystem) Run(ctx context.Context, dir string, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = s.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
