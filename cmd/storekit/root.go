package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/storekit/internal/config"
	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/picker"
	"github.com/conn-castle/storekit/internal/pkgmanager"
	"github.com/conn-castle/storekit/internal/scaffold"
)

const (
	flagPNPM        = "pnpm"
	flagYarn        = "yarn"
	flagNPM         = "npm"
	flagDir         = "dir"
	flagSkipInstall = "skip-install"
	flagDryRun      = "dry-run"
	flagInteractive = "interactive"
	flagDiffLines   = "diff-lines"
)

var newPickerUI = func() picker.UI { return picker.NewHuhUI() }

// rootFlags holds the parsed command-line flags.
type rootFlags struct {
	pnpm        bool
	yarn        bool
	npm         bool
	dir         string
	skipInstall bool
	dryRun      bool
	interactive bool
	diffLines   int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Stray flags from wrappers such as `npx storekit --foo` are ignored.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScaffold(cmd, flags)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&flags.pnpm, flagPNPM, false, messages.FlagPNPM)
	f.BoolVar(&flags.yarn, flagYarn, false, messages.FlagYarn)
	f.BoolVar(&flags.npm, flagNPM, false, messages.FlagNPM)
	f.StringVar(&flags.dir, flagDir, "", messages.FlagDir)
	f.BoolVar(&flags.skipInstall, flagSkipInstall, false, messages.FlagSkipInstall)
	f.BoolVar(&flags.dryRun, flagDryRun, false, messages.FlagDryRun)
	f.BoolVar(&flags.interactive, flagInteractive, false, messages.FlagInteractive)
	f.IntVar(&flags.diffLines, flagDiffLines, 0, messages.FlagDiffLines)
	f.Bool("version", false, messages.RootVersionFlag)
	return cmd
}

func runScaffold(cmd *cobra.Command, flags rootFlags) error {
	root, err := resolveProjectRoot(flags.dir)
	if err != nil {
		return err
	}
	cfg, _, err := config.Load(root)
	if err != nil {
		return err
	}

	skipInstall := cfg.SkipInstall
	if cmd.Flags().Changed(flagSkipInstall) {
		skipInstall = flags.skipInstall
	}
	diffLines := cfg.DiffLines
	if cmd.Flags().Changed(flagDiffLines) {
		diffLines = flags.diffLines
	}

	opts := scaffold.Options{
		Paths:        config.PathsFor(root, cfg.AppDir),
		Flags:        pkgmanager.Flags{PNPM: flags.pnpm, Yarn: flags.yarn, NPM: flags.npm},
		Configured:   cfg.Manager(),
		SkipInstall:  skipInstall,
		DryRun:       flags.dryRun,
		DiffMaxLines: diffLines,
		System: pkgmanager.RealSystem{
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
	if flags.interactive {
		ui := newPickerUI()
		opts.Choose = func(detected pkgmanager.Selection) (pkgmanager.Selection, error) {
			return picker.Choose(ui, detected)
		}
	}

	_, err = scaffold.Run(cmd.Context(), opts)
	if errors.Is(err, picker.ErrCancelled) {
		_, _ = color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), messages.PickerCancelled)
		return &SilentExitError{Code: 1}
	}
	return err
}

// resolveProjectRoot returns the absolute project directory: dir with ~
// expanded, or the working directory when dir is empty.
func resolveProjectRoot(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return getwd()
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf(messages.RootResolveDirFmt, dir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.RootResolveDirFmt, dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf(messages.RootDirNotFoundFmt, abs)
		}
		return "", fmt.Errorf(messages.RootStatDirFmt, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.RootDirNotDirFmt, abs)
	}
	return abs, nil
}
