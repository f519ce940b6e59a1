// Package scaffold runs the storekit pipeline: pick a package manager, install
// Redux, write the store files and wrap the root layout.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/storekit/internal/config"
	"github.com/conn-castle/storekit/internal/diffview"
	"github.com/conn-castle/storekit/internal/layout"
	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/pkgmanager"
	"github.com/conn-castle/storekit/internal/runlock"
)

// ChooseFunc lets the user override the detected manager.
type ChooseFunc func(detected pkgmanager.Selection) (pkgmanager.Selection, error)

// Options controls a scaffold run.
type Options struct {
	Paths        config.Paths
	Flags        pkgmanager.Flags
	Configured   pkgmanager.Manager
	SkipInstall  bool
	DryRun       bool
	DiffMaxLines int
	Choose       ChooseFunc
	System       pkgmanager.System
	Out          io.Writer
	Err          io.Writer
	// LockDir overrides the run lock directory; empty uses runlock.DefaultDir.
	LockDir string
}

// Report summarizes a finished run.
type Report struct {
	Selection pkgmanager.Selection
	Command   []string
	Installed bool
	Files     []FileResult
	Layout    layout.Result
}

type runner struct {
	opts Options
	out  io.Writer
	err  io.Writer
}

// Run executes the pipeline. Install and write failures abort the run; a
// layout that cannot be patched is reported as a warning and Run succeeds.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Paths.Root == "" {
		return Report{}, fmt.Errorf(messages.ScaffoldRootRequired)
	}
	if opts.System == nil {
		return Report{}, fmt.Errorf(messages.ScaffoldSystemRequired)
	}
	r := &runner{opts: opts, out: opts.Out, err: opts.Err}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.err == nil {
		r.err = os.Stderr
	}

	if !opts.DryRun {
		lock, err := runlock.Acquire(opts.Paths.Root, opts.LockDir)
		if err != nil {
			return Report{}, err
		}
		defer func() {
			_ = lock.Release()
		}()
	}

	r.warnProject()

	var report Report
	sel, err := r.selectManager(ctx)
	if err != nil {
		return Report{}, err
	}
	report.Selection = sel

	req := pkgmanager.InstallRequest{Root: opts.Paths.Root, Manager: sel.Manager}
	argv, err := pkgmanager.InstallCommand(req, opts.System)
	if err != nil {
		return report, err
	}
	report.Command = argv

	if opts.DryRun {
		return r.dryRun(report)
	}

	if opts.SkipInstall {
		_, _ = fmt.Fprintln(r.out, messages.RunInstallSkipped)
	} else {
		_, _ = fmt.Fprintf(r.out, messages.RunInstallingFmt, strings.Join(pkgmanager.Packages, ", "), sel.Manager)
		if err := pkgmanager.Install(ctx, req, opts.System); err != nil {
			return report, err
		}
		report.Installed = true
	}

	_, _ = fmt.Fprintln(r.out, messages.RunWritingTemplates)
	files, err := WriteTemplates(opts.Paths)
	report.Files = files
	for _, file := range files {
		_, _ = fmt.Fprintf(r.out, messages.RunFileStatusFmt, file.Status, r.rel(file.Path))
	}
	if err != nil {
		return report, err
	}

	res, err := layout.Run(opts.Paths.Layout)
	if err != nil {
		return report, err
	}
	report.Layout = res
	r.reportLayout(res)

	_, _ = fmt.Fprintln(r.out, color.GreenString(messages.RunSuccess))
	return report, nil
}

// warnProject flags projects that do not look like a Next.js app. It never fails the run.
func (r *runner) warnProject() {
	pkg, found, err := pkgmanager.LoadPackageJSON(r.opts.System, r.opts.Paths.Root)
	if err != nil {
		return
	}
	warn := color.New(color.FgYellow)
	if !found {
		_, _ = warn.Fprintf(r.err, messages.RunMissingPackageJSONFmt, r.opts.Paths.Root)
		return
	}
	if !pkg.HasDependency("next") {
		_, _ = warn.Fprintf(r.err, messages.RunMissingNextFmt, "package.json")
	}
}

func (r *runner) selectManager(ctx context.Context) (pkgmanager.Selection, error) {
	sel := pkgmanager.Detect(ctx, pkgmanager.DetectRequest{
		Root:       r.opts.Paths.Root,
		Flags:      r.opts.Flags,
		Configured: r.opts.Configured,
	}, r.opts.System)
	if r.opts.Choose != nil {
		chosen, err := r.opts.Choose(sel)
		if err != nil {
			return pkgmanager.Selection{}, err
		}
		sel = chosen
	}
	if sel.Detail != "" {
		_, _ = fmt.Fprintf(r.out, messages.RunManagerSelectedNoteFmt, sel.Manager, sel.Source, sel.Detail)
	} else {
		_, _ = fmt.Fprintf(r.out, messages.RunManagerSelectedFmt, sel.Manager, sel.Source)
	}
	return sel, nil
}

func (r *runner) dryRun(report Report) (Report, error) {
	_, _ = fmt.Fprintln(r.out, messages.DryRunHeader)
	if r.opts.SkipInstall {
		_, _ = fmt.Fprintln(r.out, messages.RunInstallSkipped)
	} else {
		_, _ = fmt.Fprintf(r.out, messages.DryRunCommandFmt, strings.Join(report.Command, " "))
	}

	files, err := PlanTemplates(r.opts.Paths)
	if err != nil {
		return report, err
	}
	report.Files = files
	for _, file := range files {
		r.printDiff(file.Path, file.Before, file.After)
	}

	res, err := layout.Plan(r.opts.Paths.Layout)
	if err != nil {
		return report, err
	}
	report.Layout = res
	if res.Outcome == layout.OutcomeSkipped {
		_, _ = color.New(color.FgYellow).Fprintf(r.err, messages.DryRunLayoutSkipFmt, r.rel(res.Path), res.Warning)
		return report, nil
	}
	r.printDiff(res.Path, res.Before, res.After)
	return report, nil
}

func (r *runner) printDiff(path string, before string, after string) {
	rel := r.rel(path)
	diff, _ := diffview.Render(rel, rel, before, after, r.opts.DiffMaxLines)
	if diff == "" {
		_, _ = fmt.Fprintf(r.out, messages.DryRunNoChangeFmt, rel)
		return
	}
	_, _ = fmt.Fprint(r.out, diff)
}

func (r *runner) reportLayout(res layout.Result) {
	rel := r.rel(res.Path)
	switch res.Outcome {
	case layout.OutcomeCreated:
		_, _ = fmt.Fprintf(r.out, messages.RunLayoutCreatedFmt, rel)
	case layout.OutcomePatched:
		_, _ = fmt.Fprintf(r.out, messages.RunLayoutPatchedFmt, rel)
	case layout.OutcomeAlreadyPatched:
		_, _ = fmt.Fprintf(r.out, messages.RunLayoutAlreadyFmt, rel)
	case layout.OutcomeSkipped:
		_, _ = color.New(color.FgYellow).Fprintf(r.err, messages.RunLayoutSkippedFmt, rel, res.Warning)
	}
}

// rel shortens path for display, falling back to path when it is outside the root.
func (r *runner) rel(path string) string {
	rel, err := filepath.Rel(r.opts.Paths.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
