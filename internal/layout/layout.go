// Package layout wraps a Next.js root layout in the generated Providers component.
package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/storekit/internal/fsutil"
	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/templates"
)

// templatePath is the embedded fresh layout.
const templatePath = "app/layout.js"

// siblingNames are other root layout file names Next.js accepts, checked in
// order when the default layout.js is absent.
var siblingNames = []string{"layout.jsx", "layout.tsx", "layout.ts"}

// Outcome is what happened, or would happen, to the layout file.
type Outcome int

// Layout outcomes.
const (
	OutcomeCreated Outcome = iota + 1
	OutcomePatched
	OutcomeAlreadyPatched
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomePatched:
		return "patched"
	case OutcomeAlreadyPatched:
		return "already patched"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes the planned change to one layout file.
// Warning is set only for OutcomeSkipped.
type Result struct {
	Path    string
	Outcome Outcome
	Before  string
	After   string
	Warning error

	perm fs.FileMode
}

// Changes reports whether applying the result writes to disk.
func (r Result) Changes() bool {
	return r.Outcome == OutcomeCreated || r.Outcome == OutcomePatched
}

// Plan decides what to do with the layout at path without writing anything.
// Only read failures are returned as errors; a layout that cannot be patched
// is an OutcomeSkipped result carrying the reason in Warning.
func Plan(path string) (Result, error) {
	resolved, info, err := resolve(path)
	if err != nil {
		return Result{}, err
	}
	if info == nil {
		fresh, err := templates.Read(templatePath)
		if err != nil {
			return Result{}, fmt.Errorf(messages.ScaffoldReadTemplateFmt, templatePath, err)
		}
		return Result{Path: resolved, Outcome: OutcomeCreated, After: string(fresh), perm: 0o644}, nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Result{}, fmt.Errorf(messages.LayoutReadFailedFmt, resolved, err)
	}
	before := string(data)
	res := Result{Path: resolved, Before: before, After: before, perm: info.Mode().Perm()}
	if strings.Contains(before, ProviderName) {
		res.Outcome = OutcomeAlreadyPatched
		return res, nil
	}
	patched, err := Patch(before)
	if err != nil {
		res.Outcome = OutcomeSkipped
		res.Warning = err
		return res, nil
	}
	res.Outcome = OutcomePatched
	res.After = patched
	return res, nil
}

// Apply writes a planned result. Results that change nothing are a no-op.
func Apply(res Result) error {
	if !res.Changes() {
		return nil
	}
	perm := res.perm
	if perm == 0 {
		perm = 0o644
	}
	return fsutil.WriteFileWithParents(res.Path, []byte(res.After), perm)
}

// Run plans and applies the layout change at path.
func Run(path string) (Result, error) {
	res, err := Plan(path)
	if err != nil {
		return Result{}, err
	}
	if err := Apply(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// resolve returns the layout file to operate on. A nil FileInfo means no
// layout exists and path should be created.
func resolve(path string) (string, fs.FileInfo, error) {
	candidates := []string{path}
	if filepath.Base(path) == "layout.js" {
		for _, name := range siblingNames {
			candidates = append(candidates, filepath.Join(filepath.Dir(path), name))
		}
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", nil, fmt.Errorf(messages.LayoutIsDirFmt, candidate)
			}
			return candidate, info, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf(messages.LayoutReadFailedFmt, candidate, err)
		}
	}
	return path, nil, nil
}
