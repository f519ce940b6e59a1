package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/storekit/internal/config"
	"github.com/conn-castle/storekit/internal/fsutil"
	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/templates"
)

// FileStatus describes what writing a template did to the file on disk.
type FileStatus string

// File statuses.
const (
	StatusCreated   FileStatus = "created"
	StatusReplaced  FileStatus = "replaced"
	StatusUnchanged FileStatus = "unchanged"
)

// FileResult is one written, or planned, template file.
type FileResult struct {
	Path   string
	Status FileStatus
	Before string
	After  string
}

type templateFile struct {
	path     string
	template string
}

// templateFiles lists the generated files in write order.
func templateFiles(paths config.Paths) []templateFile {
	return []templateFile{
		{path: paths.Slice, template: "redux/features/demo/demoSlice.js"},
		{path: paths.Store, template: "redux/store.js"},
		{path: paths.Provider, template: "redux/provider.jsx"},
	}
}

// PlanTemplates reports what WriteTemplates would do without writing.
func PlanTemplates(paths config.Paths) ([]FileResult, error) {
	files := templateFiles(paths)
	out := make([]FileResult, 0, len(files))
	for _, file := range files {
		res, err := planFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// WriteTemplates writes every template, replacing existing files without
// asking. It stops at the first failure and leaves earlier files in place.
func WriteTemplates(paths config.Paths) ([]FileResult, error) {
	files := templateFiles(paths)
	out := make([]FileResult, 0, len(files))
	for _, file := range files {
		res, err := planFile(file)
		if err != nil {
			return out, err
		}
		if err := fsutil.WriteFileWithParents(file.path, []byte(res.After), 0o644); err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

func planFile(file templateFile) (FileResult, error) {
	data, err := templates.Read(file.template)
	if err != nil {
		return FileResult{}, fmt.Errorf(messages.ScaffoldReadTemplateFmt, file.template, err)
	}
	res := FileResult{Path: file.path, After: string(data), Status: StatusCreated}
	existing, err := os.ReadFile(file.path)
	switch {
	case err == nil:
		res.Before = string(existing)
		res.Status = StatusReplaced
		if bytes.Equal(existing, data) {
			res.Status = StatusUnchanged
		}
	case !errors.Is(err, os.ErrNotExist):
		return FileResult{}, fmt.Errorf(messages.ScaffoldReadExistingFmt, file.path, err)
	}
	return res, nil
}
