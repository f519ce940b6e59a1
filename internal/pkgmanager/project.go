package pkgmanager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/storekit/internal/messages"
)

const (
	packageJSONName   = "package.json"
	pnpmWorkspaceName = "pnpm-workspace.yaml"
)

// PackageJSON holds the package.json fields storekit looks at.
type PackageJSON struct {
	Name            string            `json:"name"`
	PackageManager  string            `json:"packageManager"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// HasDependency reports whether name appears in dependencies or devDependencies.
func (p PackageJSON) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// DeclaredManager returns the manager named by the corepack "packageManager"
// field (e.g. "pnpm@9.1.0"). Unknown names report false.
func (p PackageJSON) DeclaredManager() (Manager, bool) {
	name, _, _ := strings.Cut(strings.TrimSpace(p.PackageManager), "@")
	if name == "" {
		return "", false
	}
	return Parse(name)
}

// LoadPackageJSON reads root/package.json. Comments and trailing commas are
// tolerated. A missing file reports found=false with no error.
func LoadPackageJSON(sys System, root string) (pkg PackageJSON, found bool, err error) {
	path := filepath.Join(root, packageJSONName)
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return PackageJSON{}, false, nil
		}
		return PackageJSON{}, false, fmt.Errorf(messages.PkgReadPackageJSONFmt, path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return PackageJSON{}, true, fmt.Errorf(messages.PkgParsePackageJSONFmt, path, err)
	}
	return pkg, true, nil
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// isPNPMWorkspaceRoot reports whether root holds a pnpm-workspace.yaml that
// declares at least one package glob.
func isPNPMWorkspaceRoot(sys System, root string) (bool, error) {
	path := filepath.Join(root, pnpmWorkspaceName)
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.PkgReadWorkspaceFmt, path, err)
	}
	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return false, fmt.Errorf(messages.PkgParseWorkspaceFmt, path, err)
	}
	return len(ws.Packages) > 0, nil
}
