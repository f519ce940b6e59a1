// Package pkgmanager selects the JavaScript package manager for a project and
// installs the Redux dependencies with it.
package pkgmanager

import "strings"

// Manager names a JavaScript package manager executable.
type Manager string

// Supported package managers.
const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// All lists the supported managers in flag precedence order.
var All = []Manager{PNPM, Yarn, NPM}

// Parse maps a name such as "pnpm" or "PNPM" to a Manager.
func Parse(name string) (Manager, bool) {
	switch Manager(strings.ToLower(strings.TrimSpace(name))) {
	case NPM:
		return NPM, true
	case Yarn:
		return Yarn, true
	case PNPM:
		return PNPM, true
	default:
		return "", false
	}
}

func (m Manager) String() string {
	return string(m)
}

// LockFile returns the lock file name the manager writes.
func (m Manager) LockFile() string {
	switch m {
	case PNPM:
		return "pnpm-lock.yaml"
	case Yarn:
		return "yarn.lock"
	default:
		return "package-lock.json"
	}
}
