// Package templates embeds the JavaScript sources written into a project.
package templates

import "embed"

//go:embed redux app
var files embed.FS

// Read returns the contents of the embedded template at path.
func Read(path string) ([]byte, error) {
	return files.ReadFile(path)
}
