package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/storekit/internal/messages"
	"github.com/conn-castle/storekit/internal/pkgmanager"
)

// FileName is the optional per-project config file, read from the project root.
const FileName = "storekit.toml"

// ErrConfigValidation wraps config validation failures, as opposed to
// filesystem or TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

// Config holds project-level defaults. Command-line flags take precedence.
type Config struct {
	PackageManager string `toml:"package_manager"`
	AppDir         string `toml:"app_dir"`
	SkipInstall    bool   `toml:"skip_install"`
	DiffLines      int    `toml:"diff_lines"`
}

// Load reads storekit.toml from root. A missing file yields the zero Config and found=false.
func Load(root string) (cfg Config, found bool, err error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	cfg, err = Parse(data, path)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}

// Parse decodes and validates config TOML. source is used in error messages.
func Parse(data []byte, source string) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return Config{}, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes with unknown-field rejection so typos surface as errors.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate checks field values. source prefixes each message.
func (c Config) Validate(source string) error {
	if c.PackageManager != "" {
		if _, ok := pkgmanager.Parse(c.PackageManager); !ok {
			return fmt.Errorf(messages.ConfigPackageManagerInvalidFmt, source, c.PackageManager)
		}
	}
	if c.AppDir != "" && !validAppDir(c.AppDir) {
		return fmt.Errorf(messages.ConfigAppDirInvalidFmt, source, c.AppDir)
	}
	if c.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, source, c.DiffLines)
	}
	return nil
}

// Manager returns the configured package manager, or "" when unset.
func (c Config) Manager() pkgmanager.Manager {
	m, _ := pkgmanager.Parse(c.PackageManager)
	return m
}

func validAppDir(dir string) bool {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return false
	}
	return filepath.IsLocal(filepath.FromSlash(dir))
}
