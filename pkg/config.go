package calverhook

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-repository configuration file,
// looked up at the repository root.
const ConfigFileName = ".calverhook.yml"

const (
	// DefaultRef is the remote-tracking reference commits are counted
	// against in the micro variant.
	DefaultRef = "origin/master"
	// DefaultSince is the cutoff passed to git --since when counting
	// same-day commits. "midnight" is git's own relative-date form for
	// the start of the current day in local time.
	DefaultSince = "midnight"
)

// Config holds per-repository overrides read from .calverhook.yml.
// Every field is optional; zero values fall back to the defaults.
type Config struct {
	// Ref is the remote-tracking reference used for commit counting.
	Ref string `yaml:"ref"`
	// Since is the git --since cutoff for commit counting.
	Since string `yaml:"since"`
	// VersionFile is a version file path relative to the repository
	// root, overriding the derived conventional location.
	VersionFile string `yaml:"version_file"`
	// InitFile overrides the init file name inside the module directory.
	InitFile string `yaml:"init_file"`
}

// LoadConfig reads .calverhook.yml from the repository root. A missing
// file yields the defaults; a malformed file is an error.
func LoadConfig(root string) (Config, error) {
	cfg := Config{Ref: DefaultRef, Since: DefaultSince, InitFile: DefaultInitFile}

	data, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	if cfg.Ref == "" {
		cfg.Ref = DefaultRef
	}
	if cfg.Since == "" {
		cfg.Since = DefaultSince
	}
	if cfg.InitFile == "" {
		cfg.InitFile = DefaultInitFile
	}
	return cfg, nil
}
