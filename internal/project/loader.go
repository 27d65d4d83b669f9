// Package project locates and reads the persisted project-level
// configuration. Discovery walks upward from the working directory until a
// marker establishes the project root; the absence of a project file is not
// an error.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file consulted at the root.
const ConfigFileName = "modelgen.yaml"

// rootMarkers establish a project root when found while walking upward.
var rootMarkers = []string{ConfigFileName, ".git", "go.mod"}

// LoadError reports a project file that exists but cannot be used. It is
// fatal: merging never starts on top of a half-read file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load project config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// configFile is the on-disk structure. Only the options section is
// consulted; anything else in the file belongs to other tools.
type configFile struct {
	Options map[string]any `yaml:"options"`
}

// FindRoot walks upward from startDir until a root marker is found. It
// returns the discovered root directory, or "" when the filesystem root is
// reached without one.
func FindRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load discovers the project root from startDir and reads the options
// section of its configuration file. Keys are normalized (dashes to
// underscores) so they match option names exactly. A missing root or
// missing file yields an empty mapping; an unreadable or malformed file
// yields a *LoadError.
func Load(startDir string) (map[string]any, error) {
	root := FindRoot(startDir)
	if root == "" {
		return map[string]any{}, nil
	}
	return LoadFile(filepath.Join(root, ConfigFileName))
}

// LoadFile reads one project configuration file. A missing file yields an
// empty mapping.
func LoadFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	var cf configFile
	if err := yaml.Unmarshal(content, &cf); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	normalized := make(map[string]any, len(cf.Options))
	for key, value := range cf.Options {
		normalized[NormalizeKey(key)] = value
	}
	return normalized, nil
}

// NormalizeKey maps file-key punctuation to the canonical separator used by
// option names.
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}
