// Package manifest reads the optional shim.yaml written next to the launcher
// at packaging time.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the manifest's file name inside the install directory.
const FileName = "shim.yaml"

// Manifest holds packaging-time settings for the launcher.
type Manifest struct {
	Name      string `yaml:"name,omitempty"`      // Binary base name, without .exe
	Reinstall string `yaml:"reinstall,omitempty"` // Shown after "try reinstalling", e.g. "pip install tool"
}

// Load reads the manifest from dir. A missing file yields an empty manifest.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// validate rejects names that would escape the bin directory.
func (m *Manifest) validate() error {
	if m.Name == "" {
		return nil
	}
	if m.Name == "." || m.Name == ".." || strings.ContainsAny(m.Name, `/\`) {
		return fmt.Errorf("name %q must be a plain file name", m.Name)
	}
	return nil
}
