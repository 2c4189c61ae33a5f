// Package project persists projects and application preferences as JSON
// under the user's home directory.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brushworks/paintquote/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.paintquote/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".paintquote")
}

// Save writes a project to the specified JSON file, creating parent
// directories if they do not exist.
func Save(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a project from the specified JSON file.
func Load(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, fmt.Errorf("parse project file %s: %w", path, err)
	}
	if p.Configurations == nil {
		p.Configurations = []model.AreaConfiguration{}
	}
	return p, nil
}
