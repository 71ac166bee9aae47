// Package ruleset loads stat-block templates from YAML content files.
package ruleset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/traveller/internal/game/skill"
)

// Template is a reusable stat block: attribute scores and trained skills.
//
// Precondition: ID and Name must be non-empty after loading.
type Template struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Attributes  map[string]int `yaml:"attributes"` // keyed by attribute name; missing entries use the default score
	Skills      []skill.Entry  `yaml:"skills"`     // applied in file order
}

// LoadTemplates reads all .yaml files in dir and parses each as a Template.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed templates (may be empty slice) or a non-nil error.
func LoadTemplates(dir string) ([]*Template, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	templates := make([]*Template, 0, len(files))
	for _, path := range files {
		t, err := LoadTemplate(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// LoadTemplate reads and validates a single template file.
//
// Postcondition: Returns a Template with non-empty ID and Name, or a non-nil error.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing template file %s: %w", path, err)
	}
	if t.ID == "" || t.Name == "" {
		return nil, fmt.Errorf("template file %s: id and name must not be empty", path)
	}
	return &t, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
