//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
)

const plantPotatoesStory = `Plant potatoes properly

Narrative:
In order to grow potatoes
As a farmer
I want to plant potatoes

Scenario: Plant a row
Given a field
`

var projectFiles = map[string]string{
	".bddreport/config.yml":                                       "version: 1\noutput_dir: out\nrequirements:\n  dir: stories\n",
	"stories/grow_potatoes/narrative.txt":                         "@type:capability\nGrow potatoes\nAs a farmer I want potatoes\n",
	"stories/grow_potatoes/grow_new_potatoes/PlantPotatoes.story": plantPotatoesStory,
	"stories/grow_potatoes/harvest_potatoes/DigUpPotatoes.story":  "Narrative:\nAs a farmer\nI want to dig up potatoes\n",
}

// aProjectWithARequirementsTree creates a project and switches into it.
func (s *featureState) aProjectWithARequirementsTree() error {
	dir, err := os.MkdirTemp("", "bddreport-feature-*")
	if err != nil {
		return fmt.Errorf("create temp project: %w", err)
	}
	s.projectDir = dir
	for rel, body := range projectFiles {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
	}
	s.configPath = filepath.Join(dir, ".bddreport", "config.yml")

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir to project: %w", err)
	}
	return nil
}

// theConfigIsInvalid writes a config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	if s.configPath == "" {
		return fmt.Errorf("no project created")
	}
	return os.WriteFile(s.configPath, []byte("version: 3\noutput_dir: out\n"), 0o644)
}
