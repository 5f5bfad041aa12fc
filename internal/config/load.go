// Package config loads .bddreport/config.yml and turns it into the layered
// property set the providers read.
package config

import (
	"fmt"
	"os"
	"strings"

	"bddreport/internal/env"
)

// Loaded is a validated config together with the repo root it belongs to.
type Loaded struct {
	Config Config
	Root   string
	// Path is empty when defaults are used.
	Path string
}

// Load reads, parses, normalizes, and validates a config file.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Loaded{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Loaded{}, err
	}
	return Loaded{Config: cfg, Root: RepoRootFromConfigPath(path), Path: path}, nil
}

// Defaults returns the default config rooted at root.
func Defaults(root string) Loaded {
	return Loaded{Config: Default(), Root: root}
}

// OutputDir resolves the output directory against the repo root.
func (l Loaded) OutputDir() string {
	return resolve(l.Root, l.Config.OutputDir)
}

// CapabilitiesDir resolves the driver capability directory.
func (l Loaded) CapabilitiesDir() string {
	return resolve(l.Root, l.Config.Driver.CapabilitiesDir)
}

// TagSources resolves the directories scanned for tag directives.
func (l Loaded) TagSources() []string {
	out := make([]string, 0, len(l.Config.TagSources))
	for _, source := range l.Config.TagSources {
		out = append(out, resolve(l.Root, source))
	}
	return out
}

// Variables layers, from lowest to highest precedence: properties files,
// the properties map, the typed config fields, .env files, then the
// process environment.
func (l Loaded) Variables(system env.Variables) (env.Variables, error) {
	files, err := env.LoadPropertiesFiles(l.resolveAll(l.Config.PropertiesFiles), true)
	if err != nil {
		return nil, err
	}
	dotenv, err := env.LoadEnvFiles(l.resolveAll(l.Config.EnvFiles), true)
	if err != nil {
		return nil, err
	}
	return env.NewLayered(files, env.NewMap(l.Config.Properties), env.NewMap(l.fieldProperties()), dotenv, system), nil
}

func (l Loaded) resolveAll(files []string) []string {
	paths := make([]string, 0, len(files))
	for _, file := range files {
		paths = append(paths, resolve(l.Root, file))
	}
	return paths
}

func (l Loaded) fieldProperties() map[string]string {
	props := map[string]string{
		env.RequirementsBaseDir: l.Root,
		env.OutputDirectory:     l.OutputDir(),
	}
	if l.Config.Requirements.Dir != "" {
		props[env.RequirementsDir] = l.Config.Requirements.Dir
	}
	if len(l.Config.Requirements.Types) > 0 {
		props[env.RequirementTypes] = strings.Join(l.Config.Requirements.Types, ",")
	}
	if l.Config.FeatureLanguage != "" {
		props[env.FeatureFileLanguage] = l.Config.FeatureLanguage
	}
	if l.Config.Driver.Name != "" {
		props[env.Driver] = l.Config.Driver.Name
	}
	return props
}
