package requirements

import (
	"os"
	"path/filepath"
	"strings"

	"bddreport/internal/env"
	"bddreport/internal/model"
)

// DefaultTypes is the hierarchy used when none is configured.
var DefaultTypes = []string{model.TypeCapability, model.TypeFeature, model.TypeStory}

// defaultRootCandidates are probed, in order, when no root is configured.
var defaultRootCandidates = []string{
	"stories",
	"features",
	filepath.Join("src", "test", "resources", "stories"),
	filepath.Join("src", "test", "resources", "features"),
}

// Configuration holds the requirement type hierarchy and root directory.
type Configuration struct {
	// Types lists requirement types from the top of the tree downward.
	Types []string
	// RootDir is the configured or discovered root, relative to BaseDir
	// unless absolute.
	RootDir string
	BaseDir string
}

// NewConfiguration reads serenity.requirement.types,
// serenity.requirements.dir and serenity.requirements.base.dir.
func NewConfiguration(vars env.Variables) Configuration {
	base := env.ValueOr(vars, env.RequirementsBaseDir, ".")
	return Configuration{
		Types:   ParseTypes(env.Value(vars, env.RequirementTypes)),
		RootDir: rootDirectory(vars, base),
		BaseDir: base,
	}
}

// ParseTypes splits a comma separated type list, falling back to DefaultTypes.
func ParseTypes(value string) []string {
	types := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			types = append(types, part)
		}
	}
	if len(types) == 0 {
		return append([]string(nil), DefaultTypes...)
	}
	return types
}

func rootDirectory(vars env.Variables, base string) string {
	if configured := env.Value(vars, env.RequirementsDir); configured != "" {
		return configured
	}
	for _, candidate := range defaultRootCandidates {
		info, err := os.Stat(filepath.Join(base, candidate))
		if err == nil && info.IsDir() {
			return candidate
		}
	}
	return defaultRootCandidates[0]
}

// RootPath returns the root directory on disk.
func (c Configuration) RootPath() string {
	if filepath.IsAbs(c.RootDir) || c.BaseDir == "" {
		return filepath.Clean(c.RootDir)
	}
	return filepath.Join(c.BaseDir, c.RootDir)
}

// rootElements returns the root directory split into path segments.
func (c Configuration) rootElements() []string {
	return splitPath(filepath.ToSlash(c.RootDir))
}
