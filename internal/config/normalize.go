package config

import (
	"path/filepath"
	"strings"

	"bddreport/internal/env"
)

// Normalize fills defaults and trims list entries.
func Normalize(cfg *Config) {
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	cfg.FeatureLanguage = strings.TrimSpace(cfg.FeatureLanguage)
	cfg.Requirements.Dir = strings.TrimSpace(cfg.Requirements.Dir)
	types := make([]string, 0, len(cfg.Requirements.Types))
	for _, t := range cfg.Requirements.Types {
		types = append(types, strings.TrimSpace(t))
	}
	cfg.Requirements.Types = types
	if len(cfg.PropertiesFiles) == 0 {
		cfg.PropertiesFiles = []string{env.DefaultPropertiesFile}
	}
	if len(cfg.EnvFiles) == 0 {
		cfg.EnvFiles = []string{DefaultEnvFile}
	}
	if cfg.Driver.CapabilitiesDir == "" {
		cfg.Driver.CapabilitiesDir = filepath.Join(cfg.OutputDir, "capabilities")
	}
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
