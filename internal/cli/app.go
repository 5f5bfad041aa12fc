package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"bddreport/internal/buildinfo"
	"bddreport/internal/config"
	"bddreport/internal/env"
	"bddreport/internal/logging"
	"bddreport/internal/render"
	"bddreport/internal/requirements"
	"bddreport/internal/tags"
)

// app carries the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	noColor    bool

	logger *zap.Logger
	loaded config.Loaded
	vars   env.Variables

	filesystem *requirements.FileSystemTagProvider
}

func (a *app) setup() error {
	a.logger = logging.New(a.stderr, logging.Options{Verbose: a.verbose, NoColor: a.noColor})
	loaded, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.loaded = loaded
	vars, err := loaded.Variables(env.NewSystem())
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}
	a.vars = vars
	a.logger.Debug("configuration loaded",
		zap.String("config", loaded.Path),
		zap.String("root", loaded.Root),
		zap.String("output_dir", loaded.OutputDir()),
	)
	return nil
}

func (a *app) loadConfig() (config.Loaded, error) {
	if strings.TrimSpace(a.configPath) != "" {
		abs, err := filepath.Abs(a.configPath)
		if err != nil {
			return config.Loaded{}, fmt.Errorf("resolve config path: %w", err)
		}
		return config.Load(abs)
	}
	path, err := config.FindConfigPath("")
	if err == nil {
		return config.Load(path)
	}
	if !errors.Is(err, config.ErrNoConfig) {
		return config.Loaded{}, err
	}
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return config.Loaded{}, fmt.Errorf("get working directory: %w", wdErr)
	}
	a.logger.Debug("no config file found, using defaults", zap.String("root", wd))
	return config.Defaults(wd), nil
}

func (a *app) styles() render.Styles {
	return render.NewStyles(a.noColor || !isTerminal(a.stdout))
}

// tagService scans the configured tag sources and wires the default providers.
func (a *app) tagService() (*tags.Service, error) {
	registry := tags.NewRegistry()
	for _, source := range a.loaded.TagSources() {
		count, err := tags.ScanDirectives(source, registry)
		if err != nil {
			a.logger.Warn("some tag sources could not be parsed", zap.String("dir", source), zap.Error(err))
		}
		a.logger.Debug("tag directives scanned", zap.String("dir", source), zap.Int("count", count))
	}
	filesystem, err := a.fileSystem()
	if err != nil {
		return nil, err
	}
	return tags.NewDefaultService(registry, filesystem, a.logger), nil
}

// fileSystem returns the requirements provider shared by every command.
func (a *app) fileSystem() (*requirements.FileSystemTagProvider, error) {
	if a.filesystem != nil {
		return a.filesystem, nil
	}
	provider, err := requirements.NewFileSystemTagProvider(a.vars, a.logger)
	if err != nil {
		return nil, err
	}
	a.filesystem = provider
	return provider, nil
}

func (a *app) buildInfoProvider() *buildinfo.Provider {
	record := buildinfo.NewDirCapabilityRecord(a.loaded.CapabilitiesDir(), a.logger)
	return buildinfo.NewProvider(a.vars, record, a.logger)
}
