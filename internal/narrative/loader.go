// Package narrative reads requirement narratives from story, feature and
// narrative.txt files.
package narrative

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"bddreport/internal/env"
	"bddreport/internal/model"
)

// Story and feature file suffixes.
const (
	StorySuffix   = ".story"
	FeatureSuffix = ".feature"
)

const defaultCacheSize = 512

type cachedNarrative struct {
	modTime   time.Time
	size      int64
	narrative *model.Narrative
	found     bool
}

// Loader dispatches on file suffix and caches parsed narratives by path.
type Loader struct {
	cucumber *CucumberParser
	cache    *lru.Cache[string, cachedNarrative]
	logger   *zap.Logger
}

// NewLoader builds a loader using the feature language configured in vars.
func NewLoader(vars env.Variables, logger *zap.Logger) (*Loader, error) {
	parser, err := NewCucumberParser(vars)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[string, cachedNarrative](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("narrative cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{cucumber: parser, cache: cache, logger: logger}, nil
}

// IsRequirementFile reports whether name is a story or feature file.
func IsRequirementFile(name string) bool {
	return strings.HasSuffix(name, StorySuffix) || strings.HasSuffix(name, FeatureSuffix)
}

// Load parses the narrative stored in path. A missing file is reported as
// not found rather than an error.
func (l *Loader) Load(path string) (*model.Narrative, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stat narrative %q: %w", path, err)
	}
	if info.IsDir() {
		return l.LoadDirectory(path)
	}
	if cached, ok := l.cache.Get(path); ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.narrative, cached.found, nil
	}

	narrative, found, err := l.parse(path)
	if err != nil {
		l.logger.Warn("narrative parse failed", zap.String("path", path), zap.Error(err))
		return nil, false, err
	}
	l.cache.Add(path, cachedNarrative{modTime: info.ModTime(), size: info.Size(), narrative: narrative, found: found})
	l.logger.Debug("narrative loaded", zap.String("path", path), zap.Bool("found", found))
	return narrative, found, nil
}

// LoadDirectory reads the first narrative.txt / narrative.md in dir.
func (l *Loader) LoadDirectory(dir string) (*model.Narrative, bool, error) {
	for _, name := range DirectoryFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return l.Load(path)
	}
	return nil, false, nil
}

func (l *Loader) parse(path string) (*model.Narrative, bool, error) {
	switch {
	case strings.HasSuffix(path, StorySuffix):
		return LoadStoryNarrative(path)
	case strings.HasSuffix(path, FeatureSuffix):
		return l.cucumber.LoadFeatureNarrative(path)
	default:
		return LoadTextNarrative(path)
	}
}
