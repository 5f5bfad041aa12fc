// Package tags collects test tags from annotations, test outcomes and the
// requirements file layout.
package tags

import (
	"go.uber.org/zap"

	"bddreport/internal/env"
	"bddreport/internal/model"
	"bddreport/internal/requirements"
)

// TagProvider derives tags for a test outcome.
type TagProvider interface {
	Name() string
	TagsFor(outcome model.TestOutcome) *model.TagSet
}

// Service holds an ordered list of tag providers.
type Service struct {
	providers []TagProvider
	logger    *zap.Logger
}

// NewService returns a service over providers.
func NewService(logger *zap.Logger, providers ...TagProvider) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{providers: providers, logger: logger}
}

// DefaultService wires the annotation, file-system and outcome providers.
func DefaultService(vars env.Variables, registry *Registry, logger *zap.Logger) (*Service, error) {
	filesystem, err := requirements.NewFileSystemTagProvider(vars, logger)
	if err != nil {
		return nil, err
	}
	return NewDefaultService(registry, filesystem, logger), nil
}

// NewDefaultService wires the default providers around an existing
// file-system provider so callers can share its requirement cache.
func NewDefaultService(registry *Registry, filesystem *requirements.FileSystemTagProvider, logger *zap.Logger) *Service {
	return NewService(logger,
		NewAnnotationProvider(registry),
		filesystem,
		OutcomeTagProvider{},
	)
}

// Providers returns the configured providers in order.
func (s *Service) Providers() []TagProvider {
	return append([]TagProvider(nil), s.providers...)
}

// TagsFor unions the tags of every provider.
func (s *Service) TagsFor(outcome model.TestOutcome) *model.TagSet {
	tags := model.NewTagSet()
	for _, provider := range s.providers {
		found := provider.TagsFor(outcome)
		s.logger.Debug("tags derived",
			zap.String("provider", provider.Name()),
			zap.String("test", outcome.Name),
			zap.Int("count", found.Len()),
		)
		tags.Union(found)
	}
	return tags
}
