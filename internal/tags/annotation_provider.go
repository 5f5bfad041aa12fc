package tags

import (
	"strings"

	"bddreport/internal/model"
)

// AnnotationProvider reads tags from the annotations registered for the
// outcome's test case and test method.
type AnnotationProvider struct {
	registry *Registry
}

// NewAnnotationProvider reads from registry; a nil registry is empty.
func NewAnnotationProvider(registry *Registry) *AnnotationProvider {
	if registry == nil {
		registry = NewRegistry()
	}
	return &AnnotationProvider{registry: registry}
}

// Name identifies the provider.
func (p *AnnotationProvider) Name() string {
	return "annotation"
}

// Registry returns the backing registry.
func (p *AnnotationProvider) Registry() *Registry {
	return p.registry
}

// TagsFor unions the case-level and method-level tags.
func (p *AnnotationProvider) TagsFor(outcome model.TestOutcome) *model.TagSet {
	tags := model.NewTagSet()
	if strings.TrimSpace(outcome.TestCase) == "" {
		return tags
	}
	caseAnnotations, methodAnnotations, ok := p.registry.Lookup(outcome.TestCase, MethodName(outcome.Name))
	if !ok {
		return tags
	}
	for _, annotation := range append(caseAnnotations, methodAnnotations...) {
		tags.AddAll(annotation.Tags()...)
	}
	return tags
}

// MethodName strips a data-driven suffix such as "[0]" or "(row 2)".
func MethodName(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.IndexAny(name, "[("); idx > 0 {
		return strings.TrimSpace(name[:idx])
	}
	return name
}
