package tags

import (
	"strings"
	"sync"

	"bddreport/internal/model"
)

// Annotation contributes tags to a test case or a test method.
type Annotation interface {
	Tags() []model.TestTag
}

// WithTag declares a single tag, either by name and type or with the
// shorthand "type:name" Value. Value wins when both are set. A named tag
// without a type is a feature.
type WithTag struct {
	Name  string
	Type  string
	Value string
}

// Tags implements Annotation.
func (a WithTag) Tags() []model.TestTag {
	if strings.TrimSpace(a.Value) != "" {
		return []model.TestTag{model.ParseTag(a.Value)}
	}
	if strings.TrimSpace(a.Name) == "" {
		return nil
	}
	tagType := strings.TrimSpace(a.Type)
	if tagType == "" {
		tagType = model.TypeFeature
	}
	return []model.TestTag{model.Tag(a.Name, tagType)}
}

// WithTags groups several WithTag annotations.
type WithTags []WithTag

// Tags implements Annotation.
func (a WithTags) Tags() []model.TestTag {
	out := make([]model.TestTag, 0, len(a))
	for _, tag := range a {
		out = append(out, tag.Tags()...)
	}
	return out
}

// WithTagValuesOf declares tags in shorthand form.
type WithTagValuesOf []string

// Tags implements Annotation.
func (a WithTagValuesOf) Tags() []model.TestTag {
	out := make([]model.TestTag, 0, len(a))
	for _, value := range a {
		if strings.TrimSpace(value) == "" {
			continue
		}
		out = append(out, model.ParseTag(value))
	}
	return out
}

// Registry records the annotations attached to test cases and methods.
type Registry struct {
	mu      sync.RWMutex
	cases   map[string][]Annotation
	methods map[string]map[string][]Annotation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		cases:   make(map[string][]Annotation),
		methods: make(map[string]map[string][]Annotation),
	}
}

// Annotate attaches annotations to a test case.
func (r *Registry) Annotate(testCase string, annotations ...Annotation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases[testCase] = append(r.cases[testCase], annotations...)
}

// AnnotateMethod attaches annotations to a method of a test case. The case
// becomes known even when it carries no annotations of its own.
func (r *Registry) AnnotateMethod(testCase, method string, annotations ...Annotation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cases[testCase]; !ok {
		r.cases[testCase] = nil
	}
	if r.methods[testCase] == nil {
		r.methods[testCase] = make(map[string][]Annotation)
	}
	r.methods[testCase][method] = append(r.methods[testCase][method], annotations...)
}

// Lookup returns the case and method annotations, and whether the case is known.
func (r *Registry) Lookup(testCase, method string) ([]Annotation, []Annotation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	caseAnnotations, ok := r.cases[testCase]
	if !ok {
		return nil, nil, false
	}
	var methodAnnotations []Annotation
	if methods := r.methods[testCase]; methods != nil {
		methodAnnotations = methods[method]
	}
	return append([]Annotation(nil), caseAnnotations...), append([]Annotation(nil), methodAnnotations...), true
}

// TestCases returns the number of known test cases.
func (r *Registry) TestCases() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cases)
}
