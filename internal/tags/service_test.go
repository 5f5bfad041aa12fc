package tags

import (
	"os"
	"path/filepath"
	"testing"

	"bddreport/internal/env"
	"bddreport/internal/model"
	"bddreport/internal/requirements"
)

func TestDefaultServiceProviders(t *testing.T) {
	service, err := DefaultService(env.NewMap(nil), nil, nil)
	if err != nil {
		t.Fatalf("default service: %v", err)
	}
	var hasAnnotation, hasFileSystem bool
	for _, provider := range service.Providers() {
		switch provider.(type) {
		case *AnnotationProvider:
			hasAnnotation = true
		case *requirements.FileSystemTagProvider:
			hasFileSystem = true
		}
	}
	if !hasAnnotation {
		t.Fatalf("expected the annotation tag provider by default")
	}
	if !hasFileSystem {
		t.Fatalf("expected the file system requirements provider by default")
	}
}

func TestServiceUnionsProviders(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "stories", "sell_cars"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	registry := NewRegistry()
	registry.Annotate("sales.CarSuite", WithTag{Name: "Car sales", Type: "pillar"})

	vars := env.NewMap(map[string]string{env.RequirementsBaseDir: root})
	service, err := DefaultService(vars, registry, nil)
	if err != nil {
		t.Fatalf("default service: %v", err)
	}
	outcome := model.TestOutcome{
		Name:     "TestSell",
		TestCase: "sales.CarSuite",
		Path:     "stories/sell_cars/SellACar.story",
		Tags:     []string{"@smoke", "@pillar:Car sales"},
	}
	tags := service.TagsFor(outcome)
	for _, want := range []model.TestTag{
		model.Tag("Car sales", "pillar"),
		model.Tag("Sell cars", "feature"),
		model.Tag("Sell cars/Sell a car", "story"),
		model.Tag("smoke", "tag"),
	} {
		if !tags.Contains(want) {
			t.Fatalf("expected %v in %v", want, tags.Slice())
		}
	}
	if tags.Len() != 4 {
		t.Fatalf("expected duplicate pillar tag to merge, got %v", tags.Slice())
	}
}

func TestDefaultServiceRejectsUnknownLanguage(t *testing.T) {
	vars := env.NewMap(map[string]string{env.FeatureFileLanguage: "zz-unknown"})
	if _, err := DefaultService(vars, nil, nil); err == nil {
		t.Fatalf("expected language error")
	}
}

func TestNewDefaultServiceSharesFileSystemProvider(t *testing.T) {
	filesystem, err := requirements.NewFileSystemTagProvider(env.NewMap(nil), nil)
	if err != nil {
		t.Fatalf("file system provider: %v", err)
	}
	service := NewDefaultService(NewRegistry(), filesystem, nil)
	shared := false
	for _, provider := range service.Providers() {
		if fs, ok := provider.(*requirements.FileSystemTagProvider); ok && fs == filesystem {
			shared = true
		}
	}
	if !shared {
		t.Fatalf("expected the given file system provider to be used")
	}
	if got := len(service.Providers()); got != 3 {
		t.Fatalf("expected 3 providers, got %d", got)
	}
}
