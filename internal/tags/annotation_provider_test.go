package tags

import (
	"testing"

	"bddreport/internal/model"
)

const method = "some_test_method"

func providerWith(register func(r *Registry)) *AnnotationProvider {
	registry := NewRegistry()
	register(registry)
	return NewAnnotationProvider(registry)
}

func TestNoTagsWithoutTestCase(t *testing.T) {
	provider := NewAnnotationProvider(nil)
	if got := provider.TagsFor(model.TestOutcome{Name: method}).Len(); got != 0 {
		t.Fatalf("expected no tags, got %d", got)
	}
}

func TestNoTagsForUnannotatedTestCase(t *testing.T) {
	provider := providerWith(func(r *Registry) {})
	if got := provider.TagsFor(model.ForTest(method, "SomeUnannotatedTestCase")).Len(); got != 0 {
		t.Fatalf("expected no tags, got %d", got)
	}
}

func TestTagOnTestCase(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.Annotate("SomeTestCase", WithTag{Name: "Car sales", Type: "pillar"})
	})
	tags := provider.TagsFor(model.ForTest(method, "SomeTestCase")).Slice()
	if len(tags) == 0 {
		t.Fatalf("expected tags")
	}
	if tags[0] != model.Tag("Car sales", "pillar") {
		t.Fatalf("unexpected tag %+v", tags[0])
	}
}

func TestTagOnTestMethod(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("SomeTestCaseWithTagOnMethod", method, WithTag{Name: "Car sales", Type: "pillar"})
	})
	tags := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithTagOnMethod")).Slice()
	if len(tags) != 1 || tags[0] != model.Tag("Car sales", "pillar") {
		t.Fatalf("unexpected tags %+v", tags)
	}
	other := provider.TagsFor(model.ForTest("another_method", "SomeTestCaseWithTagOnMethod"))
	if other.Len() != 0 {
		t.Fatalf("method tags must not leak to other methods: %v", other.Slice())
	}
}

func TestTagsFromCaseAndMethod(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.Annotate("SomeTestCaseWithTagOnMethodAndClass", WithTag{Name: "More Car sales", Type: "pillar"})
		r.AnnotateMethod("SomeTestCaseWithTagOnMethodAndClass", method, WithTag{Name: "Car sales", Type: "pillar"})
	})
	if got := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithTagOnMethodAndClass")).Len(); got != 2 {
		t.Fatalf("expected 2 tags, got %d", got)
	}
}

func TestShorthandTag(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("SomeTestCaseWithAShortenedTagOnAMethod", method, WithTag{Value: "pillar:Car sales"})
	})
	tags := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithAShortenedTagOnAMethod")).Slice()
	if len(tags) != 1 || tags[0] != model.Tag("Car sales", "pillar") {
		t.Fatalf("unexpected tags %+v", tags)
	}
}

func TestShorthandValueWinsOverName(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("SomeTestCaseWithNameAndValue", method, WithTag{Name: "Ignored", Type: "epic", Value: "pillar:Car sales"})
	})
	tags := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithNameAndValue")).Slice()
	if len(tags) != 1 || tags[0] != model.Tag("Car sales", "pillar") {
		t.Fatalf("unexpected tags %+v", tags)
	}
}

func TestMultipleShorthandTags(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("SomeTestCaseWithSeveralShortenedTags", method, WithTagValuesOf{"pillar: car sales", "A tag"})
	})
	tags := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithSeveralShortenedTags"))
	if !tags.Contains(model.Tag("A tag", "tag")) {
		t.Fatalf("expected plain tag in %v", tags.Slice())
	}
	if !tags.Contains(model.Tag("car sales", "pillar")) {
		t.Fatalf("expected pillar tag in %v", tags.Slice())
	}
}

func TestMultipleTagsOnTestCase(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.Annotate("SomeTestCaseWithTagsOnClass", WithTags{
			{Name: "Car sales", Type: "pillar"},
			{Name: "Boat sales", Type: "pillar"},
		})
	})
	if got := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithTagsOnClass")).Len(); got != 2 {
		t.Fatalf("expected 2 tags, got %d", got)
	}
}

func TestMultipleTagsOnTestMethod(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("SomeTestCaseWithTagsOnMethod", method, WithTags{
			{Name: "Car sales", Type: "pillar"},
			{Name: "Boat sales", Type: "pillar"},
		})
	})
	if got := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithTagsOnMethod")).Len(); got != 2 {
		t.Fatalf("expected 2 tags, got %d", got)
	}
}

func TestMultipleTagsOnTestMethodAndCase(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.Annotate("SomeTestCaseWithTagsOnMethodAndClass", WithTag{Name: "Online sales", Type: "capability"})
		r.AnnotateMethod("SomeTestCaseWithTagsOnMethodAndClass", method, WithTags{
			{Name: "Car sales", Type: "pillar"},
			{Name: "Boat sales", Type: "pillar"},
		})
	})
	if got := provider.TagsFor(model.ForTest(method, "SomeTestCaseWithTagsOnMethodAndClass")).Len(); got != 3 {
		t.Fatalf("expected 3 tags, got %d", got)
	}
}

func TestNamedTagDefaultsToFeature(t *testing.T) {
	tags := WithTag{Name: "Checkout"}.Tags()
	if len(tags) != 1 || tags[0].Type != model.TypeFeature {
		t.Fatalf("unexpected tags %+v", tags)
	}
	if len(WithTag{}.Tags()) != 0 {
		t.Fatalf("empty annotation should yield no tags")
	}
}

func TestDataDrivenMethodNames(t *testing.T) {
	provider := providerWith(func(r *Registry) {
		r.AnnotateMethod("Examples", method, WithTag{Value: "story:Rows"})
	})
	for _, name := range []string{method + "[0]", method + " (row 2)"} {
		if got := provider.TagsFor(model.ForTest(name, "Examples")).Len(); got != 1 {
			t.Fatalf("%q: expected 1 tag, got %d", name, got)
		}
	}
}
