package model

import "testing"

func TestParseTag(t *testing.T) {
	cases := []struct {
		value string
		want  TestTag
	}{
		{"pillar:Car sales", TestTag{Name: "Car sales", Type: "pillar"}},
		{"pillar: car sales", TestTag{Name: "car sales", Type: "pillar"}},
		{"A tag", TestTag{Name: "A tag", Type: "tag"}},
		{"@smoke", TestTag{Name: "smoke", Type: "tag"}},
		{"@issue:ABC-1", TestTag{Name: "ABC-1", Type: "issue"}},
		{":orphan", TestTag{Name: "orphan", Type: "tag"}},
	}
	for _, tc := range cases {
		if got := ParseTag(tc.value); got != tc.want {
			t.Fatalf("ParseTag(%q): expected %+v, got %+v", tc.value, tc.want, got)
		}
	}
}

func TestTagSetKeepsOrderAndDeduplicates(t *testing.T) {
	set := NewTagSet(Tag("Car sales", "pillar"), Tag("Boat sales", "pillar"))
	if set.Add(Tag("Car sales", "pillar")) {
		t.Fatalf("duplicate tag should not be added")
	}
	if set.Add(TestTag{}) {
		t.Fatalf("empty tag should not be added")
	}
	set.Add(Tag("Car sales", "capability"))
	if set.Len() != 3 {
		t.Fatalf("expected 3 tags, got %d", set.Len())
	}
	if got := set.Slice()[1].Name; got != "Boat sales" {
		t.Fatalf("unexpected order: %v", set.Slice())
	}
	if len(set.OfType("pillar")) != 2 {
		t.Fatalf("expected 2 pillar tags")
	}
}

func TestRequirementQualifiedName(t *testing.T) {
	capability := &Requirement{Name: "Grow potatoes", Type: TypeCapability}
	feature := &Requirement{Name: "Grow new potatoes", Type: TypeFeature}
	story := &Requirement{Name: "Plant potatoes", Type: TypeStory}
	capability.AddChild(feature)
	feature.AddChild(story)

	if got := capability.AsTag(); got != Tag("Grow potatoes", TypeCapability) {
		t.Fatalf("unexpected capability tag %+v", got)
	}
	if got := story.AsTag(); got != Tag("Grow new potatoes/Plant potatoes", TypeStory) {
		t.Fatalf("unexpected story tag %+v", got)
	}
	chain := story.Ancestry()
	if len(chain) != 3 || chain[0] != capability {
		t.Fatalf("unexpected ancestry %v", chain)
	}
	if _, ok := capability.Find("grow NEW potatoes"); !ok {
		t.Fatalf("expected case-insensitive child lookup")
	}
	visited := 0
	capability.Walk(func(node *Requirement, depth int) { visited++ })
	if visited != 3 {
		t.Fatalf("expected 3 visited nodes, got %d", visited)
	}
}
