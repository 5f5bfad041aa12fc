package requirements

import (
	"testing"

	"bddreport/internal/env"
)

func TestDefaultType(t *testing.T) {
	two := NewProvider(Configuration{Types: []string{"capability", "feature"}})
	three := NewProvider(Configuration{Types: []string{"capability", "feature", "story"}})

	cases := []struct {
		name     string
		provider Provider
		level    int
		maxDepth int
		want     string
	}{
		{"flat two types", two, 0, 0, "feature"},
		{"flat three types", three, 0, 0, "story"},
		{"one layer two types top", two, 0, 1, "capability"},
		{"one layer two types leaf", two, 1, 1, "feature"},
		{"one layer three types top", three, 0, 1, "feature"},
		{"one layer three types leaf", three, 1, 1, "story"},
		{"two layers top", three, 0, 2, "capability"},
		{"two layers middle", three, 1, 2, "feature"},
		{"two layers leaf", three, 2, 2, "story"},
		{"level beyond depth", three, 5, 2, "story"},
		{"tree deeper than hierarchy", three, 0, 3, "capability"},
	}
	for _, tc := range cases {
		if got := tc.provider.DefaultType(tc.level, tc.maxDepth); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
	if got := three.DefaultTypeAt(1); got != "feature" {
		t.Fatalf("expected feature, got %q", got)
	}
}

func TestConfigurationFromVariables(t *testing.T) {
	vars := env.NewMap(map[string]string{
		env.RequirementTypes: "epic, , theme ,story",
		env.RequirementsDir:  "specs",
	})
	config := NewConfiguration(vars)
	if len(config.Types) != 3 || config.Types[1] != "theme" {
		t.Fatalf("unexpected types %v", config.Types)
	}
	if config.RootDir != "specs" {
		t.Fatalf("unexpected root %q", config.RootDir)
	}

	defaults := NewConfiguration(env.NewMap(map[string]string{env.RequirementTypes: " , "}))
	if len(defaults.Types) != 3 || defaults.Types[0] != "capability" {
		t.Fatalf("expected default types, got %v", defaults.Types)
	}
}

func TestConfigurationDiscoversRoot(t *testing.T) {
	config := NewConfiguration(env.NewMap(map[string]string{env.RequirementsBaseDir: "testdata"}))
	if config.RootDir != "stories" {
		t.Fatalf("expected discovered stories root, got %q", config.RootDir)
	}
	missing := NewConfiguration(env.NewMap(map[string]string{env.RequirementsBaseDir: t.TempDir()}))
	if missing.RootDir != "stories" {
		t.Fatalf("expected stories fallback, got %q", missing.RootDir)
	}
}

func TestPathElements(t *testing.T) {
	cases := map[string][]string{
		"stories.grow_potatoes.PlantPotatoes":         {"stories", "grow_potatoes", "PlantPotatoes"},
		"stories/grow_potatoes/PlantPotatoes.story":   {"stories", "grow_potatoes", "PlantPotatoes"},
		`stories\grow_potatoes\PlantPotatoes.feature`: {"stories", "grow_potatoes", "PlantPotatoes"},
		"stories.grow_potatoes.PlantPotatoes.story":   {"stories", "grow_potatoes", "PlantPotatoes"},
		"/abs//stories/./x":                           {"abs", "stories", "x"},
	}
	for input, want := range cases {
		got := PathElements(input)
		if len(got) != len(want) {
			t.Fatalf("PathElements(%q): expected %v, got %v", input, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("PathElements(%q): expected %v, got %v", input, want, got)
			}
		}
	}
}

func TestStripRoot(t *testing.T) {
	root := []string{"src", "test", "resources", "stories"}
	got := stripRoot([]string{"home", "ci", "src", "test", "resources", "stories", "a", "B"}, root)
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("unexpected elements %v", got)
	}
	got = stripRoot([]string{"src", "test", "resources", "stories", "a"}, root)
	if len(got) != 1 {
		t.Fatalf("unexpected elements %v", got)
	}
	got = stripRoot([]string{"a", "b"}, root)
	if len(got) != 2 {
		t.Fatalf("paths outside the root are kept, got %v", got)
	}
}
