package inflect

import "testing"

func TestHumanReadable(t *testing.T) {
	cases := map[string]string{
		"PlantPotatoes":       "Plant potatoes",
		"PlantNewPotatoes":    "Plant new potatoes",
		"grow_potatoes":       "Grow potatoes",
		"grow_new_potatoes":   "Grow new potatoes",
		"grow-new-potatoes":   "Grow new potatoes",
		"HTMLReports":         "Html reports",
		"Release2Features":    "Release2 features",
		"  spaced   words  ":  "Spaced words",
		"customer_id":         "Customer",
		"":                    "",
	}
	for input, want := range cases {
		if got := HumanReadable(input); got != want {
			t.Fatalf("HumanReadable(%q): expected %q, got %q", input, want, got)
		}
	}
}

func TestUnderscore(t *testing.T) {
	if got := Underscore("PlantPotatoes"); got != "plant_potatoes" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Underscore("already__snake"); got != "already_snake" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("build number"); got != "Build number" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Capitalize("ørret"); got != "Ørret" {
		t.Fatalf("unexpected %q", got)
	}
}
