package narrative

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bddreport/internal/env"
)

func TestLoadStoryNarrative(t *testing.T) {
	narrative, ok, err := LoadStoryNarrative(filepath.Join("testdata", "PlantPotatoes.story"))
	if err != nil {
		t.Fatalf("load story: %v", err)
	}
	if !ok {
		t.Fatalf("expected narrative")
	}
	for _, fragment := range []string{"As a farmer", "I want to plant potatoes", "So that I can harvest them later on"} {
		if !strings.Contains(narrative.Text, fragment) {
			t.Fatalf("expected narrative to contain %q, got %q", fragment, narrative.Text)
		}
	}
	if strings.Contains(narrative.Text, "Given it is spring") {
		t.Fatalf("scenario steps leaked into narrative: %q", narrative.Text)
	}
	if narrative.Title != "Growing potatoes" {
		t.Fatalf("unexpected title %q", narrative.Title)
	}
	if narrative.CardNumber != "FARM-12" {
		t.Fatalf("unexpected card number %q", narrative.CardNumber)
	}
}

func TestParseStoryWithoutNarrative(t *testing.T) {
	_, ok, err := ParseStoryNarrative(strings.NewReader("Scenario: nothing here\nGiven nothing\n"))
	if err != nil {
		t.Fatalf("parse story: %v", err)
	}
	if ok {
		t.Fatalf("expected no narrative")
	}
}

func TestLoadFeatureNarrative(t *testing.T) {
	parser, err := NewCucumberParser(env.NewMap(nil))
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	if parser.Language() != "en" {
		t.Fatalf("expected default language en, got %q", parser.Language())
	}
	narrative, ok, err := parser.LoadFeatureNarrative(filepath.Join("testdata", "PlantPotatoes.feature"))
	if err != nil {
		t.Fatalf("load feature: %v", err)
	}
	if !ok {
		t.Fatalf("expected narrative")
	}
	if narrative.Title != "Plant potatoes" {
		t.Fatalf("unexpected title %q", narrative.Title)
	}
	want := "As a farmer\nI want to plant potatoes\nSo that I can harvest them later on"
	if narrative.Text != want {
		t.Fatalf("unexpected text %q", narrative.Text)
	}
	if narrative.Type != "story" || narrative.CardNumber != "FARM-13" {
		t.Fatalf("unexpected tag metadata %+v", narrative)
	}
}

func TestLoadFeatureNarrativeInAForeignLanguage(t *testing.T) {
	vars := env.NewMap(map[string]string{env.FeatureFileLanguage: "no"})
	parser, err := NewCucumberParser(vars)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	narrative, ok, err := parser.LoadFeatureNarrative(filepath.Join("testdata", "PlantScandanavianPotatoes.feature"))
	if err != nil {
		t.Fatalf("load feature: %v", err)
	}
	if !ok {
		t.Fatalf("expected narrative")
	}
	if narrative.Title != "Plante poteter" {
		t.Fatalf("unexpected title %q", narrative.Title)
	}
	if !strings.Contains(narrative.Text, "Som en bonde") {
		t.Fatalf("unexpected text %q", narrative.Text)
	}

	english, err := NewCucumberParserForLanguage("en")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	if _, _, err := english.LoadFeatureNarrative(filepath.Join("testdata", "PlantScandanavianPotatoes.feature")); err == nil {
		t.Fatalf("expected english parser to reject norwegian keywords")
	}
}

func TestLanguageHeaderOverridesConfiguredLanguage(t *testing.T) {
	parser, err := NewCucumberParserForLanguage("en")
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	doc := "# language: no\nEgenskap: Plante poteter\n  Som en bonde\n"
	narrative, ok, err := parser.ParseFeatureNarrative(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse feature: %v", err)
	}
	if !ok || narrative.Title != "Plante poteter" {
		t.Fatalf("unexpected narrative %+v", narrative)
	}
}

func TestUnknownLanguageIsRejected(t *testing.T) {
	if _, err := NewCucumberParserForLanguage("klingon-xx"); err == nil {
		t.Fatalf("expected unsupported language error")
	}
}

func TestParseTextNarrative(t *testing.T) {
	narrative, ok, err := LoadTextNarrative(filepath.Join("testdata", "narrative.txt"))
	if err != nil {
		t.Fatalf("load narrative: %v", err)
	}
	if !ok {
		t.Fatalf("expected narrative")
	}
	if narrative.Title != "Grow potatoes" || narrative.Type != "capability" {
		t.Fatalf("unexpected narrative %+v", narrative)
	}
	if !strings.HasPrefix(narrative.Text, "In order to feed the village") {
		t.Fatalf("unexpected text %q", narrative.Text)
	}
}

func TestLoaderCachesUntilFileChanges(t *testing.T) {
	loader, err := NewLoader(env.NewMap(nil), nil)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "Harvest.story")
	if err := os.WriteFile(path, []byte("Narrative:\nAs a farmer\n"), 0o644); err != nil {
		t.Fatalf("write story: %v", err)
	}

	first, ok, err := loader.Load(path)
	if err != nil || !ok {
		t.Fatalf("load story: ok=%v err=%v", ok, err)
	}
	second, _, _ := loader.Load(path)
	if first != second {
		t.Fatalf("expected cached narrative to be reused")
	}

	if err := os.WriteFile(path, []byte("Narrative:\nAs a cook\nI want potatoes\n"), 0o644); err != nil {
		t.Fatalf("rewrite story: %v", err)
	}
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("touch story: %v", err)
	}
	third, ok, err := loader.Load(path)
	if err != nil || !ok {
		t.Fatalf("reload story: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(third.Text, "As a cook") {
		t.Fatalf("expected reloaded narrative, got %q", third.Text)
	}
}

func TestLoaderMissingFileAndDirectory(t *testing.T) {
	loader, err := NewLoader(env.NewMap(nil), nil)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	if _, ok, err := loader.Load(filepath.Join(t.TempDir(), "Missing.story")); err != nil || ok {
		t.Fatalf("expected missing file to be not found, ok=%v err=%v", ok, err)
	}
	narrative, ok, err := loader.Load("testdata")
	if err != nil || !ok {
		t.Fatalf("load directory: ok=%v err=%v", ok, err)
	}
	if narrative.Title != "Grow potatoes" {
		t.Fatalf("unexpected directory narrative %+v", narrative)
	}
}
