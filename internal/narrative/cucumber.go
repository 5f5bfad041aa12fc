package narrative

import (
	"fmt"
	"io"
	"os"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"

	"bddreport/internal/env"
	"bddreport/internal/model"
)

// DefaultLanguage is the Gherkin dialect used when none is configured.
const DefaultLanguage = "en"

// CucumberParser reads feature narratives in a configured Gherkin dialect.
type CucumberParser struct {
	language string
}

// NewCucumberParser reads the dialect from feature.file.language.
func NewCucumberParser(vars env.Variables) (*CucumberParser, error) {
	return NewCucumberParserForLanguage(env.ValueOr(vars, env.FeatureFileLanguage, DefaultLanguage))
}

// NewCucumberParserForLanguage validates language against the built-in dialects.
func NewCucumberParserForLanguage(language string) (*CucumberParser, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		language = DefaultLanguage
	}
	if !IsKnownLanguage(language) {
		return nil, fmt.Errorf("unsupported feature file language %q", language)
	}
	return &CucumberParser{language: language}, nil
}

// IsKnownLanguage reports whether Gherkin ships a dialect for language.
func IsKnownLanguage(language string) bool {
	return gherkin.DialectsBuiltin().GetDialect(language) != nil
}

// Language returns the configured dialect code.
func (p *CucumberParser) Language() string {
	return p.language
}

// LoadFeatureNarrative reads the feature title and description from path.
func (p *CucumberParser) LoadFeatureNarrative(path string) (*model.Narrative, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("read feature: %w", err)
	}
	defer file.Close()
	return p.ParseFeatureNarrative(file)
}

// ParseFeatureNarrative parses a Gherkin document. A "# language:" header
// in the document overrides the configured dialect.
func (p *CucumberParser) ParseFeatureNarrative(r io.Reader) (*model.Narrative, bool, error) {
	doc, err := gherkin.ParseGherkinDocumentForLanguage(r, p.language, (&messages.Incrementing{}).NewId)
	if err != nil {
		return nil, false, fmt.Errorf("parse feature: %w", err)
	}
	if doc.Feature == nil {
		return nil, false, nil
	}
	narrative := &model.Narrative{
		Title: strings.TrimSpace(doc.Feature.Name),
		Text:  descriptionText(doc.Feature.Description),
	}
	applyFeatureTags(narrative, doc.Feature.Tags)
	return narrative, true, nil
}

// descriptionText trims each description line and drops blank lines.
func descriptionText(description string) string {
	lines := strings.Split(description, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func applyFeatureTags(narrative *model.Narrative, tags []*messages.Tag) {
	for _, tag := range tags {
		if tag == nil {
			continue
		}
		parsed := model.ParseTag(tag.Name)
		switch strings.ToLower(parsed.Type) {
		case "type":
			narrative.Type = parsed.Name
		case "issue":
			narrative.CardNumber = parsed.Name
		}
	}
}
