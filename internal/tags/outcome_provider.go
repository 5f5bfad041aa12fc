package tags

import "bddreport/internal/model"

// OutcomeTagProvider turns the raw tags reported with an outcome, such as
// Gherkin "@pillar:Car sales" scenario tags, into test tags.
type OutcomeTagProvider struct{}

// Name identifies the provider.
func (OutcomeTagProvider) Name() string {
	return "outcome"
}

// TagsFor parses each reported tag in shorthand form.
func (OutcomeTagProvider) TagsFor(outcome model.TestOutcome) *model.TagSet {
	tags := model.NewTagSet()
	for _, raw := range outcome.Tags {
		tags.Add(model.ParseTag(raw))
	}
	return tags
}
