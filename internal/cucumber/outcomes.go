package cucumber

import (
	"strings"

	"bddreport/internal/model"
)

// Statuses reported for a scenario.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusPending   = "pending"
	StatusSkipped   = "skipped"
	StatusUndefined = "undefined"
)

// Outcomes turns every scenario of the report into a test outcome. The
// feature is the user story; feature tags are inherited by its scenarios.
func Outcomes(features []FeatureJSON) []model.TestOutcome {
	outcomes := make([]model.TestOutcome, 0)
	for _, feature := range features {
		story := &model.Story{Name: feature.Name, Path: feature.URI}
		featureTags := tagNames(feature.Tags)
		for _, element := range feature.Elements {
			if strings.EqualFold(element.Type, "background") {
				continue
			}
			tags := append(append([]string(nil), featureTags...), tagNames(element.Tags)...)
			outcomes = append(outcomes, model.TestOutcome{
				Name:      element.Name,
				Path:      feature.URI,
				UserStory: story,
				Tags:      tags,
				Result:    ScenarioStatus(element.Steps),
			})
		}
	}
	return outcomes
}

func tagNames(tags []TagJSON) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		if name := strings.TrimSpace(tag.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ScenarioStatus reduces step statuses to a scenario status.
func ScenarioStatus(steps []StepJSON) string {
	hasPending := false
	hasUndefined := false
	hasSkipped := false
	for _, step := range steps {
		switch strings.ToLower(strings.TrimSpace(step.Result.Status)) {
		case StatusFailed:
			return StatusFailed
		case StatusUndefined:
			hasUndefined = true
		case StatusPending:
			hasPending = true
		case StatusSkipped:
			hasSkipped = true
		}
	}
	switch {
	case hasUndefined:
		return StatusUndefined
	case hasPending:
		return StatusPending
	case hasSkipped:
		return StatusSkipped
	default:
		return StatusPassed
	}
}
