package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bddreport/internal/cucumber"
	"bddreport/internal/inflect"
	"bddreport/internal/model"
	"bddreport/internal/render"
	"bddreport/internal/requirements"
)

type tagsOptions struct {
	testCase string
	method   string
	rawTags  []string
	results  []string
	json     bool
}

type tagsResult struct {
	Path        string             `json:"path"`
	Test        string             `json:"test,omitempty"`
	Tags        []model.TestTag    `json:"tags"`
	Requirement *model.Requirement `json:"requirement,omitempty"`

	story string
}

func newTagsCommand(a *app) *cobra.Command {
	opts := &tagsOptions{}
	cmd := &cobra.Command{
		Use:   "tags [path...]",
		Short: "Print the requirement tags derived for story or feature paths",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(opts.results) == 0 {
				return fmt.Errorf("requires at least one path or --results file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return failed(runTags(a, opts, args))
		},
	}
	cmd.Flags().StringVar(&opts.testCase, "test-case", "", "Qualified test case name for annotation lookup")
	cmd.Flags().StringVar(&opts.method, "method", "", "Test method name")
	cmd.Flags().StringSliceVar(&opts.rawTags, "tag", nil, "Tag reported by the runner (type:name), repeatable")
	cmd.Flags().StringSliceVar(&opts.results, "results", nil, "Cucumber JSON report to read outcomes from, repeatable")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print JSON instead of tables")
	return cmd
}

func runTags(a *app, opts *tagsOptions, paths []string) error {
	outcomes, err := collectOutcomes(opts, paths)
	if err != nil {
		return err
	}
	service, err := a.tagService()
	if err != nil {
		return err
	}
	filesystem, err := a.fileSystem()
	if err != nil {
		return err
	}
	results := make([]tagsResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		result := tagsResult{Path: outcome.Path, Test: outcome.Name, Tags: service.TagsFor(outcome).Slice()}
		if outcome.UserStory != nil {
			result.story = outcome.UserStory.Name
		}
		if requirement, ok := filesystem.ParentRequirementOf(outcome); ok {
			result.Requirement = requirement
		}
		results = append(results, result)
	}
	if opts.json {
		return writeJSON(a.stdout, results)
	}
	styles := a.styles()
	for i, result := range results {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		title := result.Path
		if result.Test != "" && result.Test != result.story {
			title += " :: " + result.Test
		}
		render.Tags(a.stdout, title, model.NewTagSet(result.Tags...), styles)
	}
	return nil
}

// collectOutcomes builds outcomes for story paths followed by every
// scenario of the cucumber reports.
func collectOutcomes(opts *tagsOptions, paths []string) ([]model.TestOutcome, error) {
	outcomes := make([]model.TestOutcome, 0, len(paths))
	for _, path := range paths {
		outcomes = append(outcomes, outcomeFor(path, opts))
	}
	for _, report := range opts.results {
		features, err := cucumber.LoadJSON(report)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, cucumber.Outcomes(features)...)
	}
	return outcomes, nil
}

// outcomeFor builds the outcome a runner would report for a story path.
func outcomeFor(path string, opts *tagsOptions) model.TestOutcome {
	outcome := model.ForTest(opts.method, opts.testCase)
	outcome.Path = path
	outcome.Tags = opts.rawTags
	if elements := requirements.PathElements(path); len(elements) > 0 {
		name := inflect.HumanReadable(elements[len(elements)-1])
		outcome.UserStory = &model.Story{Name: name, Path: path}
		if outcome.Name == "" {
			outcome.Name = name
		}
	}
	return outcome
}
