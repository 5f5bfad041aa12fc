package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bddreport/internal/catalog"
)

func newExportCommand(a *app) *cobra.Command {
	opts := &tagsOptions{}
	var dbPath string
	cmd := &cobra.Command{
		Use:   "export --db <file> [--results <report.json>] [path...]",
		Short: "Write derived tags, requirements and build info to a DuckDB catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := catalog.Open(ctx, dbPath)
			if err != nil {
				return failed(err)
			}
			defer store.Close()
			if err := store.EnsureSchema(ctx); err != nil {
				return failed(err)
			}

			outcomes, err := collectOutcomes(opts, args)
			if err != nil {
				return failed(err)
			}
			service, err := a.tagService()
			if err != nil {
				return failed(err)
			}
			for _, outcome := range outcomes {
				id, err := store.SaveOutcomeTags(ctx, outcome, service.TagsFor(outcome))
				if err != nil {
					return failed(err)
				}
				a.logger.Debug("outcome exported", zap.String("path", outcome.Path), zap.String("outcome_id", id))
			}

			roots, err := loadRequirements(a)
			if err != nil {
				return failed(err)
			}
			if err := store.SaveRequirements(ctx, roots); err != nil {
				return failed(err)
			}
			if err := store.SaveBuildProperties(ctx, a.buildInfoProvider().BuildProperties()); err != nil {
				return failed(err)
			}
			fmt.Fprintf(a.stdout, "Exported %d outcome(s) and %d root requirement(s) to %s\n", len(outcomes), len(roots), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database file")
	cmd.Flags().StringVar(&opts.testCase, "test-case", "", "Qualified test case name for annotation lookup")
	cmd.Flags().StringSliceVar(&opts.rawTags, "tag", nil, "Tag reported by the runner (type:name), repeatable")
	cmd.Flags().StringSliceVar(&opts.results, "results", nil, "Cucumber JSON report to read outcomes from, repeatable")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}
