package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bddreport/internal/model"
	"bddreport/internal/render"
)

func newRequirementsCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "Print the requirement tree read from the requirements directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := loadRequirements(a)
			if err != nil {
				return failed(err)
			}
			if asJSON {
				return failed(writeJSON(a.stdout, roots))
			}
			render.Requirements(a.stdout, roots, a.styles())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a tree")
	return cmd
}

// loadRequirements reads the tree; narrative errors are logged, not fatal.
func loadRequirements(a *app) ([]*model.Requirement, error) {
	provider, err := a.fileSystem()
	if err != nil {
		return nil, err
	}
	roots, err := provider.Requirements()
	if err != nil {
		a.logger.Warn("some narratives could not be read",
			zap.String("root", provider.Configuration().RootPath()),
			zap.Error(err),
		)
	}
	return roots, nil
}
