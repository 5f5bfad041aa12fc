package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bddreport/internal/narrative"
	"bddreport/internal/render"
)

func newNarrativeCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "narrative <file|dir>",
		Short: "Print the narrative of a story, feature or requirement directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := narrative.NewLoader(a.vars, a.logger)
			if err != nil {
				return failed(err)
			}
			found, ok, err := loader.Load(args[0])
			if err != nil {
				return failed(err)
			}
			if !ok {
				return failed(fmt.Errorf("no narrative found in %s", args[0]))
			}
			if asJSON {
				return failed(writeJSON(a.stdout, found))
			}
			render.Narrative(a.stdout, found, a.styles())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
