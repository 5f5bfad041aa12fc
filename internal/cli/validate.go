package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Config loading happens in setup; reaching RunE means it passed.
func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate .bddreport/config.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loaded.Path == "" {
				fmt.Fprintln(a.stdout, "No config file found; defaults OK")
				return nil
			}
			fmt.Fprintln(a.stdout, "Config OK")
			return nil
		},
	}
}
