package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bddreport/internal/render"
)

func newBuildInfoCommand(a *app) *cobra.Command {
	var asJSON, write bool
	cmd := &cobra.Command{
		Use:   "buildinfo",
		Short: "Print build and environment properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props := a.buildInfoProvider().BuildProperties()
			if write {
				path, err := props.Write(a.loaded.OutputDir())
				if err != nil {
					return failed(err)
				}
				fmt.Fprintf(a.stderr, "Wrote %s\n", path)
			}
			if asJSON {
				return failed(writeJSON(a.stdout, props))
			}
			render.BuildInfo(a.stdout, props, a.styles())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of tables")
	cmd.Flags().BoolVar(&write, "write", false, "Write build-info.json to the output directory")
	return cmd
}
