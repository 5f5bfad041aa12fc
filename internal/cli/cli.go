// Package cli implements the bddreport command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// runError marks a failure that happened after arguments were accepted.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &runError{err: err}
}

// Run executes the CLI and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), args, stdout, stderr)
}

// RunContext is Run with a caller supplied context.
func RunContext(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCommand(a)
	if len(args) == 0 {
		_ = root.Usage()
		return ExitUsage
	}
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return ExitOK
	}
	var failure *runError
	if errors.As(err, &failure) {
		fmt.Fprintf(stderr, "Error: %v\n", failure.err)
		return ExitError
	}
	fmt.Fprintf(stderr, "Error: %v\n\n", err)
	root.SetOut(stderr)
	_ = root.Usage()
	return ExitUsage
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "bddreport",
		Short:         "Derive requirement tags, narratives and build info for BDD reports",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return failed(a.setup())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file (default: search for .bddreport/config.yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable coloured output")

	root.AddCommand(
		newTagsCommand(a),
		newRequirementsCommand(a),
		newNarrativeCommand(a),
		newBuildInfoCommand(a),
		newExportCommand(a),
		newValidateCommand(a),
	)
	return root
}
