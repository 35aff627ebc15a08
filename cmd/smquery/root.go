package main

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the smquery command tree.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:          "smquery",
		Short:        "Query metabolomics datasets and annotations.",
		SilenceUsage: true,
	}
	rc.PersistentFlags().StringP("config", "c", "", "YAML configuration file to read from.")

	rc.AddCommand(newServeCommand())
	rc.AddCommand(newTranslateCommand(stdin))

	rc.SetOut(stdout)
	rc.SetErr(stderr)
	return rc
}
