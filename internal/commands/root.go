package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill"
	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the Quill CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Write generated text files from YAML layouts",
		Long: `Quill replays a YAML layout of lines, comments and section dividers
into a text buffer, wraps it with a header and footer, and writes it out.

Learn more: https://github.com/simonhull/firebird-suite`,
		Version:      quill.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			// status messages stay off stdout so rendered text can be piped
			output.SetWriter(cmd.ErrOrStderr())

			level := logger.LevelInfo
			if verbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.NewLogger(level, cmd.ErrOrStderr()))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to quill config (default: ./quill.yml if present)")

	return cmd
}

// VersionCmd prints the Quill version.
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Quill v%s\n", quill.Version)
		},
	}
}
