package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RenderCmd creates and returns the 'render' command, which prints a
// layout's rendered output without touching the filesystem.
func RenderCmd() *cobra.Command {
	var wrap wrapFlags

	cmd := &cobra.Command{
		Use:   "render <layout.yml>",
		Short: "Print the rendered output of a layout",
		Long: `Render replays a layout and prints header, body and footer to stdout.

Examples:
  quill render layouts/model.yml
  quill render layouts/model.yml --header "// Code generated by quill. DO NOT EDIT."`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			buf, err := buildBuffer(cmd, args[0], cfg, &wrap)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), buf.String())
			return err
		},
	}

	wrap.register(cmd)
	return cmd
}
