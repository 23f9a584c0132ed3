package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill/input"
	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/storage"
	"github.com/spf13/cobra"
)

// WriteCmd creates and returns the 'write' command, which persists a
// layout's rendered output to a file.
func WriteCmd() *cobra.Command {
	var (
		wrap   wrapFlags
		out    string
		force  bool
		dryRun bool
		mkdir  bool
	)

	cmd := &cobra.Command{
		Use:   "write <layout.yml> -o <path>",
		Short: "Render a layout and write it to a file",
		Long: `Write replays a layout and saves header, body and footer to --out.

If the target exists you are asked before it is replaced, unless --force
is given. --dry-run reports what would be written without writing.

Examples:
  quill write layouts/model.yml -o internal/models/user.go
  quill write layouts/setup.yml -o scripts/setup.sh --force --mkdir`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log := logger.Default().WithFields(
				logger.F("layout", args[0]),
				logger.F("target", out),
			)

			buf, err := buildBuffer(cmd, args[0], cfg, &wrap)
			if err != nil {
				return err
			}

			w := storage.NewFSWriter(appFs,
				storage.WithFileMode(cfg.FileMode),
				storage.WithMkdirAll(cfg.MkdirAll || mkdir),
				storage.WithLogger(log),
			)

			exists, err := w.Exists(out)
			if err != nil {
				return fmt.Errorf("cannot check %s: %w", out, err)
			}

			if dryRun {
				action := "Create"
				if exists {
					action = "Overwrite"
				}
				output.Success(fmt.Sprintf("[DRY RUN] %s %s (%d bytes)", action, out, len(buf.String())))
				return nil
			}

			if exists && !force {
				prompt := fmt.Sprintf("%s already exists. Overwrite?", out)
				if !input.ConfirmFrom(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt, false) {
					output.Info(fmt.Sprintf("Skipped %s", out))
					return nil
				}
			}

			var failed error
			err = buf.Persist(cmd.Context(), w, out, func(err error) {
				failed = err
				log.Error("write failed", logger.F("error", err.Error()))
				output.Error(err.Error())
			})
			if err != nil {
				return err
			}
			if failed != nil {
				return fmt.Errorf("could not write %s", out)
			}

			output.Success(fmt.Sprintf("Wrote %s", out))
			return nil
		},
	}

	wrap.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file without asking")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing")
	cmd.Flags().BoolVar(&mkdir, "mkdir", false, "Create missing parent directories")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
