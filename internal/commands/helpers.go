package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/quill/internal/config"
	"github.com/simonhull/firebird-suite/quill/internal/layout"
	"github.com/simonhull/firebird-suite/quill/logger"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/textbuf"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem used by every command.
var appFs = afero.NewOsFs()

// wrapFlags holds --header/--footer overrides shared by render and write.
type wrapFlags struct {
	header string
	footer string
}

func (f *wrapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.header, "header", "", "Override the layout header")
	cmd.Flags().StringVar(&f.footer, "footer", "", "Override the layout footer")
}

func (f *wrapFlags) apply(cmd *cobra.Command, buf *textbuf.Buffer) {
	if cmd.Flags().Changed("header") {
		buf.SetHeader(f.header)
	}
	if cmd.Flags().Changed("footer") {
		buf.SetFooter(f.footer)
	}
}

// loadConfig reads the config named by the inherited --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		output.Verbose(fmt.Sprintf("Loading config from: %s", path))
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// --verbose keeps debug logging regardless of log_level
	if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
		logger.Default().SetLevel(cfg.LogLevel)
	}
	return cfg, nil
}

// buildBuffer loads the layout at path and replays it.
func buildBuffer(cmd *cobra.Command, path string, cfg *config.Config, wrap *wrapFlags) (*textbuf.Buffer, error) {
	output.Verbose(fmt.Sprintf("Loading layout from: %s", path))

	l, err := layout.Load(appFs, path)
	if err != nil {
		return nil, err
	}

	buf, err := l.Build(cfg.BufferDefaults())
	if err != nil {
		return nil, err
	}

	wrap.apply(cmd, buf)
	output.Verbose(fmt.Sprintf("Replayed %d blocks (%d bytes)", len(l.Blocks), buf.Len()))
	return buf, nil
}
