package main

import (
	"os"

	"github.com/simonhull/firebird-suite/quill/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.RenderCmd())
	rootCmd.AddCommand(commands.WriteCmd())
	rootCmd.AddCommand(commands.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
