// Package main implements the phaseart CLI.
//
// Usage:
//
//	# Serve the artwork on http://127.0.0.1:5000
//	phaseart serve
//
//	# Write the full document to a file
//	phaseart render -o phases.svg
//
//	# List the phases
//	phaseart phases
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "phaseart",
		Short: "Render the eight governance phases as layered SVG artwork",
		Long: `phaseart draws the eight governance phases (observation through audit)
as one layered, animated SVG document.

It can serve the artwork over HTTP, write documents to disk and list the
phase palette. Configuration is read from ~/.config/phaseart/config.yaml and
PHASEART_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/phaseart/config.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newPhasesCmd(),
		newVersionCmd(),
	)
	return cmd
}
