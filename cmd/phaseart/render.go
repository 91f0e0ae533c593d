package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/phaseart/internal/config"
	"github.com/fyrsmithlabs/phaseart/internal/render"
)

type renderOptions struct {
	output     string
	phase      string
	audit      int
	width      int
	height     int
	background string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write an SVG document to stdout or a file",
		Long: `Write an SVG document. By default the full artwork with all eight phases
is written; --phase and --audit select a single-phase or audit-ring document.

Canvas size and background come from the configuration unless overridden.

Examples:
  # Full artwork to stdout
  phaseart render

  # One phase on a small canvas
  phaseart render --phase revision --width 400 --height 400 -o revision.svg

  # Five audit rings
  phaseart render --audit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithFile(root.configPath)
			if err != nil {
				return err
			}

			canvas := cfg.Canvas
			flags := cmd.Flags()
			if flags.Changed("width") {
				canvas.Width = opts.width
			}
			if flags.Changed("height") {
				canvas.Height = opts.height
			}
			if flags.Changed("background") {
				canvas.Background = opts.background
			}
			if err := config.ValidateCanvas(canvas.Width, canvas.Height, canvas.Background); err != nil {
				return err
			}

			doc, err := renderDocument(render.NewFromConfig(canvas), opts, flags.Changed("audit"))
			if err != nil {
				return err
			}

			if opts.output == "" || opts.output == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			if err := os.WriteFile(opts.output, []byte(doc), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(doc), opts.output)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&opts.phase, "phase", "", "render a single phase")
	f.IntVar(&opts.audit, "audit", 1, "render an audit chain with this many rings")
	f.IntVar(&opts.width, "width", 0, "canvas width")
	f.IntVar(&opts.height, "height", 0, "canvas height")
	f.StringVar(&opts.background, "background", "", "canvas background (#rrggbb)")
	cmd.MarkFlagsMutuallyExclusive("phase", "audit")

	return cmd
}

func renderDocument(v *render.Visualizer, opts *renderOptions, audit bool) (string, error) {
	switch {
	case opts.phase != "":
		return v.PhaseDocument(opts.phase)
	case audit:
		return v.AuditDocument(opts.audit)
	default:
		return v.GenerateDocument(), nil
	}
}
