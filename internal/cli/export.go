package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/export"
	pkgio "github.com/Ak-sara/aksara-writer-sub001/pkg/io"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output   string
	format   string
	detailed bool
	noCache  bool
}

// exportFormats is the set of supported export formats.
var exportFormats = map[string]bool{"dot": true, "graphviz": true, "png": true}

// exportCommand creates the export command for Graphviz interchange.
func (c *CLI) exportCommand() *cobra.Command {
	var eopts exportOpts
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export a diagram as DOT or render it through Graphviz",
		Long: `Export a diagram source as Graphviz interchange.

The dot format writes the DOT text itself; graphviz and png run the
local Graphviz engine over that DOT, producing an alternative SVG look
or a raster image. --detailed appends node IDs and computed positions
to the labels, which helps when comparing layouts against Graphviz.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !exportFormats[eopts.format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'graphviz', or 'png')", eopts.format)
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runExport(cmd.Context(), input, opts, eopts)
		},
	}

	cmd.Flags().StringVarP(&eopts.output, "output", "o", "", "output file (default: derived from the input name)")
	cmd.Flags().StringVarP(&eopts.format, "format", "f", "dot", "export format: dot, graphviz, png")
	cmd.Flags().BoolVar(&eopts.detailed, "detailed", false, "append node IDs and positions to labels")
	cmd.Flags().BoolVar(&eopts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "source kind: hierarchy, flow, structured (default: detected)")

	return cmd
}

// runExport parses and lays out the source, then emits the requested
// Graphviz artifact.
func (c *CLI) runExport(ctx context.Context, input string, opts pipeline.Options, eopts exportOpts) error {
	text, err := pkgio.ReadSource(input)
	if err != nil {
		return err
	}
	opts.Text = text
	opts.Logger = loggerFromContext(ctx)
	c.applyConfig(&opts)

	path := eopts.output
	if path == "" {
		path = basePath("", input) + "." + exportExt(eopts.format)
	}

	runner, err := c.newRunner(ctx, eopts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Exporting diagram...")
	spinner.Start()

	d, err := runner.Parse(ctx, opts)
	if err != nil {
		spinner.StopWithError("Parse failed")
		return err
	}
	laid, err := runner.Layout(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}

	dot := export.ToDOT(laid, export.Options{Detailed: eopts.detailed})

	var data []byte
	switch eopts.format {
	case "dot":
		data = []byte(dot)
	case "graphviz":
		data, err = export.RenderSVG(ctx, dot)
	case "png":
		data, err = export.RenderPNG(ctx, dot)
	}
	if err != nil {
		spinner.StopWithError("Export failed")
		return err
	}

	// The success line stays off stdout when the artifact goes there.
	if path == "-" {
		spinner.Stop()
	} else {
		spinner.StopWithSuccess("Export complete")
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := pkgio.WriteArtifact(path, data); err != nil {
		return err
	}
	if path != "-" {
		printFile(path)
		printStats(len(laid.Nodes), len(laid.Edges), false)
	}
	return nil
}

// exportExt maps an export format to its file extension. The graphviz
// format produces SVG.
func exportExt(format string) string {
	if format == "graphviz" {
		return "svg"
	}
	return format
}
