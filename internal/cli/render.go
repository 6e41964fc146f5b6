package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/Ak-sara/aksara-writer-sub001/pkg/io"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
)

// renderCommand creates the render command, which runs the whole
// pipeline: parse, auto-size, layout, render.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram source to SVG, DOT, or PNG",
		Long: `Render a diagram source file to one or more output formats.

The source is parsed, auto-sized, laid out, and rendered in one run.
Omitting the file argument (or passing "-") reads from stdin; --output
"-" writes the artifact to stdout. Results are cached locally for
faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-parse the source even when cached")

	// Source flags
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "source kind: hierarchy, flow, structured (default: detected)")

	// Layout flags
	cmd.Flags().StringVar(&opts.Algorithm, "algorithm", "", "layout algorithm: tree (default), grid, tree-list")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "layout direction: top-to-bottom (default), bottom-to-top, left-to-right, right-to-left")
	cmd.Flags().Float64Var(&opts.SpacingX, "spacing-x", 0, "horizontal node spacing")
	cmd.Flags().Float64Var(&opts.SpacingY, "spacing-y", 0, "vertical node spacing")

	// Render flags
	cmd.Flags().StringSliceVarP(&opts.Formats, "format", "f", nil, "output format(s): svg (default), dot, graphviz, png, json")
	cmd.Flags().Float64Var(&opts.Padding, "padding", 0, "canvas padding around the drawing")
	cmd.Flags().StringVar(&opts.Background, "background", "", "canvas background color")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "fixed canvas width (default: fit to content)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "fixed canvas height (default: fit to content)")

	return cmd
}

// runRender reads the source, runs the pipeline, and writes one file
// per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	text, err := pkgio.ReadSource(input)
	if err != nil {
		return err
	}
	opts.Text = text
	opts.Logger = logger
	c.applyConfig(&opts)
	if len(opts.Formats) == 0 {
		opts.Formats = []string{pipeline.FormatSVG}
	}

	toStdout := output == "-"
	if toStdout && len(opts.Formats) > 1 {
		return fmt.Errorf("stdout output supports a single format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, input)
	var written []string
	for _, format := range opts.Formats {
		path := artifactPath(base, format)
		if toStdout {
			path = "-"
		} else if output != "" && len(opts.Formats) == 1 {
			path = output
		}
		if err := pkgio.WriteArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		if !toStdout {
			logger.Debugf("Generated %s: %d bytes", format, len(result.Artifacts[format]))
			written = append(written, path)
		}
	}

	if toStdout {
		return nil
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path from the output and input
// paths. Empty output falls back to the input name without its
// extension; stdin input falls back to "diagram". A known format
// extension on the output path is stripped.
func basePath(output, input string) string {
	if output == "" || output == "-" {
		if input == "" || input == "-" {
			return "diagram"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath maps one artifact to its output file. The graphviz
// format also produces SVG, so it carries a qualifier to keep it apart
// from the native renderer's file.
func artifactPath(base, format string) string {
	if format == pipeline.FormatGraphviz {
		return base + "_graphviz.svg"
	}
	return base + "." + format
}
