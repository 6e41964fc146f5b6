package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/Ak-sara/aksara-writer-sub001/pkg/io"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
)

// parseCommand creates the parse command, which turns a source into
// the diagram JSON document the other commands consume.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a diagram source into diagram JSON",
		Long: `Parse a diagram source into a diagram JSON document.

The kind is detected from the text unless --kind is given: indented
text and "A > [B, C]" lines parse as a hierarchy, "A -> B" lines as a
flow, and JSON documents as structured input. The output document can
be edited and rendered later with --kind structured.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runParse(cmd.Context(), input, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.json, \"-\" for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-parse the source even when cached")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "source kind: hierarchy, flow, structured (default: detected)")

	return cmd
}

// runParse parses the source and writes the diagram document.
func (c *CLI) runParse(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	text, err := pkgio.ReadSource(input)
	if err != nil {
		return err
	}
	opts.Text = text
	opts.Logger = logger

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	p := newProgress(logger)
	d, cacheHit, err := runner.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Parsed %d nodes, %d edges", len(d.Nodes), len(d.Edges)))

	if output == "-" {
		return pkgio.WriteJSON(d, os.Stdout)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", input) + ".json"
	}
	if err := pkgio.ExportJSON(d, outputPath); err != nil {
		return err
	}

	printSuccess("Parse complete")
	printFile(outputPath)
	printStats(len(d.Nodes), len(d.Edges), cacheHit)
	printNewline()
	printNextStep("Render", fmt.Sprintf("%s render %s --kind structured", appName, outputPath))
	return nil
}
