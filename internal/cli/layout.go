package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
	pkgio "github.com/Ak-sara/aksara-writer-sub001/pkg/io"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
)

// layoutCommand creates the layout command, which stops the pipeline
// after positioning and shows the resolved geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute and show the layout of a diagram source",
		Long: `Parse a diagram source, auto-size its nodes, and run the layout
algorithm. The resolved positions are printed as a table; --output
writes the laid-out diagram JSON for later rendering.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runLayout(cmd.Context(), input, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the laid-out diagram JSON to this file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "source kind: hierarchy, flow, structured (default: detected)")
	cmd.Flags().StringVar(&opts.Algorithm, "algorithm", "", "layout algorithm: tree (default), grid, tree-list")
	cmd.Flags().StringVar(&opts.Direction, "direction", "", "layout direction: top-to-bottom (default), bottom-to-top, left-to-right, right-to-left")
	cmd.Flags().Float64Var(&opts.SpacingX, "spacing-x", 0, "horizontal node spacing")
	cmd.Flags().Float64Var(&opts.SpacingY, "spacing-y", 0, "vertical node spacing")

	return cmd
}

// runLayout parses the source, computes the layout, and prints the
// resolved geometry.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	text, err := pkgio.ReadSource(input)
	if err != nil {
		return err
	}
	opts.Text = text
	opts.Logger = logger
	c.applyConfig(&opts)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	d, _, err := runner.ParseWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Parse failed")
		return err
	}

	laid, cacheHit, err := runner.LayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Layout complete (%s, %s)", laid.Layout.Algorithm, laid.Layout.Direction)
	printPositions(laid)
	printStats(len(laid.Nodes), len(laid.Edges), cacheHit)

	if output != "" {
		if err := pkgio.ExportJSON(laid, output); err != nil {
			return err
		}
		printFile(output)
	}
	return nil
}

// printPositions prints one row of resolved geometry per node.
func printPositions(d *diagram.Diagram) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		rows = append(rows, []string{
			n.ID,
			n.Label,
			fmt.Sprintf("%.0f", n.X),
			fmt.Sprintf("%.0f", n.Y),
			fmt.Sprintf("%.0f×%.0f", n.Width, n.Height),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "X", "Y", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
}
