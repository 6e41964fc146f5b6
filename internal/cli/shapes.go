package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/render"
)

// shapesCommand creates the shapes command listing drawable node
// shapes: the built-in set plus any shapes registered by embedding
// programs.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the node shapes the renderer can draw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Shapes"))
			for _, s := range render.Shapes() {
				marker := StyleDim.Render("registered")
				if s.IsBuiltin() {
					marker = StyleSuccess.Render("built-in")
				}
				fmt.Printf("  %s %s\n", StyleValue.Render(fmt.Sprintf("%-11s", string(s))), marker)
			}
			printNewline()
			printDetail("Unknown shape names fall back to rectangle at render time.")
			return nil
		},
	}
}
