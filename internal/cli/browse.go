package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive view of the
// diagram store.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse saved diagrams interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context())
		},
	}
}

// runBrowse lists the store in an interactive table and prints the
// selected record with follow-up commands.
func (c *CLI) runBrowse(ctx context.Context) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	recs, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("list diagrams: %w", err)
	}
	if len(recs) == 0 {
		printInfo("No saved diagrams")
		printNextStep("Save one", appName+" store save diagram.txt --name my-diagram")
		return nil
	}

	final, err := tea.NewProgram(NewRecordListModel(recs)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run browser: %w", err)
	}

	model, ok := final.(RecordListModel)
	if !ok || model.Selected == nil {
		return nil
	}
	rec := model.Selected

	printSuccess("Selected %q", rec.Name)
	printKeyValue("ID", rec.ID)
	printNewline()
	printNextStep("Show", fmt.Sprintf("%s store show %s", appName, rec.ID))
	printNextStep("Delete", fmt.Sprintf("%s store delete %s", appName, rec.ID))
	return nil
}
