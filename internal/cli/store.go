package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/Ak-sara/aksara-writer-sub001/pkg/io"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

// storeCommand groups the diagram store subcommands.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage saved diagrams",
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	var (
		name string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a diagram source under a name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runStoreSave(cmd.Context(), input, name, kind)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name for the saved diagram (required)")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "source kind: hierarchy, flow, structured (default: detected)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// runStoreSave parses the source before saving, so broken sources are
// rejected up front and the record carries a parsed snapshot.
func (c *CLI) runStoreSave(ctx context.Context, input, name, kind string) error {
	logger := loggerFromContext(ctx)

	text, err := pkgio.ReadSource(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	d, err := runner.Parse(ctx, pipeline.Options{Text: text, Kind: kind, Logger: logger})
	if err != nil {
		return err
	}

	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	rec := &store.Record{Name: name, Source: text, Kind: kind, Diagram: d}
	if err := st.Save(ctx, rec); err != nil {
		return fmt.Errorf("save diagram: %w", err)
	}

	printSuccess("Saved %q", name)
	printKeyValue("ID", rec.ID)
	printStats(len(d.Nodes), len(d.Edges), false)
	printNewline()
	printNextStep("Show", fmt.Sprintf("%s store show %s", appName, rec.ID))
	return nil
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved diagrams, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreList(cmd.Context())
		},
	}
}

func (c *CLI) runStoreList(ctx context.Context) error {
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

	for _, rec := range recs {
		nodes := "—"
		if rec.Diagram != nil {
			nodes = fmt.Sprintf("%d nodes", len(rec.Diagram.Nodes))
		}
		fmt.Printf("%s  %s  %s\n",
			StyleDim.Render(rec.ID),
			StyleValue.Render(fmt.Sprintf("%-20s", rec.Name)),
			StyleDim.Render(nodes+" · "+formatRelativeTime(rec.UpdatedAt)))
	}
	return nil
}

// storeShowCommand creates the "store show" subcommand.
func (c *CLI) storeShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreShow(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the parsed snapshot JSON to this file (\"-\" for stdout)")

	return cmd
}

func (c *CLI) runStoreShow(ctx context.Context, id, output string) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	rec, err := st.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get diagram %s: %w", id, err)
	}

	if output != "" {
		if rec.Diagram == nil {
			return fmt.Errorf("record %s has no parsed snapshot", id)
		}
		if output == "-" {
			return pkgio.WriteJSON(rec.Diagram, os.Stdout)
		}
		if err := pkgio.ExportJSON(rec.Diagram, output); err != nil {
			return err
		}
		printFile(output)
		return nil
	}

	fmt.Println(StyleTitle.Render(rec.Name))
	printKeyValue("ID", rec.ID)
	if rec.Kind != "" {
		printKeyValue("Kind", rec.Kind)
	}
	if rec.Diagram != nil {
		printKeyValue("Nodes", fmt.Sprintf("%d", len(rec.Diagram.Nodes)))
		printKeyValue("Edges", fmt.Sprintf("%d", len(rec.Diagram.Edges)))
	}
	printKeyValue("Updated", formatRelativeTime(rec.UpdatedAt))
	printNewline()
	fmt.Println(StyleDim.Render("Source:"))
	fmt.Println(rec.Source)
	return nil
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStoreDelete(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runStoreDelete(ctx context.Context, id string) error {
	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete diagram %s: %w", id, err)
	}
	printSuccess("Deleted %s", id)
	return nil
}
