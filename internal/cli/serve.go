package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagram HTTP API",
		Long: `Serve the rendering pipeline and the diagram store over HTTP.

Endpoints: POST /api/render, POST /api/parse, CRUD under /api/diagrams,
and GET /healthz. The server drains in-flight requests and stops
cleanly on SIGINT and SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr, \":8080\")")

	return cmd
}

// runServe wires the configured backends into the HTTP server and
// blocks until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	st, err := c.openStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	p.done(fmt.Sprintf("Opened %s cache and %s store", backendName(c.Config.Cache.Backend), backendName(c.Config.Store.Backend)))

	if addr == "" {
		addr = c.Config.Server.Addr
	}

	srv := server.New(server.Options{
		Addr:   addr,
		Runner: runner,
		Store:  st,
		Logger: c.Logger,
	})

	printInfo("Serving the diagram API on %s", addr)
	printKeyValue("Health", StyleLink.Render(serveURL(addr)+"/healthz"))
	printKeyValue("Render", StyleLink.Render(serveURL(addr)+"/api/render"))
	printNewline()

	return srv.ListenAndServe(ctx)
}

// backendName fills the config default for display.
func backendName(backend string) string {
	if backend == "" {
		return "file"
	}
	return backend
}

// serveURL turns a listen address into something clickable. A bare
// ":8080" maps to localhost.
func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
