// Package cli implements the aksara-diagram command-line interface.
//
// Commands cover the whole pipeline: parse sources into diagram JSON,
// compute layouts, render SVG, DOT, and PNG artifacts, serve the HTTP
// API, and manage the artifact cache and the diagram store. All
// commands support --verbose (-v) for debug-level logging and --config
// for an alternate configuration file. Loggers travel through
// context.Context so nested helpers log through the same sink.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/buildinfo"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/config"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "aksara-diagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The configuration file is loaded when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The persistent pre-run loads the configuration file and
// attaches the CLI logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Aksara Diagram renders text descriptions as diagrams",
		Long:         `Aksara Diagram is a CLI tool for turning text descriptions of hierarchies, flows, and node-edge documents into laid-out SVG, DOT, and PNG diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: <user config dir>/aksara-diagram/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Backend Factories
// =============================================================================

// newRunner creates a pipeline runner on the configured cache backend.
// noCache swaps in the null cache regardless of configuration.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cacheCfg := c.Config.Cache
	if noCache {
		cacheCfg.Backend = "none"
	}
	backend, err := cacheCfg.OpenCache(ctx)
	if err != nil {
		return nil, err
	}

	runner := pipeline.NewRunner(backend, nil, c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}
	return runner, nil
}

// openStore opens the configured diagram store backend.
func (c *CLI) openStore(ctx context.Context) (store.Store, error) {
	return c.Config.Store.OpenStore(ctx)
}

// =============================================================================
// Options Helpers
// =============================================================================

// applyConfig fills zero-valued pipeline options from the configuration
// file. Flags the user set win over file values, and both win over the
// pipeline defaults.
func (c *CLI) applyConfig(opts *pipeline.Options) {
	if opts.Algorithm == "" {
		opts.Algorithm = c.Config.Engine.Algorithm
	}
	if opts.Direction == "" {
		opts.Direction = c.Config.Engine.Direction
	}
	if opts.SpacingX == 0 {
		opts.SpacingX = c.Config.Engine.SpacingX
	}
	if opts.SpacingY == 0 {
		opts.SpacingY = c.Config.Engine.SpacingY
	}
	if opts.Padding == 0 {
		opts.Padding = c.Config.Render.Padding
	}
	if opts.Background == "" {
		opts.Background = c.Config.Render.Background
	}
}
