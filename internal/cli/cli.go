package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blocks/pkg/buildinfo"
	"github.com/matzehuels/blocks/pkg/config"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "blocks"

	// playLogName is the log file used while the TUI owns the terminal.
	playLogName = "play.log"

	// annotationSkipConfig marks commands that run without reading the
	// config file.
	annotationSkipConfig = "blocks.skip-config"
)

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

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Blocks is a block-placement puzzle for the terminal",
		Long:         `Blocks is a block-placement puzzle: drop pieces on a square board, fill rows and columns to clear them, and keep going until nothing fits.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationSkipConfig] == "" {
				if err := c.loadConfig(); err != nil {
					return err
				}
			}
			observability.SetGameHooks(observability.NewLogHooks(c.Logger))
			observability.SetSessionHooks(observability.NewLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/blocks/config.toml)")

	// Register all subcommands
	root.AddCommand(c.playCommand())
	root.AddCommand(c.autoCommand())
	root.AddCommand(c.snapshotCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.configCommand())

	return root
}

// loadConfig reads the config file. A missing default file yields the
// built-in defaults; a missing file named with --config is an error.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		c.Logger.Debug("no config directory", "error", err)
		return nil
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// =============================================================================
// Engine Factory
// =============================================================================

// newEngine creates an engine from the loaded config. A non-zero seed
// overrides the configured one.
func (c *CLI) newEngine(seed uint64) (*game.Engine, error) {
	opts, err := c.cfg.GameOptions(c.Logger)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		opts.Seed = seed
	}
	return game.New(opts)
}

// =============================================================================
// Sessions
// =============================================================================

// session is one run of a command that plays games.
type session struct {
	id    string
	mode  string
	start time.Time
}

// startSession assigns a fresh identifier and reports the start to the
// session hooks.
func startSession(ctx context.Context, mode string) *session {
	s := &session{id: uuid.NewString(), mode: mode, start: time.Now()}
	observability.Session().OnSessionStart(ctx, s.id, mode)
	return s
}

// end reports the finished session.
func (s *session) end(ctx context.Context, stats game.Stats) {
	observability.Session().OnSessionEnd(ctx, s.id, stats.Games, stats.Best, time.Since(s.start))
}

// short returns the first block of the identifier for file names.
func (s *session) short() string {
	return s.id[:8]
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/blocks/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
