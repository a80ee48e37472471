package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	seed        uint64 // engine seed, 0 keeps the configured one
	autoRestart bool   // wipe and restart after game over
	noHints     bool   // do not dim pieces that fit nowhere
}

// playCommand creates the interactive game command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("auto-restart") {
				opts.autoRestart = c.cfg.UI.AutoRestart
			}
			return c.runPlay(cmd.Context(), opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 uses the config or a random seed)")
	cmd.Flags().BoolVar(&opts.autoRestart, "auto-restart", false, "wipe the board and start over after game over")
	cmd.Flags().BoolVar(&opts.noHints, "no-hints", false, "do not dim pieces that fit nowhere")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, opts playOpts) error {
	e, err := c.newEngine(opts.seed)
	if err != nil {
		return err
	}
	interval, err := c.cfg.WipeInterval()
	if err != nil {
		return err
	}

	// The TUI owns the terminal; keep log lines out of it.
	if dir, err := cacheDir(); err == nil {
		restore, err := redirectToFile(c.Logger, os.Stderr, filepath.Join(dir, playLogName))
		if err == nil {
			defer restore()
		}
	}

	sess := startSession(ctx, "play")
	model := NewGameModel(e, gameUI{
		AutoRestart:  opts.autoRestart,
		WipeInterval: interval,
		Hints:        c.cfg.UI.Hints && !opts.noHints,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	sess.end(ctx, e.Stats())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return context.Canceled
		}
		return fmt.Errorf("run game: %w", err)
	}

	m, ok := final.(GameModel)
	if !ok {
		return nil
	}
	stats := m.Engine.Stats()
	printInfo("Final score %s", StyleNumber.Render(fmt.Sprint(m.Engine.Score())))
	printKeyValue("Best", fmt.Sprint(stats.Best))
	printKeyValue("Games", fmt.Sprint(stats.Games))
	printKeyValue("Seed", fmt.Sprint(m.Engine.Seed()))
	return nil
}
