package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blocks/pkg/autoplay"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/game"
)

const (
	strategyGreedy = "greedy"
	strategyRandom = "random"
)

// autoOpts holds the command-line flags for the auto command.
type autoOpts struct {
	games    int    // games to play back to back
	turns    int    // turn limit per game, 0 for none
	seed     uint64 // engine seed, 0 keeps the configured one
	strategy string // greedy or random
}

// autoCommand creates the headless autoplay command.
func (c *CLI) autoCommand() *cobra.Command {
	opts := autoOpts{games: 1, strategy: strategyGreedy}

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Let the computer play and report the scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.games < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--games must be at least 1, got %d", opts.games)
			}
			reports, err := c.runAuto(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printNewline()
			fmt.Println(reportTable(reports))
			printSummary(reports)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.games, "games", "n", opts.games, "number of games")
	cmd.Flags().IntVar(&opts.turns, "turns", 0, "turn limit per game (0 = play until game over)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 uses the config or a random seed)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", opts.strategy, "move strategy: greedy, random")

	return cmd
}

func newStrategy(name string, seed uint64) (autoplay.Strategy, error) {
	switch name {
	case strategyGreedy:
		return autoplay.Greedy{}, nil
	case strategyRandom:
		return autoplay.Random{Rand: rand.New(rand.NewPCG(seed, seed>>1|1))}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown strategy %q (want greedy or random)", name)
}

// runAuto plays opts.games games on one engine, restarting between games.
func (c *CLI) runAuto(ctx context.Context, opts autoOpts) ([]autoplay.Report, error) {
	e, err := c.newEngine(opts.seed)
	if err != nil {
		return nil, err
	}
	strategy, err := newStrategy(opts.strategy, e.Seed())
	if err != nil {
		return nil, err
	}

	sess := startSession(ctx, "auto")
	logger := loggerFromContext(ctx).With("session", sess.short())
	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Playing...")
	spinner.Start()

	reports := make([]autoplay.Report, 0, opts.games)
	for i := range opts.games {
		if i > 0 {
			e.Restart()
		}
		spinner.SetMessage("Playing game %d/%d", i+1, opts.games)
		r, err := autoplay.Play(ctx, e, strategy, opts.turns)
		if err != nil {
			if spinner.Cancelled() {
				spinner.Stop()
			} else {
				spinner.StopWithError(fmt.Sprintf("Game %d failed", i+1))
			}
			sess.end(ctx, e.Stats())
			return reports, err
		}
		logger.Debug("game finished", "game", i+1, "score", r.Score, "turns", r.Turns)
		reports = append(reports, r)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Played %d games", len(reports)))
	sess.end(ctx, e.Stats())
	prog.done("Autoplay finished", "seed", e.Seed())
	return reports, nil
}

// reportTable renders one row per game.
func reportTable(reports []autoplay.Report) string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		result := "turn limit"
		if r.GameOver {
			result = game.GameOver.String()
		}
		rows[i] = []string{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.Score),
			fmt.Sprint(r.Turns),
			fmt.Sprint(r.Lines),
			result,
			r.Duration.Round(time.Millisecond).String(),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Game", "Score", "Turns", "Lines", "Result", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func printSummary(reports []autoplay.Report) {
	if len(reports) == 0 {
		return
	}
	best, total := 0, 0
	for _, r := range reports {
		best = max(best, r.Score)
		total += r.Score
	}
	printKeyValue("Best", fmt.Sprint(best))
	printKeyValue("Mean", fmt.Sprintf("%.1f", float64(total)/float64(len(reports))))
}
