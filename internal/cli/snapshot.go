package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blocks/pkg/autoplay"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/export"
)

// snapshotOpts holds the command-line flags for the snapshot command.
type snapshotOpts struct {
	output  string   // output file (single format) or base path
	formats []string // json, dot, svg, png
	seed    uint64   // engine seed, 0 keeps the configured one
	turns   int      // greedy turns to play before exporting
	pieces  bool     // draw the selection in images
}

// snapshotCommand creates the snapshot export command.
func (c *CLI) snapshotCommand() *cobra.Command {
	var formatsStr string
	opts := snapshotOpts{turns: 20, pieces: true}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Play a seeded game and export the board",
		Long: `Snapshot creates an engine, lets the greedy player make --turns moves and
exports the resulting state. JSON snapshots can be rendered again later with
"blocks render".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := export.ParseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runSnapshot(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 uses the config or a random seed)")
	cmd.Flags().IntVar(&opts.turns, "turns", opts.turns, "greedy turns to play before exporting (0 = until game over)")
	cmd.Flags().BoolVar(&opts.pieces, "pieces", opts.pieces, "draw the remaining pieces below the board")

	return cmd
}

func (c *CLI) runSnapshot(ctx context.Context, opts snapshotOpts) error {
	e, err := c.newEngine(opts.seed)
	if err != nil {
		return err
	}

	sess := startSession(ctx, "snapshot")
	logger := loggerFromContext(ctx).With("session", sess.short())
	r, err := autoplay.Run(ctx, e, opts.turns)
	sess.end(ctx, e.Stats())
	if err != nil {
		return err
	}
	logger.Debug("played", "turns", r.Turns, "score", r.Score, "game_over", r.GameOver)

	snap := export.FromEngine(sess.id, e)
	base := opts.output
	if base == "" {
		base = fmt.Sprintf("%s-%s", appName, sess.short())
	}
	paths, err := writeSnapshot(ctx, snap, base, opts.formats, export.Options{Pieces: opts.pieces})
	if err != nil {
		return err
	}

	printSuccess("Exported game %s after %d turns (score %d)", sess.short(), r.Turns, r.Score)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	formats []string
	pieces  bool
}

// renderCommand creates the command that re-renders a JSON snapshot.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{pieces: true}

	cmd := &cobra.Command{
		Use:   "render [snapshot.json]",
		Short: "Render an exported snapshot to DOT, SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr == "" {
				formatsStr = export.FormatSVG
			}
			formats, err := export.ParseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.pieces, "pieces", opts.pieces, "draw the remaining pieces below the board")

	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	if err := errors.ValidatePath(input); err != nil {
		return err
	}
	snap, err := export.ImportJSON(input)
	if err != nil {
		return err
	}

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	paths, err := writeSnapshot(ctx, snap, base, opts.formats, export.Options{Pieces: opts.pieces})
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeSnapshot writes snap once per format. With a single format and a
// base that already has an extension, base is used as the file name;
// otherwise each file is base plus the format extension.
func writeSnapshot(ctx context.Context, snap export.Snapshot, base string, formats []string, opts export.Options) ([]string, error) {
	if err := errors.ValidatePath(base); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if len(formats) == 1 && filepath.Ext(base) != "" {
			path = base
		}
		if err := writeFormat(ctx, snap, path, f, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFormat(ctx context.Context, snap export.Snapshot, path, format string, opts export.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.Write(ctx, f, snap, format, opts); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
