// Package cli implements the blocks command-line interface.
//
// The CLI is built using cobra and logs via the charmbracelet/log library.
// Game state lives in pkg/game; this package only converts key presses and
// flags into engine calls and renders the results.
//
// # Commands
//
// The main commands are:
//   - play: Interactive terminal game
//   - auto: Headless games played by the built-in strategies
//   - snapshot: Play a seeded game and export the board as JSON, DOT, SVG or PNG
//   - render: Re-render an exported JSON snapshot
//   - shapes: List the active shape catalog
//   - config: Create and inspect the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. While the TUI owns the terminal, log output
// goes to a file in the cache directory instead of stderr.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Played 10 games (1.234s)"
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(fmt.Sprintf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond)), keyvals...)
}

// redirectToFile points l at path until the returned restore function is
// called. The file is appended to and its directory created as needed.
func redirectToFile(l *log.Logger, w io.Writer, path string) (restore func(), err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	l.SetOutput(f)
	return func() {
		l.SetOutput(w)
		f.Close()
	}, nil
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
