package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes game and session events to a charmbracelet logger at
// debug level, except game over and session boundaries which log at info.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks writing to l, or to log.Default() when l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnPlace(slot, shapeID, x, y int) {
	h.Logger.Debug("placed", "slot", slot, "shape", shapeID, "x", x, "y", y)
}

func (h *LogHooks) OnReject(slot, x, y int) {
	h.Logger.Debug("rejected", "slot", slot, "x", x, "y", y)
}

func (h *LogHooks) OnLinesCleared(rows, columns, delta int) {
	h.Logger.Debug("lines cleared", "rows", rows, "columns", columns, "delta", delta)
}

func (h *LogHooks) OnRefill(slots int) {
	h.Logger.Debug("selection refilled", "slots", slots)
}

func (h *LogHooks) OnGameOver(score, turns int) {
	h.Logger.Info("game over", "score", score, "turns", turns)
}

func (h *LogHooks) OnRestart() {
	h.Logger.Debug("restarted")
}

func (h *LogHooks) OnSessionStart(_ context.Context, id, mode string) {
	h.Logger.Info("session started", "id", id, "mode", mode)
}

func (h *LogHooks) OnSessionEnd(_ context.Context, id string, games, best int, duration time.Duration) {
	h.Logger.Info("session ended", "id", id, "games", games, "best", best, "duration", duration.Round(time.Millisecond))
}

var (
	_ GameHooks    = (*LogHooks)(nil)
	_ SessionHooks = (*LogHooks)(nil)
)
