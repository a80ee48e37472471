// Package observability provides hooks for game and session events.
//
// This package enables optional instrumentation without coupling the engine
// to a logging or metrics backend. Consumers register hooks at startup to
// receive events about placements, line clears, refills and game over.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Engine events carry no context: the engine is synchronous and never
// blocks. Session events come from the shell and carry its context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGameHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// The engine calls hooks after each state change:
//
//	observability.Game().OnPlace(slot, shapeID, x, y)
//	observability.Game().OnLinesCleared(rows, cols, delta)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Game Hooks
// =============================================================================

// GameHooks receives events from the puzzle engine.
type GameHooks interface {
	// OnPlace records a successful placement.
	OnPlace(slot, shapeID, x, y int)

	// OnReject records a placement attempt that left the engine unchanged.
	OnReject(slot, x, y int)

	// OnLinesCleared records the lines cleared by one placement and the score awarded.
	OnLinesCleared(rows, columns, delta int)

	// OnRefill records a regenerated selection.
	OnRefill(slots int)

	// OnGameOver records the transition to the terminal state.
	OnGameOver(score, turns int)

	// OnRestart records a hard reset.
	OnRestart()
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from the interactive and headless shells.
type SessionHooks interface {
	// OnSessionStart records the start of a play or autoplay session.
	OnSessionStart(ctx context.Context, id, mode string)

	// OnSessionEnd records the end of a session with the number of games and best score.
	OnSessionEnd(ctx context.Context, id string, games, best int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGameHooks is a no-op implementation of GameHooks.
type NoopGameHooks struct{}

func (NoopGameHooks) OnPlace(int, int, int, int)   {}
func (NoopGameHooks) OnReject(int, int, int)       {}
func (NoopGameHooks) OnLinesCleared(int, int, int) {}
func (NoopGameHooks) OnRefill(int)                 {}
func (NoopGameHooks) OnGameOver(int, int)          {}
func (NoopGameHooks) OnRestart()                   {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnSessionStart(context.Context, string, string)                {}
func (NoopSessionHooks) OnSessionEnd(context.Context, string, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gameHooks    GameHooks    = NoopGameHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetGameHooks registers custom game hooks.
// This should be called once at application startup before any engine is created.
func SetGameHooks(h GameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gameHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Game returns the registered game hooks.
func Game() GameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gameHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gameHooks = NoopGameHooks{}
	sessionHooks = NoopSessionHooks{}
}
