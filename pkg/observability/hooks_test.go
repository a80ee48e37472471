package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGameHooks{}
	g.OnPlace(0, 3, 1, 2)
	g.OnReject(1, -1, 9)
	g.OnLinesCleared(1, 1, 48)
	g.OnRefill(3)
	g.OnGameOver(120, 14)
	g.OnRestart()

	s := NoopSessionHooks{}
	s.OnSessionStart(ctx, "id", "play")
	s.OnSessionEnd(ctx, "id", 2, 300, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Game() should return NoopGameHooks by default")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}

	custom := &testGameHooks{}
	SetGameHooks(custom)
	if Game() != custom {
		t.Error("SetGameHooks should set custom hooks")
	}

	logHooks := NewLogHooks(nil)
	SetSessionHooks(logHooks)
	if Session() != logHooks {
		t.Error("SetSessionHooks should set custom hooks")
	}

	Reset()
	if _, ok := Game().(NoopGameHooks); !ok {
		t.Error("Reset() should restore NoopGameHooks")
	}
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset() should restore NoopSessionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGameHooks{}
	SetGameHooks(custom)
	SetGameHooks(nil)
	if Game() != custom {
		t.Error("SetGameHooks(nil) should keep the previous hooks")
	}

	SetSessionHooks(nil)
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("SetSessionHooks(nil) should keep the previous hooks")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(l)

	h.OnPlace(2, 7, 3, 4)
	h.OnLinesCleared(1, 1, 48)
	h.OnGameOver(96, 12)
	h.OnSessionStart(context.Background(), "abc", "auto")

	out := buf.String()
	for _, want := range []string{"placed", "shape=7", "lines cleared", "delta=48", "game over", "score=96", "session started", "id=abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksRespectLevel(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	h := NewLogHooks(l)

	h.OnPlace(0, 0, 0, 0)
	h.OnRefill(3)
	if buf.Len() != 0 {
		t.Errorf("debug events should be filtered at info level, got %q", buf.String())
	}

	h.OnGameOver(10, 2)
	if buf.Len() == 0 {
		t.Error("game over should log at info level")
	}
}

type testGameHooks struct {
	NoopGameHooks
	places int
}

func (h *testGameHooks) OnPlace(int, int, int, int) { h.places++ }
