package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/blocks/pkg/config"
	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/export"
	"github.com/matzehuels/blocks/pkg/observability"
	"github.com/matzehuels/blocks/pkg/shape"
)

// execute runs the root command with args against an empty config directory.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"play", "auto", "snapshot", "render", "shapes", "config"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestSnapshotCommand(t *testing.T) {
	base := filepath.Join(t.TempDir(), "game")

	err := execute(t, "snapshot", "--seed", "3", "--turns", "5", "-f", "json,dot", "-o", base)
	require.NoError(t, err)

	snap, err := export.ImportJSON(base + ".json")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), snap.Seed)
	assert.NotEmpty(t, snap.GameID)
	assert.Positive(t, snap.Turns)
	assert.LessOrEqual(t, snap.Turns, 5)

	dot, err := os.ReadFile(base + ".dot")
	require.NoError(t, err)
	assert.Contains(t, string(dot), "digraph G")
}

func TestSnapshotCommandBadFormat(t *testing.T) {
	err := execute(t, "snapshot", "-f", "gif", "-o", filepath.Join(t.TempDir(), "x"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "snap.json")
	require.NoError(t, execute(t, "snapshot", "--seed", "9", "--turns", "3", "-o", input))

	out := filepath.Join(dir, "board.dot")
	require.NoError(t, execute(t, "render", input, "-f", "dot", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BGCOLOR")
}

func TestRenderCommandMissingFile(t *testing.T) {
	err := execute(t, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestAutoCommand(t *testing.T) {
	require.NoError(t, execute(t, "auto", "-n", "2", "--turns", "10", "--seed", "1"))
	require.NoError(t, execute(t, "auto", "--turns", "10", "--strategy", "random", "--seed", "1"))

	err := execute(t, "auto", "--strategy", "clever")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	err = execute(t, "auto", "-n", "0")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks", "config.toml")

	require.NoError(t, execute(t, "--config", path, "config", "init"))
	_, err := os.Stat(path)
	require.NoError(t, err)

	err = execute(t, "--config", path, "config", "init")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))

	require.NoError(t, execute(t, "--config", path, "config", "init", "--force"))
	require.NoError(t, execute(t, "--config", path, "config", "show"))
}

func TestConfigInitReplacesBrokenFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nsize = 2\n"), 0o644))

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	hook := root.PersistentPreRunE
	var hookRan bool
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		hookRan = true
		return hook(cmd, args)
	}
	var gotLogger bool
	initCmd, _, err := root.Find([]string{"config", "init"})
	require.NoError(t, err)
	run := initCmd.RunE
	initCmd.RunE = func(cmd *cobra.Command, args []string) error {
		gotLogger = loggerFromContext(cmd.Context()) == c.Logger
		return run(cmd, args)
	}

	root.SetArgs([]string{"--config", path, "config", "init", "--force"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.True(t, hookRan)
	assert.True(t, gotLogger)
	_, err = config.Load(path)
	assert.NoError(t, err)
}

func TestExplicitConfigMissing(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "shapes")
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestInvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[game]\nsize = 2\n"), 0o644))

	err := execute(t, "--config", path, "auto", "--turns", "1")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestCatalogTable(t *testing.T) {
	out := catalogTable(shape.Default())
	for _, name := range []string{"square2", "bar4v", "dot"} {
		assert.Contains(t, out, name)
	}
}

func TestNewStrategy(t *testing.T) {
	for _, name := range []string{strategyGreedy, strategyRandom} {
		s, err := newStrategy(name, 1)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	_, err := newStrategy("", 1)
	assert.Error(t, err)
}
