// Package config loads the blocks configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/blocks/config.toml, or
// ~/.config/blocks/config.toml when XDG_CONFIG_HOME is unset. Every field is
// optional; missing fields keep their defaults.
//
//	[game]
//	size   = 8
//	slots  = 3
//	colors = 8
//	seed   = 0
//
//	[ui]
//	auto_restart  = true
//	wipe_interval = "30ms"
//
//	[[shapes]]
//	name = "tee"
//	rows = ["###", ".#."]
//
// When at least one [[shapes]] entry is present the custom shapes replace the
// default catalog.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/blocks/pkg/errors"
	"github.com/matzehuels/blocks/pkg/game"
	"github.com/matzehuels/blocks/pkg/shape"
)

const (
	appName  = "blocks"
	fileName = "config.toml"

	defaultWipeInterval = 30 * time.Millisecond
)

// Config is the decoded configuration file.
type Config struct {
	Game   GameConfig    `toml:"game"`
	UI     UIConfig      `toml:"ui"`
	Shapes []ShapeConfig `toml:"shapes,omitempty"`
}

// GameConfig holds engine settings.
type GameConfig struct {
	Size   int    `toml:"size"`
	Slots  int    `toml:"slots"`
	Colors int    `toml:"colors"`
	Seed   uint64 `toml:"seed"`
}

// UIConfig holds terminal shell settings.
type UIConfig struct {
	AutoRestart  bool   `toml:"auto_restart"`
	WipeInterval string `toml:"wipe_interval"`
	Hints        bool   `toml:"hints"`
}

// ShapeConfig is one custom shape, rows top to bottom using '#'/'.' or '1'/'0'.
type ShapeConfig struct {
	Name string   `toml:"name"`
	Rows []string `toml:"rows"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Size:   game.DefaultSize,
			Slots:  game.DefaultSlots,
			Colors: game.DefaultColors,
		},
		UI: UIConfig{
			WipeInterval: defaultWipeInterval.String(),
			Hints:        true,
		},
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Decode reads TOML from r on top of the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is like [Load] but returns the defaults when the file does
// not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateRange("game.size", c.Game.Size, game.MinSize, game.MaxSize); err != nil {
		return err
	}
	if err := errors.ValidateRange("game.slots", c.Game.Slots, game.MinSlots, game.MaxSlots); err != nil {
		return err
	}
	if err := errors.ValidateRange("game.colors", c.Game.Colors, game.MinColors, game.MaxColors); err != nil {
		return err
	}
	if _, err := c.WipeInterval(); err != nil {
		return err
	}
	cat, err := c.Catalog()
	if err != nil {
		return err
	}
	if cat.MaxExtent() > c.Game.Size {
		return errors.New(errors.ErrCodeInvalidConfig, "shapes up to %d cells wide do not fit a %dx%d board", cat.MaxExtent(), c.Game.Size, c.Game.Size)
	}
	return nil
}

// WipeInterval parses ui.wipe_interval. An empty value means the default.
func (c Config) WipeInterval() (time.Duration, error) {
	if c.UI.WipeInterval == "" {
		return defaultWipeInterval, nil
	}
	d, err := time.ParseDuration(c.UI.WipeInterval)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "ui.wipe_interval")
	}
	if d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "ui.wipe_interval must be positive, got %s", d)
	}
	return d, nil
}

// Catalog returns the custom shape catalog, or the default one when no
// shapes are configured.
func (c Config) Catalog() (*shape.Catalog, error) {
	if len(c.Shapes) == 0 {
		return shape.Default(), nil
	}
	seen := make(map[string]bool, len(c.Shapes))
	shapes := make([]shape.Shape, 0, len(c.Shapes))
	for i, sc := range c.Shapes {
		if err := errors.ValidateShapeName(sc.Name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "shapes[%d]", i)
		}
		if seen[sc.Name] {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "shapes[%d]: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = true

		s, err := shape.Parse(sc.Name, sc.Rows...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "shapes[%d]", i)
		}
		shapes = append(shapes, s)
	}
	return shape.NewCatalog(shapes...)
}

// GameOptions converts the config to engine options.
func (c Config) GameOptions(logger *log.Logger) (game.Options, error) {
	cat, err := c.Catalog()
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Size:    c.Game.Size,
		Slots:   c.Game.Slots,
		Colors:  c.Game.Colors,
		Seed:    c.Game.Seed,
		Catalog: cat,
		Logger:  logger,
	}, nil
}

// Encode writes the config as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Write saves the config to path, creating parent directories. An existing
// file is only replaced when overwrite is set.
func (c Config) Write(path string, overwrite bool) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return c.Encode(f)
}
