package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/pate2crabe/mazegame/internal/assets"
	"github.com/pate2crabe/mazegame/internal/config"
	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/storage"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger creates the file logger. The terminal belongs to the TUI, so
// logs never go to stdout. An empty path discards output.
func openLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazegame",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the scores database. A failure is logged and reported
// on stderr; the game still works without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath, storage.WithLogger(logger))
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform config from the terminal size and
// the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// seedOrNow returns the --seed value, or a time based seed when unset.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadMazeConfig resolves the YAML config and applies a difficulty
// preset. An empty preset keeps the file values as loaded.
func loadMazeConfig(logger *log.Logger, path, difficulty string) (config.MazeConfig, error) {
	cfg, source, err := config.ResolveMaze(path)
	if err != nil {
		return cfg, err
	}
	logger.Info("config loaded", "source", source)

	preset := config.DifficultyCustom
	if difficulty != "" {
		if preset, err = config.ParseDifficulty(difficulty); err != nil {
			return cfg, err
		}
	}
	config.ApplyMazePreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadTileset loads the tileset named by the flag, then the config, then
// falls back to the built-in set.
func loadTileset(flagPath, cfgPath string) (*assets.Tileset, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		return assets.DefaultTileset(), nil
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return assets.LoadTileset(path)
}
