package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg MazeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*MazeConfig)
		valid  bool
	}{
		{"default", func(*MazeConfig) {}, true},
		{"smallest board", func(c *MazeConfig) { c.Board.Width, c.Board.Height, c.Board.RewardCount = 5, 5, 2 }, true},
		{"even width", func(c *MazeConfig) { c.Board.Width = 20 }, false},
		{"even height", func(c *MazeConfig) { c.Board.Height = 8 }, false},
		{"too small", func(c *MazeConfig) { c.Board.Width = 3 }, false},
		{"negative rewards", func(c *MazeConfig) { c.Board.RewardCount = -1 }, false},
		{"bonus above rewards", func(c *MazeConfig) { c.Board.BonusCount = 7 }, false},
		{"bonus below -1", func(c *MazeConfig) { c.Board.BonusCount = -2 }, false},
		{"all bonuses", func(c *MazeConfig) { c.Board.BonusCount = 6 }, true},
		{"too many rewards for board", func(c *MazeConfig) { c.Board.Width, c.Board.Height, c.Board.RewardCount = 5, 5, 3 }, false},
		{"negative time limit", func(c *MazeConfig) { c.Timer.LimitSeconds = -5 }, false},
		{"untimed", func(c *MazeConfig) { c.Timer.LimitSeconds = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGenOptions(t *testing.T) {
	cfg := DefaultMazeConfig()
	cfg.Board.RewardCount = 8
	cfg.Board.BonusCount = 5

	opts := cfg.GenOptions()
	if opts.RewardCount != 8 || opts.BonusCount != 5 {
		t.Errorf("GenOptions() = %+v, expected 8 rewards with 5 bonuses", opts)
	}

	if got := cfg.Board.BonusTotal(); got != 5 {
		t.Errorf("BonusTotal() = %d, expected 5", got)
	}
	cfg.Board.BonusCount = -1
	cfg.Board.RewardCount = 5
	if got := cfg.Board.BonusTotal(); got != 2 {
		t.Errorf("BonusTotal() = %d, expected 2", got)
	}
}

func TestApplyMazePreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		width, height int
		rewards       int
		limit         int
	}{
		{DifficultyEasy, 15, 15, 4, 180},
		{DifficultyNormal, 21, 21, 6, 120},
		{DifficultyHard, 31, 21, 10, 90},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMazeConfig()
			ApplyMazePreset(&cfg, tc.preset)
			if cfg.Board.Width != tc.width || cfg.Board.Height != tc.height {
				t.Errorf("board = %dx%d, expected %dx%d", cfg.Board.Width, cfg.Board.Height, tc.width, tc.height)
			}
			if cfg.Board.RewardCount != tc.rewards {
				t.Errorf("RewardCount = %d, expected %d", cfg.Board.RewardCount, tc.rewards)
			}
			if cfg.Timer.LimitSeconds != tc.limit {
				t.Errorf("LimitSeconds = %d, expected %d", cfg.Timer.LimitSeconds, tc.limit)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}

	cfg := DefaultMazeConfig()
	cfg.Board.Width = 41
	ApplyMazePreset(&cfg, DifficultyCustom)
	if cfg.Board.Width != 41 {
		t.Error("DifficultyCustom should leave the config untouched")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		ok       bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{" HARD ", DifficultyHard, true},
		{"custom", DifficultyCustom, true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err == nil) != tc.ok || got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tc.in, got, err)
		}
	}
	for _, p := range Presets() {
		if p.Description() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}
}

func TestLoadMazeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	data := []byte("board:\n  width: 11\n  height: 9\ntimer:\n  limit_seconds: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := ResolveMaze(path)
	if err != nil {
		t.Fatalf("ResolveMaze() error = %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Board.Width != 11 || cfg.Board.Height != 9 || cfg.Timer.LimitSeconds != 0 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Board.RewardCount != 6 || cfg.Board.BonusCount != -1 || cfg.Scoring.BonusPoints != 100 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadMazeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadMaze(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("LoadMaze(missing custom path) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMaze(bad); err == nil {
		t.Error("LoadMaze(malformed) should fail")
	}
}

func TestResolveMazeSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	_, src, err := ResolveMaze("")
	if err != nil || src != SourceEmbedded {
		t.Fatalf("ResolveMaze() = %q, %v, expected embedded", src, err)
	}

	writeConfig(t, filepath.Join(work, "configs", mazeFile), "board:\n  width: 9\n")
	cfg, src, _ := ResolveMaze("")
	if src != SourceLocal || cfg.Board.Width != 9 {
		t.Errorf("ResolveMaze() = %q width %d, expected local width 9", src, cfg.Board.Width)
	}

	writeConfig(t, filepath.Join(home, ".mazegame", "configs", mazeFile), "board:\n  width: 7\n")
	cfg, src, _ = ResolveMaze("")
	if src != SourceUser || cfg.Board.Width != 7 {
		t.Errorf("ResolveMaze() = %q width %d, expected user width 7", src, cfg.Board.Width)
	}
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
