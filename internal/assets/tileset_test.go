package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/maze"
)

func TestDefaultTilesetComplete(t *testing.T) {
	ts := DefaultTileset()
	if err := ts.Validate(); err != nil {
		t.Fatalf("default tileset invalid: %v", err)
	}
	if ts.Name != "box" {
		t.Errorf("Name = %q, expected \"box\"", ts.Name)
	}

	for _, c := range maze.Categories() {
		g, ok := ts.Cell(maze.CellState{Kind: maze.Wall, Texture: c})
		if !ok {
			t.Errorf("Cell(%v) not resolved", c)
			continue
		}
		if g.Rune == ' ' {
			t.Errorf("wall category %v should draw a visible rune", c)
		}
	}
}

func TestTilesetCell(t *testing.T) {
	ts := DefaultTileset()

	if _, ok := ts.Cell(maze.WallCell()); ok {
		t.Error("untextured wall should not resolve")
	}

	g, ok := ts.Cell(maze.GroundCell())
	if !ok || g.Rune != ' ' || g.Fill != ' ' {
		t.Errorf("ground = %+v, %v, expected blank glyph", g, ok)
	}

	g, _ = ts.Cell(maze.CellState{Kind: maze.Wall, Texture: maze.CategoryHorizontalMid})
	if g.Rune != '─' || g.Fill != '─' {
		t.Errorf("horizontal mid = %q%q, expected \"──\"", g.Rune, g.Fill)
	}
}

func TestTilesetReward(t *testing.T) {
	ts := DefaultTileset()

	bonus := ts.Reward(maze.Reward{Pos: maze.P(3, 3)})
	penalty := ts.Reward(maze.Reward{Pos: maze.P(5, 5), Malus: true})
	found := ts.Reward(maze.Reward{Pos: maze.P(5, 5), Malus: true, Found: true})

	if bonus.Color != core.ColorBrightCyan {
		t.Errorf("bonus color = %v, expected bright_cyan", bonus.Color)
	}
	if penalty.Color != core.ColorBrightRed {
		t.Errorf("penalty color = %v, expected bright_red", penalty.Color)
	}
	if found.Rune != '·' {
		t.Errorf("found reward rune = %q, expected '·'", found.Rune)
	}
}

func TestMustResolveFallback(t *testing.T) {
	ts := DefaultTileset()
	if g := ts.MustResolve("no-such-role"); g != Fallback {
		t.Errorf("MustResolve(unknown) = %+v, expected Fallback", g)
	}
	if _, ok := ts.Resolve("no-such-role"); ok {
		t.Error("Resolve(unknown) should report false")
	}
}

func TestParseTilesetErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "glyphs: [\n"},
		{"too many runes", "glyphs:\n  ground: { text: \"abc\" }\n"},
		{"empty text", "glyphs:\n  ground: { text: \"\" }\n"},
		{"bad color", "glyphs:\n  ground: { text: \" \", color: chartreuse }\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTileset([]byte(tc.yaml)); err == nil {
				t.Error("ParseTileset() should fail")
			}
		})
	}
}

func TestParseTilesetMissingRoles(t *testing.T) {
	_, err := ParseTileset([]byte("name: tiny\nglyphs:\n  ground: { text: \" \" }\n"))
	if !errors.Is(err, ErrMissingRole) {
		t.Fatalf("err = %v, expected ErrMissingRole", err)
	}
}

func TestLoadTileset(t *testing.T) {
	ts, err := LoadTileset("")
	if err != nil || ts.Name != "box" {
		t.Fatalf("LoadTileset(\"\") = %v, %v, expected default", ts, err)
	}

	path := filepath.Join(t.TempDir(), "ascii.yaml")
	if err := os.WriteFile(path, asciiTileset(), 0o644); err != nil {
		t.Fatal(err)
	}
	ts, err = LoadTileset(path)
	if err != nil {
		t.Fatalf("LoadTileset(%s) error = %v", path, err)
	}
	if g := ts.MustResolve(RolePlayer); g.Rune != '@' || g.Fill != ' ' {
		t.Errorf("player = %q%q, expected \"@ \"", g.Rune, g.Fill)
	}

	if _, err := LoadTileset(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTileset(missing) should fail")
	}
}

func asciiTileset() []byte {
	out := "name: ascii\nglyphs:\n"
	for _, role := range Roles() {
		text := "#"
		switch role {
		case RoleGround:
			text = " "
		case RolePlayer:
			text = "@"
		}
		out += "  " + role + ": { text: \"" + text + "\" }\n"
	}
	return []byte(out)
}

func TestShippedASCIITileset(t *testing.T) {
	ts, err := LoadTileset(filepath.Join("..", "..", "configs", "tilesets", "ascii.yaml"))
	if err != nil {
		t.Fatalf("LoadTileset() error: %v", err)
	}
	if ts.Name != "ascii" {
		t.Errorf("Name = %q, expected \"ascii\"", ts.Name)
	}
	for _, role := range Roles() {
		g := ts.MustResolve(role)
		if g.Rune > 0x7f || g.Fill > 0x7f {
			t.Errorf("role %q uses non-ASCII glyph %q%q", role, g.Rune, g.Fill)
		}
	}
}
