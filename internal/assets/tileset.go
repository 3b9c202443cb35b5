// Package assets resolves maze role names (wall connector categories,
// ground, player, exit, rewards) to terminal glyphs.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/pate2crabe/mazegame/internal/core"
	"github.com/pate2crabe/mazegame/internal/maze"
)

// Non-wall roles every tileset must define.
const (
	RoleGround  = "ground"
	RolePlayer  = "player"
	RoleExit    = "exit"
	RoleBonus   = maze.RoleBonus
	RolePenalty = maze.RolePenalty
	RoleFound   = "reward-found"
)

//go:embed defaults/tileset.yaml
var defaultTilesetYAML []byte

// ErrMissingRole is wrapped by Validate for every role the tileset lacks.
var ErrMissingRole = errors.New("assets: missing role")

// Glyph is the renderable handle for one maze cell: two terminal columns
// and a foreground color.
type Glyph struct {
	Rune  rune
	Fill  rune
	Color core.Color
}

// Fallback is drawn for roles that cannot be resolved.
var Fallback = Glyph{Rune: '?', Fill: ' ', Color: core.ColorMagenta}

// Tileset maps role names to glyphs. Build one with LoadTileset or
// DefaultTileset and pass it to whatever draws the maze.
type Tileset struct {
	Name   string
	glyphs map[string]Glyph
}

type tilesetFile struct {
	Name   string               `yaml:"name"`
	Glyphs map[string]glyphFile `yaml:"glyphs"`
}

type glyphFile struct {
	Text  string `yaml:"text"`
	Color string `yaml:"color"`
}

// Roles returns every role name a complete tileset defines, sorted.
func Roles() []string {
	roles := []string{RoleGround, RolePlayer, RoleExit, RoleBonus, RolePenalty, RoleFound}
	for _, c := range maze.Categories() {
		roles = append(roles, c.Name())
	}
	sort.Strings(roles)
	return roles
}

// DefaultTileset returns the embedded box-drawing tileset.
func DefaultTileset() *Tileset {
	ts, err := ParseTileset(defaultTilesetYAML)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded tileset: %v", err))
	}
	return ts
}

// LoadTileset reads a tileset from path. An empty path yields the default.
func LoadTileset(path string) (*Tileset, error) {
	if path == "" {
		return DefaultTileset(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset %s: %w", path, err)
	}
	ts, err := ParseTileset(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tileset %s: %w", path, err)
	}
	return ts, nil
}

// ParseTileset decodes and validates tileset YAML.
func ParseTileset(data []byte) (*Tileset, error) {
	var f tilesetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	ts := &Tileset{Name: f.Name, glyphs: make(map[string]Glyph, len(f.Glyphs))}
	for role, g := range f.Glyphs {
		glyph, err := g.glyph()
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", role, err)
		}
		ts.glyphs[role] = glyph
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return ts, nil
}

func (g glyphFile) glyph() (Glyph, error) {
	n := utf8.RuneCountInString(g.Text)
	if n < 1 || n > 2 {
		return Glyph{}, fmt.Errorf("text %q must be one or two characters", g.Text)
	}
	out := Glyph{Fill: ' ', Color: core.ColorDefault}
	for i, r := range []rune(g.Text) {
		if i == 0 {
			out.Rune = r
		} else {
			out.Fill = r
		}
	}
	if g.Color != "" {
		c, ok := core.ParseColor(g.Color)
		if !ok {
			return Glyph{}, fmt.Errorf("unknown color %q", g.Color)
		}
		out.Color = c
	}
	return out, nil
}

// Validate reports every role in Roles that the tileset does not define.
func (t *Tileset) Validate() error {
	var errs []error
	for _, role := range Roles() {
		if _, ok := t.glyphs[role]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingRole, role))
		}
	}
	return errors.Join(errs...)
}

// Resolve looks up the glyph for a role.
func (t *Tileset) Resolve(role string) (Glyph, bool) {
	g, ok := t.glyphs[role]
	return g, ok
}

// MustResolve returns the glyph for a role or Fallback.
func (t *Tileset) MustResolve(role string) Glyph {
	if g, ok := t.glyphs[role]; ok {
		return g
	}
	return Fallback
}

// Cell resolves a maze cell. Untextured walls and unknown categories
// report false and are not drawn.
func (t *Tileset) Cell(c maze.CellState) (Glyph, bool) {
	if !c.IsWall() {
		return t.Resolve(RoleGround)
	}
	name := c.Texture.Name()
	if name == "" {
		return Glyph{}, false
	}
	return t.Resolve(name)
}

// Reward resolves the glyph for a reward, using RoleFound once found.
func (t *Tileset) Reward(r maze.Reward) Glyph {
	if r.Found {
		return t.MustResolve(RoleFound)
	}
	return t.MustResolve(r.Role())
}
