package registry

import (
	"errors"
	"testing"

	"github.com/pate2crabe/mazegame/internal/assets"
	"github.com/pate2crabe/mazegame/internal/config"
	"github.com/pate2crabe/mazegame/internal/core"
)

type stubGame struct {
	id         string
	configured bool
	failWith   error
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func (g *stubGame) Configure(config.MazeConfig, *assets.Tileset) error {
	if g.failWith != nil {
		return g.failWith
	}
	g.configured = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = info.Title == "Stub stub_a"
		}
	}
	if !found {
		t.Error("List() should include stub_a with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestCreateConfigured(t *testing.T) {
	Register("stub_cfg", func() Game { return &stubGame{id: "stub_cfg"} })

	g, err := CreateConfigured("stub_cfg", config.DefaultMazeConfig(), assets.DefaultTileset())
	if err != nil {
		t.Fatalf("CreateConfigured() error = %v", err)
	}
	if !g.(*stubGame).configured {
		t.Error("Configure was not called")
	}

	boom := errors.New("boom")
	Register("stub_fail", func() Game { return &stubGame{id: "stub_fail", failWith: boom} })
	if _, err := CreateConfigured("stub_fail", config.DefaultMazeConfig(), nil); !errors.Is(err, boom) {
		t.Errorf("CreateConfigured() error = %v, expected to wrap boom", err)
	}
}
