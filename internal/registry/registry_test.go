package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Description() string                  { return "test game" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SetHighScore(int)                     {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists should report registered game")
	}
	if Exists("nope") {
		t.Error("Exists should not report unknown game")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("nope"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(unknown) error = %v", err)
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub_") {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID || info.Description != "test game" {
				t.Errorf("unexpected info %+v", info)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
