package registry

import (
	"testing"

	"github.com/vovakirdan/space-shooter/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{Lives: 1, Level: 1} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false, expected true")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	other, _ := Create("stub-a")
	if other == g {
		t.Error("Create() should return a fresh instance each call")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() of unknown id should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same id should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-m", func() Game { return &stubGame{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
	for _, info := range list {
		if info.ID == "stub-m" && info.Title != "Stub stub-m" {
			t.Errorf("title = %q, expected %q", info.Title, "Stub stub-m")
		}
	}
}
