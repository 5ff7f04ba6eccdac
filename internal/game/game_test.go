package game

import (
	"testing"

	"github.com/vovakirdan/pipewalker/internal/config"
	platformcore "github.com/vovakirdan/pipewalker/internal/core"
	"github.com/vovakirdan/pipewalker/internal/game/core"
	"github.com/vovakirdan/pipewalker/internal/game/levels"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	defs, err := levels.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	g, err := New(defs, config.DefaultGameConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func press(g *Game, a platformcore.Action) platformcore.StepResult {
	f := platformcore.NewInputFrame()
	f.Set(a)
	return g.Step(f)
}

func TestNewStartsAtFirstEntrance(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.Level != 0 || st.Coins != 0 || st.Steps != 0 {
		t.Fatalf("initial state = %+v", st)
	}
	want := g.World().EntrancePipe(0).Pos
	if !g.Player().Pos.Equal(want) {
		t.Fatalf("start pos = %v, want entrance %v", g.Player().Pos, want)
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := newTestGame(t)

	res := press(g, platformcore.ActionUp)
	if res.State.Steps != 1 {
		t.Fatalf("steps = %d, want 1", res.State.Steps)
	}
	if got, want := g.Player().Pos, core.C(1, 2); !got.Equal(want) {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestRejectedMoveCountsStep(t *testing.T) {
	g := newTestGame(t)

	// The entrance at (1,1) has the boundary wall below it.
	res := press(g, platformcore.ActionDown)
	if res.State.Steps != 1 {
		t.Fatalf("steps = %d, want 1", res.State.Steps)
	}
	if got, want := g.Player().Pos, core.C(1, 1); !got.Equal(want) {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestFrameWithoutMoveIsIgnored(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(platformcore.NewInputFrame())
	if res.State.Steps != 0 {
		t.Fatalf("steps = %d, want 0", res.State.Steps)
	}
}

func TestBackwardEdgeLeavesNote(t *testing.T) {
	g := newTestGame(t)

	press(g, platformcore.ActionUp)   // leave the entrance
	press(g, platformcore.ActionDown) // step back onto it

	if g.note == "" {
		t.Fatal("expected a HUD note after hitting the world edge")
	}
	st := g.State()
	if st.GameOver {
		t.Fatal("hitting the backward edge must not end the run")
	}
	if st.Steps != 2 {
		t.Fatalf("steps = %d, want 2", st.Steps)
	}
	// The failed transition leaves the player where they were.
	if got, want := g.Player().Pos, core.C(1, 2); !got.Equal(want) {
		t.Fatalf("pos = %v, want %v", got, want)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame(t)

	press(g, platformcore.ActionUp)
	press(g, platformcore.ActionRight)
	g.Reset(platformcore.RuntimeConfig{})

	st := g.State()
	if st.Steps != 0 || st.Coins != 0 || st.Level != 0 {
		t.Fatalf("state after reset = %+v", st)
	}
	if !g.Player().Pos.Equal(g.World().EntrancePipe(0).Pos) {
		t.Fatalf("pos after reset = %v", g.Player().Pos)
	}
}

func TestReloadLevelsRestarts(t *testing.T) {
	g := newTestGame(t)
	press(g, platformcore.ActionUp)

	defs, err := levels.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if err := g.ReloadLevels(defs); err != nil {
		t.Fatalf("ReloadLevels: %v", err)
	}
	if st := g.State(); st.Steps != 0 {
		t.Fatalf("steps after reload = %d, want 0", st.Steps)
	}
}

func TestReloadLevelsKeepsOldWorldOnError(t *testing.T) {
	g := newTestGame(t)
	press(g, platformcore.ActionUp)

	if err := g.ReloadLevels(nil); err == nil {
		t.Fatal("expected an error for an empty definition set")
	}
	if st := g.State(); st.Steps != 1 {
		t.Fatalf("steps after failed reload = %d, want 1", st.Steps)
	}
	if got, want := g.Player().Pos, core.C(1, 2); !got.Equal(want) {
		t.Fatalf("pos after failed reload = %v, want %v", got, want)
	}
}

func TestRenderDrawsPlayer(t *testing.T) {
	g := newTestGame(t)
	scr := platformcore.NewScreen(80, 30)

	g.Render(scr)

	// Board rows are flipped: y grows upward in the world.
	offsetX := (80 - core.Dim) / 2
	offsetY := 3
	pos := g.Player().Pos
	cell := scr.GetCell(offsetX+pos.X, offsetY+(core.Dim-1-pos.Y))
	if cell.Rune != '@' {
		t.Fatalf("player cell = %q, want '@'", cell.Rune)
	}
}

func TestIDAndTitle(t *testing.T) {
	g := newTestGame(t)
	if g.ID() != "pipewalker" {
		t.Fatalf("ID = %q", g.ID())
	}
	if g.Title() == "" {
		t.Fatal("empty title")
	}
}
