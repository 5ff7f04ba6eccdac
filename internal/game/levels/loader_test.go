package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pipewalker/internal/game/core"
)

func TestLoadDefaultCampaign(t *testing.T) {
	defs, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(defs))
	}

	w, err := core.NewWorld(defs)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	// The shipped campaign honors the documented opening fixture:
	// start at (1,1), then (1,2) and (2,2) are empty.
	board := w.Board(0)
	if board.TileAt(core.C(1, 1)).Kind != core.KindEntrance {
		t.Error("level 0 should start on its entrance at (1,1)")
	}
	for _, c := range []core.Coord{core.C(1, 2), core.C(2, 2)} {
		if kind := board.TileAt(c).Kind; kind != core.KindEmpty {
			t.Errorf("tile at %v: expected empty, got %s", c, kind)
		}
	}

	count, err := w.CoinCount(0)
	if err != nil {
		t.Fatalf("CoinCount(0): %v", err)
	}
	if count != 4 {
		t.Errorf("level 0 coin count: expected 4, got %d", count)
	}

	final, err := w.Level(2)
	if err != nil {
		t.Fatalf("Level(2): %v", err)
	}
	if !final.Final {
		t.Error("level 2 should be final")
	}
	if final.Boss == nil || !final.Boss.Pos.Equal(core.C(12, 2)) || final.Boss.Health != 100 {
		t.Errorf("level 2 boss: expected (12,2) with health 100, got %+v", final.Boss)
	}

	// The boss vault wall row shields the boss except for its doorway.
	vault := w.Board(2)
	if vault.TileAt(core.C(12, 3)).Kind != core.KindWall {
		t.Error("expected wall at (12,3) in the boss vault")
	}
	if vault.TileAt(core.C(5, 3)).Kind != core.KindEmpty {
		t.Error("expected doorway at (5,3) in the boss vault")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			"unknown pipe color",
			`levels:
  - name: bad
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}
    pipes: [{x: 3, y: 3, color: purple, facing: up}]`,
		},
		{
			"unknown facing",
			`levels:
  - name: bad
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: sideways}
    exit: {x: 14, y: 14, facing: right}`,
		},
		{
			"coin out of range",
			`levels:
  - name: bad
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}
    coins: [{x: 16, y: 3}]`,
		},
		{
			"pipe exits the grid",
			`levels:
  - name: bad
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}
    pipes: [{x: 15, y: 7, color: black, facing: right}]`,
		},
		{
			"negative boss health",
			`levels:
  - name: bad
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}
    boss: {x: 7, y: 7, health: -5}`,
		},
	}

	for _, tc := range testCases {
		if _, err := ParseYAML([]byte(tc.yaml)); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestLoadDirectorySorted(t *testing.T) {
	dir := t.TempDir()

	first := `levels:
  - name: alpha
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}`
	second := `levels:
  - name: beta
    rooms: [{min: {x: 1, y: 1}, max: {x: 14, y: 14}}]
    entrance: {x: 1, y: 1, facing: up}
    exit: {x: 14, y: 14, facing: right}`

	// Written out of order; loaded sorted by file name.
	if err := os.WriteFile(filepath.Join(dir, "20-beta.yaml"), []byte(second), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "10-alpha.yaml"), []byte(first), 0o600); err != nil {
		t.Fatal(err)
	}

	defs, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(defs))
	}
	if defs[0].Name != "alpha" || defs[1].Name != "beta" {
		t.Errorf("expected alpha then beta, got %s then %s", defs[0].Name, defs[1].Name)
	}
}

func TestLoadMissingPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing path")
	}
}
