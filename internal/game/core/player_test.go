package core

import (
	"errors"
	"testing"
)

func TestNewPlayerState(t *testing.T) {
	w := testWorld(t)

	p := NewPlayerState(w)
	if p.LevelID != 0 {
		t.Errorf("expected level 0, got %d", p.LevelID)
	}
	if !p.Pos.Equal(C(1, 1)) {
		t.Errorf("expected start at (1,1), got %v", p.Pos)
	}
	if p.Coins != 0 || p.Steps != 0 {
		t.Errorf("expected zero coins and steps, got %d/%d", p.Coins, p.Steps)
	}
}

func TestFinalPlayerState(t *testing.T) {
	w := testWorld(t)

	p := FinalPlayerState(w, 42)
	if p.LevelID != w.Len()-1 {
		t.Errorf("expected final level %d, got %d", w.Len()-1, p.LevelID)
	}
	if !p.Pos.Equal(C(1, 14)) {
		t.Errorf("expected start at (1,14), got %v", p.Pos)
	}
	if p.Steps != 42 {
		t.Errorf("expected 42 steps carried over, got %d", p.Steps)
	}
}

func TestUpdateOpeningMoves(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	p := NewPlayerState(w)

	p, err := Update(Up, p, w, board)
	if err != nil {
		t.Fatalf("Update(up): %v", err)
	}
	if !p.Pos.Equal(C(1, 2)) || p.Tile != KindEmpty {
		t.Errorf("after up: expected (1,2) on empty, got %v on %s", p.Pos, p.Tile)
	}

	p, err = Update(Right, p, w, board)
	if err != nil {
		t.Fatalf("Update(right): %v", err)
	}
	if !p.Pos.Equal(C(2, 2)) || p.Tile != KindEmpty {
		t.Errorf("after right: expected (2,2) on empty, got %v on %s", p.Pos, p.Tile)
	}
	if p.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", p.Steps)
	}
}

func TestUpdateRejectedMoveStillCountsStep(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	p := PlayerState{LevelID: 0, Pos: C(1, 2), Tile: KindEmpty, Steps: 5}

	// (0,2) is wall.
	next, err := Update(Left, p, w, board)
	if err != nil {
		t.Fatalf("Update(left): %v", err)
	}
	if !next.Pos.Equal(p.Pos) {
		t.Errorf("rejected move changed position to %v", next.Pos)
	}
	if next.Steps != 6 {
		t.Errorf("rejected move: expected step count 6, got %d", next.Steps)
	}
}

func TestUpdateUnrecognizedInput(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	p := PlayerState{LevelID: 0, Pos: C(5, 5), Tile: KindEmpty}

	next, err := Update(Orientation(99), p, w, board)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !next.Pos.Equal(p.Pos) {
		t.Errorf("unrecognized input changed position to %v", next.Pos)
	}
	if next.Steps != 1 {
		t.Errorf("unrecognized input: expected step count 1, got %d", next.Steps)
	}
}

func TestUpdatePipeIsTwoHops(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	// Green pipe at (4,7) facing right ends at (10,7).
	p := PlayerState{LevelID: 0, Pos: C(3, 7), Tile: KindEmpty}

	next, err := Update(Right, p, w, board)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !next.Pos.Equal(C(10, 7)) {
		t.Errorf("expected pipe to relocate player to (10,7), got %v", next.Pos)
	}
	if next.Tile != KindEmpty {
		t.Errorf("expected empty tile under player, got %s", next.Tile)
	}
	if next.Steps != 1 {
		t.Errorf("two-hop transition should count one step, got %d", next.Steps)
	}
}

func TestUpdateItemTileIsWalkable(t *testing.T) {
	w := testWorld(t)
	board := w.Board(1)

	p := PlayerState{LevelID: 1, Pos: C(10, 11), Tile: KindEmpty, Coins: 3}

	next, err := Update(Up, p, w, board)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !next.Pos.Equal(C(10, 12)) || next.Tile != KindItem {
		t.Errorf("expected (10,12) on item, got %v on %s", next.Pos, next.Tile)
	}
	if next.Coins != 3 {
		t.Errorf("item tile changed coin count to %d", next.Coins)
	}
}

func TestUpdateExitAdvancesLevel(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	p := PlayerState{LevelID: 0, Pos: C(13, 14), Tile: KindEmpty, Coins: 2, Steps: 9}

	next, err := Update(Right, p, w, board)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if next.LevelID != 1 {
		t.Errorf("expected level 1, got %d", next.LevelID)
	}
	if !next.Pos.Equal(C(1, 1)) || next.Tile != KindEntrance {
		t.Errorf("expected level 1 entrance at (1,1), got %v on %s", next.Pos, next.Tile)
	}
	if next.Coins != 2 || next.Steps != 10 {
		t.Errorf("coins/steps not preserved: got %d/%d", next.Coins, next.Steps)
	}
}

func TestUpdateEntranceReturnsLevel(t *testing.T) {
	w := testWorld(t)
	board := w.Board(1)

	p := PlayerState{LevelID: 1, Pos: C(1, 2), Tile: KindEmpty}

	next, err := Update(Down, p, w, board)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if next.LevelID != 0 {
		t.Errorf("expected level 0, got %d", next.LevelID)
	}
	if !next.Pos.Equal(C(14, 14)) || next.Tile != KindExit {
		t.Errorf("expected level 0 exit at (14,14), got %v on %s", next.Pos, next.Tile)
	}
}

func TestUpdateEntranceAtWorldEdgeFails(t *testing.T) {
	w := testWorld(t)
	board := w.Board(0)

	p := PlayerState{LevelID: 0, Pos: C(1, 2), Tile: KindEmpty}

	next, err := Update(Down, p, w, board)
	var unknown UnknownLevelError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownLevelError, got %v", err)
	}
	if unknown.ID != -1 {
		t.Errorf("expected target id -1, got %d", unknown.ID)
	}
	if !next.Pos.Equal(p.Pos) || next.LevelID != 0 {
		t.Errorf("failed traversal moved the player: %v level %d", next.Pos, next.LevelID)
	}
}

func TestFinalLevelUpdateAtDistance(t *testing.T) {
	w := testWorld(t)
	board := w.Board(2)

	p := PlayerState{LevelID: 2, Pos: C(12, 5), Tile: KindEmpty}
	boss := NewBossState(12, 2, KindEmpty, 100)

	nextP, nextB, err := FinalLevelUpdate(Down, p, w, board, boss, DefaultCombat())
	if err != nil {
		t.Fatalf("FinalLevelUpdate: %v", err)
	}
	if !nextP.Pos.Equal(C(12, 4)) {
		t.Errorf("expected player at (12,4), got %v", nextP.Pos)
	}
	// The wall row at y=3 blocks the chase step and the distance is
	// beyond strike range, so the boss is untouched.
	if !nextB.Pos.Equal(C(12, 2)) {
		t.Errorf("expected boss to stay at (12,2), got %v", nextB.Pos)
	}
	if nextB.Health != 100 {
		t.Errorf("expected boss health 100, got %d", nextB.Health)
	}
}

func TestFinalLevelUpdateStrikeInRange(t *testing.T) {
	w := testWorld(t)
	board := w.Board(2)

	// Player steps toward the boss; the chase step brings the boss
	// adjacent and the strike lands.
	p := PlayerState{LevelID: 2, Pos: C(4, 6), Tile: KindEmpty}
	boss := NewBossState(4, 9, KindEmpty, 100)

	nextP, nextB, err := FinalLevelUpdate(Up, p, w, board, boss, DefaultCombat())
	if err != nil {
		t.Fatalf("FinalLevelUpdate: %v", err)
	}
	if !nextP.Pos.Equal(C(4, 7)) {
		t.Fatalf("expected player at (4,7), got %v", nextP.Pos)
	}
	if !nextB.Pos.Equal(C(4, 8)) {
		t.Fatalf("expected boss at (4,8), got %v", nextB.Pos)
	}
	if nextB.Health != 90 {
		t.Errorf("expected strike to reduce health to 90, got %d", nextB.Health)
	}
}
