package core

import "fmt"

// UnknownLevelError reports a level-graph traversal beyond the defined
// range. It carries the would-be target id, which may be negative.
type UnknownLevelError struct {
	ID int
}

func (e UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown level %d", e.ID)
}

// PipeDef places one pipe in a level definition.
type PipeDef struct {
	Pos    Coord
	Color  PipeColor
	Facing Orientation
}

// PortalDef places an entrance or exit in a level definition.
type PortalDef struct {
	Pos    Coord
	Facing Orientation
}

// BossDef places the boss in the final level definition.
type BossDef struct {
	Pos    Coord
	Health int
}

// LevelDef is the raw definition a level is built from. Definitions
// come from the external level source (see the levels package); the
// core only consumes them.
type LevelDef struct {
	Name     string
	Rooms    []Room
	Entrance PortalDef
	Exit     PortalDef
	Pipes    []PipeDef
	Coins    []Coord
	Items    []Coord
	Boss     *BossDef
}

// Level is one built level: its board, neighbor linkage by id, the coin
// total counted at construction time, and the final flag.
type Level struct {
	ID        int
	Name      string
	Board     *Board
	CoinCount int
	Final     bool
	Boss      *BossDef
}

// World is the ordered collection of levels. Built once at load time;
// gameplay only reads it.
type World struct {
	levels []Level
}

// NewWorld builds every level's board from its definition: rooms are
// carved, pipes placed with their precomputed ends, coins and items
// scattered. The coin count is fixed at this point and the last id is
// flagged final.
func NewWorld(defs []LevelDef) (*World, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("core: world needs at least one level")
	}

	w := &World{levels: make([]Level, 0, len(defs))}
	for id, def := range defs {
		entrance := NewEntrance(def.Entrance.Pos, def.Entrance.Facing)
		exit := NewExit(def.Exit.Pos, def.Exit.Facing)
		board := NewBoard(entrance, exit, def.Rooms)

		for _, p := range def.Pipes {
			tile := NewPipeTile(p.Pos, p.Color, p.Facing)
			if end := tile.PipeEnd(); !InBounds(end) {
				return nil, fmt.Errorf("core: level %d (%s): %s pipe at %s exits the grid at %s",
					id, def.Name, p.Color, p.Pos, end)
			}
			board.SetTile(tile)
		}
		for _, c := range def.Coins {
			board.SetTile(NewTile(KindCoin, c))
		}
		for _, c := range def.Items {
			board.SetTile(NewTile(KindItem, c))
		}

		final := id == len(defs)-1
		if def.Boss != nil && !final {
			return nil, fmt.Errorf("core: level %d (%s) defines a boss but is not final", id, def.Name)
		}

		w.levels = append(w.levels, Level{
			ID:        id,
			Name:      def.Name,
			Board:     board,
			CoinCount: board.CountKind(KindCoin),
			Final:     final,
			Boss:      def.Boss,
		})
	}
	return w, nil
}

// Len returns the number of levels.
func (w *World) Len() int {
	return len(w.levels)
}

// Level returns the level with the given id.
func (w *World) Level(id int) (*Level, error) {
	if id < 0 || id >= len(w.levels) {
		return nil, UnknownLevelError{ID: id}
	}
	return &w.levels[id], nil
}

// Board returns the board of the level with the given id.
// An invalid id is a precondition violation.
func (w *World) Board(id int) *Board {
	lvl, err := w.Level(id)
	if err != nil {
		panic(fmt.Sprintf("core: %v", err))
	}
	return lvl.Board
}

// NextLevel returns the id after the given one. The error carries the
// would-be target when it falls outside the defined range.
func (w *World) NextLevel(id int) (int, error) {
	if id < 0 || id >= len(w.levels) {
		return 0, UnknownLevelError{ID: id}
	}
	target := id + 1
	if target >= len(w.levels) {
		return 0, UnknownLevelError{ID: target}
	}
	return target, nil
}

// PrevLevel returns the id before the given one. The error carries the
// would-be target, so PrevLevel(0) fails with UnknownLevelError{-1}.
func (w *World) PrevLevel(id int) (int, error) {
	if id < 0 || id >= len(w.levels) {
		return 0, UnknownLevelError{ID: id}
	}
	target := id - 1
	if target < 0 {
		return 0, UnknownLevelError{ID: target}
	}
	return target, nil
}

// EntrancePipe returns the tile marking the level's entry point.
// An invalid id is a precondition violation.
func (w *World) EntrancePipe(id int) Tile {
	return w.findPortal(id, KindEntrance)
}

// ExitPipe returns the tile marking the level's exit point.
// An invalid id is a precondition violation.
func (w *World) ExitPipe(id int) Tile {
	return w.findPortal(id, KindExit)
}

func (w *World) findPortal(id int, kind TileKind) Tile {
	board := w.Board(id)
	for i := 0; i < Dim*Dim; i++ {
		if t := board.TileAtIndex(i); t.Kind == kind {
			return t
		}
	}
	panic(fmt.Sprintf("core: level %d has no %s tile", id, kind))
}

// CoinCount returns the level's total number of coins as placed at
// construction time. It does not change as the player collects coins.
func (w *World) CoinCount(id int) (int, error) {
	lvl, err := w.Level(id)
	if err != nil {
		return 0, err
	}
	return lvl.CoinCount, nil
}

// IsFinalLevel returns true only for the last level id.
func (w *World) IsFinalLevel(id int) bool {
	return id == len(w.levels)-1
}
