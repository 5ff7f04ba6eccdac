package core

import "fmt"

// Dim is the fixed width and height of every level board.
const Dim = 16

// last is the highest valid coordinate component on a board.
const last = Dim - 1

// Room is an axis-aligned rectangle, inclusive on both corners,
// carved to Empty within an otherwise Wall board.
type Room struct {
	Min Coord // bottom-left corner
	Max Coord // top-right corner
}

// Contains returns true if the coordinate lies inside the room.
func (r Room) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Board is the dense 16x16 tile grid of one level. It is mutated only
// during level construction; gameplay reads it, with the single
// exception of coin consumption.
type Board struct {
	tiles []Tile // row-major, length Dim*Dim
}

// InBounds returns true if the coordinate is within the board.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Dim && c.Y >= 0 && c.Y < Dim
}

// IndexOf converts a coordinate to its flat row-major index.
func IndexOf(c Coord) int {
	return c.Y*Dim + c.X
}

// CoordOf converts a flat row-major index back to a coordinate.
func CoordOf(i int) Coord {
	return Coord{X: i % Dim, Y: i / Dim}
}

// NewBoard builds a board that is all Wall, carves the given rooms to
// Empty, and places the entrance and exit tiles. Construction is
// deterministic: the same arguments always produce the same board.
func NewBoard(entrance, exit Tile, rooms []Room) *Board {
	b := &Board{tiles: make([]Tile, Dim*Dim)}
	for i := range b.tiles {
		b.tiles[i] = NewTile(KindWall, CoordOf(i))
	}
	for _, room := range rooms {
		for y := room.Min.Y; y <= room.Max.Y; y++ {
			for x := room.Min.X; x <= room.Max.X; x++ {
				b.SetTile(NewTile(KindEmpty, C(x, y)))
			}
		}
	}
	b.SetTile(entrance)
	b.SetTile(exit)
	return b
}

// TileAt returns the tile at the given coordinate.
// Out-of-range coordinates are a precondition violation.
func (b *Board) TileAt(c Coord) Tile {
	if !InBounds(c) {
		panic(fmt.Sprintf("core: coordinate %s out of range", c))
	}
	return b.tiles[IndexOf(c)]
}

// TileAtIndex returns the tile at the given flat index.
// Out-of-range indices are a precondition violation.
func (b *Board) TileAtIndex(i int) Tile {
	if i < 0 || i >= len(b.tiles) {
		panic(fmt.Sprintf("core: index %d out of range", i))
	}
	return b.tiles[i]
}

// SetTile overwrites the board cell at the tile's own coordinate.
func (b *Board) SetTile(t Tile) {
	if !InBounds(t.Pos) {
		panic(fmt.Sprintf("core: coordinate %s out of range", t.Pos))
	}
	b.tiles[IndexOf(t.Pos)] = t
}

// CountKind returns the number of tiles of the given kind.
func (b *Board) CountKind(kind TileKind) int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// NewPipeTile computes the pipe's exit coordinate from its start,
// color and facing, and returns the finished pipe tile.
//
// Each color is a fixed affine transform of the start coordinate on the
// 16x16 grid. The arithmetic is load-bearing: level content and the
// recorded fixtures depend on these exact closed forms.
func NewPipeTile(start Coord, color PipeColor, o Orientation) Tile {
	return Tile{
		Kind:   KindPipe,
		Pos:    start,
		color:  color,
		orient: o,
		end:    pipeEnd(start, color, o),
	}
}

// pipeEnd is the per-color exit transform. s is +1 for Right/Up and -1
// for Left/Down; the facing axis is X for Left/Right and Y for Up/Down.
func pipeEnd(start Coord, color PipeColor, o Orientation) Coord {
	s := facingSign(o)
	horizontal := o == Left || o == Right

	switch color {
	case Green:
		// Mirror the facing axis, landing one cell inside the far wall.
		if horizontal {
			return C(last-start.X-s, start.Y)
		}
		return C(start.X, last-start.Y-s)
	case Red:
		// Mirror the perpendicular axis, one step along the facing axis.
		if horizontal {
			return C(start.X+s, last-start.Y)
		}
		return C(last-start.X, start.Y+s)
	case Gold:
		// Mirror both axes, with the green offset on the facing axis.
		if horizontal {
			return C(last-start.X-s, last-start.Y)
		}
		return C(last-start.X, last-start.Y-s)
	case Blue:
		// Transpose then mirror (a quarter turn clockwise), one step
		// along the rotated facing.
		rotated := C(start.Y, last-start.X)
		return rotated.Step(o.Clockwise())
	case Black:
		// Short local teleport: one cell in the facing direction.
		return start.Step(o)
	default:
		panic(fmt.Sprintf("core: unknown pipe color %d", color))
	}
}

func facingSign(o Orientation) int {
	if o == Right || o == Up {
		return 1
	}
	return -1
}
