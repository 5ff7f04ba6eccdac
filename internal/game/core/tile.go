// Package core implements the simulation core of the pipewalker dungeon:
// level boards, pipe teleport geometry, player movement and the boss chase.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Orientation is the facing of a directional tile and doubles as a
// player move direction.
type Orientation uint8

const (
	Left Orientation = iota
	Right
	Up
	Down
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this
// orientation. Up increases Y, Down decreases Y.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	default:
		return 0, 0
	}
}

// Clockwise returns the orientation rotated a quarter turn clockwise.
// Used by the blue pipe transform, which rotates the board.
func (o Orientation) Clockwise() Orientation {
	switch o {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return o
	}
}

// valid reports whether o is one of the four defined orientations.
func (o Orientation) valid() bool {
	return o <= Down
}

// ParseOrientation parses an orientation name (case-insensitive).
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return Left, false
	}
}

// PipeColor selects the exit-transform family of a pipe.
type PipeColor uint8

const (
	Green PipeColor = iota
	Red
	Gold
	Blue
	Black
)

// String returns the string representation of a pipe color.
func (c PipeColor) String() string {
	switch c {
	case Green:
		return "green"
	case Red:
		return "red"
	case Gold:
		return "gold"
	case Blue:
		return "blue"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ParsePipeColor parses a pipe color name (case-insensitive).
func ParsePipeColor(s string) (PipeColor, bool) {
	switch strings.ToLower(s) {
	case "green":
		return Green, true
	case "red":
		return Red, true
	case "gold":
		return Gold, true
	case "blue":
		return Blue, true
	case "black":
		return Black, true
	default:
		return Green, false
	}
}

// TileKind identifies the variant of a board tile.
type TileKind uint8

const (
	KindWall TileKind = iota
	KindPipe
	KindEntrance
	KindExit
	KindEmpty
	KindCoin
	KindItem
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPipe:
		return "pipe"
	case KindEntrance:
		return "entrance"
	case KindExit:
		return "exit"
	case KindEmpty:
		return "empty"
	case KindCoin:
		return "coin"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// directional reports whether tiles of this kind carry an orientation.
func (k TileKind) directional() bool {
	return k == KindPipe || k == KindEntrance || k == KindExit
}

// Tile is one board cell: a tagged variant positioned at a coordinate.
// Pipes additionally carry a color and a precomputed end coordinate;
// entrances and exits carry a facing. The payload accessors panic when
// called on a variant that does not carry the payload, since that is
// always a construction bug.
type Tile struct {
	Kind TileKind
	Pos  Coord

	color  PipeColor
	orient Orientation
	end    Coord
}

// NewTile creates a tile without directional payload (wall, empty,
// coin, item). Panics for directional kinds.
func NewTile(kind TileKind, pos Coord) Tile {
	if kind.directional() {
		panic(fmt.Sprintf("core: tile kind %s requires an orientation", kind))
	}
	return Tile{Kind: kind, Pos: pos}
}

// NewEntrance creates an entrance tile with the given facing.
func NewEntrance(pos Coord, o Orientation) Tile {
	return Tile{Kind: KindEntrance, Pos: pos, orient: o}
}

// NewExit creates an exit tile with the given facing.
func NewExit(pos Coord, o Orientation) Tile {
	return Tile{Kind: KindExit, Pos: pos, orient: o}
}

// Orientation returns the facing of a pipe, entrance or exit tile.
func (t Tile) Orientation() Orientation {
	if !t.Kind.directional() {
		panic(fmt.Sprintf("core: tile %s at %s has no orientation", t.Kind, t.Pos))
	}
	return t.orient
}

// Color returns the color of a pipe tile.
func (t Tile) Color() PipeColor {
	if t.Kind != KindPipe {
		panic(fmt.Sprintf("core: tile %s at %s has no color", t.Kind, t.Pos))
	}
	return t.color
}

// PipeEnd returns the precomputed exit coordinate of a pipe tile.
func (t Tile) PipeEnd() Coord {
	if t.Kind != KindPipe {
		panic(fmt.Sprintf("core: tile %s at %s has no pipe end", t.Kind, t.Pos))
	}
	return t.end
}
