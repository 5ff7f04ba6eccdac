package core

// BossState is an immutable snapshot of the boss: position with the
// tile kind under it, and remaining health. Health 0 is a terminal
// condition interpreted by the consumer; the core keeps stepping.
type BossState struct {
	Pos    Coord
	Tile   TileKind
	Health int
}

// NewBossState constructs a boss snapshot.
func NewBossState(x, y int, tile TileKind, health int) BossState {
	return BossState{Pos: C(x, y), Tile: tile, Health: health}
}

// DecreaseHealth returns the boss with health reduced by amount,
// clamped at zero.
func (b BossState) DecreaseHealth(amount int) BossState {
	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	return b
}

// Chase takes exactly one greedy grid step toward the target: the axis
// with the larger absolute displacement is chosen, and an exact tie
// goes to the x axis. The tie-break is observable in boss trajectories
// and must not change. A wall at the destination rejects the move in
// place; there is no fallback to the other axis.
func (b BossState) Chase(target Coord, board *Board) BossState {
	dx := target.X - b.Pos.X
	dy := target.Y - b.Pos.Y
	if dx == 0 && dy == 0 {
		return b
	}

	var dest Coord
	if abs(dx) >= abs(dy) && dx != 0 {
		dest = b.Pos.Add(sign(dx), 0)
	} else {
		dest = b.Pos.Add(0, sign(dy))
	}

	if !InBounds(dest) {
		return b
	}
	t := board.TileAt(dest)
	if t.Kind == KindWall {
		return b
	}

	b.Pos = dest
	b.Tile = t.Kind
	return b
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
