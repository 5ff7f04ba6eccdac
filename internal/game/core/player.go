package core

// PlayerState is an immutable snapshot of the player: level, position
// with the tile kind under it, coins collected and inputs processed.
// Transitions replace the snapshot, they never mutate it.
type PlayerState struct {
	LevelID int
	Pos     Coord
	Tile    TileKind
	Coins   int
	Steps   int
}

// NewPlayerState places the player on level 0's entrance tile with
// zero coins and steps.
func NewPlayerState(w *World) PlayerState {
	entrance := w.EntrancePipe(0)
	return PlayerState{
		LevelID: 0,
		Pos:     entrance.Pos,
		Tile:    entrance.Kind,
	}
}

// FinalPlayerState places the player on the final level's entrance
// tile, carrying over an accumulated step count.
func FinalPlayerState(w *World, steps int) PlayerState {
	id := w.Len() - 1
	entrance := w.EntrancePipe(id)
	return PlayerState{
		LevelID: id,
		Pos:     entrance.Pos,
		Tile:    entrance.Kind,
		Steps:   steps,
	}
}

// Update applies one move to the player state and returns the new
// snapshot. board must be the board of p.LevelID.
//
// Steps increments on every call, including rejected moves and
// unrecognized input. Level-graph traversal errors from entrance/exit
// tiles propagate to the caller with the position unchanged.
func Update(move Orientation, p PlayerState, w *World, board *Board) (PlayerState, error) {
	next := p
	next.Steps++

	if !move.valid() {
		return next, nil
	}

	dest := p.Pos.Step(move)
	if !InBounds(dest) {
		// Outside the grid counts as a wall.
		return next, nil
	}

	switch t := board.TileAt(dest); t.Kind {
	case KindWall:
		// Move rejected in place.
	case KindEmpty, KindItem, KindEntrance, KindExit:
		if t.Kind == KindEntrance || t.Kind == KindExit {
			return travel(next, t.Kind, w)
		}
		next.Pos = dest
		next.Tile = t.Kind
	case KindCoin:
		next.Pos = dest
		next.Tile = KindEmpty
		next.Coins++
		board.SetTile(NewTile(KindEmpty, dest))
	case KindPipe:
		// Two hops in one call: into the pipe, then out at its
		// precomputed end.
		end := t.PipeEnd()
		next.Pos = end
		next.Tile = board.TileAt(end).Kind
	}
	return next, nil
}

// travel relocates the player to the adjacent level's paired portal:
// an exit leads to the next level's entrance, an entrance back to the
// previous level's exit. Coins and steps are preserved.
func travel(p PlayerState, via TileKind, w *World) (PlayerState, error) {
	var (
		target int
		err    error
		portal Tile
	)
	if via == KindExit {
		target, err = w.NextLevel(p.LevelID)
		if err != nil {
			return p, err
		}
		portal = w.EntrancePipe(target)
	} else {
		target, err = w.PrevLevel(p.LevelID)
		if err != nil {
			return p, err
		}
		portal = w.ExitPipe(target)
	}
	p.LevelID = target
	p.Pos = portal.Pos
	p.Tile = portal.Kind
	return p, nil
}

// Combat tunes the final-level strike rule.
type Combat struct {
	StrikeDamage int // health the boss loses per landed strike
	StrikeRange  int // Manhattan distance at or under which a strike lands
}

// DefaultCombat returns the combat tuning used when no config is given.
func DefaultCombat() Combat {
	return Combat{StrikeDamage: 10, StrikeRange: 1}
}

// FinalLevelUpdate applies one move on the final level: the player
// moves as in Update, the boss takes one greedy chase step toward the
// player's new coordinate, and a strike lands if the two end within
// combat range. At larger distances the boss state passes through
// untouched by combat.
func FinalLevelUpdate(move Orientation, p PlayerState, w *World, board *Board, boss BossState, combat Combat) (PlayerState, BossState, error) {
	next, err := Update(move, p, w, board)
	if err != nil {
		return next, boss, err
	}
	if next.LevelID != p.LevelID {
		// The player left the final level; the boss stays put.
		return next, boss, nil
	}

	nextBoss := boss.Chase(next.Pos, board)
	if nextBoss.Pos.Manhattan(next.Pos) <= combat.StrikeRange {
		nextBoss = nextBoss.DecreaseHealth(combat.StrikeDamage)
	}
	return next, nextBoss, nil
}
