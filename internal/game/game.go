// Package game binds the pipewalker simulation core to the platform:
// it maps input actions to moves, owns the current player and boss
// snapshots, interprets terminal conditions and draws the board.
package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipewalker/internal/config"
	platformcore "github.com/vovakirdan/pipewalker/internal/core"
	"github.com/vovakirdan/pipewalker/internal/game/core"
)

// Game runs one pipewalker session over a built world.
type Game struct {
	defs   []core.LevelDef
	cfg    config.GameConfig
	combat core.Combat

	world  *core.World
	player core.PlayerState
	boss   core.BossState

	bossSpawned bool
	won         bool
	gameOver    bool
	note        string // one-line HUD message, cleared on the next accepted input

	trace *log.Logger // optional plain-text transition trace
}

// New creates a game over the given level definitions.
func New(defs []core.LevelDef, cfg config.GameConfig) (*Game, error) {
	g := &Game{defs: defs, cfg: cfg}
	g.combat = core.Combat{
		StrikeDamage: cfg.Combat.StrikeDamage,
		StrikeRange:  cfg.Combat.StrikeRange,
	}
	if err := g.rebuild(); err != nil {
		return nil, err
	}
	return g, nil
}

// SetTrace attaches a logger that receives one line per transition.
// Diagnostics only; gameplay does not depend on it.
func (g *Game) SetTrace(l *log.Logger) {
	g.trace = l
}

// ID returns the game identifier used for run storage.
func (g *Game) ID() string {
	return "pipewalker"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipewalker"
}

// rebuild constructs a fresh world from the definitions. Boards are
// rebuilt too, restoring any consumed coins.
func (g *Game) rebuild() error {
	world, err := core.NewWorld(g.defs)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.world = world
	g.player = core.NewPlayerState(world)
	g.bossSpawned = false
	g.won = false
	g.gameOver = false
	g.note = ""
	g.spawnBossIfFinal()
	return nil
}

// Reset restarts the session.
func (g *Game) Reset(_ platformcore.RuntimeConfig) {
	// The definitions already built once, so this cannot fail.
	if err := g.rebuild(); err != nil {
		panic(fmt.Sprintf("game: reset: %v", err))
	}
}

// ReloadLevels swaps in a new set of level definitions and restarts.
// Used by the level-file watcher during authoring.
func (g *Game) ReloadLevels(defs []core.LevelDef) error {
	old := g.defs
	g.defs = defs
	if err := g.rebuild(); err != nil {
		g.defs = old
		return err
	}
	return nil
}

// spawnBossIfFinal places the boss when the player stands on the final
// level and the boss has not been spawned yet.
func (g *Game) spawnBossIfFinal() {
	if g.bossSpawned || !g.world.IsFinalLevel(g.player.LevelID) {
		return
	}
	lvl, err := g.world.Level(g.player.LevelID)
	if err != nil {
		return
	}
	if lvl.Boss == nil {
		return
	}
	health := lvl.Boss.Health
	if health == 0 {
		health = g.cfg.Boss.Health
	}
	tile := lvl.Board.TileAt(lvl.Boss.Pos).Kind
	g.boss = core.NewBossState(lvl.Boss.Pos.X, lvl.Boss.Pos.Y, tile, health)
	g.bossSpawned = true
}

// moveFor translates an input frame into a move direction.
func moveFor(in platformcore.InputFrame) (core.Orientation, bool) {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.Up, true
	case in.Has(platformcore.ActionDown):
		return core.Down, true
	case in.Has(platformcore.ActionLeft):
		return core.Left, true
	case in.Has(platformcore.ActionRight):
		return core.Right, true
	default:
		return 0, false
	}
}

// Step applies one input event: exactly one transition of the core.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.gameOver {
		g.Reset(platformcore.RuntimeConfig{})
		return platformcore.StepResult{State: g.State()}
	}
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	move, ok := moveFor(in)
	if !ok {
		return platformcore.StepResult{State: g.State()}
	}
	g.note = ""

	board := g.world.Board(g.player.LevelID)
	bossTurn := g.world.IsFinalLevel(g.player.LevelID) && g.bossSpawned && g.boss.Health > 0

	var err error
	if bossTurn {
		g.player, g.boss, err = core.FinalLevelUpdate(move, g.player, g.world, board, g.boss, g.combat)
		if g.boss.Health == 0 {
			g.won = true
			g.note = "The warden falls. The exit is open."
		}
	} else {
		g.player, err = core.Update(move, g.player, g.world, board)
	}

	if err != nil {
		g.handleEdge(err)
	} else {
		g.spawnBossIfFinal()
	}

	if g.trace != nil {
		g.trace.Debug("step",
			"move", move.String(),
			"level", g.player.LevelID,
			"pos", g.player.Pos.String(),
			"tile", g.player.Tile.String(),
			"coins", g.player.Coins,
			"steps", g.player.Steps,
		)
	}

	return platformcore.StepResult{State: g.State()}
}

// handleEdge interprets level-graph traversal failures. The core
// reports them as typed errors; here at the consumer they become either
// the end of a winning run or a HUD note.
func (g *Game) handleEdge(err error) {
	var unknown core.UnknownLevelError
	if !errors.As(err, &unknown) {
		// Nothing else can fail; surface it rather than guess.
		panic(fmt.Sprintf("game: unexpected transition error: %v", err))
	}

	switch {
	case unknown.ID >= g.world.Len() && g.won:
		g.gameOver = true
		g.note = "You climb out of the vault. Run complete."
	case unknown.ID >= g.world.Len():
		g.note = "The exit will not open while the warden stands."
	default:
		g.note = "There is no way back."
	}

	if g.trace != nil {
		g.trace.Debug("world edge", "target", unknown.ID)
	}
}

// State returns the current game status for the platform.
func (g *Game) State() platformcore.GameState {
	bossHealth := 0
	if g.bossSpawned {
		bossHealth = g.boss.Health
	}
	return platformcore.GameState{
		Coins:      g.player.Coins,
		Steps:      g.player.Steps,
		Level:      g.player.LevelID,
		BossHealth: bossHealth,
		Won:        g.won,
		GameOver:   g.gameOver,
	}
}

// Player returns the current player snapshot.
func (g *Game) Player() core.PlayerState {
	return g.player
}

// Boss returns the current boss snapshot and whether it is in play.
func (g *Game) Boss() (core.BossState, bool) {
	return g.boss, g.bossSpawned
}

// World returns the built world.
func (g *Game) World() *core.World {
	return g.world
}
