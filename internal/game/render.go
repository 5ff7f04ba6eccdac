package game

import (
	"fmt"

	platformcore "github.com/vovakirdan/pipewalker/internal/core"
	"github.com/vovakirdan/pipewalker/internal/game/core"
)

// Render draws the current level, the player and the boss into the
// screen buffer. The board is stored with Y growing upward, so rows
// are flipped when mapped to screen lines.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.renderBoard(dst)

	if g.note != "" {
		dst.DrawTextCentered(dst.Height()-2, g.note)
	}
	if g.gameOver {
		g.renderOverlay(dst,
			"Run complete!",
			fmt.Sprintf("Coins: %d  Steps: %d  (R to restart)", g.player.Coins, g.player.Steps))
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	lvl, err := g.world.Level(g.player.LevelID)
	name := ""
	if err == nil {
		name = lvl.Name
	}

	hud := fmt.Sprintf(" Pipewalker — %d/%d %s  Coins: %d  Steps: %d",
		g.player.LevelID+1, g.world.Len(), name, g.player.Coins, g.player.Steps)
	if g.bossSpawned && g.world.IsFinalLevel(g.player.LevelID) {
		hud += fmt.Sprintf("  Warden: %d", g.boss.Health)
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	board := g.world.Board(g.player.LevelID)
	offsetX := (dst.Width() - core.Dim) / 2
	offsetY := 3

	for y := 0; y < core.Dim; y++ {
		for x := 0; x < core.Dim; x++ {
			t := board.TileAt(core.C(x, y))
			r, c := tileGlyph(t)
			dst.SetWithColor(offsetX+x, offsetY+(core.Dim-1-y), r, c)
		}
	}

	if g.bossSpawned && g.world.IsFinalLevel(g.player.LevelID) && g.boss.Health > 0 {
		dst.SetWithColor(offsetX+g.boss.Pos.X, offsetY+(core.Dim-1-g.boss.Pos.Y), 'B', platformcore.ColorRed)
	}
	dst.SetWithColor(offsetX+g.player.Pos.X, offsetY+(core.Dim-1-g.player.Pos.Y), '@', platformcore.ColorWhite)
}

// tileGlyph maps a tile to its character and color.
func tileGlyph(t core.Tile) (rune, platformcore.Color) {
	switch t.Kind {
	case core.KindWall:
		return '#', platformcore.ColorGray
	case core.KindEmpty:
		return ' ', platformcore.ColorDefault
	case core.KindCoin:
		return '*', platformcore.ColorYellow
	case core.KindItem:
		return '!', platformcore.ColorCyan
	case core.KindPipe:
		return 'o', pipeGlyphColor(t.Color())
	case core.KindEntrance:
		return facingGlyph(t.Orientation()), platformcore.ColorGreen
	case core.KindExit:
		return facingGlyph(t.Orientation()), platformcore.ColorMagenta
	default:
		return '?', platformcore.ColorDefault
	}
}

func pipeGlyphColor(c core.PipeColor) platformcore.Color {
	switch c {
	case core.Green:
		return platformcore.ColorGreen
	case core.Red:
		return platformcore.ColorRed
	case core.Gold:
		return platformcore.ColorOrange
	case core.Blue:
		return platformcore.ColorBlue
	case core.Black:
		return platformcore.ColorGray
	default:
		return platformcore.ColorDefault
	}
}

func facingGlyph(o core.Orientation) rune {
	switch o {
	case core.Left:
		return '<'
	case core.Right:
		return '>'
	case core.Up:
		return '^'
	case core.Down:
		return 'v'
	default:
		return '?'
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
