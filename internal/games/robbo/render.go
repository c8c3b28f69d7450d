package robbo

import (
	"fmt"

	"github.com/vovakirdan/tui-robbo/internal/core"
	"github.com/vovakirdan/tui-robbo/internal/games/robbo/sim"
)

const hudHeight = 2

// tileGlyphs maps tiles to board runes. Tiles without an entry fall back to
// the kind's rune.
var tileGlyphs = map[sim.Tile]rune{
	sim.TileBirdAlt: 'b',
}

var kindGlyphs = map[sim.Kind]rune{
	sim.KindRobbo:     '@',
	sim.KindBird:      'B',
	sim.KindLBear:     'L',
	sim.KindMovingBox: '▣',
	sim.KindBox:       '□',
	sim.KindWall:      '█',
	sim.KindBullet:    '•',
	sim.KindGun:       '¤',
}

var defaultPalette = map[sim.Kind]core.Color{
	sim.KindRobbo:     core.ColorBrightYellow,
	sim.KindBird:      core.ColorBrightRed,
	sim.KindLBear:     core.ColorOrange,
	sim.KindMovingBox: core.ColorBrightCyan,
	sim.KindBox:       core.ColorYellow,
	sim.KindWall:      core.ColorGray,
	sim.KindBullet:    core.ColorBrightWhite,
	sim.KindLaserHead: core.ColorBrightMagenta,
	sim.KindGun:       core.ColorCyan,
}

// buildPalette overlays a kind-name -> color-name theme on the defaults.
// Unknown names are ignored.
func buildPalette(theme map[string]string) map[sim.Kind]core.Color {
	p := make(map[sim.Kind]core.Color, len(defaultPalette))
	for k, c := range defaultPalette {
		p[k] = c
	}
	for name, colorName := range theme {
		kind, err := sim.ParseKind(name)
		if err != nil {
			continue
		}
		if c, ok := core.ParseColor(colorName); ok {
			p[kind] = c
		}
	}
	return p
}

// Glyph returns the board rune for a sprite.
func Glyph(s sim.Sprite, dir core.Coord) rune {
	if r, ok := tileGlyphs[s.Tile]; ok && s.Kind == sim.KindBird {
		return r
	}
	if s.Kind == sim.KindLaserHead {
		if dir.X != 0 {
			return '─'
		}
		return '│'
	}
	if r, ok := kindGlyphs[s.Kind]; ok {
		return r
	}
	return '?'
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderOverlay(dst, "Level failed to load", errText(g.loadErr))
		return
	}

	g.renderHUD(dst)

	offX, offY, ok := g.boardOrigin(dst)
	if !ok {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.world.Width(), g.world.Height()+hudHeight))
		return
	}
	g.renderBoard(dst, offX, offY)

	switch {
	case g.won:
		g.renderOverlay(dst, "Level cleared!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Robbo destroyed", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardOrigin centers the grid below the HUD.
func (g *Game) boardOrigin(dst *core.Screen) (int, int, bool) {
	w, h := g.world.Width(), g.world.Height()
	if dst.Width() < w || dst.Height() < h+hudHeight {
		return 0, 0, false
	}
	return (dst.Width() - w) / 2, hudHeight, true
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Robbo: %s  Score: %d  Creatures: %d/%d  Tick: %d",
		g.level.Name, g.score, g.countCreatures(), g.creatures, g.world.Clock.Tick())
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws every sprite in creation order.
func (g *Game) renderBoard(dst *core.Screen, offX, offY int) {
	for _, s := range g.world.Sprites() {
		dir, _ := g.world.Components.MovingDir.Get(s.Entity)
		dst.SetColored(offX+s.Pos.X, offY+s.Pos.Y, Glyph(s, dir), g.palette[s.Kind])
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
