package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-shooter/internal/core"
)

// Glyphs and colors
const (
	HeartFull  = '♥'
	HeartEmpty = '♡'

	colorStar      = core.ColorGray
	colorMeteor    = core.ColorOrange
	colorLaser     = core.ColorBrightRed
	colorExplosion = core.ColorBrightYellow
	colorPlayer    = core.ColorBrightCyan
	colorHUD       = core.ColorBrightWhite
	colorFrame     = core.ColorGray
)

// Render draws the playfield, then the HUD, then any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH), core.ColorRed)
		return
	}

	g.stars.Each(func(_ int, e *Entity) { g.draw(dst, e, colorStar) })
	g.meteors.Each(func(_ int, e *Entity) { g.draw(dst, e, colorMeteor) })
	g.lasers.Each(func(_ int, e *Entity) { g.draw(dst, e, colorLaser) })
	if g.player.Invulnerable <= 0 || g.tick/4%2 == 0 {
		g.draw(dst, &g.player.Entity, colorPlayer)
	}
	g.explosions.Each(func(_ int, e *Entity) { g.draw(dst, e, colorExplosion) })

	g.renderHUD(dst)

	switch {
	case g.state == StateGameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderBanner(dst, []string{"PAUSED", "", "P to resume"}, core.ColorBrightYellow)
	}
}

func (g *Game) draw(dst *core.Screen, e *Entity, c core.Color) {
	s := sprite(g.lib, e)
	x, y := origin(e.Pos, s)
	dst.DrawSprite(s, x, y, c)
}

// renderHUD draws the level top left, hearts top right and the boxed score
// at the bottom center.
func (g *Game) renderHUD(dst *core.Screen) {
	level := fmt.Sprintf("Level: %d", g.progress.Level())
	dst.DrawTextColored(1, 0, level, colorHUD)

	// Weapon indicator: gray while the laser cools down
	weapon := core.ColorGray
	if g.weapon.Ready(g.clock, g.progress.Level()) {
		weapon = core.ColorGreen
	}
	dst.DrawTextColored(len(level)+3, 0, "LASER", weapon)

	maxLives := g.progress.MaxLives()
	x := dst.Width() - 2*maxLives
	for i := range maxLives {
		if i < g.progress.Lives() {
			dst.SetColored(x+2*i, 0, HeartFull, core.ColorRed)
		} else {
			dst.SetColored(x+2*i, 0, HeartEmpty, core.ColorGray)
		}
	}

	text := fmt.Sprintf("Score: %d", g.progress.Score())
	w := len([]rune(text)) + 4
	frame := core.NewRect((dst.Width()-w)/2, dst.Height()-3, w, 3)
	dst.DrawBox(frame, colorFrame)
	dst.DrawTextColored(frame.X+2, frame.Y+1, text, colorHUD)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	g.renderBanner(dst, []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", g.progress.Score()),
		"",
		"SPACE/R to play again, ESC/Q to quit",
	}, core.ColorBrightRed)
}

// renderBanner draws lines centered in a cleared box. The first line uses c.
func (g *Game) renderBanner(dst *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w = min(w+4, dst.Width())
	h := len(lines) + 2
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, colorFrame)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(r.Y+1+i, l, color)
	}
}
