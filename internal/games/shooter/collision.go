package shooter

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// Collisions summarizes one collision pass.
type Collisions struct {
	Kills    int // Meteors destroyed by lasers
	Damage   int // Meteors that hurt the player
	Absorbed int // Meteors that hit the player while invulnerable
}

// overlaps reports whether two entities touch, testing boxes first and
// masks only when the boxes meet.
func overlaps(a *Entity, sa *assets.Sprite, b *Entity, sb *assets.Sprite) bool {
	ax, ay := origin(a.Pos, sa)
	bx, by := origin(b.Pos, sb)
	if bx >= ax+sa.Width() || ax >= bx+sb.Width() {
		return false
	}
	if by >= ay+sa.Height() || ay >= by+sb.Height() {
		return false
	}
	return sa.Mask().Overlaps(sb.Mask(), bx-ax, by-ay)
}

// resolveCollisions tests every laser and the player against every meteor.
// Each laser stops at the first meteor it hits; a meteor destroyed earlier in
// the pass cannot be hit again. Every hit spawns an explosion.
func (g *Game) resolveCollisions() Collisions {
	var c Collisions

	for li := 0; li < g.lasers.Len(); li++ {
		laser := g.lasers.At(li)
		if laser == nil {
			continue
		}
		ls := sprite(g.lib, laser)
		for mi := 0; mi < g.meteors.Len(); mi++ {
			meteor := g.meteors.At(mi)
			if meteor == nil || !overlaps(laser, ls, meteor, sprite(g.lib, meteor)) {
				continue
			}
			pos := meteor.Pos
			g.lasers.Kill(li)
			g.meteors.Kill(mi)
			c.Kills++
			g.emit(core.EventMeteorDestroyed, pos)
			g.explode(pos)
			break
		}
	}

	ps := sprite(g.lib, &g.player.Entity)
	for mi := 0; mi < g.meteors.Len(); mi++ {
		meteor := g.meteors.At(mi)
		if meteor == nil || !overlaps(&g.player.Entity, ps, meteor, sprite(g.lib, meteor)) {
			continue
		}
		pos := meteor.Pos
		g.meteors.Kill(mi)
		g.explode(pos)
		if g.player.Invulnerable > 0 {
			c.Absorbed++
			continue
		}
		c.Damage++
		g.player.Invulnerable = g.invulnerability()
		g.emit(core.EventPlayerDamaged, g.player.Pos)
	}

	return c
}

// invulnerability is how long the damage explosion plays.
func (g *Game) invulnerability() float64 {
	return float64(len(g.lib.Explosion)) / g.cfg.Explosion.FPS
}

func (g *Game) explode(pos core.Vec2) {
	g.explosions.Spawn(Entity{Pos: pos})
	g.emit(core.EventExplosion, pos)
}
