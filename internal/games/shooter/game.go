// Package shooter implements Space Shooter: fly a ship, shoot falling meteors
// and survive while the game speeds up with every level.
package shooter

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "shooter"

// Minimum playfield size.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// State is the session state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "gameover"
	}
	return "playing"
}

var (
	settingsMu sync.RWMutex
	settingCfg *config.ShooterConfig
	settingLib *assets.Library

	defaultLibOnce sync.Once
	defaultLib     *assets.Library
)

// Configure sets the tuning and assets for games created through the registry.
func Configure(cfg config.ShooterConfig, lib *assets.Library) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingCfg = &cfg
	settingLib = lib
}

func configured() (config.ShooterConfig, *assets.Library) {
	settingsMu.RLock()
	cfg, lib := settingCfg, settingLib
	settingsMu.RUnlock()

	if lib == nil {
		defaultLibOnce.Do(func() {
			defaultLib = assets.Load(assets.Embedded(), nil)
		})
		lib = defaultLib
	}
	if cfg == nil {
		return config.DefaultShooterConfig(), lib
	}
	return *cfg, lib
}

func init() {
	registry.Register(ID, func() registry.Game {
		cfg, lib := configured()
		return New(cfg, lib)
	})
}

// Game is one Space Shooter session. It owns every entity and all session
// state; restart rebuilds it in place.
type Game struct {
	cfg     config.ShooterConfig
	lib     *assets.Library
	runtime core.RuntimeConfig
	rng     *rand.Rand

	state    State
	paused   bool
	tick     uint64
	clock    time.Duration // Simulated play time, drives the weapon
	restarts int64

	view       core.RectF
	player     Player
	meteors    *Arena
	lasers     *Arena
	explosions *Arena
	stars      *Arena

	spawner  *Spawner
	weapon   *Weapon
	progress *Progression

	events         []core.Event
	screenTooSmall bool
}

// New creates a game with the given tuning and assets.
// Call Reset before the first Step.
func New(cfg config.ShooterConfig, lib *assets.Library) *Game {
	return &Game{
		cfg:        cfg,
		lib:        lib,
		meteors:    NewArena(KindMeteor),
		lasers:     NewArena(KindLaser),
		explosions: NewArena(KindExplosion),
		stars:      NewArena(KindStar),
		spawner:    NewSpawner(cfg.Levels),
		weapon:     NewWeapon(cfg.Levels, cfg.Laser.Speed),
		progress:   NewProgression(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// Reset starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.restarts = 0
	g.begin()
}

// begin builds a new session on the current runtime config. Restarts get a
// seed derived from the runtime seed so each run differs but stays
// reproducible.
func (g *Game) begin() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed + g.restarts))
	g.view = core.RectF{W: float64(g.runtime.ScreenW), H: float64(g.runtime.ScreenH)}
	g.screenTooSmall = g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH

	g.state = StatePlaying
	g.paused = false
	g.tick = 0
	g.clock = 0
	g.events = nil

	g.meteors.Reset()
	g.lasers.Reset()
	g.explosions.Reset()
	g.stars.Reset()
	g.spawner.Reset()
	g.weapon.Reset()
	g.progress.Reset()

	g.player = Player{
		Entity: Entity{Kind: KindPlayer, Pos: core.V(g.view.W/2, g.view.H*0.75), alive: true},
		Speed:  g.cfg.Player.Speed,
	}
	g.player.Pos = clampCenter(g.player.Pos, g.playerSize(), g.view)

	for range g.cfg.Stars.Count {
		g.stars.Spawn(Entity{Pos: core.V(
			float64(g.rng.Intn(max(g.runtime.ScreenW, 1))),
			float64(g.rng.Intn(max(g.runtime.ScreenH, 1))),
		)})
	}
}

// Resize adapts the playfield to a new screen size without ending the
// session. The player is pulled back inside the new bounds; everything else
// is culled by the next Step if it no longer fits.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = core.RectF{W: float64(w), H: float64(h)}
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
	g.player.Pos = clampCenter(g.player.Pos, g.playerSize(), g.view)
}

// Step advances the session by one tick of in.Elapsed.
// Order: kinematics, collisions, spawn and fire, progression, state check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.restarts++
			g.begin()
		}
		return g.result()
	}

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	dt := in.Delta(g.cfg.Timing.MaxFrame())
	g.tick++
	g.clock += dt
	level := g.progress.Level()

	g.advance(in, dt.Seconds())
	hits := g.resolveCollisions()
	g.spawnAndFire(in, dt, level)
	g.bookkeep(dt, hits, level)

	if g.progress.Lives() == 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver, g.player.Pos)
	}

	g.meteors.Compact()
	g.lasers.Compact()
	g.explosions.Compact()

	return g.result()
}

// advance moves every entity and removes the ones that left the playfield,
// outlived their lifetime or finished animating.
func (g *Game) advance(in core.InputFrame, dt float64) {
	g.player.Pos = MovePlayer(g.player.Pos, in.MoveAxis(), g.player.Speed, dt, g.playerSize(), g.view)
	g.player.Age += dt
	g.player.Invulnerable = max(g.player.Invulnerable-dt, 0)

	meteorView := g.meteorView()
	g.meteors.Each(func(i int, m *Entity) {
		m.Pos = Integrate(m.Pos, m.Vel, dt)
		m.Rotation = AdvanceRotation(m.Rotation, m.Spin, dt)
		m.Age += dt
		expired := g.cfg.Meteor.Lifetime > 0 && m.Age >= g.cfg.Meteor.Lifetime
		if expired || OffScreen(box(m.Pos, sprite(g.lib, m)), meteorView, g.cfg.Meteor.DespawnMargin) {
			g.meteors.Kill(i)
		}
	})

	// Lasers live as long as they can still meet a meteor entering from above.
	g.lasers.Each(func(i int, l *Entity) {
		l.Pos = Integrate(l.Pos, l.Vel, dt)
		l.Age += dt
		if OffScreen(box(l.Pos, sprite(g.lib, l)), meteorView, 0) {
			g.lasers.Kill(i)
		}
	})

	frames := float64(len(g.lib.Explosion))
	g.explosions.Each(func(i int, e *Entity) {
		e.Frame += g.cfg.Explosion.FPS * dt
		e.Age += dt
		if e.Frame >= frames {
			g.explosions.Kill(i)
		}
	})
}

// meteorView extends the view upward over the spawn band so meteors are not
// culled before they enter.
func (g *Game) meteorView() core.RectF {
	above := g.cfg.Meteor.SpawnMaxAbove + float64(g.lib.Meteor[0].Height())
	return core.RectF{X: g.view.X, Y: g.view.Y - above, W: g.view.W, H: g.view.H + above}
}

func (g *Game) spawnAndFire(in core.InputFrame, dt time.Duration, level int) {
	if g.spawner.Update(dt, level) {
		g.meteors.Spawn(newMeteor(g.rng, g.cfg, level, g.view.W, g.lib.Meteor[0]))
	}

	if in.Has(core.ActionFire) {
		if laser, ok := g.weapon.TryFire(g.clock, level, g.muzzle()); ok {
			g.lasers.Spawn(laser)
			g.emit(core.EventLaserFired, laser.Pos)
		}
	}
}

// muzzle is the laser spawn point: its bottom edge centered on the ship's top edge.
func (g *Game) muzzle() core.Vec2 {
	top := g.player.Pos.Y - float64(g.lib.Player.Height())/2
	return core.V(g.player.Pos.X, top-float64(g.lib.Laser.Height())/2)
}

func (g *Game) bookkeep(dt time.Duration, hits Collisions, level int) {
	g.progress.RecordSurvival(dt)
	for range hits.Kills {
		g.progress.RecordKill()
	}
	for range hits.Damage {
		g.progress.RecordDamage()
	}
	if next := g.progress.Level(); next > level {
		g.emit(core.EventLevelUp, g.player.Pos)
	}
}

func (g *Game) playerSize() core.Vec2 {
	return core.V(float64(g.lib.Player.Width()), float64(g.lib.Player.Height()))
}

func (g *Game) emit(kind core.EventKind, pos core.Vec2) {
	g.events = append(g.events, core.Event{Kind: kind, Pos: pos})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.Score(),
		Level:    g.progress.Level(),
		Lives:    g.progress.Lives(),
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}

// Session returns the session state.
func (g *Game) Session() State {
	return g.state
}

// Survived returns the time survived in the current session.
func (g *Game) Survived() time.Duration {
	return g.progress.Survived()
}

// Kills returns the meteors destroyed in the current session.
func (g *Game) Kills() int {
	return g.progress.Kills()
}

// LiveEntities returns the number of live meteors, lasers and explosions.
// Stars are scenery and not counted.
func (g *Game) LiveEntities() int {
	return g.meteors.Live() + g.lasers.Live() + g.explosions.Live()
}
