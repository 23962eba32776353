package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-shooter/internal/config"
	"github.com/vovakirdan/space-shooter/internal/core"
)

func TestRecordSurvival(t *testing.T) {
	p := NewProgression(config.DefaultShooterConfig())

	for range 3 {
		p.RecordSurvival(400 * time.Millisecond)
	}
	if p.Score() != 10 {
		t.Errorf("score after 1.2s = %d, expected 10", p.Score())
	}
	p.RecordSurvival(800 * time.Millisecond)
	if p.Score() != 20 {
		t.Errorf("score after 2.0s = %d, expected 20", p.Score())
	}
	p.RecordSurvival(-time.Second)
	p.RecordSurvival(0)
	if p.Score() != 20 || p.Survived() != 2*time.Second {
		t.Errorf("non-positive survival changed state: score %d, survived %v", p.Score(), p.Survived())
	}
}

func TestRecordKill(t *testing.T) {
	p := NewProgression(config.DefaultShooterConfig())
	p.RecordKill()
	p.RecordKill()
	if p.Score() != 40 || p.Kills() != 2 {
		t.Errorf("score = %d, kills = %d, expected 40 and 2", p.Score(), p.Kills())
	}
}

func TestRecordDamage(t *testing.T) {
	p := NewProgression(config.DefaultShooterConfig())
	want := []bool{false, false, true, true}
	for i, w := range want {
		if got := p.RecordDamage(); got != w {
			t.Errorf("RecordDamage() #%d = %v, expected %v", i+1, got, w)
		}
		if p.Lives() < 0 || p.Lives() > p.MaxLives() {
			t.Fatalf("lives = %d out of range", p.Lives())
		}
	}
	if p.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", p.Lives())
	}

	p.Reset()
	if p.Lives() != 3 || p.Score() != 0 || p.Level() != 1 {
		t.Errorf("after Reset lives=%d score=%d level=%d", p.Lives(), p.Score(), p.Level())
	}
}

func TestLevelIdempotentAndMonotonic(t *testing.T) {
	p := NewProgression(config.DefaultShooterConfig())
	prev := 0
	for s := 0; s <= 3000; s++ {
		l := p.LevelFor(s)
		if again := p.LevelFor(s); again != l {
			t.Fatalf("LevelFor(%d) = %d then %d", s, l, again)
		}
		if l < prev {
			t.Fatalf("LevelFor(%d) = %d dropped below %d", s, l, prev)
		}
		prev = l
	}
}

func TestLevelConsistentAcrossCallFrequency(t *testing.T) {
	// Querying every award or only at the end must agree.
	a := NewProgression(config.DefaultShooterConfig())
	b := NewProgression(config.DefaultShooterConfig())
	for range 50 {
		a.RecordKill()
		a.RecordSurvival(700 * time.Millisecond)
		_ = a.Level()
		b.RecordKill()
		b.RecordSurvival(700 * time.Millisecond)
	}
	if a.Level() != b.Level() || a.Score() != b.Score() {
		t.Errorf("level %d/%d, score %d/%d", a.Level(), b.Level(), a.Score(), b.Score())
	}
}

func TestWeaponCooldown(t *testing.T) {
	levels := config.DefaultShooterConfig().Levels
	w := NewWeapon(levels, 30)
	origin := core.V(10, 10)

	if _, ok := w.TryFire(0, 1, origin); !ok {
		t.Fatal("first shot should always fire")
	}
	if _, ok := w.TryFire(399*time.Millisecond, 1, origin); ok {
		t.Error("shot inside the cooldown fired")
	}
	laser, ok := w.TryFire(400*time.Millisecond, 1, origin)
	if !ok {
		t.Fatal("shot at the cooldown boundary should fire")
	}
	if laser.Kind != KindLaser || laser.Pos != origin || laser.Vel != core.V(0, -30) {
		t.Errorf("laser = %+v", laser)
	}

	// Higher levels never wait longer.
	for lvl := 2; lvl <= 10; lvl++ {
		if levels.Cooldown(lvl) > levels.Cooldown(lvl-1) {
			t.Errorf("cooldown grows at level %d", lvl)
		}
	}
	w.Reset()
	if !w.Ready(0, 1) {
		t.Error("Reset should allow an immediate shot")
	}
}

func TestSpawnerRepeats(t *testing.T) {
	s := NewSpawner(config.DefaultShooterConfig().Levels)
	var got []int
	for tick := 1; tick <= 130; tick++ {
		if s.Update(10*time.Millisecond, 1) {
			got = append(got, tick)
		}
	}
	if len(got) != 2 || got[0] != 60 || got[1] != 120 {
		t.Errorf("spawns at ticks %v, expected [60 120]", got)
	}
	if s.Update(-time.Second, 1) || s.Elapsed() != 100*time.Millisecond {
		t.Errorf("negative dt changed the timer: elapsed %v", s.Elapsed())
	}
}

func TestNewMeteorRanges(t *testing.T) {
	g := newTestGame(t)
	cfg := g.cfg
	s := g.lib.Meteor[0]
	for range 500 {
		m := newMeteor(g.rng, cfg, 3, 80, s)
		b := box(m.Pos, s)
		if b.X < 0 || b.Right() > 80 {
			t.Fatalf("meteor box %v outside the width", b)
		}
		if b.Bottom() > 0 {
			t.Fatalf("meteor box %v starts inside the view", b)
		}
		if m.Vel.Y <= 0 {
			t.Fatalf("meteor velocity %v is not downward", m.Vel)
		}
		speedMul := cfg.Levels.SpeedMultiplier(3)
		if m.Vel.Y < cfg.Meteor.MinSpeed*speedMul-1e-9 || m.Vel.Y > cfg.Meteor.MaxSpeed*speedMul+1e-9 {
			t.Fatalf("meteor fall speed %v outside range", m.Vel.Y)
		}
		spin := m.Spin
		if spin < 0 {
			spin = -spin
		}
		if spin < cfg.Meteor.MinSpin || spin > cfg.Meteor.MaxSpin {
			t.Fatalf("meteor spin %v outside range", m.Spin)
		}
	}
}

func TestRotationFrame(t *testing.T) {
	tests := []struct {
		rot  float64
		n    int
		want int
	}{
		{0, 4, 0},
		{89.9, 4, 0},
		{90, 4, 1},
		{359.9, 4, 3},
		{180, 1, 0},
	}
	for _, tt := range tests {
		if got := rotationFrame(tt.rot, tt.n); got != tt.want {
			t.Errorf("rotationFrame(%v, %d) = %d, expected %d", tt.rot, tt.n, got, tt.want)
		}
	}
}
