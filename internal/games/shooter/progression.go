package shooter

import (
	"time"

	"github.com/vovakirdan/space-shooter/internal/config"
)

// Progression tracks score, lives and survival time for one session.
// Level is always derived from score, never stored.
type Progression struct {
	scoring  config.ScoringConfig
	levels   config.LevelsConfig
	maxLives int

	score    int
	lives    int
	kills    int
	survived time.Duration
	pending  time.Duration // Survival time not yet turned into points
}

// NewProgression creates a tracker with full lives and zero score.
func NewProgression(cfg config.ShooterConfig) *Progression {
	p := &Progression{
		scoring:  cfg.Scoring,
		levels:   cfg.Levels,
		maxLives: cfg.Player.Lives,
	}
	p.Reset()
	return p
}

// Reset restores the initial state.
func (p *Progression) Reset() {
	p.score = 0
	p.lives = p.maxLives
	p.kills = 0
	p.survived = 0
	p.pending = 0
}

// RecordSurvival adds dt of survival. Each whole survival interval is worth
// SurvivalPoints; the remainder carries over. Non-positive dt is ignored.
func (p *Progression) RecordSurvival(dt time.Duration) {
	if dt <= 0 {
		return
	}
	p.survived += dt
	p.pending += dt
	interval := p.scoring.Interval()
	if interval <= 0 {
		return
	}
	for p.pending >= interval {
		p.pending -= interval
		p.score += p.scoring.SurvivalPoints
	}
}

// RecordKill adds the kill bonus.
func (p *Progression) RecordKill() {
	p.kills++
	p.score += p.scoring.KillPoints
}

// RecordDamage removes one life, never going below zero.
// It reports true when no lives are left.
func (p *Progression) RecordDamage() bool {
	if p.lives > 0 {
		p.lives--
	}
	return p.lives == 0
}

// Level returns the level for the current score.
func (p *Progression) Level() int {
	return p.LevelFor(p.score)
}

// LevelFor returns the level for an arbitrary score.
func (p *Progression) LevelFor(score int) int {
	return p.levels.LevelFor(score)
}

func (p *Progression) Score() int              { return p.score }
func (p *Progression) Lives() int              { return p.lives }
func (p *Progression) MaxLives() int           { return p.maxLives }
func (p *Progression) Kills() int              { return p.kills }
func (p *Progression) Survived() time.Duration { return p.survived }
