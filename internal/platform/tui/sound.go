package tui

import (
	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/audio"
	"github.com/vovakirdan/space-shooter/internal/core"
)

// eventSounds maps game events to the sound played for them.
var eventSounds = map[core.EventKind]string{
	core.EventLaserFired:    assets.SoundLaser,
	core.EventExplosion:     assets.SoundExplosion,
	core.EventPlayerDamaged: assets.SoundDamage,
	core.EventGameOver:      assets.SoundGameOver,
}

// soundboard plays the sounds of a session.
type soundboard struct {
	player audio.Player
	lib    *assets.Library
	music  bool
}

func newSoundboard(p audio.Player, lib *assets.Library) *soundboard {
	if p == nil {
		p = audio.Nop{}
	}
	if lib == nil {
		lib = assets.Placeholders()
	}
	return &soundboard{player: p, lib: lib}
}

// Events plays one sound per event kind present in events. Several
// explosions in the same tick sound as one.
func (s *soundboard) Events(events []core.Event) {
	played := make(map[string]bool, len(events))
	for _, e := range events {
		name, ok := eventSounds[e.Kind]
		if !ok || played[name] {
			continue
		}
		played[name] = true
		s.player.Play(s.lib.Sound(name))
	}
}

// Music keeps the background music running while the session is being
// played and silent otherwise.
func (s *soundboard) Music(state core.GameState) {
	want := !state.GameOver && !state.Paused
	switch {
	case want && !s.music:
		s.player.PlayMusic(s.lib.Sound(assets.SoundMusic))
	case !want && s.music:
		s.player.StopMusic()
	}
	s.music = want
}

// Stop silences the music.
func (s *soundboard) Stop() {
	if s.music {
		s.player.StopMusic()
		s.music = false
	}
}
