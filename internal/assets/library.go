package assets

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Library is the complete asset set used by one game.
// Every field is non-nil after Load.
type Library struct {
	Player    *Sprite
	Laser     *Sprite
	Star      *Sprite
	Meteor    []*Sprite // Rotation frames, a quarter turn apart
	Explosion []*Sprite // Animation frames in playback order

	Sounds map[string]*Sound
}

// Placeholder sizes, roughly those of the bundled sprites.
var placeholderSize = map[string][2]int{
	ImagePlayer:   {5, 3},
	ImageLaser:    {1, 2},
	ImageStar:     {1, 1},
	AnimMeteor:    {6, 3},
	AnimExplosion: {3, 1},
}

// Load fetches every asset from p. Missing or broken assets are replaced by
// placeholders and reported on logger, which may be nil.
func Load(p Provider, logger *log.Logger) *Library {
	l := &loader{p: p, logger: logger}
	lib := &Library{
		Player: l.image(ImagePlayer, ImagePlayer),
		Laser:  l.image(ImageLaser, ImageLaser),
		Star:   l.image(ImageStar, ImageStar),
		Sounds: make(map[string]*Sound),
	}
	lib.Meteor = l.frames(AnimMeteor, MeteorFrames)
	lib.Explosion = l.frames(AnimExplosion, ExplosionFrames)
	for _, name := range []string{SoundLaser, SoundExplosion, SoundDamage, SoundGameOver, SoundMusic} {
		lib.Sounds[name] = l.sound(name)
	}
	lib.Sounds[SoundMusic].Volume = -1.5
	return lib
}

// Placeholders returns a library made only of placeholders. It needs no
// provider and is what tests and headless runs use.
func Placeholders() *Library {
	return Load(Layered{}, nil)
}

// Sound returns the named sound, or a silent one when unknown.
func (lib *Library) Sound(name string) *Sound {
	if s, ok := lib.Sounds[name]; ok {
		return s
	}
	return SilentSound(name)
}

// Missing reports how many assets were replaced by placeholders.
func (lib *Library) Missing() int {
	n := 0
	for _, s := range []*Sprite{lib.Player, lib.Laser, lib.Star} {
		if s.placeholder {
			n++
		}
	}
	for _, frames := range [][]*Sprite{lib.Meteor, lib.Explosion} {
		for _, s := range frames {
			if s.placeholder {
				n++
			}
		}
	}
	for _, s := range lib.Sounds {
		if s.Silent() {
			n++
		}
	}
	return n
}

type loader struct {
	p      Provider
	logger *log.Logger
}

func (l *loader) image(name, kind string) *Sprite {
	s, err := l.p.LoadImage(name)
	if err == nil {
		return s
	}
	l.warn("image", name, err)
	size := placeholderSize[kind]
	s = SolidSprite(name, size[0], size[1])
	s.placeholder = true
	return s
}

func (l *loader) frames(prefix string, n int) []*Sprite {
	out := make([]*Sprite, n)
	for i := range out {
		out[i] = l.image(fmt.Sprintf("%s/%d", prefix, i), prefix)
	}
	return out
}

func (l *loader) sound(name string) *Sound {
	s, err := l.p.LoadSound(name)
	if err == nil {
		return s
	}
	l.warn("sound", name, err)
	return SilentSound(name)
}

func (l *loader) warn(kind, name string, err error) {
	if l.logger == nil {
		return
	}
	if errors.Is(err, ErrAssetMissing) {
		l.logger.Warn("asset missing, using placeholder", "kind", kind, "name", name)
		return
	}
	l.logger.Warn("asset unreadable, using placeholder", "kind", kind, "name", name, "err", err)
}
