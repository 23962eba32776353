// Package assets loads sprites and sounds for the shooter.
//
// Sprites are plain text files: one line per row, spaces are transparent.
// Sounds are WAV files decoded with beep. A Provider finds assets by name;
// Library loads the full set once and substitutes placeholders for anything
// missing, so the game never has to handle an asset error.
package assets

import "errors"

// ErrAssetMissing is returned by a Provider when no asset exists under a name.
var ErrAssetMissing = errors.New("assets: asset missing")

// Provider loads named assets.
type Provider interface {
	LoadImage(name string) (*Sprite, error)
	LoadSound(name string) (*Sound, error)
}

// Image names.
const (
	ImagePlayer = "player"
	ImageLaser  = "laser"
	ImageStar   = "star"
)

// Animation prefixes. Frame i of an animation is named "<prefix>/<i>".
const (
	AnimMeteor    = "meteor"
	AnimExplosion = "explosion"
)

// Frame counts of the bundled animations.
const (
	MeteorFrames    = 4
	ExplosionFrames = 21
)

// Sound names.
const (
	SoundLaser     = "laser"
	SoundExplosion = "explosion"
	SoundDamage    = "damage"
	SoundGameOver  = "game_over"
	SoundMusic     = "music"
)
