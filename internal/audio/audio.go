// Package audio plays the shooter's sound effects and music.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-shooter/internal/assets"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = 100 * time.Millisecond

	resampleQuality = 4
)

// Player plays sounds. Play never blocks and never fails; sounds that cannot
// be played are dropped.
type Player interface {
	Play(snd *assets.Sound)
	PlayMusic(snd *assets.Sound)
	StopMusic()
	Close()
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) Play(*assets.Sound)      {}
func (Nop) PlayMusic(*assets.Sound) {}
func (Nop) StopMusic()              {}
func (Nop) Close()                  {}

// SpeakerPlayer plays through the system audio device. All sounds go through
// one mixer; music is a looping stream that can be paused.
type SpeakerPlayer struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	closed bool
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeakerPlayer opens the audio device. The device is process-wide and
// initialized once; later calls share it.
func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(bufferTime))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	p := &SpeakerPlayer{mixer: &beep.Mixer{}}
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts a one-shot sound.
func (p *SpeakerPlayer) Play(snd *assets.Sound) {
	s := stream(snd)
	if s == nil {
		return
	}
	p.add(s)
}

// PlayMusic replaces the current music with snd, looped forever.
func (p *SpeakerPlayer) PlayMusic(snd *assets.Sound) {
	p.StopMusic()
	if snd.Silent() {
		return
	}
	loop := beep.Loop(-1, snd.Streamer())
	ctrl := &beep.Ctrl{Streamer: withFormat(snd, loop)}

	p.mu.Lock()
	p.music = ctrl
	p.mu.Unlock()
	p.add(ctrl)
}

// StopMusic stops the looping music, if any.
func (p *SpeakerPlayer) StopMusic() {
	p.mu.Lock()
	music := p.music
	p.music = nil
	p.mu.Unlock()
	if music == nil {
		return
	}
	speaker.Lock()
	music.Paused = true
	music.Streamer = nil
	speaker.Unlock()
}

// Close silences the player. The device itself stays open for reuse.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

func (p *SpeakerPlayer) add(s beep.Streamer) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// stream prepares a one-shot playback of snd at the device rate.
func stream(snd *assets.Sound) beep.Streamer {
	if snd.Silent() {
		return nil
	}
	return withFormat(snd, snd.Streamer())
}

// withFormat resamples s to the device rate and applies the sound's volume.
func withFormat(snd *assets.Sound, s beep.Streamer) beep.Streamer {
	if rate := snd.Format().SampleRate; rate != sampleRate {
		s = beep.Resample(resampleQuality, rate, sampleRate, s)
	}
	if snd.Volume != 0 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: snd.Volume}
	}
	return s
}
