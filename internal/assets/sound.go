package assets

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Sound is a fully decoded clip held in memory, so it can be played any
// number of times. A Sound without samples is silent.
type Sound struct {
	Name   string
	Volume float64 // Relative gain in beep's exponential volume units, 0 is unchanged
	buf    *beep.Buffer
}

// DecodeWAV reads a whole WAV stream into memory.
func DecodeWAV(name string, r io.Reader) (*Sound, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return &Sound{Name: name, buf: buf}, nil
}

// SilentSound returns a placeholder that plays nothing.
func SilentSound(name string) *Sound {
	return &Sound{Name: name}
}

// Silent reports whether the sound has no samples.
func (s *Sound) Silent() bool {
	return s == nil || s.buf == nil || s.buf.Len() == 0
}

// Format returns the sample format. Silent sounds report a zero format.
func (s *Sound) Format() beep.Format {
	if s.Silent() {
		return beep.Format{}
	}
	return s.buf.Format()
}

// Len returns the number of samples.
func (s *Sound) Len() int {
	if s.Silent() {
		return 0
	}
	return s.buf.Len()
}

// Duration returns the clip length.
func (s *Sound) Duration() time.Duration {
	if s.Silent() {
		return 0
	}
	return s.buf.Format().SampleRate.D(s.buf.Len())
}

// Streamer returns a fresh seekable stream over the clip, or nil when silent.
func (s *Sound) Streamer() beep.StreamSeeker {
	if s.Silent() {
		return nil
	}
	return s.buf.Streamer(0, s.buf.Len())
}
