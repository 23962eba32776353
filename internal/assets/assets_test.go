package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestParseSprite(t *testing.T) {
	s, err := ParseSprite("ship", " A\n/#\\\n")
	if err != nil {
		t.Fatalf("ParseSprite() error = %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := string(s.Rows()[0]); got != " A " {
		t.Errorf("row 0 = %q, expected padded %q", got, " A ")
	}
	if s.Mask().Count() != 4 {
		t.Errorf("mask count = %d, expected 4", s.Mask().Count())
	}
	if s.Mask().At(0, 0) {
		t.Error("blank cell should be transparent")
	}
}

func TestParseSpriteKeepsLeadingBlankRows(t *testing.T) {
	s, err := ParseSprite("x", "   \n * \n")
	if err != nil {
		t.Fatalf("ParseSprite() error = %v", err)
	}
	if s.Height() != 2 || !s.Mask().At(1, 1) {
		t.Errorf("expected opaque cell at (1,1) in a 2-row sprite, got height %d", s.Height())
	}
}

func TestParseSpriteRejectsBlank(t *testing.T) {
	for _, text := range []string{"", "\n", "   \n  "} {
		if _, err := ParseSprite("blank", text); err == nil {
			t.Errorf("ParseSprite(%q) expected error", text)
		}
	}
}

func TestMaskOverlaps(t *testing.T) {
	ring := NewMask(
		"###",
		"#.#",
		"###",
	)
	dot := NewMask("#")

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"on edge", 0, 0, true},
		{"in hole", 1, 1, false},
		{"outside right", 3, 1, false},
		{"outside above", 1, -1, false},
		{"corner", 2, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ring.Overlaps(dot, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlaps(dot, %d, %d) = %v, expected %v", tt.dx, tt.dy, got, tt.want)
			}
			// Overlap is symmetric under negated offsets.
			if got := dot.Overlaps(ring, -tt.dx, -tt.dy); got != tt.want {
				t.Errorf("reverse Overlaps(ring, %d, %d) = %v, expected %v", -tt.dx, -tt.dy, got, tt.want)
			}
		})
	}
}

func TestMaskOverlapsTransparentCorners(t *testing.T) {
	// Bounding boxes intersect but only blank cells meet.
	a := NewMask(
		"#.",
		"..",
	)
	b := NewMask(
		"..",
		".#",
	)
	if a.Overlaps(b, 0, 0) {
		t.Error("opaque cells do not meet, expected no overlap")
	}
	if !a.Overlaps(b, -1, -1) {
		t.Error("expected overlap when b's opaque cell is moved onto a's")
	}
}

func TestFSProvider(t *testing.T) {
	p := NewFSProvider(fstest.MapFS{
		"sprites/player.txt": {Data: []byte("^\n")},
		"sounds/bad.wav":     {Data: []byte("not a wav")},
	})

	s, err := p.LoadImage("player")
	if err != nil {
		t.Fatalf("LoadImage(player) error = %v", err)
	}
	if s.Name != "player" || s.Width() != 1 {
		t.Errorf("LoadImage(player) = %+v", s)
	}

	if _, err := p.LoadImage("meteor/0"); !errors.Is(err, ErrAssetMissing) {
		t.Errorf("LoadImage(missing) error = %v, expected ErrAssetMissing", err)
	}
	if _, err := p.LoadSound("laser"); !errors.Is(err, ErrAssetMissing) {
		t.Errorf("LoadSound(missing) error = %v, expected ErrAssetMissing", err)
	}
	_, err = p.LoadSound("bad")
	if err == nil || errors.Is(err, ErrAssetMissing) {
		t.Errorf("LoadSound(bad) error = %v, expected decode error", err)
	}
}

func TestEmbeddedComplete(t *testing.T) {
	lib := Load(Embedded(), nil)
	if n := lib.Missing(); n != 0 {
		t.Fatalf("embedded library has %d missing assets", n)
	}
	if len(lib.Meteor) != MeteorFrames || len(lib.Explosion) != ExplosionFrames {
		t.Fatalf("frames = %d/%d", len(lib.Meteor), len(lib.Explosion))
	}
	for i, f := range lib.Meteor {
		if f.Width() != lib.Meteor[0].Width() || f.Height() != lib.Meteor[0].Height() {
			t.Errorf("meteor frame %d size differs from frame 0", i)
		}
	}
	if lib.Sound(SoundLaser).Duration() <= 0 {
		t.Error("laser sound should have samples")
	}
}

func TestPlaceholderFallback(t *testing.T) {
	lib := Placeholders()
	if !lib.Player.Placeholder() || lib.Player.Mask().Count() == 0 {
		t.Error("player placeholder should be a solid block")
	}
	for name, s := range lib.Sounds {
		if !s.Silent() {
			t.Errorf("sound %s should be silent", name)
		}
		if s.Streamer() != nil {
			t.Errorf("silent sound %s returned a streamer", name)
		}
	}
	if !lib.Sound("unknown").Silent() {
		t.Error("unknown sound should be silent")
	}
	want := 3 + MeteorFrames + ExplosionFrames + len(lib.Sounds)
	if lib.Missing() != want {
		t.Errorf("Missing() = %d, expected %d", lib.Missing(), want)
	}
}

func TestLayeredOverride(t *testing.T) {
	user := NewFSProvider(fstest.MapFS{
		"sprites/player.txt": {Data: []byte("@@\n")},
	})
	lib := Load(Layered{user, Embedded()}, nil)
	if got := string(lib.Player.Rows()[0]); got != "@@" {
		t.Errorf("player row = %q, expected override", got)
	}
	if lib.Laser.Placeholder() {
		t.Error("laser should fall through to the bundled set")
	}
}
