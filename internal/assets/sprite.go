package assets

import (
	"fmt"
	"strings"
)

// Sprite is an immutable rune grid with a collision mask.
// Every row has the same width; blank cells are transparent.
type Sprite struct {
	Name string
	rows [][]rune
	mask *Mask

	placeholder bool
}

// ParseSprite builds a sprite from text. Rows are padded to the widest line.
// A single trailing newline is ignored; leading blank rows are kept.
func ParseSprite(name, text string) (*Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("assets: sprite %q is empty", name)
	}
	lines := strings.Split(text, "\n")

	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.ReplaceAll(line, "\t", " "))
		width = max(width, len(rows[i]))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		rows[i] = row
	}

	s := &Sprite{Name: name, rows: rows}
	s.mask = maskFromRows(rows)
	if s.mask.Count() == 0 {
		return nil, fmt.Errorf("assets: sprite %q has no opaque cells", name)
	}
	return s, nil
}

// SolidSprite returns a w x h block sprite, used as a placeholder.
func SolidSprite(name string, w, h int) *Sprite {
	w, h = max(w, 1), max(h, 1)
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = []rune(strings.Repeat("█", w))
	}
	return &Sprite{Name: name, rows: rows, mask: maskFromRows(rows)}
}

// Rows returns the rune grid. Callers must not modify it.
func (s *Sprite) Rows() [][]rune {
	return s.rows
}

// Width returns the sprite width in cells.
func (s *Sprite) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the sprite height in cells.
func (s *Sprite) Height() int {
	return len(s.rows)
}

// Placeholder reports whether the sprite stands in for a missing asset.
func (s *Sprite) Placeholder() bool {
	return s.placeholder
}

// Mask returns the collision mask.
func (s *Sprite) Mask() *Mask {
	return s.mask
}

// Mask is a per-cell opacity grid.
type Mask struct {
	w, h int
	bits []bool
}

func maskFromRows(rows [][]rune) *Mask {
	m := &Mask{h: len(rows)}
	if m.h > 0 {
		m.w = len(rows[0])
	}
	m.bits = make([]bool, m.w*m.h)
	for y, row := range rows {
		for x, r := range row {
			m.bits[y*m.w+x] = r != ' '
		}
	}
	return m
}

// NewMask builds a mask from rows of '#' (opaque) and anything else (clear).
func NewMask(rows ...string) *Mask {
	grid := make([][]rune, len(rows))
	width := 0
	for _, r := range rows {
		width = max(width, len([]rune(r)))
	}
	for y, r := range rows {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
		for x, c := range []rune(r) {
			if c == '#' {
				grid[y][x] = '#'
			}
		}
	}
	return maskFromRows(grid)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height.
func (m *Mask) Height() int { return m.h }

// At reports whether the cell at (x, y) is opaque. Out of range is clear.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps reports whether any opaque cell of m coincides with an opaque cell
// of other, when other's top-left corner sits at (dx, dy) relative to m's.
func (m *Mask) Overlaps(other *Mask, dx, dy int) bool {
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}
