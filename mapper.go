package asciipix

import "strings"

// CharGrid holds one charset rune per cell, same dimensions as the
// CellGrid it was mapped from.
type CharGrid struct {
	Cols  int
	Rows  int
	runes []rune
}

// NewCharGrid allocates a grid of the given dimensions filled with spaces.
func NewCharGrid(cols, rows int) *CharGrid {
	g := &CharGrid{
		Cols:  cols,
		Rows:  rows,
		runes: make([]rune, cols*rows),
	}
	for i := range g.runes {
		g.runes[i] = ' '
	}
	return g
}

// At returns the rune at (row, col).
func (g *CharGrid) At(row, col int) rune {
	return g.runes[row*g.Cols+col]
}

// Set places a rune at (row, col).
func (g *CharGrid) Set(row, col int, r rune) {
	g.runes[row*g.Cols+col] = r
}

// String renders the grid as newline-joined rows of text.
func (g *CharGrid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			b.WriteRune(g.At(row, col))
		}
	}
	return b.String()
}

// MapCells quantizes every cell weight into a charset index with direct
// linear bucketing: index = floor(weight * len), clamped to the last
// bucket so a weight of exactly 1.0 stays in range. No histogram
// equalization or gamma correction is applied; output density tracks
// input luminance linearly. Never fails for a validated charset.
func MapCells(grid *CellGrid, cs Charset) *CharGrid {
	out := NewCharGrid(grid.Cols, grid.Rows)
	n := len(cs)
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			idx := int(grid.At(row, col).Weight * float64(n))
			if idx < 0 {
				idx = 0
			}
			if idx > n-1 {
				idx = n - 1
			}
			out.Set(row, col, cs[idx])
		}
	}
	return out
}
