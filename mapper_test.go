package asciipix

import "testing"

func cellGridWithWeights(weights []float64) *CellGrid {
	grid := NewCellGrid(len(weights), 1)
	for i, w := range weights {
		grid.set(0, i, Cell{Weight: w})
	}
	return grid
}

func TestMapCellsLinearBuckets(t *testing.T) {
	cs := Charset("abcd")
	grid := cellGridWithWeights([]float64{0.0, 0.24, 0.25, 0.5, 0.74, 0.75, 0.99, 1.0})
	want := []rune{'a', 'a', 'b', 'c', 'c', 'd', 'd', 'd'}

	chars := MapCells(grid, cs)
	for i, r := range want {
		if got := chars.At(0, i); got != r {
			t.Errorf("weight %f mapped to %q, want %q",
				grid.At(0, i).Weight, got, r)
		}
	}
}

func TestMapCellsBoundaryWeights(t *testing.T) {
	// Exact 0.0 and 1.0 must stay in range for any charset length.
	for _, cs := range []Charset{Charset(" @"), Charset(DefaultCharset), Charset("0123456789")} {
		chars := MapCells(cellGridWithWeights([]float64{0.0, 1.0}), cs)
		if got := chars.At(0, 0); got != cs[0] {
			t.Errorf("len %d: weight 0.0 -> %q, want %q", len(cs), got, cs[0])
		}
		if got := chars.At(0, 1); got != cs[len(cs)-1] {
			t.Errorf("len %d: weight 1.0 -> %q, want %q", len(cs), got, cs[len(cs)-1])
		}
	}
}

func TestMapCellsDuplicateRunes(t *testing.T) {
	// Duplicates collapse resolution but must not fail.
	chars := MapCells(cellGridWithWeights([]float64{0.1, 0.6, 0.9}), Charset("..@@"))
	if got := chars.At(0, 0); got != '.' {
		t.Errorf("low weight -> %q, want '.'", got)
	}
	if got := chars.At(0, 2); got != '@' {
		t.Errorf("high weight -> %q, want '@'", got)
	}
}

func TestMapCellsPreservesDimensions(t *testing.T) {
	grid := NewCellGrid(7, 3)
	chars := MapCells(grid, Charset(DefaultCharset))
	if chars.Cols != 7 || chars.Rows != 3 {
		t.Errorf("char grid %dx%d, want 7x3", chars.Cols, chars.Rows)
	}
}

func TestCharGridString(t *testing.T) {
	g := NewCharGrid(3, 2)
	for col, r := range []rune{'a', 'b', 'c'} {
		g.Set(0, col, r)
	}
	for col, r := range []rune{'d', 'e', 'f'} {
		g.Set(1, col, r)
	}

	if got := g.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, want %q", got, "abc\ndef")
	}
}
