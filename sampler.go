package asciipix

import (
	"math"

	"github.com/asciipix/asciipix/imageutil"
)

// Cell is one sampled region of the source image: a perceptual weight in
// [0, 1] and the region's mean color for color-mode rendering.
type Cell struct {
	Weight float64
	Color  imageutil.RGB
}

// CellGrid is the downsampled form of a source image, one Cell per output
// character position. Rows run top to bottom, columns left to right.
type CellGrid struct {
	Cols  int
	Rows  int
	cells []Cell
}

// NewCellGrid allocates a zeroed grid of the given dimensions.
func NewCellGrid(cols, rows int) *CellGrid {
	return &CellGrid{
		Cols:  cols,
		Rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// At returns the cell at (row, col).
func (g *CellGrid) At(row, col int) Cell {
	return g.cells[row*g.Cols+col]
}

func (g *CellGrid) set(row, col int, c Cell) {
	g.cells[row*g.Cols+col] = c
}

// GridRows derives the row count that preserves the source aspect ratio
// for a column count and glyph cell geometry. Glyph cells are taller than
// wide, so the ratio glyphW/glyphH compensates for the vertical stretch a
// naive square grid would introduce. Always at least 1.
func GridRows(srcW, srcH, cols, glyphW, glyphH int) int {
	rows := int(math.Round(float64(cols) *
		float64(srcH) / float64(srcW) *
		float64(glyphW) / float64(glyphH)))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// SampleCells partitions the source into cols x rows regions and computes
// each region's mean luminance and mean color. Region boundaries are
// computed by proportional division of the full image extent, so
// truncation bias cannot accumulate across the grid. Output is fully
// deterministic for a given source and grid size.
func SampleCells(src *imageutil.RGBAImage, cols, rows int) *CellGrid {
	w, h := src.Width(), src.Height()
	grid := NewCellGrid(cols, rows)

	for row := 0; row < rows; row++ {
		y0, y1 := span(row, rows, h)
		for col := 0; col < cols; col++ {
			x0, x1 := span(col, cols, w)
			grid.set(row, col, sampleRegion(src, x0, y0, x1, y1))
		}
	}
	return grid
}

// span maps grid index i of n onto the pixel range [lo, hi) of the given
// extent. When the grid is finer than the source the range is clamped to
// cover at least one pixel.
func span(i, n, extent int) (lo, hi int) {
	lo = int(float64(i) * float64(extent) / float64(n))
	hi = int(float64(i+1) * float64(extent) / float64(n))
	if i == n-1 {
		hi = extent
	}
	if lo > extent-1 {
		lo = extent - 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// sampleRegion computes the mean Rec.601 luminance and mean color over
// [x0,x1) x [y0,y1). Pixel values are alpha-premultiplied, so fully
// transparent pixels contribute zero weight and read as the lightest cell.
func sampleRegion(src *imageutil.RGBAImage, x0, y0, x1, y1 int) Cell {
	var lum, rSum, gSum, bSum float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := src.RGBAAt(x, y)
			lum += 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
			rSum += float64(px.R)
			gSum += float64(px.G)
			bSum += float64(px.B)
		}
	}

	n := float64((x1 - x0) * (y1 - y0))
	weight := lum / (255 * n)
	if weight > 1 {
		weight = 1
	}
	return Cell{
		Weight: weight,
		Color: imageutil.RGB{
			R: uint8(rSum/n + 0.5),
			G: uint8(gSum/n + 0.5),
			B: uint8(bSum/n + 0.5),
		},
	}
}
