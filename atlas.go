package asciipix

import (
	"fmt"
	"image"
	"sort"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// atlasFontSize is the point size glyphs are rasterized at. At 72 DPI one
// point is one pixel, so the cell height tracks the face's line height.
const atlasFontSize = 16

// blockRunes extends the pre-rendered set beyond printable ASCII so that
// shade- and block-style charsets validate against the atlas.
var blockRunes = []rune{
	'░', '▒', '▓', '█', '▀', '▁', '▂', '▃', '▄', '▅', '▆', '▇',
	'▌', '▍', '▎', '▏', '▐', '▔', '▕',
	'▖', '▗', '▘', '▙', '▚', '▛', '▜', '▝', '▞', '▟',
}

// CoverageMask holds per-pixel glyph opacity at the atlas cell size.
// 0 means background, 255 means full ink; intermediate values carry the
// anti-aliasing produced by the TrueType rasterizer.
type CoverageMask struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the coverage value at (x, y). Out-of-bounds coordinates
// report zero coverage.
func (m *CoverageMask) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

// Coverage returns the mean ink coverage of the mask in [0, 1]. It is the
// measurement behind charset coverage sorting.
func (m *CoverageMask) Coverage() float64 {
	if len(m.Pix) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range m.Pix {
		sum += uint64(v)
	}
	return float64(sum) / (255 * float64(len(m.Pix)))
}

// GlyphAtlas maps runes to fixed-size coverage masks pre-rendered from a
// monospace TrueType face. An atlas is immutable once built and may be
// shared by any number of concurrent conversions without locking.
type GlyphAtlas struct {
	cellWidth  int
	cellHeight int
	glyphs     map[rune]*CoverageMask
}

// NewGlyphAtlas parses TrueType font data and pre-renders every printable
// ASCII character plus the Unicode block elements the face provides. The
// cell size is derived from the face's monospace advance and line height,
// so construction is deterministic for a given font.
func NewGlyphAtlas(ttfData []byte) (*GlyphAtlas, error) {
	ttf, err := freetype.ParseFont(ttfData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    atlasFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no 'M' glyph to derive a cell width from")
	}

	a := &GlyphAtlas{
		cellWidth:  advance.Ceil(),
		cellHeight: metrics.Height.Ceil(),
		glyphs:     make(map[rune]*CoverageMask),
	}
	if a.cellWidth < 1 || a.cellHeight < 1 {
		return nil, fmt.Errorf("degenerate glyph cell %dx%d", a.cellWidth, a.cellHeight)
	}

	// The baseline sits one ascent below the cell top, so descenders on
	// g, j, p, q, y stay inside the cell.
	baseline := metrics.Ascent.Ceil()

	for r := rune(32); r <= rune(126); r++ {
		mask, err := renderCoverageMask(ttf, r, a.cellWidth, a.cellHeight, baseline)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize %q: %w", r, err)
		}
		a.glyphs[r] = mask
	}
	for _, r := range blockRunes {
		if ttf.Index(r) == 0 {
			// Face does not carry this glyph; leave it out so charset
			// validation can report it.
			continue
		}
		mask, err := renderCoverageMask(ttf, r, a.cellWidth, a.cellHeight, baseline)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize %q: %w", r, err)
		}
		a.glyphs[r] = mask
	}

	return a, nil
}

// renderCoverageMask rasterizes a single rune into a cell-sized 8-bit
// coverage mask. Rendering into an alpha image keeps the anti-aliased
// edge pixels that a thresholded bitmap would lose.
func renderCoverageMask(ttf *truetype.Font, r rune, w, h, baseline int) (*CoverageMask, error) {
	img := image.NewAlpha(image.Rect(0, 0, w, h))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(atlasFontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baseline)); err != nil {
		return nil, err
	}

	mask := &CoverageMask{Width: w, Height: h, Pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		copy(mask.Pix[y*w:(y+1)*w], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return mask, nil
}

// CellSize returns the fixed glyph cell dimensions in pixels.
func (a *GlyphAtlas) CellSize() (width, height int) {
	return a.cellWidth, a.cellHeight
}

// Has reports whether a rune was rasterized into the atlas.
func (a *GlyphAtlas) Has(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// Glyph returns the coverage mask for a rune. Runes outside the rendered
// set fail with ErrGlyphNotFound; callers are expected to validate their
// charset against the atlas first.
func (a *GlyphAtlas) Glyph(r rune) (*CoverageMask, error) {
	mask, ok := a.glyphs[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}
	return mask, nil
}

// SortByCoverage returns a copy of the charset reordered from lightest to
// densest by each glyph's measured ink coverage. Runes missing from the
// atlas keep their relative position at the light end. The sort is stable,
// so equal-coverage runes preserve the caller's order.
func (a *GlyphAtlas) SortByCoverage(cs Charset) Charset {
	out := make(Charset, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		return a.coverageOf(out[i]) < a.coverageOf(out[j])
	})
	return out
}

func (a *GlyphAtlas) coverageOf(r rune) float64 {
	if mask, ok := a.glyphs[r]; ok {
		return mask.Coverage()
	}
	return 0
}

var (
	defaultAtlasOnce sync.Once
	defaultAtlas     *GlyphAtlas
)

// DefaultAtlas returns the process-wide atlas built from the embedded
// Go Mono face. It is constructed exactly once, on first use, and never
// mutated afterwards.
func DefaultAtlas() *GlyphAtlas {
	defaultAtlasOnce.Do(func() {
		a, err := NewGlyphAtlas(gomono.TTF)
		if err != nil {
			// The embedded face is known good; failing to build the
			// atlas from it is a programming defect.
			panic("asciipix: building default atlas: " + err.Error())
		}
		defaultAtlas = a
	})
	return defaultAtlas
}
