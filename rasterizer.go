package asciipix

import (
	"fmt"
	"image"

	"github.com/asciipix/asciipix/imageutil"
)

// RenderOptions control glyph compositing into the output canvas.
type RenderOptions struct {
	// ColorMode selects per-cell average-color foregrounds; when false the
	// fixed Foreground color is used for every glyph.
	ColorMode bool

	Foreground imageutil.RGB
	Background imageutil.RGB

	// BrightnessBoost multiplies the foreground channels before blending,
	// clamped to 255. Values <= 0 are treated as 1.0 (no boost).
	BrightnessBoost float64

	// MaxCanvasPixels bounds the output allocation; 0 uses
	// DefaultMaxCanvasPixels.
	MaxCanvasPixels int
}

// RenderCharGrid composites one glyph coverage mask per grid cell into a
// fresh canvas at (col*glyphW, row*glyphH). Each output pixel is an alpha
// blend of background toward foreground by the mask's coverage value. The
// cells argument supplies per-cell foreground colors in color mode and may
// be nil in monochrome mode.
//
// The canvas size is checked against the pixel ceiling before allocation;
// oversized requests fail with ErrCanvasTooLarge.
func RenderCharGrid(chars *CharGrid, cells *CellGrid, atlas *GlyphAtlas, opts RenderOptions) (*image.RGBA, error) {
	glyphW, glyphH := atlas.CellSize()
	outW := chars.Cols * glyphW
	outH := chars.Rows * glyphH

	limit := opts.MaxCanvasPixels
	if limit <= 0 {
		limit = DefaultMaxCanvasPixels
	}
	if int64(outW)*int64(outH) > int64(limit) {
		return nil, fmt.Errorf("%w: %dx%d canvas over %d pixels",
			ErrCanvasTooLarge, outW, outH, limit)
	}

	boost := opts.BrightnessBoost
	if boost <= 0 {
		boost = 1
	}

	// Every canvas pixel belongs to exactly one cell and blendGlyph writes
	// all of them, so the canvas needs no background prefill.
	canvas := image.NewRGBA(image.Rect(0, 0, outW, outH))
	for row := 0; row < chars.Rows; row++ {
		for col := 0; col < chars.Cols; col++ {
			mask, err := atlas.Glyph(chars.At(row, col))
			if err != nil {
				return nil, err
			}

			fg := opts.Foreground
			if opts.ColorMode && cells != nil {
				fg = cells.At(row, col).Color
			}
			if boost != 1 {
				fg = boostRGB(fg, boost)
			}

			blendGlyph(canvas, mask, col*glyphW, row*glyphH, fg, opts.Background)
		}
	}
	return canvas, nil
}

// blendGlyph composites a coverage mask at (x0, y0) using per-pixel alpha
// blending: out = bg*(1-coverage) + fg*coverage.
func blendGlyph(dst *image.RGBA, mask *CoverageMask, x0, y0 int, fg, bg imageutil.RGB) {
	for y := 0; y < mask.Height; y++ {
		i := dst.PixOffset(x0, y0+y)
		for x := 0; x < mask.Width; x++ {
			cov := uint32(mask.Pix[y*mask.Width+x])
			dst.Pix[i+0] = blendChannel(bg.R, fg.R, cov)
			dst.Pix[i+1] = blendChannel(bg.G, fg.G, cov)
			dst.Pix[i+2] = blendChannel(bg.B, fg.B, cov)
			dst.Pix[i+3] = 255
			i += 4
		}
	}
}

// blendChannel mixes bg toward fg by cov/255, rounding to nearest.
func blendChannel(bg, fg uint8, cov uint32) uint8 {
	return uint8((uint32(bg)*(255-cov) + uint32(fg)*cov + 127) / 255)
}

// boostRGB scales each channel by the boost factor, clamping at 255.
func boostRGB(c imageutil.RGB, boost float64) imageutil.RGB {
	return imageutil.RGB{
		R: clampChannel(float64(c.R) * boost),
		G: clampChannel(float64(c.G) * boost),
		B: clampChannel(float64(c.B) * boost),
	}
}

func clampChannel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v + 0.5)
}
