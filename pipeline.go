// Package asciipix converts raster images into ASCII-art representations
// and re-renders those representations as bitmaps using a fixed-width
// font: the source is downsampled to a character grid, each cell's visual
// weight is mapped to a charset rune, and the chosen glyphs are composited
// back into an output image.
package asciipix

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/asciipix/asciipix/imageutil"
)

const (
	// DefaultColumns is the grid width used when none is configured,
	// chosen to balance legibility and output size.
	DefaultColumns = 150

	// MaxColumns is the hard cap on the requested grid width.
	MaxColumns = 500

	// DefaultMaxSourcePixels bounds the decoded source size.
	DefaultMaxSourcePixels = 1 << 25

	// DefaultMaxCanvasPixels bounds the output canvas allocation.
	DefaultMaxCanvasPixels = 1 << 26
)

// Converter wires the sampling, mapping, and rasterizing stages into one
// conversion pipeline. A Converter is safe for concurrent use: the atlas
// is immutable after construction and all per-conversion state is
// request-local, so independent conversions need no synchronization.
type Converter struct {
	columns         int
	colorMode       bool
	charset         Charset
	foreground      imageutil.RGB
	background      imageutil.RGB
	boost           float64
	sharpen         bool
	coverageSort    bool
	maxSourcePixels int
	maxCanvasPixels int
	atlas           *GlyphAtlas
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options. Defaults:
// 150 columns, the built-in charset, white-on-black monochrome rendering,
// no brightness boost, and the shared default atlas.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		columns:         DefaultColumns,
		charset:         Charset(DefaultCharset),
		foreground:      imageutil.RGB{R: 255, G: 255, B: 255},
		background:      imageutil.RGB{},
		boost:           1.0,
		maxSourcePixels: DefaultMaxSourcePixels,
		maxCanvasPixels: DefaultMaxCanvasPixels,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.atlas == nil {
		c.atlas = DefaultAtlas()
	}
	if c.columns < 1 {
		c.columns = DefaultColumns
	}
	return c
}

// WithColumns sets the output grid width in characters.
func WithColumns(cols int) ConverterOption {
	return func(c *Converter) {
		c.columns = cols
	}
}

// WithColorMode enables per-cell average-color foregrounds.
func WithColorMode(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.colorMode = enabled
	}
}

// WithCharset sets the charset, ordered light to dense by the caller.
func WithCharset(cs Charset) ConverterOption {
	return func(c *Converter) {
		c.charset = cs
	}
}

// WithForeground sets the monochrome foreground color.
func WithForeground(rgb imageutil.RGB) ConverterOption {
	return func(c *Converter) {
		c.foreground = rgb
	}
}

// WithBackground sets the canvas background color.
func WithBackground(rgb imageutil.RGB) ConverterOption {
	return func(c *Converter) {
		c.background = rgb
	}
}

// WithBrightnessBoost multiplies foreground channels before compositing;
// 1.0 leaves colors unchanged.
func WithBrightnessBoost(boost float64) ConverterOption {
	return func(c *Converter) {
		c.boost = boost
	}
}

// WithSharpen applies a mild sharpen to the source before sampling.
func WithSharpen(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.sharpen = enabled
	}
}

// WithCoverageSort reorders the charset by measured glyph ink coverage
// instead of trusting the caller's ordering.
func WithCoverageSort(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.coverageSort = enabled
	}
}

// WithAtlas substitutes the glyph atlas used for validation and rendering.
func WithAtlas(atlas *GlyphAtlas) ConverterOption {
	return func(c *Converter) {
		c.atlas = atlas
	}
}

// WithMaxSourcePixels sets the decoded source size ceiling.
func WithMaxSourcePixels(limit int) ConverterOption {
	return func(c *Converter) {
		c.maxSourcePixels = limit
	}
}

// WithMaxCanvasPixels sets the output canvas allocation ceiling.
func WithMaxCanvasPixels(limit int) ConverterOption {
	return func(c *Converter) {
		c.maxCanvasPixels = limit
	}
}

// Convert decodes source bytes and runs the full pipeline, returning the
// rendered bitmap. The stages run strictly in order -- decode, validate,
// sample, map, rasterize -- and the first failed precondition aborts the
// conversion with a typed error and no partial output. Identical inputs
// and configuration produce byte-identical output.
func (c *Converter) Convert(data []byte) (*image.RGBA, error) {
	src, err := imageutil.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return c.ConvertImage(src)
}

// ConvertImage runs the pipeline on an already-decoded source image.
func (c *Converter) ConvertImage(img image.Image) (*image.RGBA, error) {
	chars, cells, err := c.run(img)
	if err != nil {
		return nil, err
	}
	return RenderCharGrid(chars, cells, c.atlas, RenderOptions{
		ColorMode:       c.colorMode,
		Foreground:      c.foreground,
		Background:      c.background,
		BrightnessBoost: c.boost,
		MaxCanvasPixels: c.maxCanvasPixels,
	})
}

// ConvertToPNG is a convenience wrapper that PNG-encodes the rendered
// bitmap for delivery.
func (c *Converter) ConvertToPNG(data []byte) ([]byte, error) {
	img, err := c.Convert(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}
	return buf.Bytes(), nil
}

// Text decodes source bytes and returns the mapped character grid as
// plain newline-joined text, skipping rasterization.
func (c *Converter) Text(data []byte) (string, error) {
	src, err := imageutil.DecodeBytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	chars, _, err := c.run(src)
	if err != nil {
		return "", err
	}
	return chars.String(), nil
}

// run executes the validated decode-to-map portion of the pipeline.
func (c *Converter) run(img image.Image) (*CharGrid, *CellGrid, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, nil, fmt.Errorf("%w: empty source image", ErrDecodeFailed)
	}
	if w*h > c.maxSourcePixels {
		return nil, nil, fmt.Errorf("%w: source %dx%d over %d pixels",
			ErrDimensionsTooLarge, w, h, c.maxSourcePixels)
	}
	if c.columns > MaxColumns {
		return nil, nil, fmt.Errorf("%w: %d columns requested, limit is %d",
			ErrDimensionsTooLarge, c.columns, MaxColumns)
	}

	charset := c.charset
	if err := charset.Validate(c.atlas); err != nil {
		return nil, nil, err
	}
	if c.coverageSort {
		charset = c.atlas.SortByCoverage(charset)
	}

	glyphW, glyphH := c.atlas.CellSize()
	cols := c.columns
	rows := GridRows(w, h, cols, glyphW, glyphH)

	// Bound the canvas before any sampling work; an extreme aspect ratio
	// can push the row count past the ceiling even with few columns.
	if int64(cols*glyphW)*int64(rows*glyphH) > int64(c.maxCanvasPixels) {
		return nil, nil, fmt.Errorf("%w: %dx%d canvas over %d pixels",
			ErrCanvasTooLarge, cols*glyphW, rows*glyphH, c.maxCanvasPixels)
	}

	src := imageutil.RGBAImageFromImage(img)

	// Cell averaging only needs a few source pixels per cell; shrink
	// oversized sources first so sampling cost tracks the grid size.
	if maxW := cols * glyphW; src.Width() > maxW {
		src = imageutil.PrescaleWidth(src, maxW)
	}
	if c.sharpen {
		src = imageutil.Sharpen(src, 0.5)
	}

	cells := SampleCells(src, cols, rows)
	chars := MapCells(cells, charset)
	return chars, cells, nil
}
