package asciipix

import "errors"

// Conversion failures fall into three groups: bad input (ErrDecodeFailed,
// ErrInvalidCharset), resource bounds (ErrDimensionsTooLarge,
// ErrCanvasTooLarge), and internal consistency (ErrGlyphNotFound, which is
// unreachable when the charset was validated against the atlas first).
// All of them are returned synchronously; nothing is retried and no partial
// output survives a failed conversion.
var (
	// ErrDecodeFailed indicates the source bytes could not be decoded as a
	// raster image, or the decoded image is empty.
	ErrDecodeFailed = errors.New("could not decode source image")

	// ErrInvalidCharset indicates a charset with fewer than two characters,
	// or one containing a rune the glyph atlas cannot render.
	ErrInvalidCharset = errors.New("invalid charset")

	// ErrDimensionsTooLarge indicates the source image or the requested
	// grid width exceeds a configured ceiling.
	ErrDimensionsTooLarge = errors.New("dimensions exceed configured limit")

	// ErrGlyphNotFound indicates a rune that was never rasterized into the
	// atlas. Callers that validate their charset first never see it.
	ErrGlyphNotFound = errors.New("no glyph rendered for rune")

	// ErrCanvasTooLarge indicates the output canvas would exceed the pixel
	// ceiling. It is raised before the canvas is allocated.
	ErrCanvasTooLarge = errors.New("output canvas exceeds pixel limit")
)
