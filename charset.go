package asciipix

import "fmt"

// DefaultCharset orders seven common ASCII glyphs from sparse to dense.
const DefaultCharset = ".:-+=#@"

// Charset is an ordered sequence of runes spanning light to dense visual
// weight; index 0 is the lightest. Ordering is the caller's responsibility
// unless coverage sorting is enabled on the Converter, in which case the
// atlas reorders it by measured ink coverage.
type Charset []rune

// NewCharset builds a Charset from a string. Fewer than two runes fail
// with ErrInvalidCharset; duplicate runes are allowed, they merely
// collapse mapping resolution.
func NewCharset(s string) (Charset, error) {
	cs := Charset(s)
	if len(cs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 characters, got %d", ErrInvalidCharset, len(cs))
	}
	return cs, nil
}

// Validate checks the charset length and that every rune has a rendered
// glyph in the atlas.
func (cs Charset) Validate(atlas *GlyphAtlas) error {
	if len(cs) < 2 {
		return fmt.Errorf("%w: need at least 2 characters, got %d", ErrInvalidCharset, len(cs))
	}
	for _, r := range cs {
		if !atlas.Has(r) {
			return fmt.Errorf("%w: no glyph for %q", ErrInvalidCharset, r)
		}
	}
	return nil
}

func (cs Charset) String() string {
	return string(cs)
}
