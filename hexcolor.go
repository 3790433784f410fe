package asciipix

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses a hex color string into an RGBA color. Accepted
// forms are RGB, RGBA, RRGGBB, and RRGGBBAA, each with an optional "#" or
// "0x" prefix. Short-form digits are doubled (F becomes FF). When no alpha
// is given the color is fully opaque.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.ToLower(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(hex, "0x")

	switch len(hex) {
	case 3:
		r, g, b, err := parseHexShort(hex)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	case 4:
		r, g, b, err := parseHexShort(hex[:3])
		if err != nil {
			return color.RGBA{}, err
		}
		a, err := parseHexNibble(hex, 3)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: r, G: g, B: b, A: a}, nil
	case 6:
		r, g, b, err := parseHexLong(hex)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		r, g, b, err := parseHexLong(hex[:6])
		if err != nil {
			return color.RGBA{}, err
		}
		a, err := parseHexPair(hex, 6)
		if err != nil {
			return color.RGBA{}, err
		}
		return color.RGBA{R: r, G: g, B: b, A: a}, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length: %q", s)
	}
}

func parseHexShort(hex string) (r, g, b uint8, err error) {
	if r, err = parseHexNibble(hex, 0); err != nil {
		return
	}
	if g, err = parseHexNibble(hex, 1); err != nil {
		return
	}
	b, err = parseHexNibble(hex, 2)
	return
}

func parseHexLong(hex string) (r, g, b uint8, err error) {
	if r, err = parseHexPair(hex, 0); err != nil {
		return
	}
	if g, err = parseHexPair(hex, 2); err != nil {
		return
	}
	b, err = parseHexPair(hex, 4)
	return
}

func parseHexPair(hex string, start int) (uint8, error) {
	v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	return uint8(v), nil
}

// parseHexNibble parses a single digit and doubles it, so F expands to FF.
func parseHexNibble(hex string, start int) (uint8, error) {
	v, err := strconv.ParseUint(hex[start:start+1], 16, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	return uint8(v * 17), nil
}
