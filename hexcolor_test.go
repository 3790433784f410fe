package asciipix

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"000000", color.RGBA{0, 0, 0, 255}},
		{"0xff8000", color.RGBA{255, 128, 0, 255}},
		{"#F00", color.RGBA{255, 0, 0, 255}},
		{"1a2b3c", color.RGBA{26, 43, 60, 255}},
		{"#f00a", color.RGBA{255, 0, 0, 170}},
		{"#80ff0040", color.RGBA{128, 255, 0, 64}},
		{"ABC", color.RGBA{170, 187, 204, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, input := range []string{"", "ff", "12345", "zzzzzz", "#ggg", "0x12345678f"} {
		if _, err := ParseHexColor(input); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", input)
		}
	}
}
