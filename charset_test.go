package asciipix

import (
	"errors"
	"testing"
)

func TestNewCharset(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", DefaultCharset, false},
		{"minimum two", " @", false},
		{"duplicates allowed", "..@@", false},
		{"single char", "@", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := NewCharset(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCharset) {
					t.Errorf("expected ErrInvalidCharset, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cs.String() != tt.input {
				t.Errorf("charset round-trip: got %q, want %q", cs.String(), tt.input)
			}
		})
	}
}

func TestCharsetValidateAgainstAtlas(t *testing.T) {
	atlas := newTestAtlas(2, 4, map[rune]uint8{'.': 10, '@': 200})

	if err := Charset(".@").Validate(atlas); err != nil {
		t.Errorf("valid charset rejected: %v", err)
	}

	err := Charset(".X").Validate(atlas)
	if !errors.Is(err, ErrInvalidCharset) {
		t.Errorf("expected ErrInvalidCharset for unrastered rune, got %v", err)
	}

	err = Charset("@").Validate(atlas)
	if !errors.Is(err, ErrInvalidCharset) {
		t.Errorf("expected ErrInvalidCharset for short charset, got %v", err)
	}
}

func TestDefaultCharsetValidates(t *testing.T) {
	if err := Charset(DefaultCharset).Validate(DefaultAtlas()); err != nil {
		t.Errorf("default charset must validate against default atlas: %v", err)
	}
}
