package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingDefaultIsFine(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("missing default config should not error: %v", err)
	}
	if cfg.Boost != 1.0 || cfg.Workers != 4 || cfg.Scale != 1 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigMissingExplicitFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true); err == nil {
		t.Error("explicitly requested missing config should error")
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("columns: 80\ncharset: \" .:@\"\ncolor: true\nbackground: \"#202020\"\nworkers: 2\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns != 80 {
		t.Errorf("columns = %d, want 80", cfg.Columns)
	}
	if cfg.Charset != " .:@" {
		t.Errorf("charset = %q, want %q", cfg.Charset, " .:@")
	}
	if !cfg.Color {
		t.Error("color should be true")
	}
	if cfg.Background != "#202020" {
		t.Errorf("background = %q", cfg.Background)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Workers)
	}
	// Values absent from the file keep their defaults.
	if cfg.Boost != 1.0 {
		t.Errorf("boost = %f, want default 1.0", cfg.Boost)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("columns: [not an int"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path, true); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, dir string
		text       bool
		want       string
	}{
		{"pics/cat.jpg", "", false, filepath.Join("pics", "cat.ascii.png")},
		{"pics/cat.jpg", "out", false, filepath.Join("out", "cat.ascii.png")},
		{"cat.png", "", true, "cat.txt"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.dir, tt.text); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q",
				tt.input, tt.dir, tt.text, got, tt.want)
		}
	}
}

func TestBuildConverterRejectsBadColor(t *testing.T) {
	cfg := defaultConfig()
	cfg.Foreground = "#zzz"
	if _, err := buildConverter(cfg); err == nil {
		t.Error("invalid foreground color should error")
	}
}

func TestBuildConverterRejectsShortCharset(t *testing.T) {
	cfg := defaultConfig()
	cfg.Charset = "@"
	if _, err := buildConverter(cfg); err == nil {
		t.Error("single-rune charset should error")
	}
}
