package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{"valid", []string{"20", "10"}, 20, 10, false},
		{"missing height", []string{"20"}, 0, 0, true},
		{"no args", nil, 0, 0, true},
		{"too many", []string{"1", "2", "3"}, 0, 0, true},
		{"non numeric", []string{"wide", "10"}, 0, 0, true},
		{"zero", []string{"0", "10"}, 0, 0, true},
		{"negative", []string{"10", "-3"}, 0, 0, true},
		{"trailing junk", []string{"10x", "3"}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ParseDimensions(tt.args)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Fatalf("expected ErrInvalidDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Fatalf("got %dx%d, want %dx%d", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"frame_rate": 1000000, "seed": 7, "pattern": "glider", "palette": {"color": "green"}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.FrameRate != time.Millisecond || cfg.Seed != 7 || cfg.Pattern != "glider" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Palette.Color != "green" || cfg.Palette.LiveGlyph != "*" {
		t.Fatalf("palette should merge over defaults, got %+v", cfg.Palette)
	}
	if cfg.Renderer != RendererText {
		t.Fatalf("renderer default lost: %q", cfg.Renderer)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-seed", "42", "-delay", "1s", "-renderer", "screen", "-color", "cyan", "-pattern", "toad", "8", "6"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || cfg.FrameRate != time.Second || cfg.Renderer != RendererScreen ||
		cfg.Palette.Color != "cyan" || cfg.Pattern != "toad" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if got := fs.Args(); len(got) != 2 || got[0] != "8" || got[1] != "6" {
		t.Fatalf("positional args = %v", got)
	}
}

func TestOverride(t *testing.T) {
	flags := DefaultConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	flags.Bind(fs)
	if err := fs.Parse([]string{"-color", "blue", "-seed", "3"}); err != nil {
		t.Fatal(err)
	}

	fromFile := DefaultConfig()
	fromFile.Pattern = "beacon"
	fromFile.Seed = 11
	fromFile.FrameRate = time.Second
	fromFile.Override(flags, fs)

	if fromFile.Seed != 3 || fromFile.Palette.Color != "blue" {
		t.Fatalf("set flags should win: %+v", fromFile)
	}
	if fromFile.Pattern != "beacon" || fromFile.FrameRate != time.Second {
		t.Fatalf("unset flags must not clobber file values: %+v", fromFile)
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Width, valid.Height = 5, 5
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config with dimensions should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative delay", func(c *Config) { c.FrameRate = -time.Second }},
		{"unknown renderer", func(c *Config) { c.Renderer = "gpu" }},
		{"empty pattern", func(c *Config) { c.Pattern = "" }},
		{"unknown color", func(c *Config) { c.Palette.Color = "ultraviolet" }},
		{"empty glyph", func(c *Config) { c.Palette.DeadGlyph = "" }},
		{"misaligned glyphs", func(c *Config) { c.Palette.LiveGlyph = "██" }},
		{"wide border", func(c *Config) { c.Palette.BorderGlyph = "==" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected error for %+v", cfg)
			}
		})
	}
}

func TestPaletteANSI(t *testing.T) {
	code, err := DefaultPalette().ANSI()
	if err != nil {
		t.Fatal(err)
	}
	if code != "\033[31m" {
		t.Fatalf("red = %q", code)
	}

	p := Palette{Color: "boldblue", LiveGlyph: "██", DeadGlyph: "  ", BorderGlyph: "-"}
	if err := p.Validate(); err != nil {
		t.Fatalf("wide glyphs should be fine when aligned: %v", err)
	}
	if p.CellWidth() != 2 {
		t.Fatalf("cell width = %d", p.CellWidth())
	}
}
