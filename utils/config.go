package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"

	PatternRandom = "random"
)

// ErrInvalidDimensions is returned when the grid size is missing, malformed or not positive
var ErrInvalidDimensions = errors.New("grid dimensions must be two positive integers")

// Config holds the configuration for the game
type Config struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	FrameRate time.Duration `json:"frame_rate"`
	Seed      int64         `json:"seed"`
	Pattern   string        `json:"pattern"`
	Renderer  string        `json:"renderer"`
	Palette   Palette       `json:"palette"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		FrameRate: 150 * time.Millisecond,
		Pattern:   PatternRandom,
		Renderer:  RendererText,
		Palette:   DefaultPalette(),
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the command-line flags to the config, using its current values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.DurationVar(&c.FrameRate, "delay", c.FrameRate, "delay between frames")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "starting pattern: random or a preset name")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "display: text or screen")
	fs.StringVar(&c.Palette.Color, "color", c.Palette.Color, "cell color name")
}

// Override copies from src the values of the flags that were set on fs
func (c *Config) Override(src Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			c.Seed = src.Seed
		case "delay":
			c.FrameRate = src.FrameRate
		case "pattern":
			c.Pattern = src.Pattern
		case "renderer":
			c.Renderer = src.Renderer
		case "color":
			c.Palette.Color = src.Palette.Color
		}
	})
}

// ParseDimensions reads the grid width and height from the positional arguments
func ParseDimensions(args []string) (width, height int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidDimensions, "[ParseDimensions] expected width and height, got %d argument(s)", len(args))
	}
	if width, err = parsePositive(args[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "[ParseDimensions] bad width %q", args[0])
	}
	if height, err = parsePositive(args[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "[ParseDimensions] bad height %q", args[1])
	}
	return width, height, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidDimensions
	}
	return n, nil
}

// Validate checks the config before an engine is built from it
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Validate] got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame rate: %v", c.FrameRate)
	}
	switch c.Renderer {
	case RendererText, RendererScreen:
	default:
		return errors.Errorf("[Validate] unknown renderer: %q", c.Renderer)
	}
	if c.Pattern == "" {
		return errors.New("[Validate] empty pattern name")
	}
	return errors.Wrap(c.Palette.Validate(), "[Validate] bad palette")
}

// Palette describes how the grid is drawn
type Palette struct {
	Color       string `json:"color"`
	LiveGlyph   string `json:"live_glyph"`
	DeadGlyph   string `json:"dead_glyph"`
	BorderGlyph string `json:"border_glyph"`
}

// DefaultPalette draws red stars on a blank field
func DefaultPalette() Palette {
	return Palette{
		Color:       "red",
		LiveGlyph:   "*",
		DeadGlyph:   " ",
		BorderGlyph: "=",
	}
}

const ansiReset = "\033[0m"

var ansiColors = map[string]string{
	"black":       "\033[30m",
	"red":         "\033[31m",
	"green":       "\033[32m",
	"yellow":      "\033[33m",
	"blue":        "\033[34m",
	"magenta":     "\033[35m",
	"cyan":        "\033[36m",
	"white":       "\033[37m",
	"boldblack":   "\033[1m\033[30m",
	"boldred":     "\033[1m\033[31m",
	"boldgreen":   "\033[1m\033[32m",
	"boldyellow":  "\033[1m\033[33m",
	"boldblue":    "\033[1m\033[34m",
	"boldmagenta": "\033[1m\033[35m",
	"boldcyan":    "\033[1m\033[36m",
	"boldwhite":   "\033[1m\033[37m",
}

// ANSI returns the escape sequence for the palette color
func (p Palette) ANSI() (string, error) {
	code, ok := ansiColors[p.Color]
	if !ok {
		return "", errors.Errorf("[ANSI] unknown color: %q", p.Color)
	}
	return code, nil
}

// ANSIReset returns the sequence that restores the terminal's default style
func (p Palette) ANSIReset() string {
	return ansiReset
}

// CellWidth is the number of runes a single cell occupies on screen
func (p Palette) CellWidth() int {
	return utf8.RuneCountInString(p.LiveGlyph)
}

// Validate checks the color name and that both glyphs line up
func (p Palette) Validate() error {
	if _, err := p.ANSI(); err != nil {
		return err
	}
	if p.LiveGlyph == "" || p.DeadGlyph == "" {
		return errors.New("[Palette.Validate] glyphs must not be empty")
	}
	if utf8.RuneCountInString(p.LiveGlyph) != utf8.RuneCountInString(p.DeadGlyph) {
		return errors.Errorf("[Palette.Validate] live glyph %q and dead glyph %q differ in width", p.LiveGlyph, p.DeadGlyph)
	}
	if utf8.RuneCountInString(p.BorderGlyph) != 1 {
		return errors.Errorf("[Palette.Validate] border glyph must be a single character, got %q", p.BorderGlyph)
	}
	return nil
}
