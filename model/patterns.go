package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a rectangular arrangement of cells that can be stamped onto a grid
type Pattern struct {
	Name   string
	Width  int
	Height int
	// Live holds the (x, y) offsets of the live cells, row by row
	Live [][2]int
}

// presets are stored in plaintext format: 'O' alive, '.' dead
var presets = map[string]string{
	"block": `
OO
OO`,
	"beehive": `
.OO.
O..O
.OO.`,
	"blinker": `
O
O
O`,
	"toad": `
.OOO
OOO.`,
	"beacon": `
OO..
OO..
..OO
..OO`,
	"glider": `
.O.
..O
OOO`,
}

// ParsePattern reads a pattern in plaintext format. Lines starting with '!' are
// comments; 'O' or '*' mark live cells, '.' or a space mark dead ones.
func ParsePattern(name, text string) (Pattern, error) {
	p := Pattern{Name: name}
	y := 0
	text = strings.Trim(text, "\r\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		x := 0
		for _, r := range line {
			switch r {
			case 'O', '*':
				p.Live = append(p.Live, [2]int{x, y})
			case '.', ' ':
			default:
				return Pattern{}, errors.Errorf("[ParsePattern] %s: unexpected %q at line %d", name, r, y+1)
			}
			x++
		}
		p.Width = max(p.Width, x)
		y++
		p.Height = y
	}
	if len(p.Live) == 0 {
		return Pattern{}, errors.Errorf("[ParsePattern] %s: no live cells", name)
	}
	return p, nil
}

// LookupPattern returns a built-in pattern by name
func LookupPattern(name string) (Pattern, error) {
	text, ok := presets[name]
	if !ok {
		return Pattern{}, errors.Errorf("[LookupPattern] unknown pattern %q (known: %s)", name, strings.Join(PatternNames(), ", "))
	}
	return ParsePattern(name, text)
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
