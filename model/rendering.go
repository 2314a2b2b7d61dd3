package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	ansiClear   = "\033[H\033[2J"
	reportFmt   = "Life has stopped at %d generation"
	rowBoundary = "|"
)

// Renderer is the display sink the engine draws to
type Renderer interface {
	// Clear removes the previous frame
	Clear() error
	// Display draws one generation
	Display(g *Grid) error
	// Report prints the generation the simulation stopped at
	Report(generation int) error
}

// ReportText formats the final report line
func ReportText(generation int) string {
	return fmt.Sprintf(reportFmt, generation)
}

// TerminalRenderer implements basic terminal rendering with ANSI escape codes
type TerminalRenderer struct {
	out     io.Writer
	palette utils.Palette
	color   string
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer, palette utils.Palette) (*TerminalRenderer, error) {
	if err := palette.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminalRenderer] invalid palette")
	}
	color, _ := palette.ANSI()
	return &TerminalRenderer{out: out, palette: palette, color: color}, nil
}

// Clear moves the cursor home and erases the screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out, ansiClear)
	return err
}

// Display renders the grid inside a border, one line per row
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out)
	border := r.border(g)

	w.WriteString(border)
	for y := range g.height {
		w.WriteString(rowBoundary)
		w.WriteString(r.color)
		for x := range g.width {
			if g.cells[y][x] == Alive {
				w.WriteString(r.palette.LiveGlyph)
			} else {
				w.WriteString(r.palette.DeadGlyph)
			}
		}
		w.WriteString(r.palette.ANSIReset())
		w.WriteString(rowBoundary + "\n")
	}
	w.WriteString(border)

	return w.Flush()
}

// Report writes the final generation line
func (r *TerminalRenderer) Report(generation int) error {
	_, err := fmt.Fprintln(r.out, ReportText(generation))
	return err
}

func (r *TerminalRenderer) border(g *Grid) string {
	return " " + strings.Repeat(r.palette.BorderGlyph, g.width*r.palette.CellWidth()) + " \n"
}
