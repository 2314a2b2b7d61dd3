package model

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// ErrQuit is returned by PollQuit when the user asks to leave
var ErrQuit = errors.New("quit requested")

// ScreenRenderer draws generations on a full-screen tcell terminal
type ScreenRenderer struct {
	screen  tcell.Screen
	out     io.Writer
	palette utils.Palette
	style   tcell.Style

	rows      int
	report    string
	closeOnce sync.Once
}

// NewScreenRenderer initialises screen and returns a renderer drawing to it.
// out receives the final report once the screen is closed.
func NewScreenRenderer(screen tcell.Screen, out io.Writer, palette utils.Palette) (*ScreenRenderer, error) {
	if err := palette.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] invalid palette")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialise screen")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	return &ScreenRenderer{
		screen:  screen,
		out:     out,
		palette: palette,
		style:   paletteStyle(palette),
	}, nil
}

func paletteStyle(p utils.Palette) tcell.Style {
	name, bold := strings.CutPrefix(p.Color, "bold")
	return tcell.StyleDefault.Foreground(tcell.GetColor(name)).Bold(bold)
}

// Clear wipes the back buffer
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Display draws the grid with a border and shows it
func (r *ScreenRenderer) Display(g *Grid) error {
	border := " " + strings.Repeat(r.palette.BorderGlyph, g.width*r.palette.CellWidth()) + " "

	r.drawText(0, 0, border, tcell.StyleDefault)
	for y := range g.height {
		col := r.drawText(0, y+1, rowBoundary, tcell.StyleDefault)
		for x := range g.width {
			glyph := r.palette.DeadGlyph
			if g.cells[y][x] == Alive {
				glyph = r.palette.LiveGlyph
			}
			col = r.drawText(col, y+1, glyph, r.style)
		}
		r.drawText(col, y+1, rowBoundary, tcell.StyleDefault)
	}
	r.drawText(0, g.height+1, border, tcell.StyleDefault)

	r.rows = g.height + 2
	r.screen.Show()
	return nil
}

// Report shows the final line under the last frame; it is printed again on Close
func (r *ScreenRenderer) Report(generation int) error {
	r.report = ReportText(generation)
	r.drawText(0, r.rows, r.report, tcell.StyleDefault)
	r.screen.Show()
	return nil
}

// PollQuit blocks on input events until q, Esc or Ctrl-C is pressed (ErrQuit)
// or the screen is closed (nil)
func (r *ScreenRenderer) PollQuit() error {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return ErrQuit
			}
		}
	}
}

// Close restores the terminal and prints the report, if any
func (r *ScreenRenderer) Close() error {
	var err error
	r.closeOnce.Do(func() {
		r.screen.Fini()
		if r.report != "" {
			_, err = fmt.Fprintln(r.out, r.report)
		}
	})
	return err
}

// drawText writes s starting at column x and returns the column after it
func (r *ScreenRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
