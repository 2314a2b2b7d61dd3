package model

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// State of the simulation
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Engine owns the grids and advances the simulation one generation at a time.
//
// Three buffers are kept: current is what is displayed, next is where a new
// generation is computed and previous holds the generation before current.
// They are allocated once and rotated, never reallocated.
type Engine struct {
	width  int
	height int

	previous *Grid
	current  *Grid
	next     *Grid

	liveCells   int // always equal to current.CountLivingCells()
	generation  int
	cellsNumber int
	state       State

	rng      *rand.Rand
	stats    *utils.Stats
	lastStep time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithRand makes the engine draw from r instead of a clock-seeded generator
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithStats reports every generation to s
func WithStats(s *utils.Stats) Option {
	return func(e *Engine) {
		e.stats = s
	}
}

// NewRand creates a deterministic generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewEngine creates an engine with three all-dead grids of the given size.
// Both dimensions must be positive.
func NewEngine(width, height int, opts ...Option) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		previous:   NewGrid(width, height),
		current:    NewGrid(width, height),
		next:       NewGrid(width, height),
		generation: 1,
		state:      Running,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(time.Now().UnixNano())
	}
	return e
}

// Generation returns the index of the most recently computed generation, starting at 1
func (e *Engine) Generation() int {
	return e.generation
}

// LiveCells returns the number of living cells in the current grid
func (e *Engine) LiveCells() int {
	return e.liveCells
}

// State reports whether the simulation is still running
func (e *Engine) State() State {
	return e.state
}

// IsGameOver reports whether a terminal condition has been reached
func (e *Engine) IsGameOver() bool {
	return e.state == Stopped
}

// Current returns the grid being displayed. It must not be modified by the caller.
func (e *Engine) Current() *Grid {
	return e.current
}

// Snapshot returns an independent copy of the current grid
func (e *Engine) Snapshot() *Grid {
	return e.current.Clone()
}

// NeighboursCount counts the live toroidal neighbours of (x, y) in the current grid
func (e *Engine) NeighboursCount(x, y int) int {
	return e.current.CountNeighbors(x, y)
}

// SetCell changes a cell of the current grid and keeps the live counter in sync
func (e *Engine) SetCell(x, y int, c Cell) {
	switch was := e.current.Get(x, y); {
	case was == c:
		return
	case c == Alive:
		e.liveCells++
	default:
		e.liveCells--
	}
	e.current.Set(x, y, c)
}

// Place stamps the live cells of p onto the current grid with its top-left corner at (x, y)
func (e *Engine) Place(p Pattern, x, y int) {
	for _, off := range p.Live {
		e.SetCell(x+off[0], y+off[1], Alive)
	}
}

// SetCellsNumber picks how many random placements seeding will make, in [0, width*height/2)
func (e *Engine) SetCellsNumber() int {
	e.cellsNumber = 0
	if limit := e.width * e.height / 2; limit > 0 {
		e.cellsNumber = e.rng.IntN(limit)
	}
	return e.cellsNumber
}

// GenFirstGeneration marks random cells alive until cellsNumber draws have been made.
// Draws may hit the same cell twice, so fewer than cellsNumber cells can end up alive.
func (e *Engine) GenFirstGeneration() {
	for total := 0; total != e.cellsNumber; total++ {
		x := e.rng.IntN(e.width)
		y := e.rng.IntN(e.height)
		e.current.Set(x, y, Alive)
	}
	e.liveCells = e.current.CountLivingCells()
}

// Seed fills the current grid with a random starting population
func (e *Engine) Seed() {
	e.SetCellsNumber()
	e.GenFirstGeneration()
}

// genNextGeneration computes next from current and updates the live counter
func (e *Engine) genNextGeneration() {
	for y := range e.height {
		for x := range e.width {
			alive, outcome := rules.Transition(e.current.CountNeighbors(x, y), e.current.cells[y][x] == Alive)
			switch outcome {
			case rules.Death:
				e.liveCells--
			case rules.Birth:
				e.liveCells++
			}
			if alive {
				e.next.cells[y][x] = Alive
			} else {
				e.next.cells[y][x] = Dead
			}
		}
	}
	e.generation++
}

// isGameOver checks the freshly computed next grid against current and previous
func (e *Engine) isGameOver() bool {
	return e.liveCells == 0 ||
		e.current.Equal(e.next) ||
		e.previous.Equal(e.next)
}

// rotate shifts the buffers: previous <- current, current <- next
func (e *Engine) rotate() {
	e.previous, e.current, e.next = e.current, e.next, e.previous
}

// Step advances one generation and reports whether the simulation has stopped.
// A stopped engine no longer changes.
func (e *Engine) Step() bool {
	if e.state == Stopped {
		return true
	}

	e.genNextGeneration()
	over := e.isGameOver()
	e.rotate()
	if over {
		e.state = Stopped
	}

	if e.stats != nil {
		now := time.Now()
		if e.lastStep.IsZero() {
			e.lastStep = e.stats.StartTime
		}
		e.stats.Update(e.generation, e.liveCells, now.Sub(e.lastStep))
		e.lastStep = now
	}
	return over
}

// Run is the drive loop: it draws the current generation, steps, and waits
// frameRate between frames until the simulation stops. The final generation
// index is reported to r and returned. Cancelling ctx ends the loop early.
func (e *Engine) Run(ctx context.Context, r Renderer, frameRate time.Duration) (int, error) {
	for {
		if err := r.Clear(); err != nil {
			return e.generation, errors.Wrap(err, "[Run] failed to clear frame")
		}
		if err := r.Display(e.current); err != nil {
			return e.generation, errors.Wrap(err, "[Run] failed to display generation")
		}

		if e.Step() {
			break
		}

		if err := pace(ctx, frameRate); err != nil {
			return e.generation, err
		}
	}

	if err := r.Report(e.generation); err != nil {
		return e.generation, errors.Wrap(err, "[Run] failed to report final generation")
	}
	return e.generation, nil
}

// pace waits d between frames, returning early when ctx is done
func pace(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil || d <= 0 {
		return err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
