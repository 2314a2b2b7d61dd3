package model

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// neighborOffsets are the eight (dx, dy) steps around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a fixed-size toroidal board: coordinates wrap at every edge
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid creates a new all-dead grid with the specified dimensions.
// Both dimensions must be positive.
func NewGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Wrap maps any coordinates onto the torus
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.width + g.width) % g.width
	y = (y%g.height + g.height) % g.height
	return x, y
}

// Set sets the state of a cell, wrapping out-of-range coordinates
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	g.cells[y][x] = c
}

// Get returns the state of a cell, wrapping out-of-range coordinates
func (g *Grid) Get(x, y int) Cell {
	x, y = g.Wrap(x, y)
	return g.cells[y][x]
}

// IsAlive reports whether the cell at (x, y) is alive
func (g *Grid) IsAlive(x, y int) bool {
	return g.Get(x, y) == Alive
}

// Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = Dead
		}
	}
}

// CountNeighbors counts living cells among the eight toroidal neighbours of (x, y).
// On grids narrower than three cells a neighbour can be reached through more than
// one offset and is counted once per offset.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for _, off := range neighborOffsets {
		nx := (x + off[0] + g.width) % g.width
		ny := (y + off[1] + g.height) % g.height
		if g.cells[ny][nx] == Alive {
			count++
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] == Alive {
				count++
			}
		}
	}
	return
}

// Equal compares two grids cell by cell
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// CopyFrom overwrites the grid with the contents of src, which must have the same size
func (g *Grid) CopyFrom(src *Grid) {
	for y := range g.height {
		copy(g.cells[y], src.cells[y])
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	c.CopyFrom(g)
	return c
}
