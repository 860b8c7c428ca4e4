package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/rules"
)

const (
	Alive = true
	Dead  = false
)

var (
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDimensions is returned for negative grid dimensions
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrInvalidSeed is returned when a seed cannot populate a grid
	ErrInvalidSeed = errors.New("invalid seed")
)

// View is a read-only window onto a generation
type View interface {
	Rows() int
	Cols() int
	Alive(i, j int) bool
}

// Grid is an immutable rows x cols board stored row-major.
// Every operation that changes a cell returns a new Grid.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// newGrid allocates an all-dead grid without validating dimensions
func newGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	return CreateGrid(rows, cols, AllDead{})
}

// CreateGrid allocates a rows x cols grid populated by seed
func CreateGrid(rows, cols int, seed Seed) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[CreateGrid] rows: %d, cols: %d", rows, cols)
	}
	if seed == nil {
		seed = AllDead{}
	}
	g := newGrid(rows, cols)
	if err := seed.populate(g); err != nil {
		return nil, errors.Wrapf(err, "[CreateGrid] failed to seed %dx%d grid", rows, cols)
	}
	return g, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (i, j) addresses a cell of the grid
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Alive returns the state of a cell, treating out-of-range coordinates as dead
func (g *Grid) Alive(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}
	return g.cells[i*g.cols+j]
}

// Get returns the state of a cell or ErrOutOfBounds
func (g *Grid) Get(i, j int) (bool, error) {
	if !g.InBounds(i, j) {
		return false, g.outOfBounds("Get", i, j)
	}
	return g.cells[i*g.cols+j], nil
}

// Set returns a copy of the grid with cell (i, j) set to alive
func (g *Grid) Set(i, j int, alive bool) (*Grid, error) {
	if !g.InBounds(i, j) {
		return nil, g.outOfBounds("Set", i, j)
	}
	next := g.clone()
	next.cells[i*g.cols+j] = alive
	return next, nil
}

// Toggle returns a copy of the grid with cell (i, j) flipped
func (g *Grid) Toggle(i, j int) (*Grid, error) {
	if !g.InBounds(i, j) {
		return nil, g.outOfBounds("Toggle", i, j)
	}
	return g.Set(i, j, !g.cells[i*g.cols+j])
}

// Paint brings cell (i, j) to life. A cell that is already alive leaves the
// grid as is and the receiver is returned.
func (g *Grid) Paint(i, j int) (*Grid, error) {
	if !g.InBounds(i, j) {
		return nil, g.outOfBounds("Paint", i, j)
	}
	if g.cells[i*g.cols+j] {
		return g, nil
	}
	return g.Set(i, j, Alive)
}

func (g *Grid) outOfBounds(op string, i, j int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) outside %dx%d grid", op, i, j, g.rows, g.cols)
}

func (g *Grid) clone() *Grid {
	next := newGrid(g.rows, g.cols)
	copy(next.cells, g.cells)
	return next
}

// Cells returns a copy of the grid as a slice of rows
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.rows)
	for i := range g.rows {
		out[i] = make([]bool, g.cols)
		copy(out[i], g.cells[i*g.cols:(i+1)*g.cols])
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether v has the same dimensions and cell states
func (g *Grid) Equal(v View) bool {
	if v == nil || g.rows != v.Rows() || g.cols != v.Cols() {
		return false
	}
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i*g.cols+j] != v.Alive(i, j) {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the dimensions and cell states
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// CountNeighbors counts the living neighbors of (i, j). Positions off the
// board contribute nothing; the edges do not wrap.
func CountNeighbors(v View, i, j int) int {
	var (
		count      = 0
		rows, cols = v.Rows(), v.Cols()
	)
	for _, o := range rules.NeighborOffsets {
		ni, nj := i+o.DI, j+o.DJ
		if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
			continue
		}
		if v.Alive(ni, nj) {
			count++
		}
	}
	return count
}

// Step computes the next generation from prev into a freshly allocated grid.
// Only prev is read, so no cell sees a neighbor's updated state.
func Step(prev View) *Grid {
	rows, cols := prev.Rows(), prev.Cols()
	next := newGrid(rows, cols)
	for i := range rows {
		for j := range cols {
			next.cells[i*cols+j] = rules.ApplyConwayRules(CountNeighbors(prev, i, j), prev.Alive(i, j))
		}
	}
	return next
}
