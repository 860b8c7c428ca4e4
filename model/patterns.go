package model

// Pattern is a small block of cells, row-major
type Pattern [][]bool

var (
	// Glider travels one cell diagonally every 4 generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	// Blinker oscillates between a row and a column of 3 cells
	Blinker = Pattern{
		{true, true, true},
	}
)

// Stamp returns a copy of g with p's cells written at offset (i, j).
// Parts of the pattern that fall off the board are clipped.
func Stamp(g *Grid, p Pattern, i, j int) *Grid {
	next := g.clone()
	stampInto(next, p, i, j)
	return next
}

func stampInto(g *Grid, p Pattern, i, j int) {
	for di, row := range p {
		for dj, alive := range row {
			if g.InBounds(i+di, j+dj) {
				g.cells[(i+di)*g.cols+j+dj] = alive
			}
		}
	}
}
