package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

B3/S23: a dead cell with exactly 3 neighbors is born, a live cell with 2 or 3 survives,
every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Offset is a (row, col) displacement to a neighboring cell
type Offset struct {
	DI, DJ int
}

// NeighborOffsets lists the 8 positions adjacent to a cell, diagonals included
var NeighborOffsets = [8]Offset{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}
