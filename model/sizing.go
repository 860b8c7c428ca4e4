package model

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultCellSize is the edge length of a rendered cell in display units
const DefaultCellSize = 25

// Dimensions derives grid rows and columns from a display area, rounding up
// so the grid always covers the whole area
func Dimensions(width, height, cellSize float64) (rows, cols int, err error) {
	if cellSize <= 0 {
		return 0, 0, errors.Wrapf(ErrInvalidDimensions, "[Dimensions] cell size: %v", cellSize)
	}
	if width < 0 || height < 0 {
		return 0, 0, errors.Wrapf(ErrInvalidDimensions, "[Dimensions] area: %vx%v", width, height)
	}
	rows = int(math.Ceil(height / cellSize))
	cols = int(math.Ceil(width / cellSize))
	return rows, cols, nil
}
