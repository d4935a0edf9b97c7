package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// Environment owns the board dimensions and the current food cell.
// It knows nothing about the snake; the Controller correlates the two.
type Environment struct {
	width  int
	height int
	food   Cell
	rng    *rand.Rand
}

// NewEnvironment creates a board of the given size with no food placed.
// Width and height must be positive multiples of BlockSize; anything else is a
// programming error and panics. A nil rng is replaced by a time-seeded source.
func NewEnvironment(width, height int, rng *rand.Rand) *Environment {
	if width <= 0 || height <= 0 || width%BlockSize != 0 || height%BlockSize != 0 {
		panic(fmt.Sprintf("snake: board %dx%d is not a positive multiple of %d", width, height, BlockSize))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Environment{
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Width returns the board width in board units.
func (e *Environment) Width() int {
	return e.width
}

// Height returns the board height in board units.
func (e *Environment) Height() int {
	return e.height
}

// Columns returns the number of grid columns.
func (e *Environment) Columns() int {
	return e.width / BlockSize
}

// Rows returns the number of grid rows.
func (e *Environment) Rows() int {
	return e.height / BlockSize
}

// CellCount returns the number of grid cells on the board.
func (e *Environment) CellCount() int {
	return e.Columns() * e.Rows()
}

// InGrid reports whether c is one of the block-aligned cells food may occupy.
func (e *Environment) InGrid(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < e.width && c.Y < e.height &&
		c.X%BlockSize == 0 && c.Y%BlockSize == 0
}

// Food returns the most recently placed food cell.
// The value is meaningless until the controller flags food as present.
func (e *Environment) Food() Cell {
	return e.food
}

// PlaceFood picks a uniformly random grid cell and stores it as the food cell.
// It does not check the snake; callers retry until the cell is free.
func (e *Environment) PlaceFood() Cell {
	col := e.rng.Intn(e.Columns())
	row := e.rng.Intn(e.Rows())
	e.food = Cell{X: col * BlockSize, Y: row * BlockSize}
	return e.food
}

// PlaceFoodFrom picks uniformly among the candidate cells and stores the pick.
// Panics when there are no candidates.
func (e *Environment) PlaceFoodFrom(cells []Cell) Cell {
	if len(cells) == 0 {
		panic("snake: PlaceFoodFrom called with no candidate cells")
	}
	e.food = cells[e.rng.Intn(len(cells))]
	return e.food
}
