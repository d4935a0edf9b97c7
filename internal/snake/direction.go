// Package snake implements the deterministic game-state engine for the grid
// snake game: movement and growth, food placement, and the collision and
// bounds rules that drive the Playing/GameOver state machine.
//
// The package holds no presentation types. Shells drive it through
// Controller.Tick, Controller.RequestDirectionChange and
// Controller.RestartIfReady, and read it back through Controller.Snapshot.
package snake

// BlockSize is the edge length of one grid cell in board coordinates.
const BlockSize = 25

// Cell is one block-aligned position on the board.
// Coordinates are in board units (multiples of BlockSize for aligned cells),
// not grid indices.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is the snake's heading.
// The zero value DirNone means "no direction requested".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Delta returns the one-block step taken when moving in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -BlockSize
	case DirDown:
		return 0, BlockSize
	case DirLeft:
		return -BlockSize, 0
	case DirRight:
		return BlockSize, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText lets snapshots serialise headings by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection maps a one-letter or full direction name to a Direction.
// Unknown input yields DirNone and false.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "u", "U", "up":
		return DirUp, true
	case "d", "D", "down":
		return DirDown, true
	case "l", "L", "left":
		return DirLeft, true
	case "r", "R", "right":
		return DirRight, true
	default:
		return DirNone, false
	}
}
