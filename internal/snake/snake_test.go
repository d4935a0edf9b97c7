package snake

import (
	"testing"

	"github.com/kamstrup/intmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSnakeFrom builds a snake with an arbitrary body for edge-case tests.
func newSnakeFrom(dir Direction, body ...Cell) *Snake {
	s := &Snake{
		body:      append([]Cell(nil), body...),
		direction: dir,
		occupied:  intmap.New[int64, int](len(body)),
	}
	for _, c := range body {
		s.mark(c)
	}
	return s
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(50, 50)

	assert.Equal(t, []Cell{{100, 50}, {75, 50}, {50, 50}}, s.Body())
	assert.Equal(t, DirRight, s.Heading())
	assert.Equal(t, Cell{100, 50}, s.Head())
	assert.Equal(t, Cell{50, 50}, s.Tail())
	assert.False(t, s.HasPendingTail())
}

func TestMoveForward(t *testing.T) {
	s := NewSnake(50, 50)
	s.MoveForward(DirNone)

	assert.Equal(t, []Cell{{125, 50}, {100, 50}, {75, 50}}, s.Body())
	assert.Equal(t, DirRight, s.Heading())
	require.True(t, s.HasPendingTail())
	assert.Equal(t, Cell{50, 50}, s.pendingTail)

	assert.False(t, s.Occupies(Cell{50, 50}), "vacated tail cell should be free")
	assert.True(t, s.Occupies(Cell{125, 50}))
}

func TestMoveForwardAppliesDirectionUnconditionally(t *testing.T) {
	s := NewSnake(50, 50)

	// Reversal is the controller's concern; the snake just obeys.
	s.MoveForward(DirLeft)
	assert.Equal(t, DirLeft, s.Heading())
	assert.Equal(t, Cell{75, 50}, s.Head())
	assert.Equal(t, 3, s.Len())
}

func TestRestoreTail(t *testing.T) {
	s := NewSnake(50, 50)
	s.MoveForward(DirNone)
	s.RestoreTail()

	assert.Equal(t, []Cell{{125, 50}, {100, 50}, {75, 50}, {50, 50}}, s.Body())
	assert.True(t, s.Occupies(Cell{50, 50}))
	assert.False(t, s.HasPendingTail())
}

func TestRestoreTailWithoutMovePanics(t *testing.T) {
	s := NewSnake(50, 50)
	assert.Panics(t, func() { s.RestoreTail() })

	s.MoveForward(DirNone)
	s.RestoreTail()
	assert.Panics(t, func() { s.RestoreTail() }, "second restore in the same move")
}

func TestHeadNext(t *testing.T) {
	s := NewSnake(50, 50)

	tests := []struct {
		dir  Direction
		want Cell
	}{
		{DirNone, Cell{125, 50}},
		{DirRight, Cell{125, 50}},
		{DirLeft, Cell{75, 50}},
		{DirUp, Cell{100, 25}},
		{DirDown, Cell{100, 75}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			first := s.HeadNext(tc.dir)
			second := s.HeadNext(tc.dir)
			assert.Equal(t, tc.want, first)
			assert.Equal(t, first, second)
		})
	}

	assert.Equal(t, []Cell{{100, 50}, {75, 50}, {50, 50}}, s.Body(), "lookahead must not mutate")
	assert.Equal(t, DirRight, s.Heading())
}

func TestOverlapTailSkipsTrueTail(t *testing.T) {
	// A 2x2 loop: moving down from the head lands on the current tail.
	s := newSnakeFrom(DirLeft,
		Cell{0, 0},
		Cell{25, 0},
		Cell{25, 25},
		Cell{0, 25},
	)

	next := s.HeadNext(DirDown)
	require.Equal(t, s.Tail(), next)

	assert.False(t, s.OverlapTail(next))
	assert.True(t, s.Occupies(next))

	assert.True(t, s.OverlapTail(Cell{0, 0}))
	assert.True(t, s.OverlapTail(Cell{25, 25}))
	assert.False(t, s.OverlapTail(Cell{50, 50}))
}

func TestBodyIsACopy(t *testing.T) {
	s := NewSnake(50, 50)
	body := s.Body()
	body[0] = Cell{-1, -1}

	assert.Equal(t, Cell{100, 50}, s.Head())
}

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, DirDown, DirUp.Opposite())
	assert.Equal(t, DirUp, DirDown.Opposite())
	assert.Equal(t, DirRight, DirLeft.Opposite())
	assert.Equal(t, DirLeft, DirRight.Opposite())
	assert.Equal(t, DirNone, DirNone.Opposite())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"U": DirUp, "down": DirDown, "l": DirLeft, "R": DirRight} {
		got, ok := ParseDirection(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseDirection("x")
	assert.False(t, ok)
}
