package snake

import "github.com/kamstrup/intmap"

// Snake is the ordered body of cells (head first) plus its heading.
//
// After every MoveForward the removed tail cell is held in a single-slot
// growth buffer so that RestoreTail can put it back when food is eaten.
type Snake struct {
	body      []Cell
	direction Direction

	pendingTail    Cell
	hasPendingTail bool

	// occupied mirrors body as cellKey -> segment count.
	occupied *intmap.Map[int64, int]
}

// NewSnake creates the fixed three-segment starting snake facing right,
// tail at (x, y) and head two blocks to its right.
func NewSnake(x, y int) *Snake {
	s := &Snake{
		body: []Cell{
			{X: x + 2*BlockSize, Y: y}, // head
			{X: x + BlockSize, Y: y},
			{X: x, Y: y},
		},
		direction: DirRight,
		occupied:  intmap.New[int64, int](64),
	}
	for _, c := range s.body {
		s.mark(c)
	}
	return s
}

// cellKey packs a cell into a single integer key.
func cellKey(c Cell) int64 {
	return int64(c.X)<<32 | int64(uint32(c.Y))
}

func (s *Snake) mark(c Cell) {
	k := cellKey(c)
	n, _ := s.occupied.Get(k)
	s.occupied.Put(k, n+1)
}

func (s *Snake) unmark(c Cell) {
	k := cellKey(c)
	n, ok := s.occupied.Get(k)
	switch {
	case !ok:
	case n <= 1:
		s.occupied.Del(k)
	default:
		s.occupied.Put(k, n-1)
	}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Tail returns the true tail, the segment that vacates its cell on the next move.
func (s *Snake) Tail() Cell {
	return s.body[len(s.body)-1]
}

// Heading returns the direction the snake last moved (or was spawned) in.
func (s *Snake) Heading() Direction {
	return s.direction
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// HeadNext returns where the head would be after one move in d, or in the
// current heading when d is DirNone. It does not mutate the snake.
func (s *Snake) HeadNext(d Direction) Cell {
	if d == DirNone {
		d = s.direction
	}
	dx, dy := d.Delta()
	return s.Head().Add(dx, dy)
}

// MoveForward advances the snake one block. A non-None d replaces the heading
// unconditionally; reversal checks belong to the caller.
// The removed tail is kept for RestoreTail.
func (s *Snake) MoveForward(d Direction) {
	if d != DirNone {
		s.direction = d
	}

	newHead := s.HeadNext(DirNone)
	tail := s.body[len(s.body)-1]

	// Prepend the new head, drop the tail
	s.body = append([]Cell{newHead}, s.body[:len(s.body)-1]...)

	s.mark(newHead)
	s.unmark(tail)

	s.pendingTail = tail
	s.hasPendingTail = true
}

// HasPendingTail reports whether RestoreTail may be called.
func (s *Snake) HasPendingTail() bool {
	return s.hasPendingTail
}

// dropPendingTail empties the growth buffer.
func (s *Snake) dropPendingTail() {
	s.hasPendingTail = false
}

// RestoreTail re-appends the tail removed by the last MoveForward, growing the
// snake by one segment. It is valid once per move; calling it without a
// preceding MoveForward panics.
func (s *Snake) RestoreTail() {
	if !s.hasPendingTail {
		panic("snake: RestoreTail called without a preceding MoveForward")
	}
	s.body = append(s.body, s.pendingTail)
	s.mark(s.pendingTail)
	s.hasPendingTail = false
}

// OverlapTail reports whether c matches a body segment other than the true
// tail. The tail is skipped because it leaves its cell on the coming move.
func (s *Snake) OverlapTail(c Cell) bool {
	for _, seg := range s.body[:len(s.body)-1] {
		if seg == c {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment, tail included, sits on c.
func (s *Snake) Occupies(c Cell) bool {
	_, ok := s.occupied.Get(cellKey(c))
	return ok
}
