package snake

import "slices"

// StateType names the controller state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
	StateWon      StateType = "won"
)

// Snapshot is a read-only copy of the controller state for rendering and
// change detection.
type Snapshot struct {
	Tick     uint64    `yaml:"tick"`
	Width    int       `yaml:"width"`
	Height   int       `yaml:"height"`
	Body     []Cell    `yaml:"body"`
	Food     Cell      `yaml:"food"`
	HasFood  bool      `yaml:"has_food"`
	Heading  Direction `yaml:"heading"`
	GameOver bool      `yaml:"game_over"`
	Won      bool      `yaml:"won"`
	State    StateType `yaml:"state"`
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case c.won:
		state = StateWon
	case c.gameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:     c.tick,
		Width:    c.env.Width(),
		Height:   c.env.Height(),
		Body:     c.snake.Body(),
		Food:     c.env.Food(),
		HasFood:  c.foodExists,
		Heading:  c.snake.Heading(),
		GameOver: c.gameOver,
		Won:      c.won,
		State:    state,
	}
}

// Length returns the number of body segments.
func (s Snapshot) Length() int {
	return len(s.Body)
}

// Head returns the head cell, or the zero Cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// FoodCell returns the food cell and whether food is present.
func (s Snapshot) FoodCell() (Cell, bool) {
	return s.Food, s.HasFood
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Tick == o.Tick &&
		s.Width == o.Width &&
		s.Height == o.Height &&
		s.HasFood == o.HasFood &&
		(!s.HasFood || s.Food == o.Food) &&
		s.Heading == o.Heading &&
		s.GameOver == o.GameOver &&
		s.Won == o.Won &&
		slices.Equal(s.Body, o.Body)
}
