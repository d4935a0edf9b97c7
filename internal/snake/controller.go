package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Defaults matching the classic 600x600 board.
const (
	DefaultWidth                = 600
	DefaultHeight               = 600
	DefaultSpawnX               = 50
	DefaultSpawnY               = 50
	DefaultRestartDelay         = 2 * time.Second
	DefaultMaxPlacementAttempts = 64
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrGridNotAligned    = errors.New("board dimensions must be multiples of the block size")
	ErrSpawnOutOfGrid    = errors.New("spawn point does not fit the starting snake on the board")
)

// Settings fixes the board and restart behaviour of a Controller.
type Settings struct {
	Width                int
	Height               int
	SpawnX               int
	SpawnY               int
	RestartDelay         time.Duration
	MaxPlacementAttempts int
	Seed                 int64
}

// DefaultSettings returns the classic board configuration.
func DefaultSettings() Settings {
	return Settings{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		SpawnX:               DefaultSpawnX,
		SpawnY:               DefaultSpawnY,
		RestartDelay:         DefaultRestartDelay,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

// Validate checks the preconditions NewController relies on.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if s.Width%BlockSize != 0 || s.Height%BlockSize != 0 {
		return fmt.Errorf("%w: got %dx%d, block size %d", ErrGridNotAligned, s.Width, s.Height, BlockSize)
	}
	if s.SpawnX < 0 || s.SpawnY < 0 || s.SpawnX%BlockSize != 0 || s.SpawnY%BlockSize != 0 ||
		s.SpawnX+2*BlockSize >= s.Width || s.SpawnY >= s.Height {
		return fmt.Errorf("%w: spawn (%d,%d) on %dx%d", ErrSpawnOutOfGrid, s.SpawnX, s.SpawnY, s.Width, s.Height)
	}
	return nil
}

// Option customises a Controller.
type Option func(*Controller)

// WithClock replaces time.Now as the source for the game-over timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithRand supplies the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// Controller composes the Environment and the Snake and applies one tick of
// game rules at a time. It is not safe for concurrent use; the shell
// serialises ticks and input events.
type Controller struct {
	settings Settings
	rng      *rand.Rand
	now      func() time.Time

	env   *Environment
	snake *Snake

	foodExists bool
	gameOver   bool
	won        bool
	gameOverAt time.Time

	queued Direction
	tick   uint64
}

// NewController creates a controller in the Playing state with a fresh snake
// and no food. Settings must satisfy Validate; the board dimensions are a
// hard precondition and panic otherwise.
func NewController(s Settings, opts ...Option) *Controller {
	if s.MaxPlacementAttempts <= 0 {
		s.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}

	c := &Controller{
		settings: s,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(s.Seed))
	}

	c.Restart()
	return c
}

// Restart rebuilds the snake and the environment from their constructors
// and returns to Playing.
func (c *Controller) Restart() {
	c.env = NewEnvironment(c.settings.Width, c.settings.Height, c.rng)
	c.snake = NewSnake(c.settings.SpawnX, c.settings.SpawnY)
	c.foodExists = false
	c.gameOver = false
	c.won = false
	c.gameOverAt = time.Time{}
	c.queued = DirNone
	c.tick = 0
}

// Environment returns the board.
func (c *Controller) Environment() *Environment {
	return c.env
}

// Snake returns the snake.
func (c *Controller) Snake() *Snake {
	return c.snake
}

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// IsGameOver reports whether the game has ended, by collision or by filling the board.
func (c *Controller) IsGameOver() bool {
	return c.gameOver
}

// IsWon reports whether the game ended because no free cell was left for food.
func (c *Controller) IsWon() bool {
	return c.won
}

// FoodExists reports whether food is currently on the board.
func (c *Controller) FoodExists() bool {
	return c.foodExists
}

// Heading returns the snake's current heading.
func (c *Controller) Heading() Direction {
	return c.snake.Heading()
}

// QueuedDirection returns the direction accepted for the next tick, or DirNone.
func (c *Controller) QueuedDirection() Direction {
	return c.queued
}

// GameOverAt returns when the game entered GameOver. Zero while playing.
func (c *Controller) GameOverAt() time.Time {
	return c.gameOverAt
}

// CheckBounds reports whether moving in d (or the current heading for
// DirNone) is legal: the next head must not hit the body, excluding the true
// tail, and must satisfy -BlockSize < x < width and -BlockSize < y < height.
func (c *Controller) CheckBounds(d Direction) bool {
	next := c.snake.HeadNext(d)

	if c.snake.OverlapTail(next) {
		return false
	}

	return next.X > -BlockSize &&
		next.Y > -BlockSize &&
		next.X < c.env.Width() &&
		next.Y < c.env.Height()
}

// UpdateTick moves the snake if the move is legal and then checks whether
// the new head landed on the food. An illegal move ends the game and leaves
// the body untouched. The growth buffer only lives for the tick that filled it.
func (c *Controller) UpdateTick(d Direction) {
	c.snake.dropPendingTail()
	if !c.CheckBounds(d) {
		c.enterGameOver()
		return
	}
	c.snake.MoveForward(d)
	c.eatFood()
}

// eatFood grows the snake when the head sits on the food.
func (c *Controller) eatFood() {
	if c.foodExists && c.snake.Head() == c.env.Food() {
		c.foodExists = false
		c.snake.RestoreTail()
	}
}

func (c *Controller) enterGameOver() {
	c.gameOver = true
	c.gameOverAt = c.now()
}

// EnsureFood places food when none is present, retrying random placements
// until one misses the whole body. After MaxPlacementAttempts misses it picks
// among the enumerated free cells; with no free cell left the game is won.
// It returns whether food is present afterwards.
func (c *Controller) EnsureFood() bool {
	if c.foodExists || c.gameOver {
		return c.foodExists
	}

	for range c.settings.MaxPlacementAttempts {
		if !c.snake.Occupies(c.env.PlaceFood()) {
			c.foodExists = true
			return true
		}
	}

	free := c.freeCells()
	if len(free) == 0 {
		c.won = true
		c.enterGameOver()
		return false
	}
	c.env.PlaceFoodFrom(free)
	c.foodExists = true
	return true
}

// freeCells lists the grid cells not covered by the snake, row by row.
func (c *Controller) freeCells() []Cell {
	free := make([]Cell, 0, max(0, c.env.CellCount()-c.snake.Len()))
	for row := range c.env.Rows() {
		for col := range c.env.Columns() {
			cell := Cell{X: col * BlockSize, Y: row * BlockSize}
			if !c.snake.Occupies(cell) {
				free = append(free, cell)
			}
		}
	}
	return free
}

// Tick advances the game by one step. A DirNone argument uses the direction
// queued by RequestDirectionChange, falling back to the current heading.
// Food is replenished before the move. Tick does nothing in GameOver.
func (c *Controller) Tick(d Direction) {
	if c.gameOver {
		return
	}
	c.tick++

	if d == DirNone {
		d = c.queued
	}
	c.queued = DirNone

	if !c.EnsureFood() {
		return
	}
	c.UpdateTick(d)
}

// RequestDirectionChange queues d for the next tick. Requests are ignored in
// GameOver and when d reverses the current heading. It reports whether the
// request was accepted.
func (c *Controller) RequestDirectionChange(d Direction) bool {
	if c.gameOver || d == DirNone {
		return false
	}
	if d == c.snake.Heading().Opposite() {
		return false
	}
	c.queued = d
	return true
}

// RestartIfReady restarts the game once more than RestartDelay has passed
// since it entered GameOver. It reports whether a restart happened.
func (c *Controller) RestartIfReady(now time.Time) bool {
	if !c.gameOver {
		return false
	}
	if now.Sub(c.gameOverAt) <= c.settings.RestartDelay {
		return false
	}
	c.Restart()
	return true
}
