package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("Ud.lR")
	require.NoError(t, err)
	assert.Equal(t, []snake.Direction{snake.DirUp, snake.DirDown, snake.DirNone, snake.DirLeft, snake.DirRight}, moves)

	_, err = parseMoves("RX")
	assert.ErrorContains(t, err, "position 1")

	// Positions count runes, not bytes
	_, err = parseMoves("→RX")
	assert.ErrorContains(t, err, "position 0")
	_, err = parseMoves("R.→")
	assert.ErrorContains(t, err, "position 2")
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	ctrl := snake.NewController(snake.Settings{
		Width: 600, Height: 600, SpawnX: 50, SpawnY: 50,
		RestartDelay: 0, MaxPlacementAttempts: 64, Seed: 3,
	})
	moves, err := parseMoves("UUU")
	require.NoError(t, err)

	// Head starts at (100,50): the third move up leaves the board.
	snap := simulate(ctrl, moves, 10, log.New(io.Discard))
	assert.True(t, snap.GameOver)
	assert.Equal(t, uint64(3), snap.Tick)
	assert.Equal(t, snake.Cell{X: 100, Y: 0}, snap.Head())
}

func TestSimulateIgnoresReversal(t *testing.T) {
	ctrl := snake.NewController(snake.DefaultSettings())
	moves, err := parseMoves("L")
	require.NoError(t, err)

	snap := simulate(ctrl, moves, 1, log.New(io.Discard))
	assert.False(t, snap.GameOver)
	assert.Equal(t, snake.DirRight, snap.Heading)
}
