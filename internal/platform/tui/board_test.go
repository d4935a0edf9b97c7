package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// boardOrigin returns the screen position of grid cell (0,0) for a 600x600
// board drawn on a screen of the given width.
func boardOrigin(screenW int) (x, y int) {
	needW, _ := BoardSize(600, 600)
	return (screenW-needW)/2 + 1, hudHeight + 1
}

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(600, 600)
	assert.Equal(t, 50, w)
	assert.Equal(t, 28, h)

	w, h = BoardSize(250, 100)
	assert.Equal(t, 22, w)
	assert.Equal(t, 8, h)
}

func TestDrawBoardSnake(t *testing.T) {
	ctrl := snake.NewController(snake.DefaultSettings())
	screen := core.NewScreen(60, 30)

	DrawBoard(screen, ctrl.Snapshot(), BoardStatus{MovesPerSecond: 10})

	ox, oy := boardOrigin(60)

	// Head (100,50) is column 4, row 2
	head := screen.GetCell(ox+4*fullLayout.cellW, oy+2)
	assert.Equal(t, '█', head.Rune)
	assert.Equal(t, core.ColorBrightGreen, head.Color)

	body := screen.GetCell(ox+3*fullLayout.cellW, oy+2)
	assert.Equal(t, '▓', body.Rune)
	assert.Equal(t, core.ColorGreen, body.Color)

	assert.Equal(t, '▓', screen.Get(ox+2*fullLayout.cellW+1, oy+2))
	assert.Equal(t, ' ', screen.Get(ox+5*fullLayout.cellW, oy+2))

	assert.Contains(t, screen.Row(0), "Length: 3")
	assert.Contains(t, screen.Row(0), "Speed: 10/s")
	assert.Contains(t, screen.Row(0), "playing")
	assert.Equal(t, '┌', screen.Get(ox-1, oy-1))
}

func TestDrawBoardFood(t *testing.T) {
	ctrl := snake.NewController(snake.DefaultSettings())
	ctrl.Tick(snake.DirNone)

	snap := ctrl.Snapshot()
	food, ok := snap.FoodCell()
	require.True(t, ok)

	screen := core.NewScreen(60, 30)
	DrawBoard(screen, snap, BoardStatus{})

	ox, oy := boardOrigin(60)
	x := ox + food.X/snake.BlockSize*fullLayout.cellW
	y := oy + food.Y/snake.BlockSize
	assert.Equal(t, '(', screen.Get(x, y))
	assert.Equal(t, ')', screen.Get(x+1, y))
	assert.Equal(t, core.ColorRed, screen.GetCell(x, y).Color)
}

func TestCompactBoardSize(t *testing.T) {
	w, h := CompactBoardSize(600, 600)
	assert.Equal(t, 26, w)
	assert.Equal(t, 16, h)

	// Odd row counts round up
	w, h = CompactBoardSize(100, 75)
	assert.Equal(t, 6, w)
	assert.Equal(t, 6, h)
}

func TestBoardFits(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		layout boardLayout
		fits   bool
	}{
		{"large terminal", 120, 40, fullLayout, true},
		{"exact full", 50, 28, fullLayout, true},
		{"80x24 minus footer", 80, 23, halfLayout, true},
		{"exact compact", 26, 16, halfLayout, true},
		{"too narrow", 25, 40, boardLayout{}, false},
		{"too short", 80, 15, boardLayout{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout, ok := pickLayout(tc.w, tc.h, 600, 600)
			assert.Equal(t, tc.fits, ok)
			assert.Equal(t, tc.layout, layout)
			assert.Equal(t, tc.fits, BoardFits(tc.w, tc.h, 600, 600))
		})
	}
}

func TestDrawBoardHalfLayout(t *testing.T) {
	ctrl := snake.NewController(snake.DefaultSettings())
	screen := core.NewScreen(80, 23)

	DrawBoard(screen, ctrl.Snapshot(), BoardStatus{MovesPerSecond: 10})
	require.NotContains(t, screen.String(), "Window too small")

	// Frame is 26 wide, centered: inner origin at (28, 3)
	ox, oy := (80-26)/2+1, hudHeight+1

	// Row 2 is the upper half of terminal row 1
	head := screen.GetCell(ox+4, oy+1)
	assert.Equal(t, '▀', head.Rune)
	assert.Equal(t, core.ColorBrightGreen, head.Color)
	assert.Equal(t, core.ColorDefault, head.Bg)

	body := screen.GetCell(ox+2, oy+1)
	assert.Equal(t, '▀', body.Rune)
	assert.Equal(t, core.ColorGreen, body.Color)

	assert.Equal(t, ' ', screen.Get(ox+5, oy+1))
	assert.Equal(t, '┘', screen.Get(ox+24, oy+12))
}

func TestDrawBoardHalfLayoutStacksCells(t *testing.T) {
	snap := snake.Snapshot{
		Width:   100,
		Height:  75,
		Body:    []snake.Cell{{X: 0, Y: 0}, {X: 0, Y: 25}, {X: 25, Y: 25}, {X: 50, Y: 25}, {X: 50, Y: 0}},
		Food:    snake.Cell{X: 75, Y: 25},
		HasFood: true,
		State:   snake.StatePlaying,
	}
	// Full layout needs 10x7; 10x6 forces half blocks
	screen := core.NewScreen(10, 6)
	DrawBoard(screen, snap, BoardStatus{})

	ox, oy := (10-6)/2+1, hudHeight+1

	tests := []struct {
		name string
		x, y int
		want core.ScreenCell
	}{
		{"head over body", ox, oy, core.ScreenCell{Rune: '▀', Color: core.ColorBrightGreen, Bg: core.ColorGreen}},
		{"body below empty", ox + 1, oy, core.ScreenCell{Rune: '▄', Color: core.ColorGreen}},
		{"body over body", ox + 2, oy, core.ScreenCell{Rune: '█', Color: core.ColorGreen}},
		{"food below empty", ox + 3, oy, core.ScreenCell{Rune: '▄', Color: core.ColorRed}},
		{"empty pair", ox, oy + 1, core.ScreenCell{Rune: ' '}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, screen.GetCell(tc.x, tc.y))
		})
	}
}

func TestDrawBoardTooSmall(t *testing.T) {
	ctrl := snake.NewController(snake.DefaultSettings())
	screen := core.NewScreen(40, 12)

	DrawBoard(screen, ctrl.Snapshot(), BoardStatus{})

	assert.Contains(t, screen.String(), "Window too small")
	assert.Contains(t, screen.String(), "Need 26x16")
}

func TestDrawBoardOverlays(t *testing.T) {
	s := snake.DefaultSettings()
	s.SpawnX = 525
	over := snake.NewController(s)
	over.Tick(snake.DirNone)
	require.True(t, over.IsGameOver())

	won := snake.NewController(snake.Settings{Width: 100, Height: 25})
	won.Tick(snake.DirNone)
	won.Tick(snake.DirNone)
	require.True(t, won.IsWon())

	tests := []struct {
		name   string
		snap   snake.Snapshot
		status BoardStatus
		want   string
	}{
		{"game over", over.Snapshot(), BoardStatus{RestartIn: 1500 * time.Millisecond}, "restarting in 1.5s"},
		{"game over title", over.Snapshot(), BoardStatus{}, "Game Over"},
		{"won", won.Snapshot(), BoardStatus{}, "Board cleared!"},
		{"paused", snake.NewController(snake.DefaultSettings()).Snapshot(), BoardStatus{Paused: true}, "Paused"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(60, 30)
			DrawBoard(screen, tc.snap, tc.status)
			assert.True(t, strings.Contains(screen.String(), tc.want), "missing %q in\n%s", tc.want, screen.String())
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd")
	screen.DrawTextColored(0, 1, "xyz", core.ColorGreen)

	screen.SetStyled(4, 1, '▀', core.ColorGreen, core.ColorRed)

	out := RenderScreen(screen)
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "▀")
	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "xyz")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
