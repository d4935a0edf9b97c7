package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout constants
const hudHeight = 2 // HUD line + separator

// boardLayout describes how grid cells map to terminal cells.
type boardLayout struct {
	cellW   int // terminal columns per grid cell
	rowsPer int // grid rows per terminal row
}

var (
	// fullLayout draws each grid cell as two columns on its own row.
	fullLayout = boardLayout{cellW: 2, rowsPer: 1}
	// halfLayout packs two grid rows into one terminal row with half blocks.
	halfLayout = boardLayout{cellW: 1, rowsPer: 2}
)

// size returns the terminal size needed for a board, HUD included.
func (l boardLayout) size(width, height int) (w, h int) {
	cols := width / snake.BlockSize
	rows := height / snake.BlockSize
	return cols*l.cellW + 2, (rows+l.rowsPer-1)/l.rowsPer + 2 + hudHeight
}

// pickLayout returns the largest layout that fits the screen.
func pickLayout(screenW, screenH, width, height int) (boardLayout, bool) {
	screen := core.NewRect(0, 0, screenW, screenH)
	for _, l := range []boardLayout{fullLayout, halfLayout} {
		if screen.Fits(l.size(width, height)) {
			return l, true
		}
	}
	return boardLayout{}, false
}

// cellKind is what occupies a grid cell.
type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindFood
	kindBody
	kindHead
)

// Glyphs for the full layout, one per terminal column of a grid cell.
var fullGlyphs = map[cellKind][2]rune{
	kindHead: {'█', '█'},
	kindBody: {'▓', '▓'},
	kindFood: {'(', ')'},
}

var kindColors = map[cellKind]core.Color{
	kindHead: core.ColorBrightGreen,
	kindBody: core.ColorGreen,
	kindFood: core.ColorRed,
}

// BoardStatus carries shell-side state shown alongside the snapshot.
type BoardStatus struct {
	Paused         bool
	RestartIn      time.Duration // Time left on the game over screen
	MovesPerSecond float64
}

// BoardSize returns the terminal size needed to draw a board in the full
// layout, HUD included.
func BoardSize(width, height int) (w, h int) {
	return fullLayout.size(width, height)
}

// CompactBoardSize returns the smallest terminal size that can show a board.
func CompactBoardSize(width, height int) (w, h int) {
	return halfLayout.size(width, height)
}

// BoardFits reports whether a width x height board can be drawn on a
// screenW x screenH screen in any layout.
func BoardFits(screenW, screenH, width, height int) bool {
	_, ok := pickLayout(screenW, screenH, width, height)
	return ok
}

// DrawBoard renders a snapshot into the screen buffer. The full layout is
// used when it fits, the half-block layout otherwise.
func DrawBoard(dst *core.Screen, snap snake.Snapshot, st BoardStatus) {
	dst.Clear()
	drawHUD(dst, snap, st)

	layout, ok := pickLayout(dst.Width(), dst.Height(), snap.Width, snap.Height)
	if !ok {
		needW, needH := CompactBoardSize(snap.Width, snap.Height)
		drawOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()), core.ColorYellow)
		return
	}

	needW, needH := layout.size(snap.Width, snap.Height)
	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, needH-hudHeight)

	borderColor := core.ColorGray
	if snap.GameOver && !snap.Won {
		borderColor = core.ColorBrightRed
	}
	dst.DrawBox(frame, borderColor)

	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	grid := gridKinds(snap)
	if layout == fullLayout {
		drawFull(dst, inner, grid)
	} else {
		drawHalf(dst, inner, grid)
	}

	switch {
	case snap.Won:
		drawOverlay(dst, frame, "Board cleared!", restartLine(snap, st), core.ColorBrightGreen)
	case snap.GameOver:
		drawOverlay(dst, frame, "Game Over", restartLine(snap, st), core.ColorBrightRed)
	case st.Paused:
		drawOverlay(dst, frame, "Paused", "Press P to continue", core.ColorYellow)
	}
}

// gridKinds lays the snapshot out as rows x cols cell kinds.
// The head is written last so it wins over anything beneath it.
func gridKinds(snap snake.Snapshot) [][]cellKind {
	cols := snap.Width / snake.BlockSize
	rows := snap.Height / snake.BlockSize

	grid := make([][]cellKind, rows)
	for row := range grid {
		grid[row] = make([]cellKind, cols)
	}

	put := func(c snake.Cell, k cellKind) {
		if c.X < 0 || c.Y < 0 {
			return
		}
		col, row := c.X/snake.BlockSize, c.Y/snake.BlockSize
		if row < rows && col < cols {
			grid[row][col] = k
		}
	}

	if food, ok := snap.FoodCell(); ok {
		put(food, kindFood)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		if i == 0 {
			put(snap.Body[i], kindHead)
		} else {
			put(snap.Body[i], kindBody)
		}
	}
	return grid
}

// drawFull draws one grid cell per terminal row, two columns wide.
func drawFull(dst *core.Screen, inner core.Rect, grid [][]cellKind) {
	for row, line := range grid {
		for col, k := range line {
			if k == kindEmpty {
				continue
			}
			x := inner.X + col*fullLayout.cellW
			for i, r := range fullGlyphs[k] {
				dst.SetColored(x+i, inner.Y+row, r, kindColors[k])
			}
		}
	}
}

// drawHalf draws two grid rows per terminal row. The upper cell is the
// foreground of '▀' and the lower one its background.
func drawHalf(dst *core.Screen, inner core.Rect, grid [][]cellKind) {
	for top := 0; top < len(grid); top += 2 {
		y := inner.Y + top/2
		for col, upper := range grid[top] {
			lower := kindEmpty
			if top+1 < len(grid) {
				lower = grid[top+1][col]
			}

			x := inner.X + col
			switch {
			case upper == kindEmpty && lower == kindEmpty:
			case lower == kindEmpty:
				dst.SetColored(x, y, '▀', kindColors[upper])
			case upper == kindEmpty:
				dst.SetColored(x, y, '▄', kindColors[lower])
			case kindColors[upper] == kindColors[lower]:
				dst.SetColored(x, y, '█', kindColors[upper])
			default:
				dst.SetStyled(x, y, '▀', kindColors[upper], kindColors[lower])
			}
		}
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, snap snake.Snapshot, st BoardStatus) {
	hud := fmt.Sprintf(" Snake | Length: %d | Speed: %g/s", snap.Length(), st.MovesPerSecond)
	dst.DrawText(0, 0, hud)

	state := string(snap.State)
	if st.Paused && !snap.GameOver {
		state = "paused"
	}
	dst.DrawTextColored(dst.Width()-len(state)-1, 0, state, core.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func restartLine(snap snake.Snapshot, st BoardStatus) string {
	if st.RestartIn <= 0 {
		return fmt.Sprintf("Length %d, restarting...", snap.Length())
	}
	return fmt.Sprintf("Length %d, restarting in %.1fs", snap.Length(), st.RestartIn.Seconds())
}

// drawOverlay draws a boxed two-line message centered in area.
func drawOverlay(dst *core.Screen, area core.Rect, line1, line2 string, color core.Color) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	drawCentered(dst, box, box.Y+1, line1, color)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

// drawCentered writes text horizontally centered within box on row y.
func drawCentered(dst *core.Screen, box core.Rect, y int, text string, color core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, color)
}
