package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim l", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"help", runeKey('?'), core.ActionHelp},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.Action(tc.msg))
		})
	}
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, snake.DirUp, directionFor(core.ActionUp))
	assert.Equal(t, snake.DirDown, directionFor(core.ActionDown))
	assert.Equal(t, snake.DirLeft, directionFor(core.ActionLeft))
	assert.Equal(t, snake.DirRight, directionFor(core.ActionRight))
	assert.Equal(t, snake.DirNone, directionFor(core.ActionPause))
}

func TestHelpBindingsCoverKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 7)

	n := 0
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	assert.Equal(t, 7, n)
}
