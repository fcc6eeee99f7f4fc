package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietbit/skyhop/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "enter":
		return core.ActionStart, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionMenu, false
	}

	return core.ActionNone, false
}

// IsHeldAction reports whether the action is level-triggered. Terminals only
// deliver key-down events, so held movement is synthesized from key repeats
// inside a short hold window; everything else is a one-shot edge.
func IsHeldAction(a core.Action) bool {
	return a == core.ActionMoveLeft || a == core.ActionMoveRight
}
