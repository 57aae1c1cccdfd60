package ui

import (
	"github.com/gdamore/tcell/v2"

	"warehouse-crawler/internal/engine"
	"warehouse-crawler/internal/gamemap"
)

// maxRun caps a shift-move so it cannot cross a whole floor blindly.
const maxRun = 20

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionRunN
	ActionRunS
	ActionRunE
	ActionRunW
	ActionWait
	ActionGrab
	ActionStairs
	ActionQuit
)

// keyToAction maps a tcell key event to an action. Uppercase movement keys
// run until something interesting stops the player.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'k', 'w':
		return ActionMoveN
	case 'j', 's':
		return ActionMoveS
	case 'l', 'd':
		return ActionMoveE
	case 'h', 'a':
		return ActionMoveW
	case 'K', 'W':
		return ActionRunN
	case 'J', 'S':
		return ActionRunS
	case 'L', 'D':
		return ActionRunE
	case 'H', 'A':
		return ActionRunW
	case '.':
		return ActionWait
	case 'g':
		return ActionGrab
	case '>', '<':
		return ActionStairs
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToIntent converts an action to an engine intent. ok is false for
// actions that are not game turns (quit, none).
func actionToIntent(a Action) (engine.Intent, bool) {
	switch a {
	case ActionMoveN:
		return engine.Move(gamemap.North), true
	case ActionMoveS:
		return engine.Move(gamemap.South), true
	case ActionMoveE:
		return engine.Move(gamemap.East), true
	case ActionMoveW:
		return engine.Move(gamemap.West), true
	case ActionRunN:
		return engine.MoveMax(gamemap.North, maxRun), true
	case ActionRunS:
		return engine.MoveMax(gamemap.South, maxRun), true
	case ActionRunE:
		return engine.MoveMax(gamemap.East, maxRun), true
	case ActionRunW:
		return engine.MoveMax(gamemap.West, maxRun), true
	case ActionWait:
		return engine.Wait(), true
	case ActionGrab:
		return engine.Grab(), true
	case ActionStairs:
		return engine.UseStairs(), true
	}
	return engine.Intent{}, false
}
