package engine

import "warehouse-crawler/internal/gamemap"

// IntentKind selects the player action for one turn.
type IntentKind uint8

const (
	IntentMove IntentKind = iota
	IntentWait
	IntentGrab
	IntentUseStairs
)

// Intent is one submitted player action. It serializes to JSON so an intent
// log plus the seed replays a whole run.
//
// Max bounds a repeated move: the player walks up to Max tiles in Dir,
// stopping early at obstacles, items, stairs, or when an enemy comes into
// reach. Max values of 0 and 1 both mean a single step.
type Intent struct {
	Kind IntentKind        `json:"kind"`
	Dir  gamemap.Direction `json:"dir,omitempty"`
	Max  int               `json:"max,omitempty"`
}

// Move returns a single-step move intent.
func Move(dir gamemap.Direction) Intent {
	return Intent{Kind: IntentMove, Dir: dir}
}

// MoveMax returns a repeated move intent.
func MoveMax(dir gamemap.Direction, max int) Intent {
	return Intent{Kind: IntentMove, Dir: dir, Max: max}
}

// Wait returns a pass-the-turn intent.
func Wait() Intent {
	return Intent{Kind: IntentWait}
}

// Grab returns a pick-up intent. Movement stops on item tiles without
// applying them; Grab is the action that applies the item under the
// player, and is valid only while one lies there.
func Grab() Intent {
	return Intent{Kind: IntentGrab}
}

// UseStairs returns a stairs intent. It is valid only while the player
// stands on the stairs tile.
func UseStairs() Intent {
	return Intent{Kind: IntentUseStairs}
}
