package engine

import "fmt"

// EventKind classifies one entry of a turn's event log.
type EventKind uint8

const (
	EventMove EventKind = iota
	EventAttack
	EventHit    // enemy hit the player
	EventKill   // player killed an enemy
	EventDeath  // player died
	EventPickup
	EventLevelUp
	EventConveyor
	EventPatrol
	EventStairs
	EventRegen
	EventVictory
)

// Event is one observable outcome of a turn, in resolution order.
type Event struct {
	Kind EventKind `json:"kind"`
	Text string    `json:"text"`
}

// GameState is the session's terminal-state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateVictory
)

// TurnResult reports everything that happened during one consumed turn.
type TurnResult struct {
	Turn   int
	State  GameState
	Events []Event
}

func (r *TurnResult) log(kind EventKind, format string, args ...any) {
	r.Events = append(r.Events, Event{Kind: kind, Text: fmt.Sprintf(format, args...)})
}
