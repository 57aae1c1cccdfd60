package component

import "warehouse-crawler/internal/ecs"

const CAI ecs.ComponentType = 4

// AIBehavior selects how an enemy acts each turn. Dispatch is a single
// switch in the enemy-resolution step; there are no per-type methods.
type AIBehavior uint8

const (
	BehaviorWander    AIBehavior = iota // one random passable step
	BehaviorGuardZone                   // idle until the player enters the zone
	BehaviorAggressive                  // close on the player and attack
)

// Zone is the guarded region for GuardZone enemies, in grid coordinates.
type Zone struct {
	X1, Y1, X2, Y2 int
}

// Contains reports whether (x, y) lies inside the zone (inclusive).
func (z Zone) Contains(x, y int) bool {
	return x >= z.X1 && x <= z.X2 && y >= z.Y1 && y <= z.Y2
}

type AI struct {
	Behavior AIBehavior
	Guard    Zone // meaningful only for BehaviorGuardZone
}

func (AI) Type() ecs.ComponentType { return CAI }
