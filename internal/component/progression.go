package component

import "warehouse-crawler/internal/ecs"

const CProgression ecs.ComponentType = 8

// Progression is the player state that survives floor transitions.
type Progression struct {
	Level     int
	XP        int
	Gold      int
	HasBadge  bool
	HasAmulet bool
}

func (Progression) Type() ecs.ComponentType { return CProgression }
