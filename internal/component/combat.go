package component

import "warehouse-crawler/internal/ecs"

const CCombat ecs.ComponentType = 3

// Tier is the enemy strength class. It decides the experience award.
type Tier uint8

const (
	TierNone Tier = iota // player and other non-enemy combatants
	TierEmployee
	TierManagement
)

type Combat struct {
	Attack  int
	Defense int
	Tier    Tier
}

func (Combat) Type() ecs.ComponentType { return CCombat }
