package component

import "warehouse-crawler/internal/ecs"

const CEquipment ecs.ComponentType = 7

// Equipment holds the player's two equip slots. Picking up a weapon or armor
// replaces whatever currently occupies the slot.
type Equipment struct {
	WeaponName  string
	WeaponBonus int // added to attack
	ArmorName   string
	ArmorBonus  int // added to defense
}

func (Equipment) Type() ecs.ComponentType { return CEquipment }
