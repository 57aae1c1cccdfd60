package component

import "warehouse-crawler/internal/ecs"

const CItem ecs.ComponentType = 6

// ItemKind identifies what picking the item up does.
type ItemKind uint8

const (
	ItemPotion ItemKind = iota // immediate heal
	ItemWeapon                 // equips into the weapon slot
	ItemArmor                  // equips into the armor slot
	ItemGold                   // immediate gold gain
	ItemBadge                  // security badge; opens checkpoints
	ItemAmulet                 // the win-condition item
)

// Item is the stat-modifier payload carried by a pickup on the map.
// Only the fields relevant to the kind are set.
type Item struct {
	Kind         ItemKind
	Heal         int
	AttackBonus  int
	DefenseBonus int
	Gold         int
}

func (Item) Type() ecs.ComponentType { return CItem }
