package system

import (
	"warehouse-crawler/assets"
	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// Attack resolves one attack from attacker against defender.
// Damage is max(1, atk+equip - def-equip), no roll, so replaying a seed and
// intent log reproduces every fight exactly. A lethal hit marks the defender
// dead; the scheduler reaps between turns.
func Attack(w *ecs.World, attackerID, defenderID ecs.EntityID) AttackResult {
	atkComp := w.Get(attackerID, component.CCombat)
	defComp := w.Get(defenderID, component.CCombat)
	hpComp := w.Get(defenderID, component.CHealth)
	if atkComp == nil || defComp == nil || hpComp == nil {
		return AttackResult{}
	}

	atk := atkComp.(component.Combat).Attack + equipAttackBonus(w, attackerID)
	def := defComp.(component.Combat).Defense + equipDefenseBonus(w, defenderID)
	hp := hpComp.(component.Health)

	dmg := atk - def
	if dmg < 1 {
		dmg = 1
	}
	hp.Current -= dmg
	w.Add(defenderID, hp)

	result := AttackResult{Damage: dmg}
	if hp.Current <= 0 {
		result.Killed = true
		w.Kill(defenderID)
	}
	return result
}

// GrantXP awards tier XP to the player and applies any level-ups.
// Returns the number of levels gained.
func GrantXP(w *ecs.World, playerID ecs.EntityID, tier component.Tier) int {
	progComp := w.Get(playerID, component.CProgression)
	if progComp == nil {
		return 0
	}
	prog := progComp.(component.Progression)

	switch tier {
	case component.TierEmployee:
		prog.XP += assets.XPEmployee
	case component.TierManagement:
		prog.XP += assets.XPManagement
	default:
		return 0
	}

	gained := 0
	for prog.XP >= assets.XPForLevel(prog.Level+1) {
		prog.Level++
		gained++
		levelUp(w, playerID)
	}
	w.Add(playerID, prog)
	return gained
}

// levelUp applies one level's stat increments and refills HP to the new max.
func levelUp(w *ecs.World, playerID ecs.EntityID) {
	if hpComp := w.Get(playerID, component.CHealth); hpComp != nil {
		hp := hpComp.(component.Health)
		hp.Max += assets.LevelUpHP
		hp.Current = hp.Max
		w.Add(playerID, hp)
	}
	if cbtComp := w.Get(playerID, component.CCombat); cbtComp != nil {
		cbt := cbtComp.(component.Combat)
		cbt.Attack += assets.LevelUpAttack
		w.Add(playerID, cbt)
	}
}

func equipAttackBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CEquipment)
	if c == nil {
		return 0
	}
	return c.(component.Equipment).WeaponBonus
}

func equipDefenseBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CEquipment)
	if c == nil {
		return 0
	}
	return c.(component.Equipment).ArmorBonus
}
