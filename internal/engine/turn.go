package engine

import (
	"warehouse-crawler/assets"
	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/factory"
	"warehouse-crawler/internal/gamemap"
	"warehouse-crawler/internal/system"
)

// Submit runs one full turn from the given intent.
//
// Resolution order is fixed: player action, floor hazards, enemy turns in
// ascending entity ID, regeneration on every other turn, then termination
// checks. An invalid intent returns a UserInputError before anything
// mutates; the turn is not consumed and the intent is not logged.
func (s *Session) Submit(intent Intent) (TurnResult, error) {
	if s.state != StatePlaying {
		return TurnResult{}, reject("the run is over")
	}

	res := TurnResult{Turn: s.turn}
	if err := s.playerAction(intent, &res); err != nil {
		return TurnResult{}, err
	}
	s.intents = append(s.intents, intent)

	// The action may have changed the floor; resolve the rest where the
	// player now stands.
	fs := s.current()
	if s.state == StatePlaying {
		s.runHazards(fs, &res)
	}
	if s.state == StatePlaying {
		s.runEnemies(fs, &res)
	}
	if s.state == StatePlaying {
		s.runRegen(fs, &res)
		// Reaping on a terminal turn would delete the fallen player's
		// components; Query already hides killed entities from views.
		fs.world.Reap()
	}

	s.updateFOV(fs)
	s.turn++
	s.stats.TurnsPlayed = s.turn
	res.State = s.state
	if s.state != StatePlaying {
		saveRunLog(s.stats)
	}
	return res, nil
}

// playerAction validates and executes the intent. Every early return with a
// UserInputError happens before any state change.
func (s *Session) playerAction(intent Intent, res *TurnResult) error {
	switch intent.Kind {
	case IntentWait:
		return nil
	case IntentMove:
		return s.actionMove(intent, res)
	case IntentGrab:
		return s.actionGrab(res)
	case IntentUseStairs:
		return s.actionStairs(res)
	}
	return reject("unknown action")
}

// actionMove walks up to max(1, Max) tiles in the intent direction. The
// first step must be legal; later steps stop quietly at the first thing in
// the way.
func (s *Session) actionMove(intent Intent, res *TurnResult) error {
	if intent.Dir > gamemap.West {
		return reject("unknown direction")
	}
	fs := s.current()
	dx, dy := intent.Dir.Delta()

	steps := intent.Max
	if steps < 1 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		pos := s.playerPos()
		result, target := system.TryMove(fs.world, fs.grid, fs.playerID, dx, dy)
		switch result {
		case system.MoveBlocked:
			if i == 0 {
				return reject("a %s blocks the way", tileName(fs.grid, pos.X+dx, pos.Y+dy))
			}
			return nil
		case system.MoveCheckpoint:
			if i == 0 {
				return reject("the checkpoint scanner flashes red: badge required")
			}
			return nil
		case system.MoveAttack:
			if !fs.world.Has(target, component.CAI) {
				return nil
			}
			s.playerAttack(fs, target, res)
			return nil
		case system.MoveOK:
			res.log(EventMove, "you move %s", intent.Dir)
			now := s.playerPos()
			if id := itemAt(fs.world, now.X, now.Y); id != ecs.NilEntity {
				res.log(EventMove, "you see a %s here", entityName(fs.world, id))
				return nil
			}
			if fs.grid.At(now.X, now.Y).Kind == gamemap.TileStairs {
				res.log(EventMove, "you reach the stairs")
				return nil
			}
		}
	}
	return nil
}

// actionGrab applies the item under the player. Movement only stops on
// item tiles; picking one up is always a deliberate turn.
func (s *Session) actionGrab(res *TurnResult) error {
	if !s.pickupAt(s.current(), res) {
		return reject("there is nothing here to pick up")
	}
	return nil
}

// playerAttack resolves one player attack, including XP and level-ups.
func (s *Session) playerAttack(fs *floorState, target ecs.EntityID, res *TurnResult) {
	name := entityName(fs.world, target)
	atk := system.Attack(fs.world, fs.playerID, target)
	res.log(EventAttack, "you hit the %s for %d", name, atk.Damage)
	s.stats.DamageDealt += atk.Damage

	if !atk.Killed {
		return
	}
	res.log(EventKill, "the %s breaks down", name)
	s.stats.EnemiesKilled[name]++

	tier := component.TierNone
	if cbt := fs.world.Get(target, component.CCombat); cbt != nil {
		tier = cbt.(component.Combat).Tier
	}
	if gained := system.GrantXP(fs.world, fs.playerID, tier); gained > 0 {
		prog := fs.world.Get(fs.playerID, component.CProgression).(component.Progression)
		res.log(EventLevelUp, "promotion! you are now level %d", prog.Level)
	}
}

// actionStairs descends without the amulet and climbs with it. Escaping
// from floor 1 while carrying the amulet wins the run.
func (s *Session) actionStairs(res *TurnResult) error {
	fs := s.current()
	pos := s.playerPos()
	if fs.grid.At(pos.X, pos.Y).Kind != gamemap.TileStairs {
		return reject("there are no stairs here")
	}

	prog := fs.world.Get(fs.playerID, component.CProgression).(component.Progression)
	if prog.HasAmulet {
		if s.floor == 1 {
			s.state = StateVictory
			s.stats.Outcome = "victory"
			res.log(EventVictory, "you walk out with the Promotion Amulet. you win")
			return nil
		}
		res.log(EventStairs, "you climb toward daylight")
		return s.changeFloor(s.floor-1, false)
	}

	if s.floor == assets.FinalFloor {
		return reject("there is nothing below the executive suite")
	}
	res.log(EventStairs, "you descend to %s", assets.FloorName(s.floor+1))
	return s.changeFloor(s.floor+1, true)
}

// pickupAt applies any item under the player and removes it from the map.
// Returns true when something was picked up.
func (s *Session) pickupAt(fs *floorState, res *TurnResult) bool {
	pos := s.playerPos()
	itemID := itemAt(fs.world, pos.X, pos.Y)
	if itemID == ecs.NilEntity {
		return false
	}

	name := entityName(fs.world, itemID)
	item := fs.world.Get(itemID, component.CItem).(component.Item)
	hp := fs.world.Get(fs.playerID, component.CHealth).(component.Health)
	prog := fs.world.Get(fs.playerID, component.CProgression).(component.Progression)
	equip := fs.world.Get(fs.playerID, component.CEquipment).(component.Equipment)

	switch item.Kind {
	case component.ItemPotion:
		healed := item.Heal
		if hp.Current+healed > hp.Max {
			healed = hp.Max - hp.Current
		}
		hp.Current += healed
		res.log(EventPickup, "you drink the %s (+%d HP)", name, healed)
	case component.ItemWeapon:
		equip.WeaponName = name
		equip.WeaponBonus = item.AttackBonus
		res.log(EventPickup, "you grab the %s (+%d attack)", name, item.AttackBonus)
	case component.ItemArmor:
		equip.ArmorName = name
		equip.ArmorBonus = item.DefenseBonus
		res.log(EventPickup, "you put on the %s (+%d defense)", name, item.DefenseBonus)
	case component.ItemGold:
		prog.Gold += item.Gold
		res.log(EventPickup, "you pocket a %s worth %d", name, item.Gold)
	case component.ItemBadge:
		prog.HasBadge = true
		res.log(EventPickup, "you clip on the %s. checkpoints will open for you", name)
	case component.ItemAmulet:
		prog.HasAmulet = true
		hp.Max += assets.AmuletMaxHPBonus
		hp.Current += assets.AmuletMaxHPBonus
		res.log(EventPickup, "you take the %s. now get out of the building", name)
	}

	fs.world.Add(fs.playerID, hp)
	fs.world.Add(fs.playerID, prog)
	fs.world.Add(fs.playerID, equip)
	fs.world.DestroyEntity(itemID)
	return true
}

// runHazards applies conveyor displacement and supervisor patrols.
func (s *Session) runHazards(fs *floorState, res *TurnResult) {
	if shove, moved := system.ProcessConveyor(fs.world, fs.grid, fs.playerID, s.rng); moved {
		res.log(EventConveyor, "the conveyor belt drags you %s", shove.Dir)
		if id := itemAt(fs.world, shove.ToX, shove.ToY); id != ecs.NilEntity {
			res.log(EventMove, "you see a %s here", entityName(fs.world, id))
		}
	}

	pos := s.playerPos()
	if !system.PatrolTripped(fs.grid, pos.X, pos.Y, s.turn) {
		return
	}
	window := s.turn / system.PatrolPeriod
	if fs.patrolSpawned[window] {
		return
	}
	fs.patrolSpawned[window] = true
	if x, y, ok := patrolSpawnTile(fs, pos.X, pos.Y); ok {
		zone := patrolZoneAt(fs.grid, pos.X, pos.Y)
		factory.NewEnemy(fs.world, assets.PatrolGuard, x, y, zone)
		res.log(EventPatrol, "a supervisor patrol spots you. a Security Guard is dispatched")
	}
}

// patrolSpawnTile finds a free tile in the patrol zone around (px, py),
// scanning row-major so the spawn is reproducible without an rng draw.
func patrolSpawnTile(fs *floorState, px, py int) (int, int, bool) {
	for _, z := range fs.grid.PatrolZones {
		if !z.Contains(px, py) {
			continue
		}
		for y := z.Y1; y <= z.Y2; y++ {
			for x := z.X1; x <= z.X2; x++ {
				if x == px && y == py {
					continue
				}
				if !fs.grid.IsWalkable(x, y) {
					continue
				}
				if system.BlockerAt(fs.world, x, y, ecs.NilEntity) != ecs.NilEntity {
					continue
				}
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func patrolZoneAt(g *gamemap.Grid, x, y int) component.Zone {
	for _, z := range g.PatrolZones {
		if z.Contains(x, y) {
			return component.Zone{X1: z.X1, Y1: z.Y1, X2: z.X2, Y2: z.Y2}
		}
	}
	return component.Zone{}
}

// runEnemies gives every enemy its turn and applies the results.
func (s *Session) runEnemies(fs *floorState, res *TurnResult) {
	hits := system.ProcessEnemies(fs.world, fs.grid, fs.playerID, s.rng)
	for _, hit := range hits {
		res.log(EventHit, "the %s hits you for %d", hit.Name, hit.Damage)
		s.stats.DamageTaken += hit.Damage
		if hit.Killed {
			s.state = StateDead
			s.stats.Outcome = "terminated"
			s.stats.CauseOfDeath = hit.Name
			res.log(EventDeath, "you have been terminated. the %s files the paperwork", hit.Name)
			return
		}
	}
}

// runRegen heals 1 HP on every other turn, never above max.
func (s *Session) runRegen(fs *floorState, res *TurnResult) {
	if s.turn%2 != 1 {
		return
	}
	hpComp := fs.world.Get(fs.playerID, component.CHealth)
	if hpComp == nil {
		return
	}
	hp := hpComp.(component.Health)
	if hp.Current >= hp.Max {
		return
	}
	hp.Current++
	fs.world.Add(fs.playerID, hp)
	res.log(EventRegen, "you catch your breath (+1 HP)")
}

// itemAt returns the pickup at (x, y), or NilEntity.
func itemAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.QuerySorted(component.CTagItem, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

func entityName(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return "something"
}
