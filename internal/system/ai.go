package system

import (
	"math/rand"

	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/gamemap"
)

// EnemyHit records one enemy attack on the player.
type EnemyHit struct {
	AttackerID ecs.EntityID
	Name       string
	Damage     int
	Killed     bool // player died
}

// ProcessEnemies runs one turn for every enemy, in ascending entity ID
// order so a replayed seed resolves identically. Enemies killed earlier in
// the turn do not act; the player's death stops further processing.
func ProcessEnemies(w *ecs.World, g *gamemap.Grid, playerID ecs.EntityID, rng *rand.Rand) []EnemyHit {
	var hits []EnemyHit
	for _, id := range w.QuerySorted(component.CAI, component.CPosition) {
		if !w.Alive(playerID) || w.Dead(playerID) {
			break
		}
		ai := w.Get(id, component.CAI).(component.AI)
		pos := w.Get(id, component.CPosition).(component.Position)
		playerPos := w.Get(playerID, component.CPosition).(component.Position)

		// Adjacency trumps the behavior tag: an enemy next to the player
		// always attacks instead of moving, even a guard whose zone the
		// player never entered.
		var hit *EnemyHit
		switch {
		case adjacent(pos, playerPos):
			hit = strike(w, id, playerPos)
		case ai.Behavior == component.BehaviorWander:
			hit = wander(w, g, id, rng)
		case ai.Behavior == component.BehaviorGuardZone:
			if ai.Guard.Contains(playerPos.X, playerPos.Y) {
				hit = chase(w, g, id, pos, playerPos)
			}
		case ai.Behavior == component.BehaviorAggressive:
			hit = chase(w, g, id, pos, playerPos)
		}
		if hit != nil {
			hits = append(hits, *hit)
		}
	}
	return hits
}

// wander takes one random step. Exactly one rng draw happens per call, so
// the stream position after this enemy's turn depends only on game state.
func wander(w *ecs.World, g *gamemap.Grid, id ecs.EntityID, rng *rand.Rand) *EnemyHit {
	dir := gamemap.Directions[rng.Intn(len(gamemap.Directions))]
	dx, dy := dir.Delta()
	// A blocked step or a bump into another entity wastes the turn.
	TryMove(w, g, id, dx, dy)
	return nil
}

// chase closes on the player, horizontal axis first. Callers resolve
// adjacency before dispatching here, so a chase step never starts in reach;
// a step that bumps into the player still attacks.
func chase(w *ecs.World, g *gamemap.Grid, id ecs.EntityID,
	pos, playerPos component.Position) *EnemyHit {

	stepX := sign(playerPos.X - pos.X)
	stepY := sign(playerPos.Y - pos.Y)

	if stepX != 0 {
		res, target := TryMove(w, g, id, stepX, 0)
		if res == MoveOK {
			return nil
		}
		if res == MoveAttack && w.Has(target, component.CTagPlayer) {
			return strikeEntity(w, id, target)
		}
	}
	if stepY != 0 {
		res, target := TryMove(w, g, id, 0, stepY)
		if res == MoveAttack && w.Has(target, component.CTagPlayer) {
			return strikeEntity(w, id, target)
		}
	}
	return nil
}

// strike attacks whatever player entity stands at playerPos.
func strike(w *ecs.World, id ecs.EntityID, playerPos component.Position) *EnemyHit {
	target := BlockerAt(w, playerPos.X, playerPos.Y, id)
	if target == ecs.NilEntity || !w.Has(target, component.CTagPlayer) {
		return nil
	}
	return strikeEntity(w, id, target)
}

func strikeEntity(w *ecs.World, id, target ecs.EntityID) *EnemyHit {
	res := Attack(w, id, target)
	hit := EnemyHit{AttackerID: id, Damage: res.Damage, Killed: res.Killed}
	if nameComp := w.Get(id, component.CName); nameComp != nil {
		hit.Name = nameComp.(component.Name).Name
	}
	return &hit
}

// adjacent reports cardinal adjacency (diagonals do not reach).
func adjacent(a, b component.Position) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
