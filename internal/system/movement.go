package system

import (
	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK         MoveResult = iota // position updated
	MoveBlocked                      // wall, furniture, or out-of-bounds
	MoveAttack                       // bumped a blocking entity
	MoveCheckpoint                   // checkpoint refused entry (no badge)
)

// TryMove attempts to move entity id by (dx, dy).
// Returns the outcome and (if MoveAttack) the bumped entity. Checkpoints
// admit only a badge-carrying player; enemies never pass them.
func TryMove(w *ecs.World, g *gamemap.Grid, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	// Blocking entities first: bumping a guard at a checkpoint is an attack,
	// not a badge refusal.
	if other := BlockerAt(w, nx, ny, id); other != ecs.NilEntity {
		return MoveAttack, other
	}

	if !g.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	if g.At(nx, ny).Kind == gamemap.TileCheckpoint && !hasBadge(w, id) {
		return MoveCheckpoint, ecs.NilEntity
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// BlockerAt returns the blocking entity at (x, y) other than self, or NilEntity.
func BlockerAt(w *ecs.World, x, y int, self ecs.EntityID) ecs.EntityID {
	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == self {
			continue
		}
		pos := w.Get(other, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return other
		}
	}
	return ecs.NilEntity
}

// hasBadge reports whether the entity carries the security badge. Only the
// player has a progression component, so every enemy fails this check.
func hasBadge(w *ecs.World, id ecs.EntityID) bool {
	c := w.Get(id, component.CProgression)
	if c == nil {
		return false
	}
	return c.(component.Progression).HasBadge
}
