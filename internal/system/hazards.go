package system

import (
	"math/rand"

	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/gamemap"
)

// Supervisor patrol schedule. Entering a patrol zone while
// turn % PatrolPeriod < PatrolWindow trips the patrol.
const (
	PatrolPeriod = 12
	PatrolWindow = 4
)

// Visibility radii reported by the engine view.
const (
	VisibilityNormal = 8
	VisibilityOutage = 4
)

// ConveyorShove is one belt displacement applied to an entity.
type ConveyorShove struct {
	Dir      gamemap.Direction
	ToX, ToY int
}

// ProcessConveyor carries the entity along the belt it stands on, subject
// to the entry tile's shove chance. The ride follows each belt tile's
// stored direction and ends when the entity leaves the belt, at the first
// unwalkable tile or grid edge, or one short of another entity. The chance
// roll is consumed exactly once whenever the entity stands on a belt, so
// the rng stream advances the same way whether or not the ride happens.
func ProcessConveyor(w *ecs.World, g *gamemap.Grid, id ecs.EntityID, rng *rand.Rand) (ConveyorShove, bool) {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return ConveyorShove{}, false
	}
	pos := posComp.(component.Position)
	if !g.InBounds(pos.X, pos.Y) {
		return ConveyorShove{}, false
	}
	entry := g.At(pos.X, pos.Y)
	if entry.Kind != gamemap.TileConveyorBelt {
		return ConveyorShove{}, false
	}
	if rng.Intn(100) >= entry.ShoveChance {
		return ConveyorShove{}, false
	}

	// visited ends the ride if belts point at each other.
	visited := map[component.Position]bool{pos: true}
	moved := false
	for {
		tile := g.At(pos.X, pos.Y)
		if tile.Kind != gamemap.TileConveyorBelt {
			break
		}
		dx, dy := tile.BeltDir.Delta()
		next := component.Position{X: pos.X + dx, Y: pos.Y + dy}
		if visited[next] {
			break
		}
		if res, _ := TryMove(w, g, id, dx, dy); res != MoveOK {
			break
		}
		pos = next
		visited[pos] = true
		moved = true
	}
	if !moved {
		return ConveyorShove{}, false
	}
	return ConveyorShove{Dir: entry.BeltDir, ToX: pos.X, ToY: pos.Y}, true
}

// PatrolTripped reports whether standing at (x, y) on the given turn counter
// puts the player inside a supervisor patrol during its watch window.
func PatrolTripped(g *gamemap.Grid, x, y, turn int) bool {
	if !g.InPatrolZone(x, y) {
		return false
	}
	return turn%PatrolPeriod < PatrolWindow
}

// VisibilityRadius returns the sight radius for the floor. A power outage
// narrows it; nothing else about the floor changes.
func VisibilityRadius(g *gamemap.Grid) int {
	if g.PowerOutage {
		return VisibilityOutage
	}
	return VisibilityNormal
}
