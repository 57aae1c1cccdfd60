package generate

import (
	"github.com/zyedidia/generic/mapset"

	"warehouse-crawler/internal/gamemap"
)

// furnish scatters warehouse furniture and hazards over the carved floor.
// Shelf rows go in alternating interior rows of each zone with the zone
// perimeter, center row, and center column kept clear, so decoration can
// never disconnect a zone from its corridors.
func furnish(g *gamemap.Grid, cfg *Config) {
	for _, zone := range g.Zones {
		furnishZone(g, zone, cfg)
	}
	carveConveyors(g, cfg)
	placeLoadingDock(g, cfg)
}

// furnishZone fills one zone's shelf rows.
func furnishZone(g *gamemap.Grid, zone gamemap.Rect, cfg *Config) {
	cx, cy := zone.Center()
	for y := zone.Y1 + 2; y <= zone.Y2-1; y += 2 {
		if y == cy {
			continue
		}
		for x := zone.X1 + 1; x <= zone.X2-1; x++ {
			if x == cx {
				continue
			}
			if g.At(x, y).Kind != gamemap.TileFloor {
				continue
			}
			if cfg.Rand.Intn(100) >= cfg.ShelfChance {
				continue
			}
			switch cfg.Rand.Intn(10) {
			case 0:
				g.Set(x, y, gamemap.MakePackingStation())
			case 1:
				g.Set(x, y, gamemap.MakeSortingMachine())
			default:
				g.Set(x, y, gamemap.MakeShelf())
			}
		}
	}
}

// carveConveyors converts straight runs of corridor floor into belt tiles.
// Belts stay walkable, so they never affect connectivity.
func carveConveyors(g *gamemap.Grid, cfg *Config) {
	for run := 0; run < cfg.ConveyorRuns; run++ {
		x, y, ok := randomCorridorTile(g, cfg)
		if !ok {
			return
		}
		dir := gamemap.Directions[cfg.Rand.Intn(len(gamemap.Directions))]
		dx, dy := dir.Delta()
		length := 3 + cfg.Rand.Intn(5)
		for i := 0; i < length; i++ {
			if !g.InBounds(x, y) || g.At(x, y).Kind != gamemap.TileFloor {
				break
			}
			chance := 30 + cfg.Rand.Intn(40)
			g.Set(x, y, gamemap.MakeConveyorBelt(dir, chance))
			x += dx
			y += dy
		}
	}
}

// placeLoadingDock puts one dock against the east wall, original-game style.
func placeLoadingDock(g *gamemap.Grid, cfg *Config) {
	for try := 0; try < 20; try++ {
		x := g.Width - 3 - cfg.Rand.Intn(max(1, g.Width/8))
		y := 1 + cfg.Rand.Intn(g.Height-2)
		if g.InBounds(x, y) && g.At(x, y).Kind == gamemap.TileWall {
			g.Set(x, y, gamemap.MakeLoadingDock())
			return
		}
	}
}

// placeCheckpoints converts corridor tiles into badge-gated checkpoints.
// A checkpoint is skipped if closing it would cut the spawn off from the
// stairs, so a badge-less player can always reach the exit.
func placeCheckpoints(g *gamemap.Grid, px, py int, cfg *Config) {
	for placed := 0; placed < cfg.CheckpointCount; {
		x, y, ok := randomCorridorTile(g, cfg)
		if !ok {
			return
		}
		blocked := mapset.New[point]()
		blocked.Put(point{x, y})
		visited := reachableFrom(g, px, py, blocked)
		if !visited.Has(point{g.StairsX, g.StairsY}) {
			return // this corridor is load-bearing; leave the floor open
		}
		g.Set(x, y, gamemap.MakeCheckpoint())
		placed++
	}
}

// designatePatrolZones marks zones watched by supervisor patrols. The spawn
// and stairs zones are never patrolled.
func designatePatrolZones(g *gamemap.Grid, cfg *Config) {
	if cfg.PatrolZones <= 0 || len(g.Zones) <= 2 {
		return
	}
	candidates := g.Zones[1:]
	for i := 0; i < cfg.PatrolZones && i < len(candidates); i++ {
		zone := candidates[cfg.Rand.Intn(len(candidates))]
		if zone.Contains(g.StairsX, g.StairsY) {
			continue
		}
		g.PatrolZones = append(g.PatrolZones, zone)
	}
}

// randomCorridorTile picks a floor tile outside every zone, bounded tries.
func randomCorridorTile(g *gamemap.Grid, cfg *Config) (int, int, bool) {
	for try := 0; try < 50; try++ {
		x := 1 + cfg.Rand.Intn(g.Width-2)
		y := 1 + cfg.Rand.Intn(g.Height-2)
		if g.At(x, y).Kind != gamemap.TileFloor {
			continue
		}
		inZone := false
		for _, zone := range g.Zones {
			if zone.Contains(x, y) {
				inZone = true
				break
			}
		}
		if !inZone {
			return x, y, true
		}
	}
	return 0, 0, false
}
