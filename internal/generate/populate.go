package generate

import (
	"github.com/zyedidia/generic/mapset"

	"warehouse-crawler/internal/gamemap"
)

// amuletRetries bounds re-rolls of the amulet position when a management
// enemy blocks the only path to it.
const amuletRetries = 10

// EnemySpawn describes one enemy to create. Guard is the zone rect the
// enemy protects when its behavior is guard-zone.
type EnemySpawn struct {
	Entry EnemySpawnEntry
	X, Y  int
	Guard gamemap.Rect
}

// ItemSpawn describes one item to create.
type ItemSpawn struct {
	Entry ItemSpawnEntry
	X, Y  int
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Enemies []EnemySpawn
	Items   []ItemSpawn
}

// Populate places enemies and items in the generated zones. Spawn positions
// never overlap each other, the player spawn, or the stairs.
func Populate(g *gamemap.Grid, spawnX, spawnY int, cfg *Config) PopulateResult {
	var result PopulateResult

	zones := g.Zones
	if len(zones) == 0 {
		return result
	}
	// Skip the spawn zone so the player never starts in melee range.
	placeable := zones
	if len(zones) > 1 {
		placeable = zones[1:]
	}

	occupied := mapset.New[point]()
	occupied.Put(point{spawnX, spawnY})
	occupied.Put(point{g.StairsX, g.StairsY})
	pick := func(zone gamemap.Rect) (int, int, bool) {
		return pickFreeInZone(g, zone, cfg, occupied)
	}

	// Phase 1: guarantee one enemy in every placeable zone (cheapest that
	// fits the budget), then spend the rest on random zones. A zone with no
	// free tile left contributes nothing.
	budget := cfg.EnemyBudget
	table := affordableEnemies(cfg.EnemyTable, budget, cfg.FloorNumber)
	if len(table) > 0 {
		for _, zone := range placeable {
			aff := affordableEnemies(cfg.EnemyTable, budget, cfg.FloorNumber)
			if len(aff) == 0 {
				break
			}
			entry := cheapestEntry(aff)
			x, y, ok := pick(zone)
			if !ok {
				continue
			}
			occupied.Put(point{x, y})
			result.Enemies = append(result.Enemies, EnemySpawn{Entry: entry, X: x, Y: y, Guard: zone})
			budget -= entry.ThreatCost
		}
	}
	for tries := 0; budget > 0 && tries < 30; tries++ {
		aff := affordableEnemies(cfg.EnemyTable, budget, cfg.FloorNumber)
		if len(aff) == 0 {
			break
		}
		zone := placeable[cfg.Rand.Intn(len(placeable))]
		entry := aff[cfg.Rand.Intn(len(aff))]
		x, y, ok := pick(zone)
		if !ok {
			continue
		}
		occupied.Put(point{x, y})
		result.Enemies = append(result.Enemies, EnemySpawn{Entry: entry, X: x, Y: y, Guard: zone})
		budget -= entry.ThreatCost
	}

	// Items land in any zone, including spawn and stairs zones.
	items := availableItems(cfg.ItemTable, cfg.FloorNumber)
	for i := 0; i < cfg.ItemCount && len(items) > 0; i++ {
		zone := zones[cfg.Rand.Intn(len(zones))]
		entry := items[cfg.Rand.Intn(len(items))]
		x, y, ok := pick(zone)
		if !ok {
			continue
		}
		occupied.Put(point{x, y})
		result.Items = append(result.Items, ItemSpawn{Entry: entry, X: x, Y: y})
	}

	// The security badge spawns ahead of the first checkpoint floor. It must
	// land somewhere, so a full zone falls back to a scan of every zone.
	if cfg.PlaceBadge {
		zone := zones[cfg.Rand.Intn(len(zones))]
		x, y, ok := pick(zone)
		if !ok {
			x, y, ok = pickFreeAny(g, zones, cfg, occupied)
		}
		if ok {
			occupied.Put(point{x, y})
			result.Items = append(result.Items, ItemSpawn{Entry: cfg.BadgeEntry, X: x, Y: y})
		}
	}

	// Exactly one amulet on its floor, guaranteed reachable without fighting
	// through a management blockade.
	if cfg.PlaceAmulet {
		x, y := placeAmulet(g, spawnX, spawnY, placeable, result.Enemies, cfg, occupied)
		occupied.Put(point{x, y})
		result.Items = append(result.Items, ItemSpawn{Entry: cfg.AmuletEntry, X: x, Y: y})
	}

	return result
}

// placeAmulet picks an amulet position reachable from spawn on a path that
// no management-tier enemy sits on. Bounded retries, then the stairs zone
// as a fallback (the stairs path is verified connected by generation).
func placeAmulet(g *gamemap.Grid, spawnX, spawnY int, placeable []gamemap.Rect,
	enemies []EnemySpawn, cfg *Config, occupied mapset.Set[point]) (int, int) {

	blocked := mapset.New[point]()
	for _, e := range enemies {
		if e.Entry.Tier == 2 {
			blocked.Put(point{e.X, e.Y})
		}
	}
	reachable := reachableFrom(g, spawnX, spawnY, blocked)

	for try := 0; try < amuletRetries; try++ {
		zone := placeable[cfg.Rand.Intn(len(placeable))]
		x, y, ok := pickFreeInZone(g, zone, cfg, occupied)
		if ok && reachable.Has(point{x, y}) {
			return x, y
		}
	}

	// Fallback: beside the stairs.
	for _, zone := range g.Zones {
		if zone.Contains(g.StairsX, g.StairsY) {
			if x, y, ok := pickFreeInZone(g, zone, cfg, occupied); ok {
				return x, y
			}
		}
	}
	if x, y, ok := pickFreeAny(g, g.Zones, cfg, occupied); ok {
		return x, y
	}
	// Every zone tile is taken; the spawn tile itself is the last resort.
	return spawnX, spawnY
}

// affordableEnemies filters the table by threat budget and floor gate.
func affordableEnemies(table []EnemySpawnEntry, budget, floor int) []EnemySpawnEntry {
	var out []EnemySpawnEntry
	for _, e := range table {
		if e.ThreatCost <= budget && e.MinFloor <= floor {
			out = append(out, e)
		}
	}
	return out
}

// cheapestEntry returns the entry with the lowest ThreatCost from a non-empty slice.
func cheapestEntry(entries []EnemySpawnEntry) EnemySpawnEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.ThreatCost < best.ThreatCost {
			best = e
		}
	}
	return best
}

// availableItems filters the item table by floor gate.
func availableItems(table []ItemSpawnEntry, floor int) []ItemSpawnEntry {
	var out []ItemSpawnEntry
	for _, e := range table {
		if e.MinFloor <= floor {
			out = append(out, e)
		}
	}
	return out
}

// pickFreeInZone tries up to 20 times to find an unoccupied walkable
// position inside zone, then falls back to a row-major scan so a crowded
// zone still yields a free tile when one exists. A zone with no free tile
// reports ok false; callers skip the spawn rather than stack it.
func pickFreeInZone(g *gamemap.Grid, zone gamemap.Rect, cfg *Config, occupied mapset.Set[point]) (int, int, bool) {
	free := func(x, y int) bool {
		return g.IsWalkable(x, y) && !occupied.Has(point{x, y}) &&
			!(x == g.StairsX && y == g.StairsY)
	}
	const maxAttempts = 20
	for try := 0; try < maxAttempts; try++ {
		x, y := randomInZone(zone, cfg)
		if free(x, y) {
			return x, y, true
		}
	}
	for y := zone.Y1; y <= zone.Y2; y++ {
		for x := zone.X1; x <= zone.X2; x++ {
			if free(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// pickFreeAny scans every zone for a free tile, for placements that must
// land somewhere.
func pickFreeAny(g *gamemap.Grid, zones []gamemap.Rect, cfg *Config, occupied mapset.Set[point]) (int, int, bool) {
	for _, zone := range zones {
		if x, y, ok := pickFreeInZone(g, zone, cfg, occupied); ok {
			return x, y, true
		}
	}
	return 0, 0, false
}

func randomInZone(zone gamemap.Rect, cfg *Config) (int, int) {
	w := zone.X2 - zone.X1 + 1
	h := zone.Y2 - zone.Y1 + 1
	x := zone.X1 + cfg.Rand.Intn(max(1, w))
	y := zone.Y1 + cfg.Rand.Intn(max(1, h))
	return x, y
}
