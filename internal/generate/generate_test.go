package generate

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"warehouse-crawler/internal/gamemap"
)

func testConfig(floor int, seed int64) *Config {
	return &Config{
		MapWidth:    60,
		MapHeight:   36,
		MinLeafSize: 9,
		MaxLeafSize: 20,
		MinRoomSize: 5,
		RoomPadding: 1,
		FloorNumber: floor,

		EnemyBudget: 12,
		ItemCount:   4,
		EnemyTable: []EnemySpawnEntry{
			{Glyph: 'r', Name: "Sorting Bot", ThreatCost: 2, Attack: 3, Defense: 0, MaxHP: 6, Tier: 1, Behavior: 0, MinFloor: 1},
			{Glyph: 'g', Name: "Security Guard", ThreatCost: 5, Attack: 6, Defense: 2, MaxHP: 14, Tier: 1, Behavior: 1, MinFloor: 2},
			{Glyph: 'M', Name: "Manager Bot", ThreatCost: 8, Attack: 8, Defense: 3, MaxHP: 20, Tier: 2, Behavior: 2, MinFloor: 3},
		},
		ItemTable: []ItemSpawnEntry{
			{Glyph: '!', Name: "Energy Drink", Kind: 0, Heal: 10, MinFloor: 1},
			{Glyph: '/', Name: "Box Cutter", Kind: 1, AttackBonus: 3, MinFloor: 1},
		},

		ShelfChance:     60,
		ConveyorRuns:    2,
		CheckpointCount: 1,
		PatrolZones:     1,
		OutageChance:    20,

		AmuletEntry: ItemSpawnEntry{Glyph: '"', Name: "Promotion Amulet", Kind: 5},
		BadgeEntry:  ItemSpawnEntry{Glyph: '=', Name: "Security Badge", Kind: 4},

		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestPickFreeInZoneReportsFullZones(t *testing.T) {
	cfg := testConfig(1, 7)
	g := gamemap.New(10, 10)
	g.Set(3, 3, gamemap.MakeFloor())
	g.Set(4, 3, gamemap.MakeFloor())
	zone := gamemap.Rect{X1: 3, Y1: 3, X2: 4, Y2: 3}
	occupied := mapset.New[point]()

	x, y, ok := pickFreeInZone(g, zone, cfg, occupied)
	if !ok || y != 3 || (x != 3 && x != 4) {
		t.Fatalf("pick = (%d,%d,%v), want a free zone tile", x, y, ok)
	}

	// Fill the zone; the pick must report failure rather than hand back an
	// occupied tile or the zone center.
	occupied.Put(point{3, 3})
	occupied.Put(point{4, 3})
	if _, _, ok := pickFreeInZone(g, zone, cfg, occupied); ok {
		t.Error("full zone still yielded a tile")
	}
}

func TestGenerateConnectivityAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		for floor := 1; floor <= 5; floor++ {
			cfg := testConfig(floor, seed)
			g, px, py, err := Generate(cfg)
			if err != nil {
				t.Fatalf("seed %d floor %d: %v", seed, floor, err)
			}
			if !allWalkableConnected(g, px, py) {
				t.Fatalf("seed %d floor %d: disconnected walkable region", seed, floor)
			}
		}
	}
}

func TestGenerateExactlyOneStairs(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		cfg := testConfig(1, seed)
		g, _, _, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		count := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Tiles[y][x].Kind == gamemap.TileStairs {
					count++
					if x != g.StairsX || y != g.StairsY {
						t.Fatalf("seed %d: stairs at (%d,%d) but recorded (%d,%d)",
							seed, x, y, g.StairsX, g.StairsY)
					}
				}
			}
		}
		if count != 1 {
			t.Fatalf("seed %d: want exactly 1 stairs tile, got %d", seed, count)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a, apx, apy, err := Generate(testConfig(3, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		b, bpx, bpy, err := Generate(testConfig(3, seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if apx != bpx || apy != bpy {
			t.Fatalf("seed %d: spawn differs (%d,%d) vs (%d,%d)", seed, apx, apy, bpx, bpy)
		}
		if a.PowerOutage != b.PowerOutage {
			t.Fatalf("seed %d: outage flag differs", seed)
		}
		for y := 0; y < a.Height; y++ {
			for x := 0; x < a.Width; x++ {
				if a.Tiles[y][x] != b.Tiles[y][x] {
					t.Fatalf("seed %d: tile (%d,%d) differs", seed, x, y)
				}
			}
		}
	}
}

func TestStairsNotInSpawnZone(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig(1, seed)
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(g.Zones) < 2 {
			continue
		}
		if g.Zones[0].Contains(g.StairsX, g.StairsY) {
			t.Errorf("seed %d: stairs placed in spawn zone", seed)
		}
		if px == g.StairsX && py == g.StairsY {
			t.Errorf("seed %d: spawn overlaps stairs", seed)
		}
	}
}

func TestStairsReachableWithoutBadge(t *testing.T) {
	// Closed checkpoints must never cut spawn off from the stairs.
	for seed := int64(1); seed <= 30; seed++ {
		cfg := testConfig(2, seed)
		cfg.CheckpointCount = 3
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		blocked := mapset.New[point]()
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.Tiles[y][x].Kind == gamemap.TileCheckpoint {
					blocked.Put(point{x, y})
				}
			}
		}
		visited := reachableFrom(g, px, py, blocked)
		if !visited.Has(point{g.StairsX, g.StairsY}) {
			t.Fatalf("seed %d: stairs unreachable around closed checkpoints", seed)
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		cfgA := testConfig(3, seed)
		gA, pxA, pyA, err := Generate(cfgA)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		resA := Populate(gA, pxA, pyA, cfgA)

		cfgB := testConfig(3, seed)
		gB, pxB, pyB, err := Generate(cfgB)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		resB := Populate(gB, pxB, pyB, cfgB)

		if len(resA.Enemies) != len(resB.Enemies) || len(resA.Items) != len(resB.Items) {
			t.Fatalf("seed %d: spawn counts differ", seed)
		}
		for i := range resA.Enemies {
			if resA.Enemies[i] != resB.Enemies[i] {
				t.Fatalf("seed %d: enemy spawn %d differs", seed, i)
			}
		}
		for i := range resA.Items {
			if resA.Items[i] != resB.Items[i] {
				t.Fatalf("seed %d: item spawn %d differs", seed, i)
			}
		}
	}
}

func TestPopulateSpawnsClearOfPlayerAndStairs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig(3, seed)
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := Populate(g, px, py, cfg)
		seen := mapset.New[point]()
		check := func(x, y int, what string) {
			if x == px && y == py {
				t.Fatalf("seed %d: %s on player spawn", seed, what)
			}
			if x == g.StairsX && y == g.StairsY {
				t.Fatalf("seed %d: %s on stairs", seed, what)
			}
			if !g.IsWalkable(x, y) {
				t.Fatalf("seed %d: %s on unwalkable tile (%d,%d)", seed, what, x, y)
			}
			if seen.Has(point{x, y}) {
				t.Fatalf("seed %d: %s overlaps another spawn at (%d,%d)", seed, what, x, y)
			}
			seen.Put(point{x, y})
		}
		for _, e := range res.Enemies {
			check(e.X, e.Y, "enemy")
		}
		for _, it := range res.Items {
			check(it.X, it.Y, "item")
		}
	}
}

func TestPopulateBudgetRespected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig(3, seed)
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := Populate(g, px, py, cfg)
		spent := 0
		for _, e := range res.Enemies {
			spent += e.Entry.ThreatCost
			if e.Entry.MinFloor > cfg.FloorNumber {
				t.Fatalf("seed %d: %s spawned below its floor gate", seed, e.Entry.Name)
			}
		}
		if spent > cfg.EnemyBudget {
			t.Fatalf("seed %d: threat %d exceeds budget %d", seed, spent, cfg.EnemyBudget)
		}
	}
}

func TestAmuletPlacedOnceAndReachable(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		cfg := testConfig(5, seed)
		cfg.PlaceAmulet = true
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := Populate(g, px, py, cfg)

		var amulets []ItemSpawn
		for _, it := range res.Items {
			if it.Entry.Kind == 5 {
				amulets = append(amulets, it)
			}
		}
		if len(amulets) != 1 {
			t.Fatalf("seed %d: want exactly 1 amulet, got %d", seed, len(amulets))
		}
		visited := reachableFrom(g, px, py, mapset.New[point]())
		if !visited.Has(point{amulets[0].X, amulets[0].Y}) {
			t.Fatalf("seed %d: amulet unreachable from spawn", seed)
		}
	}
}

func TestManagementGatedByFloor(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig(1, seed)
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := Populate(g, px, py, cfg)
		for _, e := range res.Enemies {
			if e.Entry.Tier == 2 {
				t.Fatalf("seed %d: management enemy %s on floor 1", seed, e.Entry.Name)
			}
		}
	}
}

func TestGuardSpawnCarriesItsZone(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig(3, seed)
		g, px, py, err := Generate(cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		res := Populate(g, px, py, cfg)
		for _, e := range res.Enemies {
			if !e.Guard.Contains(e.X, e.Y) {
				t.Fatalf("seed %d: %s at (%d,%d) outside its zone %+v",
					seed, e.Entry.Name, e.X, e.Y, e.Guard)
			}
		}
	}
}

func TestDistanceMapMatchesManualGrid(t *testing.T) {
	g := gamemap.New(7, 5)
	for x := 1; x <= 5; x++ {
		g.Set(x, 2, gamemap.MakeFloor())
	}
	dist := distanceMap(g, 1, 2)
	if dist[2][5] != 4 {
		t.Errorf("corridor end distance = %d, want 4", dist[2][5])
	}
	if dist[0][0] != -1 {
		t.Errorf("wall distance = %d, want -1", dist[0][0])
	}
}
