package engine

import (
	"math"
	"math/rand"

	"warehouse-crawler/assets"
	"warehouse-crawler/internal/generate"
)

// levelConfig builds a generate.Config for the given floor number. Floors
// grow and harden toward the executive suite.
func levelConfig(floor int, rng *rand.Rand) *generate.Config {
	t := 0.0
	if assets.FinalFloor > 1 {
		t = float64(floor-1) / float64(assets.FinalFloor-1)
	}
	if t > 1 {
		t = 1
	}

	return &generate.Config{
		MapWidth:    lerpi(50, 80, t),
		MapHeight:   lerpi(28, 44, t),
		MinLeafSize: 9,
		MaxLeafSize: lerpi(22, 14, t),
		MinRoomSize: 5,
		RoomPadding: 1,
		FloorNumber: floor,

		EnemyBudget: lerpi(8, 40, t),
		ItemCount:   lerpi(3, 6, t),
		EnemyTable:  assets.EnemyTable(floor),
		ItemTable:   assets.ItemTable(floor),

		ShelfChance:     lerpi(45, 65, t),
		ConveyorRuns:    lerpi(2, 5, t),
		CheckpointCount: checkpointCount(floor),
		PatrolZones:     patrolZoneCount(floor),
		OutageChance:    lerpi(10, 35, t),

		PlaceAmulet: floor == assets.FinalFloor,
		PlaceBadge:  floor == assets.BadgeFloor-1,
		AmuletEntry: assets.AmuletEntry,
		BadgeEntry:  assets.BadgeEntry,

		Rand: rng,
	}
}

// checkpointCount gates deeper floors behind security.
func checkpointCount(floor int) int {
	if floor < assets.BadgeFloor {
		return 0
	}
	return 1 + (floor-assets.BadgeFloor)/2
}

// patrolZoneCount adds supervisor patrols from floor 2.
func patrolZoneCount(floor int) int {
	if floor < 2 {
		return 0
	}
	return (floor + 1) / 2
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
