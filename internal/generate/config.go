package generate

import (
	"fmt"
	"math/rand"
)

// EnemySpawnEntry describes one possible enemy spawn with its threat cost.
// Tier and Behavior use the same numeric values as the component package
// constants to avoid a circular import.
type EnemySpawnEntry struct {
	Glyph      rune
	Name       string
	ThreatCost int
	Attack     int
	Defense    int
	MaxHP      int
	Tier       uint8 // 1=employee 2=management
	Behavior   uint8 // 0=wander 1=guardzone 2=aggressive
	MinFloor   int
}

// ItemSpawnEntry describes one possible item spawn.
// Kind matches component.ItemKind values.
type ItemSpawnEntry struct {
	Glyph        rune
	Name         string
	Kind         uint8 // 0=potion 1=weapon 2=armor 3=gold 4=badge 5=amulet
	Heal         int
	AttackBonus  int
	DefenseBonus int
	Gold         int
	MinFloor     int
}

// Config drives procedural generation for one floor. All randomness flows
// through Rand, so one (floorIndex, seed) pair always yields the same floor.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	FloorNumber         int

	EnemyBudget int
	ItemCount   int
	EnemyTable  []EnemySpawnEntry
	ItemTable   []ItemSpawnEntry

	// Warehouse furniture and hazards.
	ShelfChance     int // 0–100, per eligible shelf-row tile
	ConveyorRuns    int // straight belt runs carved into corridors
	CheckpointCount int // checkpoints gated on the badge
	PatrolZones     int // supervisor patrol zones
	OutageChance    int // 0–100 chance the floor is in a power outage

	// Amulet and badge placement.
	PlaceAmulet bool // exactly one amulet, floor 5
	PlaceBadge  bool // security badge ahead of the first checkpoint floor
	AmuletEntry ItemSpawnEntry
	BadgeEntry  ItemSpawnEntry

	Rand *rand.Rand
}

// GenerationError reports a floor that could not satisfy its layout
// invariants after bounded retries. It signals a generator defect, not a
// user-recoverable condition.
type GenerationError struct {
	Floor    int
	Attempts int
	Reason   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("floor %d: generation failed after %d attempts: %s",
		e.Floor, e.Attempts, e.Reason)
}
