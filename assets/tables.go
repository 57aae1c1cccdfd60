package assets

import "warehouse-crawler/internal/generate"

// Player starting stats.
const (
	PlayerMaxHP   = 30
	PlayerAttack  = 5
	PlayerDefense = 2
)

// FinalFloor is the floor holding the Promotion Amulet.
const FinalFloor = 5

// BadgeFloor is the first floor with security checkpoints. The badge spawns
// one floor earlier so a thorough player arrives carrying it.
const BadgeFloor = 2

// Level-up stat increments.
const (
	LevelUpHP     = 4
	LevelUpAttack = 1
)

// AmuletMaxHPBonus is added to max HP when the Promotion Amulet is picked up.
const AmuletMaxHPBonus = 10

// XP awards per defeated enemy tier.
const (
	XPEmployee   = 10
	XPManagement = 35
)

// xpThresholds holds cumulative XP required to reach each level. Index 0 is
// level 2. The curve is 100 * level^1.5, rounded, shrunk to fit a five-floor
// run.
var xpThresholds = []int{
	28,  // level 2
	52,  // level 3
	80,  // level 4
	112, // level 5
	147, // level 6
	185, // level 7
	226, // level 8
	271, // level 9
	316, // level 10
}

// XPForLevel returns the cumulative XP needed to reach level. Levels past
// the table extend linearly from its last step.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	idx := level - 2
	if idx < len(xpThresholds) {
		return xpThresholds[idx]
	}
	last := xpThresholds[len(xpThresholds)-1]
	step := last - xpThresholds[len(xpThresholds)-2]
	return last + step*(idx-len(xpThresholds)+1)
}

// enemyTemplates lists every warehouse enemy. Floor workers roam from the
// start; management appears from floor 3 and the executive suite from 5.
// Tier 1 is employee, tier 2 management. Behavior 0=wander 1=guard 2=aggressive.
var enemyTemplates = []generate.EnemySpawnEntry{
	// Floor workers
	{Glyph: 'r', Name: "Sorting Bot", ThreatCost: 2, Attack: 3, Defense: 0, MaxHP: 8, Tier: 1, Behavior: 0, MinFloor: 1},
	{Glyph: 's', Name: "Packing Robot", ThreatCost: 3, Attack: 4, Defense: 1, MaxHP: 10, Tier: 1, Behavior: 0, MinFloor: 1},
	{Glyph: 'd', Name: "Inventory Drone", ThreatCost: 1, Attack: 2, Defense: 0, MaxHP: 6, Tier: 1, Behavior: 0, MinFloor: 1},
	{Glyph: 'g', Name: "Security Guard", ThreatCost: 4, Attack: 5, Defense: 2, MaxHP: 12, Tier: 1, Behavior: 1, MinFloor: 1},
	{Glyph: 'm', Name: "Maintenance Bot", ThreatCost: 2, Attack: 3, Defense: 1, MaxHP: 7, Tier: 1, Behavior: 0, MinFloor: 1},
	// Management
	{Glyph: 'M', Name: "Manager Bot", ThreatCost: 6, Attack: 7, Defense: 3, MaxHP: 15, Tier: 2, Behavior: 2, MinFloor: 3},
	{Glyph: 'S', Name: "Supervisor Drone", ThreatCost: 7, Attack: 8, Defense: 3, MaxHP: 18, Tier: 2, Behavior: 2, MinFloor: 3},
	// Executive suite
	{Glyph: 'X', Name: "Security System", ThreatCost: 9, Attack: 10, Defense: 4, MaxHP: 25, Tier: 2, Behavior: 1, MinFloor: 5},
	{Glyph: 'A', Name: "Executive Assistant", ThreatCost: 8, Attack: 9, Defense: 5, MaxHP: 20, Tier: 2, Behavior: 2, MinFloor: 5},
	{Glyph: 'D', Name: "Regional Director", ThreatCost: 12, Attack: 12, Defense: 6, MaxHP: 30, Tier: 2, Behavior: 2, MinFloor: 5},
}

// PatrolGuard is the Security Guard spawned when the player trips a
// supervisor patrol during its watch window.
var PatrolGuard = generate.EnemySpawnEntry{
	Glyph: 'g', Name: "Security Guard", ThreatCost: 4,
	Attack: 5, Defense: 2, MaxHP: 12, Tier: 1, Behavior: 2, MinFloor: 1,
}

// itemTemplates lists the floor loot.
// Kind: 0=potion 1=weapon 2=armor 3=gold.
var itemTemplates = []generate.ItemSpawnEntry{
	{Glyph: '!', Name: "Energy Drink", Kind: 0, Heal: 10, MinFloor: 1},
	{Glyph: '/', Name: "Box Cutter", Kind: 1, AttackBonus: 3, MinFloor: 1},
	{Glyph: '/', Name: "Tape Dispenser", Kind: 1, AttackBonus: 4, MinFloor: 3},
	{Glyph: ']', Name: "Safety Vest", Kind: 2, DefenseBonus: 2, MinFloor: 1},
	{Glyph: ']', Name: "Hard Hat", Kind: 2, DefenseBonus: 3, MinFloor: 3},
	{Glyph: '$', Name: "Paycheck", Kind: 3, Gold: 25, MinFloor: 1},
}

// AmuletEntry is the win-condition item, exactly one on the final floor.
var AmuletEntry = generate.ItemSpawnEntry{
	Glyph: '*', Name: "Promotion Amulet", Kind: 5, MinFloor: FinalFloor,
}

// BadgeEntry opens security checkpoints.
var BadgeEntry = generate.ItemSpawnEntry{
	Glyph: '=', Name: "Security Badge", Kind: 4, MinFloor: 1,
}

// EnemyTable returns all enemy templates spawnable on floor.
func EnemyTable(floor int) []generate.EnemySpawnEntry {
	var out []generate.EnemySpawnEntry
	for _, e := range enemyTemplates {
		if e.MinFloor <= floor {
			out = append(out, e)
		}
	}
	return out
}

// ItemTable returns all item templates spawnable on floor.
func ItemTable(floor int) []generate.ItemSpawnEntry {
	var out []generate.ItemSpawnEntry
	for _, e := range itemTemplates {
		if e.MinFloor <= floor {
			out = append(out, e)
		}
	}
	return out
}

// floorNames gives each warehouse level a department name for the HUD.
var floorNames = []string{
	"Receiving Dock",
	"Sortation Center",
	"Fulfillment Floor",
	"Logistics Mezzanine",
	"Executive Suite",
}

// FloorName returns the department name for a 1-based floor number.
func FloorName(floor int) string {
	if floor >= 1 && floor <= len(floorNames) {
		return floorNames[floor-1]
	}
	return "Sublevel"
}
