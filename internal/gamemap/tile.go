package gamemap

// TileKind identifies the type of a warehouse tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileShelf
	TilePackingStation
	TileSortingMachine
	TileConveyorBelt
	TileLoadingDock
	TileStairs
	TileCheckpoint
)

// String returns the obstacle name used in movement messages.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileShelf:
		return "shelf"
	case TilePackingStation:
		return "packing station"
	case TileSortingMachine:
		return "sorting machine"
	case TileConveyorBelt:
		return "conveyor belt"
	case TileLoadingDock:
		return "loading dock"
	case TileStairs:
		return "stairs"
	case TileCheckpoint:
		return "security checkpoint"
	}
	return "obstacle"
}

// Tile holds the kind, derived passability, and any hazard data for one cell.
// BeltDir and ShoveChance are fixed at generation time for conveyor tiles.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	BeltDir     Direction
	ShoveChance int // 0–100, conveyor tiles only
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeShelf returns a storage shelf: blocks movement, blocks sight.
func MakeShelf() Tile {
	return Tile{Kind: TileShelf}
}

// MakePackingStation returns a packing station: blocks movement, see-over.
func MakePackingStation() Tile {
	return Tile{Kind: TilePackingStation, Transparent: true}
}

// MakeSortingMachine returns a sorting machine: blocks movement and sight.
func MakeSortingMachine() Tile {
	return Tile{Kind: TileSortingMachine}
}

// MakeConveyorBelt returns a walkable conveyor tile with its fixed belt
// direction and per-tile shove chance.
func MakeConveyorBelt(dir Direction, shoveChance int) Tile {
	return Tile{
		Kind:        TileConveyorBelt,
		Walkable:    true,
		Transparent: true,
		BeltDir:     dir,
		ShoveChance: shoveChance,
	}
}

// MakeLoadingDock returns a loading dock: blocks movement, see-over.
func MakeLoadingDock() Tile {
	return Tile{Kind: TileLoadingDock, Transparent: true}
}

// MakeStairs returns the downward staircase tile.
func MakeStairs() Tile {
	return Tile{Kind: TileStairs, Walkable: true, Transparent: true}
}

// MakeCheckpoint returns a security checkpoint. Walkable in the grid sense;
// the movement system gates entry on the player's badge.
func MakeCheckpoint() Tile {
	return Tile{Kind: TileCheckpoint, Walkable: true, Transparent: true}
}
