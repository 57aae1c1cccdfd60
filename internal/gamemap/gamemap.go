package gamemap

// Rect is an axis-aligned rectangle used for zones.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains reports whether (x, y) lies inside the rectangle (inclusive).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Grid holds the tile data and zone list for one warehouse floor.
// Layout is immutable after generation; only entity/item state mutates.
type Grid struct {
	Width, Height int
	Tiles         [][]Tile
	Zones         []Rect

	// Stairs position. Exactly one per floor.
	StairsX, StairsY int

	// PowerOutage is a floor-level flag set at generation. It only narrows
	// the visibility radius the engine reports; physics are unchanged.
	PowerOutage bool

	// PatrolZones are the scheduling-conflict tiles watched by supervisor
	// patrols. Entering one during the forbidden window spawns a guard.
	PatrolZones []Rect
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) *Tile {
	return &g.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (g *Grid) Set(x, y int, t Tile) {
	g.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (g *Grid) IsWalkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (g *Grid) IsTransparent(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].Transparent
}

// InPatrolZone reports whether (x, y) lies in a supervisor patrol zone.
func (g *Grid) InPatrolZone(x, y int) bool {
	for _, z := range g.PatrolZones {
		if z.Contains(x, y) {
			return true
		}
	}
	return false
}
