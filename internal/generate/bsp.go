package generate

import (
	"warehouse-crawler/internal/gamemap"
)

// maxGenAttempts bounds the regenerate-on-failure loop. A correct carve
// always connects, so exhausting this is a programming-error-class failure.
const maxGenAttempts = 8

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	zone        *gamemap.Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false // already split
	}
	// Decide split direction: horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false // too small to split
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createZones recursively carves rectangular zones inside terminal leaves.
func (l *bspLeaf) createZones(g *gamemap.Grid, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createZones(g, cfg)
		}
		if l.right != nil {
			l.right.createZones(g, cfg)
		}
		return
	}
	// Terminal leaf: place a zone.
	pad := cfg.RoomPadding
	minW := cfg.MinRoomSize
	minH := cfg.MinRoomSize

	availW := l.W - 2*pad
	availH := l.H - 2*pad
	if availW < minW {
		availW = minW
	}
	if availH < minH {
		availH = minH
	}

	zw := minW + cfg.Rand.Intn(max(1, availW-minW+1))
	zh := minH + cfg.Rand.Intn(max(1, availH-minH+1))

	// Clamp to leaf bounds
	if zw > l.W-2*pad {
		zw = l.W - 2*pad
	}
	if zh > l.H-2*pad {
		zh = l.H - 2*pad
	}
	if zw < 3 {
		zw = 3
	}
	if zh < 3 {
		zh = 3
	}

	zx := l.X + pad + cfg.Rand.Intn(max(1, l.W-zw-2*pad+1))
	zy := l.Y + pad + cfg.Rand.Intn(max(1, l.H-zh-2*pad+1))

	// Safety clamp to map bounds (leave 1-tile border).
	if zx < 1 {
		zx = 1
	}
	if zy < 1 {
		zy = 1
	}
	if zx+zw >= g.Width {
		zw = g.Width - zx - 1
	}
	if zy+zh >= g.Height {
		zh = g.Height - zy - 1
	}
	if zw < 3 || zh < 3 {
		return
	}

	zone := gamemap.Rect{X1: zx, Y1: zy, X2: zx + zw - 1, Y2: zy + zh - 1}
	l.zone = &zone

	// Carve floor tiles.
	for y := zone.Y1; y <= zone.Y2; y++ {
		for x := zone.X1; x <= zone.X2; x++ {
			g.Set(x, y, gamemap.MakeFloor())
		}
	}
	g.Zones = append(g.Zones, zone)
}

// getZone returns the zone nearest to this leaf (from children if split).
func (l *bspLeaf) getZone() *gamemap.Rect {
	if l.zone != nil {
		return l.zone
	}
	var lZone, rZone *gamemap.Rect
	if l.left != nil {
		lZone = l.left.getZone()
	}
	if l.right != nil {
		rZone = l.right.getZone()
	}
	if lZone == nil {
		return rZone
	}
	if rZone == nil {
		return lZone
	}
	return lZone // just pick one
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(g *gamemap.Grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lZone := l.left.getZone()
	rZone := l.right.getZone()
	if lZone == nil || rZone == nil {
		return
	}
	lCX, lCY := lZone.Center()
	rCX, rCY := rZone.Center()
	carveCorridor(g, lCX, lCY, rCX, rCY, cfg)
}

// Generate builds one warehouse floor: BSP zones, corridors, furniture,
// hazards, and the stairs placed in the zone farthest from spawn by path
// distance. The returned coordinates are the player spawn tile. Failing the
// connectivity invariant after bounded retries returns a GenerationError.
func Generate(cfg *Config) (*gamemap.Grid, int, int, error) {
	for attempt := 1; attempt <= maxGenAttempts; attempt++ {
		g, px, py := generateOnce(cfg)

		if !allWalkableConnected(g, px, py) {
			continue
		}
		if g.StairsX == 0 && g.StairsY == 0 {
			continue
		}
		return g, px, py, nil
	}
	return nil, 0, 0, &GenerationError{
		Floor:    cfg.FloorNumber,
		Attempts: maxGenAttempts,
		Reason:   "spawn and stairs not connected",
	}
}

// generateOnce runs a single build pass without verification.
func generateOnce(cfg *Config) (*gamemap.Grid, int, int) {
	g := gamemap.New(cfg.MapWidth, cfg.MapHeight)

	root := &bspLeaf{X: 0, Y: 0, W: cfg.MapWidth, H: cfg.MapHeight}

	// Build BSP tree.
	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createZones(g, cfg)
	root.connectChildren(g, cfg)

	// Player spawns in the center of the first zone.
	px, py := 1, 1
	if len(g.Zones) > 0 {
		px, py = g.Zones[0].Center()
	}

	furnish(g, cfg)
	placeStairs(g, px, py)
	placeCheckpoints(g, px, py, cfg)
	designatePatrolZones(g, cfg)

	g.PowerOutage = cfg.Rand.Intn(100) < cfg.OutageChance

	return g, px, py
}

// placeStairs sets the stairs in the zone whose center is farthest from
// spawn by BFS path distance. Exactly one stairs tile exists per floor.
func placeStairs(g *gamemap.Grid, px, py int) {
	dist := distanceMap(g, px, py)
	bestDist := -1
	var sx, sy int
	for i, zone := range g.Zones {
		if i == 0 {
			continue // spawn zone
		}
		cx, cy := zone.Center()
		d := dist[cy][cx]
		if d > bestDist {
			bestDist = d
			sx, sy = cx, cy
		}
	}
	if bestDist < 0 {
		return // single-zone degenerate floor; caller retries
	}
	g.Set(sx, sy, gamemap.MakeStairs())
	g.StairsX, g.StairsY = sx, sy
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
