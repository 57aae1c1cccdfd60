package system

import "warehouse-crawler/internal/gamemap"

// FOVMap holds per-floor visibility state. Visible is recomputed every
// update; Explored accumulates for the whole visit to the floor.
type FOVMap struct {
	Width, Height int
	Visible       [][]bool
	Explored      [][]bool
}

// NewFOVMap creates an all-dark FOVMap sized to the grid.
func NewFOVMap(g *gamemap.Grid) *FOVMap {
	f := &FOVMap{Width: g.Width, Height: g.Height}
	f.Visible = make([][]bool, g.Height)
	f.Explored = make([][]bool, g.Height)
	for y := 0; y < g.Height; y++ {
		f.Visible[y] = make([]bool, g.Width)
		f.Explored[y] = make([]bool, g.Width)
	}
	return f
}

// IsVisible reports current visibility at (x, y).
func (f *FOVMap) IsVisible(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Visible[y][x]
}

// IsExplored reports whether (x, y) has ever been visible.
func (f *FOVMap) IsExplored(x, y int) bool {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Explored[y][x]
}

func (f *FOVMap) mark(x, y int) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	f.Visible[y][x] = true
	f.Explored[y][x] = true
}

// octant transform matrices. For each octant a (dx, dy) sweep pair maps to a
// world offset via worldX = cx + dx*xx + dy*xy, worldY = cy + dx*yx + dy*yy.
// Standard RogueBasin recursive shadowcasting multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes visibility from (cx, cy) with the given radius using
// recursive shadowcasting.
func UpdateFOV(f *FOVMap, g *gamemap.Grid, cx, cy, radius int) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Visible[y][x] = false
		}
	}
	f.mark(cx, cy)
	for _, m := range octants {
		castLight(f, g, cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// castLight scans one octant.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the row, dx sweeps from -j to 0
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(f *FOVMap, g *gamemap.Grid, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && g.InBounds(wx, wy) {
				f.mark(wx, wy)
			}

			opaque := !g.InBounds(wx, wy) || !g.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < radius {
					blocked = true
					castLight(f, g, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
