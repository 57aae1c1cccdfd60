package generate

import (
	"github.com/zyedidia/generic/mapset"

	"warehouse-crawler/internal/gamemap"
)

type point struct{ X, Y int }

var cardinal = [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// reachableFrom flood-fills the grid from (sx, sy) over walkable tiles,
// treating every position in blocked as impassable.
func reachableFrom(g *gamemap.Grid, sx, sy int, blocked mapset.Set[point]) mapset.Set[point] {
	visited := mapset.New[point]()
	if !g.IsWalkable(sx, sy) {
		return visited
	}
	queue := []point{{sx, sy}}
	visited.Put(point{sx, sy})
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range cardinal {
			n := point{cur.X + d.X, cur.Y + d.Y}
			if visited.Has(n) || blocked.Has(n) {
				continue
			}
			if !g.IsWalkable(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// allWalkableConnected reports whether every walkable tile is reachable from
// (sx, sy). This is the floor's connectivity invariant.
func allWalkableConnected(g *gamemap.Grid, sx, sy int) bool {
	visited := reachableFrom(g, sx, sy, mapset.New[point]())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x].Walkable && !visited.Has(point{x, y}) {
				return false
			}
		}
	}
	return true
}

// distanceMap returns BFS path distances from (sx, sy) over walkable tiles.
// Unreachable tiles hold -1.
func distanceMap(g *gamemap.Grid, sx, sy int) [][]int {
	dist := make([][]int, g.Height)
	for y := range dist {
		dist[y] = make([]int, g.Width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	if !g.IsWalkable(sx, sy) {
		return dist
	}
	dist[sy][sx] = 0
	queue := []point{{sx, sy}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range cardinal {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !g.IsWalkable(nx, ny) || dist[ny][nx] != -1 {
				continue
			}
			dist[ny][nx] = dist[cur.Y][cur.X] + 1
			queue = append(queue, point{nx, ny})
		}
	}
	return dist
}
