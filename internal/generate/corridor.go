package generate

import "warehouse-crawler/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2).
func carveCorridor(g *gamemap.Grid, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(g, x1, x2, y1)
		carveV(g, y1, y2, x2)
	} else {
		carveV(g, y1, y2, x1)
		carveH(g, x1, x2, y2)
	}
}

func carveH(g *gamemap.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if g.InBounds(x, y) {
			g.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func carveV(g *gamemap.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if g.InBounds(x, y) {
			g.Set(x, y, gamemap.MakeFloor())
		}
	}
}
