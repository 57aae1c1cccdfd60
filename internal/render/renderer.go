package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"warehouse-crawler/internal/engine"
	"warehouse-crawler/internal/gamemap"
)

// hudRows is the screen space reserved under the map view.
const hudRows = 5

// Renderer draws an engine view onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// Resize refits the camera after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
}

// DrawFrame renders the map, entities, player, and HUD for one view.
func (r *Renderer) DrawFrame(v engine.View, messages []string) {
	r.screen.Clear()
	r.camera.Center(v.PlayerX, v.PlayerY)
	r.drawMap(v)
	r.drawEntities(v)
	r.drawPlayer(v)
	r.drawHUD(v, messages)
	r.screen.Show()
}

// tileGlyph maps a tile kind to its map character.
func tileGlyph(kind gamemap.TileKind) rune {
	switch kind {
	case gamemap.TileWall:
		return '#'
	case gamemap.TileFloor:
		return '.'
	case gamemap.TileShelf:
		return '%'
	case gamemap.TilePackingStation:
		return '&'
	case gamemap.TileSortingMachine:
		return '&'
	case gamemap.TileConveyorBelt:
		return '~'
	case gamemap.TileLoadingDock:
		return '['
	case gamemap.TileStairs:
		return '>'
	case gamemap.TileCheckpoint:
		return '+'
	}
	return ' '
}

// tileStyle picks the color for a tile kind.
func tileStyle(kind gamemap.TileKind, visible bool) tcell.Style {
	if !visible {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	}
	switch kind {
	case gamemap.TileConveyorBelt:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	case gamemap.TileStairs:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case gamemap.TileCheckpoint:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case gamemap.TileShelf, gamemap.TilePackingStation, gamemap.TileSortingMachine, gamemap.TileLoadingDock:
		return tcell.StyleDefault.Foreground(tcell.ColorSandyBrown)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}

func (r *Renderer) drawMap(v engine.View) {
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			cell := v.Cells[y][x]
			if !cell.Visible && !cell.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.screen.SetContent(sx, sy, tileGlyph(cell.Kind), nil, tileStyle(cell.Kind, cell.Visible))
		}
	}
}

func (r *Renderer) drawEntities(v engine.View) {
	for _, e := range v.Entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.X, e.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if e.IsItem {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		r.screen.SetContent(sx, sy, e.Glyph, nil, style)
	}
}

func (r *Renderer) drawPlayer(v engine.View) {
	sx, sy, onScreen := r.camera.WorldToScreen(v.PlayerX, v.PlayerY)
	if !onScreen {
		return
	}
	r.screen.SetContent(sx, sy, '@', nil,
		tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
}

// drawText writes a string, advancing by rune display width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
