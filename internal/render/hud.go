package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"warehouse-crawler/internal/engine"
)

// drawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) drawHUD(v engine.View, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	status := fmt.Sprintf("HP: %d/%d  ATK:%d DEF:%d  Lvl:%d XP:%d  $%d",
		v.HP, v.MaxHP, v.Attack, v.Defense, v.Level, v.XP, v.Gold)
	if v.HasBadge {
		status += "  [badge]"
	}
	if v.HasAmulet {
		status += "  [AMULET]"
	}
	status += fmt.Sprintf("  Floor %d: %s", v.Floor, v.FloorName)
	if v.PowerOutage {
		status += "  ⚠ power outage"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Last three messages.
	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
