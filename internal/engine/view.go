package engine

import (
	"warehouse-crawler/assets"
	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/gamemap"
	"warehouse-crawler/internal/system"
)

// ViewCell is one tile as the player may know it. Kind is only meaningful
// when Explored is true.
type ViewCell struct {
	Kind     gamemap.TileKind
	Visible  bool
	Explored bool
}

// EntityView is one currently visible entity.
type EntityView struct {
	Name   string
	Glyph  rune
	X, Y   int
	IsItem bool
}

// View is a read-only snapshot of what the player can observe. Calling
// CurrentView any number of times between turns yields identical values.
type View struct {
	Floor     int
	FloorName string
	Turn      int
	State     GameState

	Width, Height    int
	PlayerX, PlayerY int
	Cells            [][]ViewCell
	Entities         []EntityView

	HP, MaxHP        int
	Attack, Defense  int
	Level, XP, Gold  int
	HasBadge         bool
	HasAmulet        bool
	VisibilityRadius int
	PowerOutage      bool
}

// CurrentView assembles the view for the active floor. It never mutates
// session state.
func (s *Session) CurrentView() View {
	fs := s.current()
	pos := s.playerPos()

	v := View{
		Floor:            s.floor,
		FloorName:        assets.FloorName(s.floor),
		Turn:             s.turn,
		State:            s.state,
		Width:            fs.grid.Width,
		Height:           fs.grid.Height,
		PlayerX:          pos.X,
		PlayerY:          pos.Y,
		VisibilityRadius: system.VisibilityRadius(fs.grid),
		PowerOutage:      fs.grid.PowerOutage,
	}

	v.Cells = make([][]ViewCell, fs.grid.Height)
	for y := 0; y < fs.grid.Height; y++ {
		v.Cells[y] = make([]ViewCell, fs.grid.Width)
		for x := 0; x < fs.grid.Width; x++ {
			explored := fs.fov.IsExplored(x, y)
			cell := ViewCell{
				Visible:  fs.fov.IsVisible(x, y),
				Explored: explored,
			}
			if explored {
				cell.Kind = fs.grid.At(x, y).Kind
			}
			v.Cells[y][x] = cell
		}
	}

	// Visible entities only; items first so actors draw over them.
	for _, id := range fs.world.QuerySorted(component.CTagItem, component.CPosition) {
		ep := fs.world.Get(id, component.CPosition).(component.Position)
		if !fs.fov.IsVisible(ep.X, ep.Y) {
			continue
		}
		name := fs.world.Get(id, component.CName).(component.Name)
		v.Entities = append(v.Entities, EntityView{
			Name: name.Name, Glyph: name.Glyph, X: ep.X, Y: ep.Y, IsItem: true,
		})
	}
	for _, id := range fs.world.QuerySorted(component.CAI, component.CPosition) {
		ep := fs.world.Get(id, component.CPosition).(component.Position)
		if !fs.fov.IsVisible(ep.X, ep.Y) {
			continue
		}
		name := fs.world.Get(id, component.CName).(component.Name)
		v.Entities = append(v.Entities, EntityView{
			Name: name.Name, Glyph: name.Glyph, X: ep.X, Y: ep.Y,
		})
	}

	if hp := fs.world.Get(fs.playerID, component.CHealth); hp != nil {
		h := hp.(component.Health)
		v.HP, v.MaxHP = h.Current, h.Max
	}
	if cbt := fs.world.Get(fs.playerID, component.CCombat); cbt != nil {
		c := cbt.(component.Combat)
		v.Attack, v.Defense = c.Attack, c.Defense
	}
	if eq := fs.world.Get(fs.playerID, component.CEquipment); eq != nil {
		e := eq.(component.Equipment)
		v.Attack += e.WeaponBonus
		v.Defense += e.ArmorBonus
	}
	if pr := fs.world.Get(fs.playerID, component.CProgression); pr != nil {
		p := pr.(component.Progression)
		v.Level, v.XP, v.Gold = p.Level, p.XP, p.Gold
		v.HasBadge, v.HasAmulet = p.HasBadge, p.HasAmulet
	}
	return v
}
