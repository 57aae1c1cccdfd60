package component

import "warehouse-crawler/internal/ecs"

const CName ecs.ComponentType = 5

// Name holds the display name and map glyph for an entity. The engine uses
// the name in event text; the glyph is for whatever renders the snapshot.
type Name struct {
	Name  string
	Glyph rune
}

func (Name) Type() ecs.ComponentType { return CName }
