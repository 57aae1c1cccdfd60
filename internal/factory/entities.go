package factory

import (
	"warehouse-crawler/assets"
	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/generate"
)

// NewPlayer creates the employee at (x, y) with the starting stat block.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: assets.PlayerMaxHP, Max: assets.PlayerMaxHP})
	w.Add(id, component.Combat{Attack: assets.PlayerAttack, Defense: assets.PlayerDefense})
	w.Add(id, component.Name{Name: "Employee", Glyph: '@'})
	w.Add(id, component.Equipment{})
	w.Add(id, component.Progression{Level: 1})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewEnemy creates an enemy entity from a spawn entry. Guard is the zone a
// guard-behavior enemy protects; other behaviors ignore it.
func NewEnemy(w *ecs.World, entry generate.EnemySpawnEntry, x, y int, guard component.Zone) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: entry.MaxHP, Max: entry.MaxHP})
	w.Add(id, component.Combat{
		Attack:  entry.Attack,
		Defense: entry.Defense,
		Tier:    component.Tier(entry.Tier),
	})
	w.Add(id, component.Name{Name: entry.Name, Glyph: entry.Glyph})
	w.Add(id, component.AI{
		Behavior: component.AIBehavior(entry.Behavior),
		Guard:    guard,
	})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewItem creates a pickup entity from a spawn entry.
func NewItem(w *ecs.World, entry generate.ItemSpawnEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: entry.Name, Glyph: entry.Glyph})
	w.Add(id, component.Item{
		Kind:         component.ItemKind(entry.Kind),
		Heal:         entry.Heal,
		AttackBonus:  entry.AttackBonus,
		DefenseBonus: entry.DefenseBonus,
		Gold:         entry.Gold,
	})
	w.Add(id, component.TagItem{})
	return id
}
