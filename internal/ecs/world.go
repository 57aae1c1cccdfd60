package ecs

import "sort"

// World is the central entity registry and component store for one floor.
//
// Destruction is two-phase: Kill marks an entity dead, Reap removes it.
// The turn scheduler reaps between turns so that every resolution step in a
// single turn observes the same set of entities.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	dead       []EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// Kill marks the entity dead. Its components stay readable until Reap.
func (w *World) Kill(id EntityID) {
	if !w.alive[id] {
		return
	}
	w.alive[id] = false
	w.dead = append(w.dead, id)
}

// Dead reports whether the entity has been killed but not yet reaped.
func (w *World) Dead(id EntityID) bool {
	for _, d := range w.dead {
		if d == id {
			return true
		}
	}
	return false
}

// Reap removes all components of killed entities. Called between turns.
func (w *World) Reap() {
	for _, id := range w.dead {
		for _, store := range w.components {
			delete(store, id)
		}
		delete(w.alive, id)
	}
	w.dead = nil
}

// DestroyEntity removes the entity and its components immediately.
// Used for non-actor entities (picked-up items) that nothing else observes.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Add attaches a component to an entity.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type.
// Order is unspecified; use QuerySorted when iteration order matters.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// QuerySorted is Query with results in ascending ID order. Turn resolution
// iterates enemies this way so outcomes are reproducible from a seed.
func (w *World) QuerySorted(types ...ComponentType) []EntityID {
	ids := w.Query(types...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
