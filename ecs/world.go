package ecs

import "github.com/milk9111/toyrts/ecs/component"

// World owns entities and their component tables. It is passed explicitly to
// every system; nothing in this package keeps global state.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store

	delta float64
	frame uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and recycles its slot. It
// reports false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.storeFor(kind)
	if s == nil {
		return 0, false
	}
	for _, e := range s.entities() {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities carry kind.
func (w *World) Count(kind component.Kind) int {
	s := w.storeFor(kind)
	if s == nil {
		return 0
	}
	return s.len()
}

// SetDeltaTime records the seconds elapsed since the previous frame and
// advances the frame counter. The scheduler's caller owns the clock.
func (w *World) SetDeltaTime(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	w.frame++
}

// DeltaTime returns the seconds elapsed since the previous frame.
func (w *World) DeltaTime() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Frame returns how many frames have been started.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) storeFor(kind component.Kind) store {
	if w == nil || w.stores == nil || kind == nil {
		return nil
	}
	return w.stores[kind.ID()]
}
