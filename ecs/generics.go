package ecs

import (
	"fmt"

	"github.com/milk9111/toyrts/ecs/component"
)

func table[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add component %d to %s: %w", kind.ID(), e, component.ErrEntityNotAlive)
	}
	table(w, kind, true).set(e, value)
	return nil
}

// Remove detaches the component of kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := table(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// Has reports whether e carries a component of kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := table(w, kind, false)
	return s != nil && s.has(e)
}

// Get returns e's component of kind. The pointer aliases the stored value.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := table(w, kind, false)
	if s == nil || !IsAlive(w, e) {
		return nil, false
	}
	return s.get(e)
}

// ForEach calls fn for every live entity carrying kind. Entities may be
// destroyed or have components removed from inside fn.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := table(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, e := range append([]Entity(nil), s.entities()...) {
		v, ok := s.get(e)
		if !ok || !w.entities.isAlive(e) {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 calls fn for every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := table(w, ka, false)
	sb := table(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	var ents []Entity
	if sa.len() <= sb.len() {
		ents = append(ents, sa.entities()...)
	} else {
		ents = append(ents, sb.entities()...)
	}
	for _, e := range ents {
		if !w.entities.isAlive(e) {
			continue
		}
		a, ok := sa.get(e)
		if !ok {
			continue
		}
		b, ok := sb.get(e)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}
