package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/toyrts/ecs/component"
)

var (
	ErrNoEntity         = errors.New("ecs: no entity matches")
	ErrMultipleEntities = errors.New("ecs: more than one entity matches")
)

// Query returns live entities carrying every kind, in the order of the
// smallest table.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, e := range smallest.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range stores {
			if !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// Single returns the only live entity carrying kind. It fails with
// ErrNoEntity or ErrMultipleEntities instead of guessing.
func Single(w *World, kind component.Kind) (Entity, error) {
	matches := w.Query(kind)
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("single %d: %w", kind.ID(), ErrNoEntity)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("single %d: %d matches: %w", kind.ID(), len(matches), ErrMultipleEntities)
	}
}
