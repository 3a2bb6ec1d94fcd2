package entity

import (
	"fmt"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/prefabs"
)

// NewUnit spawns one unit at (x, y) using the prefab's sprite and timer.
func NewUnit(w *ecs.World, spec prefabs.UnitSpec, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("unit: world is nil")
	}

	unit := ecs.CreateEntity(w)
	if err := ecs.Add(w, unit, component.UnitComponent.Kind(), &component.Unit{
		MovementTimer: 0,
		Timer:         component.NewTimer(spec.TimerSeconds, component.TimerRepeating),
	}); err != nil {
		return 0, fmt.Errorf("unit: add unit: %w", err)
	}
	if err := ecs.Add(w, unit, component.SpriteComponent.Kind(), &component.Sprite{
		ImageKey: spec.Image,
		Width:    spec.Width,
		Height:   spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("unit: add sprite: %w", err)
	}
	if err := ecs.Add(w, unit, component.TransformComponent.Kind(), component.NewTransform(x, y, 0)); err != nil {
		return 0, fmt.Errorf("unit: add transform: %w", err)
	}
	if err := ecs.Add(w, unit, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
		return 0, fmt.Errorf("unit: add render layer: %w", err)
	}
	return unit, nil
}
