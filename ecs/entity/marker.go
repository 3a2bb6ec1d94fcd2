package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/prefabs"
	"golang.org/x/image/colornames"
)

// NewOriginMarker puts a small filled circle at the world origin so the
// camera position can be judged while debugging.
func NewOriginMarker(w *ecs.World, spec prefabs.MarkerSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("marker: world is nil")
	}

	radius := spec.Radius
	if radius <= 0 {
		radius = 5
	}
	var clr color.Color = colornames.White
	clr = spec.Color.ColorOr(clr)

	marker := ecs.CreateEntity(w)
	if err := ecs.Add(w, marker, component.TransformComponent.Kind(), component.NewTransform(0, 0, 0)); err != nil {
		return 0, fmt.Errorf("marker: add transform: %w", err)
	}
	if err := ecs.Add(w, marker, component.MarkerComponent.Kind(), &component.Marker{Radius: radius, Color: clr}); err != nil {
		return 0, fmt.Errorf("marker: add marker: %w", err)
	}
	if err := ecs.Add(w, marker, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.RenderLayer}); err != nil {
		return 0, fmt.Errorf("marker: add render layer: %w", err)
	}
	return marker, nil
}
