package entity

import (
	"fmt"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/prefabs"
)

// NewCamera creates the main camera: an orthographic projection at the
// prefab's scale, sized to the window, with an Input component the input
// system fills every frame.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.MainCameraTagComponent.Kind(), &component.MainCameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), component.NewTransform(0, 0, 0)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Projection:  component.ProjectionOrthographic,
		ScalingMode: component.ScalingWindowSize,
		Scale:       scale,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}

	return camera, nil
}
