package system

import (
	"testing"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const frameDT = 1.0 / 60.0

func newTestCamera(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.MainCameraTagComponent.Kind(), &component.MainCameraTag{}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, cam, component.TransformComponent.Kind(), component.NewTransform(0, 0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Projection: component.ProjectionOrthographic, Scale: 1}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, cam, component.InputComponent.Kind(), &component.Input{}); err != nil {
		t.Fatal(err)
	}
	return cam
}

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, in component.Input) {
	t.Helper()
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatal("entity has no input")
	}
	*input = in
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// heldKeys is a KeySource backed by a set the test mutates between frames.
type heldKeys map[Action]bool

func (k heldKeys) Pressed(a Action) bool {
	return k[a]
}
