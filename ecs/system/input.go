package system

import (
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
)

// Action is a logical key binding.
type Action int

const (
	ActionPanUp Action = iota
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomOut
	ActionZoomIn
	ActionInspect
	ActionPause

	ActionCount
)

// KeySource reports whether the key bound to an action is held this frame.
type KeySource interface {
	Pressed(a Action) bool
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func(a Action) bool

func (f KeySourceFunc) Pressed(a Action) bool {
	return f(a)
}

// InputSystem samples the key source once per frame and writes the result to
// every Input component. Inspect is edge triggered: it is set only on the
// frame its key goes from released to held.
type InputSystem struct {
	keys        KeySource
	inspectHeld bool
}

func NewInputSystem(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.keys == nil {
		return
	}

	inspect := i.keys.Pressed(ActionInspect)
	sampled := component.Input{
		Up:             i.keys.Pressed(ActionPanUp),
		Down:           i.keys.Pressed(ActionPanDown),
		Left:           i.keys.Pressed(ActionPanLeft),
		Right:          i.keys.Pressed(ActionPanRight),
		ZoomOut:        i.keys.Pressed(ActionZoomOut),
		ZoomIn:         i.keys.Pressed(ActionZoomIn),
		InspectPressed: inspect && !i.inspectHeld,
	}
	i.inspectHeld = inspect

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = sampled
	})
}
