package system

import (
	"testing"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
)

func TestInputSystemMapsActions(t *testing.T) {
	cases := []struct {
		name string
		keys heldKeys
		want component.Input
	}{
		{"none", heldKeys{}, component.Input{}},
		{"pan", heldKeys{ActionPanUp: true, ActionPanLeft: true}, component.Input{Up: true, Left: true}},
		{"zoom", heldKeys{ActionZoomIn: true, ActionZoomOut: true}, component.Input{ZoomIn: true, ZoomOut: true}},
		{"inspect_first_frame", heldKeys{ActionInspect: true}, component.Input{InspectPressed: true}},
		{"pause_not_routed", heldKeys{ActionPause: true}, component.Input{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cam := newTestCamera(t, w)
			NewInputSystem(c.keys).Update(w)

			got, _ := ecs.Get(w, cam, component.InputComponent.Kind())
			if *got != c.want {
				t.Fatalf("got %+v, want %+v", *got, c.want)
			}
		})
	}
}

func TestInputSystemInspectEdge(t *testing.T) {
	w := ecs.NewWorld()
	cam := newTestCamera(t, w)
	keys := heldKeys{ActionInspect: true}
	s := NewInputSystem(keys)

	s.Update(w)
	in, _ := ecs.Get(w, cam, component.InputComponent.Kind())
	if !in.InspectPressed {
		t.Fatal("expected press on first held frame")
	}
	s.Update(w)
	if in.InspectPressed {
		t.Fatal("held key must not re-trigger")
	}
	keys[ActionInspect] = false
	s.Update(w)
	keys[ActionInspect] = true
	s.Update(w)
	if !in.InspectPressed {
		t.Fatal("expected press after release")
	}
}

func TestInputSystemKeySourceFunc(t *testing.T) {
	w := ecs.NewWorld()
	cam := newTestCamera(t, w)
	NewInputSystem(KeySourceFunc(func(a Action) bool { return a == ActionPanRight })).Update(w)

	in, _ := ecs.Get(w, cam, component.InputComponent.Kind())
	if !in.Right || in.Left || in.Up || in.Down {
		t.Fatalf("unexpected input %+v", *in)
	}
}
