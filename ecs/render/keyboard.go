package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/toyrts/ecs/system"
	"github.com/milk9111/toyrts/prefabs"
)

var keyNames = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ParseKey resolves a key name as ebiten prints it ("W", "Minus", "Escape"),
// ignoring case.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// Keyboard polls ebiten for the keys bound to each action.
type Keyboard struct {
	bindings [system.ActionCount]ebiten.Key
}

func NewKeyboard(spec prefabs.KeySpec) (*Keyboard, error) {
	names := [system.ActionCount]string{
		system.ActionPanUp:    spec.Up,
		system.ActionPanDown:  spec.Down,
		system.ActionPanLeft:  spec.Left,
		system.ActionPanRight: spec.Right,
		system.ActionZoomOut:  spec.ZoomOut,
		system.ActionZoomIn:   spec.ZoomIn,
		system.ActionInspect:  spec.Inspect,
		system.ActionPause:    spec.Pause,
	}
	kb := &Keyboard{}
	for action, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("bind action %d: %w", action, err)
		}
		kb.bindings[action] = k
	}
	return kb, nil
}

func (k *Keyboard) Pressed(a system.Action) bool {
	if a < 0 || a >= system.ActionCount {
		return false
	}
	return ebiten.IsKeyPressed(k.bindings[a])
}

// JustPressed reports whether the action's key went down this tick.
func (k *Keyboard) JustPressed(a system.Action) bool {
	if a < 0 || a >= system.ActionCount {
		return false
	}
	return inpututil.IsKeyJustPressed(k.bindings[a])
}
