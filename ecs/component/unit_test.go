package component

import (
	"math"
	"testing"
)

func TestTimerTick(t *testing.T) {
	cases := []struct {
		name     string
		timer    Timer
		ticks    []float64
		fired    []bool
		finished bool
	}{
		{
			name:  "repeating_wraps",
			timer: NewTimer(2, TimerRepeating),
			ticks: []float64{1, 0.5, 0.75, 2, 0.25},
			fired: []bool{false, false, true, true, false},
		},
		{
			name:     "once_fires_once",
			timer:    NewTimer(1, TimerOnce),
			ticks:    []float64{0.6, 0.6, 5},
			fired:    []bool{false, true, false},
			finished: true,
		},
		{
			name:  "zero_duration_never_fires",
			timer: NewTimer(0, TimerRepeating),
			ticks: []float64{1, 1},
			fired: []bool{false, false},
		},
		{
			name:  "negative_dt_ignored",
			timer: NewTimer(1, TimerOnce),
			ticks: []float64{-3},
			fired: []bool{false},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			timer := c.timer
			for i, dt := range c.ticks {
				if got := timer.Tick(dt); got != c.fired[i] {
					t.Fatalf("tick %d (dt=%v): fired=%v, want %v", i, dt, got, c.fired[i])
				}
			}
			if timer.Finished() != c.finished {
				t.Fatalf("finished=%v, want %v", timer.Finished(), c.finished)
			}
			if timer.Elapsed < 0 || timer.Elapsed > math.Max(timer.Duration, 0) {
				t.Fatalf("elapsed %v outside [0, %v]", timer.Elapsed, timer.Duration)
			}
		})
	}
}

func TestComponentKindsAreDistinct(t *testing.T) {
	ids := map[ComponentID]string{}
	for name, id := range map[string]ComponentID{
		"transform": TransformComponent.Kind().ID(),
		"sprite":    SpriteComponent.Kind().ID(),
		"camera":    CameraComponent.Kind().ID(),
		"main_cam":  MainCameraTagComponent.Kind().ID(),
		"input":     InputComponent.Kind().ID(),
		"unit":      UnitComponent.Kind().ID(),
		"marker":    MarkerComponent.Kind().ID(),
		"layer":     RenderLayerComponent.Kind().ID(),
	} {
		if id == 0 {
			t.Fatalf("%s has an invalid id", name)
		}
		if other, dup := ids[id]; dup {
			t.Fatalf("%s and %s share id %d", name, other, id)
		}
		ids[id] = name
	}
}
