package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
)

// constSource always yields the same bits; 1<<52 makes Float64 return 0.5,
// which maps to 0 on [-1, 1).
type constSource uint64

func (c constSource) Uint64() uint64 { return uint64(c) }

func spawnTestUnits(t *testing.T, w *ecs.World, n int) []ecs.Entity {
	t.Helper()
	units := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.UnitComponent.Kind(), &component.Unit{Timer: component.NewTimer(2, component.TimerRepeating)}); err != nil {
			t.Fatal(err)
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(float64(i), float64(-i), 0)); err != nil {
			t.Fatal(err)
		}
		units = append(units, e)
	}
	return units
}

func TestWanderDisplacementMagnitude(t *testing.T) {
	w := ecs.NewWorld()
	units := spawnTestUnits(t, w, 400)
	s := NewWanderSystem(DefaultWanderSpeed, rand.New(rand.NewPCG(1, 2)))

	for frame := 0; frame < 10; frame++ {
		before := make([][2]float64, len(units))
		for i, e := range units {
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			before[i] = [2]float64{tr.X, tr.Y}
		}

		w.SetDeltaTime(frameDT)
		s.Update(w)

		for i, e := range units {
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			d := math.Hypot(tr.X-before[i][0], tr.Y-before[i][1])
			if math.Abs(d-DefaultWanderSpeed*frameDT) > 1e-9 {
				t.Fatalf("frame %d unit %d moved %v, want %v", frame, i, d, DefaultWanderSpeed*frameDT)
			}
		}
	}
}

func TestWanderZeroDirection(t *testing.T) {
	w := ecs.NewWorld()
	units := spawnTestUnits(t, w, 3)
	s := NewWanderSystem(DefaultWanderSpeed, rand.New(constSource(1<<52)))

	w.SetDeltaTime(frameDT)
	s.Update(w)

	for i, e := range units {
		tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if tr.X != float64(i) || tr.Y != float64(-i) {
			t.Fatalf("unit %d moved with zero direction: (%v, %v)", i, tr.X, tr.Y)
		}
	}
}

func TestWanderSkipsNonUnits(t *testing.T) {
	w := ecs.NewWorld()
	cam := newTestCamera(t, w)
	spawnTestUnits(t, w, 2)

	w.SetDeltaTime(frameDT)
	NewWanderSystem(DefaultWanderSpeed, nil).Update(w)

	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if tr.X != 0 || tr.Y != 0 {
		t.Fatalf("camera should not wander, got (%v, %v)", tr.X, tr.Y)
	}
}

func TestWanderLeavesTimersAlone(t *testing.T) {
	w := ecs.NewWorld()
	units := spawnTestUnits(t, w, 1)
	s := NewWanderSystem(DefaultWanderSpeed, nil)
	for i := 0; i < 120; i++ {
		w.SetDeltaTime(frameDT)
		s.Update(w)
	}
	unit, _ := ecs.Get(w, units[0], component.UnitComponent.Kind())
	if unit.Timer.Elapsed != 0 || unit.MovementTimer != 0 {
		t.Fatalf("wander should not touch unit timers: %+v", unit)
	}
}
