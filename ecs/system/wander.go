package system

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/toyrts/common"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
)

const DefaultWanderSpeed = 50.0

// WanderSystem jitters every unit by a freshly sampled random direction each
// frame. Nothing carries over between frames, so units shake in place rather
// than steer.
type WanderSystem struct {
	Speed float64

	rng *rand.Rand
}

func NewWanderSystem(speed float64, rng *rand.Rand) *WanderSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &WanderSystem{Speed: speed, rng: rng}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dist := s.Speed * w.DeltaTime()
	ecs.ForEach2(w, component.UnitComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Unit, t *component.Transform) {
		step := s.direction().Mult(dist)
		t.X += step.X
		t.Y += step.Y
	})
}

// direction samples x and y uniformly from [-1, 1) and normalizes.
func (s *WanderSystem) direction() cp.Vector {
	raw := cp.Vector{
		X: common.Lerp(-1.0, 1.0, s.rng.Float64()),
		Y: common.Lerp(-1.0, 1.0, s.rng.Float64()),
	}
	return common.NormalizeOrZero(raw)
}
