package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toyrts/common"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/logging"
	"go.uber.org/zap"
)

const (
	DefaultCameraSpeed = 200.0
	DefaultZoomStep    = 0.01
	DefaultMinScale    = 0.1
	DefaultMaxScale    = 1.5707963267948966 // pi/2
)

// mainCamera resolves the single MainCameraTag entity each frame. It logs
// once when the camera goes missing and once when it comes back, so a broken
// scene does not flood the log at 60 lines a second.
type mainCamera struct {
	system  string
	logger  *zap.Logger
	missing bool
}

func (c *mainCamera) find(w *ecs.World) (ecs.Entity, bool) {
	e, err := ecs.Single(w, component.MainCameraTagComponent.Kind())
	if err != nil {
		if !c.missing {
			c.logger.Warn("main camera unavailable", zap.String("system", c.system), zap.Error(err))
			c.missing = true
		}
		return 0, false
	}
	if c.missing {
		c.logger.Info("main camera available", zap.String("system", c.system), zap.Stringer("entity", e))
		c.missing = false
	}
	return e, true
}

// CameraMoveSystem pans the main camera from held direction keys at a fixed
// speed in world units per second. Diagonals are normalized.
type CameraMoveSystem struct {
	Speed float64

	camera mainCamera
}

func NewCameraMoveSystem(speed float64, logger *zap.Logger) *CameraMoveSystem {
	return &CameraMoveSystem{
		Speed:  speed,
		camera: mainCamera{system: "camera_move", logger: logging.OrNop(logger)},
	}
}

func (s *CameraMoveSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam, ok := s.camera.find(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, cam, component.InputComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, cam, component.TransformComponent.Kind())
	if !ok {
		return
	}

	dir := PanIntent(input)
	if dir == (cp.Vector{}) {
		return
	}
	step := common.NormalizeOrZero(dir).Mult(s.Speed * w.DeltaTime())
	transform.X += step.X
	transform.Y += step.Y
}

// PanIntent combines held direction keys into a raw (unnormalized) vector.
// Y is up.
func PanIntent(input *component.Input) cp.Vector {
	var dir cp.Vector
	if input == nil {
		return dir
	}
	if input.Up {
		dir.Y += 1
	}
	if input.Down {
		dir.Y -= 1
	}
	if input.Left {
		dir.X -= 1
	}
	if input.Right {
		dir.X += 1
	}
	return dir
}

// ZoomSystem nudges the main camera's orthographic scale by Step per frame
// while a zoom key is held, then clamps it to [MinScale, MaxScale].
type ZoomSystem struct {
	Step     float64
	MinScale float64
	MaxScale float64

	camera mainCamera
}

func NewZoomSystem(step, minScale, maxScale float64, logger *zap.Logger) *ZoomSystem {
	return &ZoomSystem{
		Step:     step,
		MinScale: minScale,
		MaxScale: maxScale,
		camera:   mainCamera{system: "zoom", logger: logging.OrNop(logger)},
	}
}

func (s *ZoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	cam, ok := s.camera.find(w)
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
	if !ok || camera.Projection != component.ProjectionOrthographic {
		return
	}
	input, ok := ecs.Get(w, cam, component.InputComponent.Kind())
	if !ok {
		return
	}

	if input.ZoomOut {
		camera.Scale += s.Step
	}
	if input.ZoomIn {
		camera.Scale -= s.Step
	}
	camera.Scale = common.Clamp(camera.Scale, s.MinScale, s.MaxScale)
}
