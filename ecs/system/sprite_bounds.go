package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toyrts/common"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AssetTable resolves a sprite's image key to its native pixel size.
type AssetTable interface {
	ImageSize(key string) (width, height float64, ok bool)
}

// SpriteBoundsSystem logs the geometry of every sprite on the frame the
// inspect key is pressed. It never mutates the world.
type SpriteBoundsSystem struct {
	assets AssetTable
	logger *zap.Logger
}

func NewSpriteBoundsSystem(assets AssetTable, logger *zap.Logger) *SpriteBoundsSystem {
	return &SpriteBoundsSystem{assets: assets, logger: logging.OrNop(logger)}
}

func (s *SpriteBoundsSystem) Update(w *ecs.World) {
	if w == nil || !inspectRequested(w) {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, sprite *component.Sprite) {
		var (
			imgW, imgH float64
			ok         bool
		)
		if s.assets != nil {
			imgW, imgH, ok = s.assets.ImageSize(sprite.ImageKey)
		}
		if !ok {
			s.logger.Warn("sprite image not loaded, skipping",
				zap.Stringer("entity", e),
				zap.String("image", sprite.ImageKey),
			)
			return
		}

		sx, sy := scaleOrOne(t)
		s.logger.Info("sprite bounds",
			zap.Stringer("entity", e),
			zap.Float64s("image_dimensions", []float64{imgW, imgH}),
			zap.Float64s("position", []float64{t.X, t.Y, t.Z}),
			zap.Float64s("scale", []float64{sx, sy}),
			zap.Float64s("scaled_size", []float64{imgW * sx, imgH * sy}),
			zap.Object("bounding_box", bbField(SpriteBounds(imgW, imgH, t))),
		)
	})
}

func inspectRequested(w *ecs.World) bool {
	requested := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		requested = requested || input.InspectPressed
	})
	return requested
}

// SpriteBounds is the axis-aligned box centred on the transform's position
// whose size is the image's native size times the transform's scale.
func SpriteBounds(imageW, imageH float64, t *component.Transform) cp.BB {
	sx, sy := scaleOrOne(t)
	return common.BBFromCenterSize(cp.Vector{X: t.X, Y: t.Y}, imageW*sx, imageH*sy)
}

// scaleOrOne treats an unset scale as 1, matching how sprites are drawn.
func scaleOrOne(t *component.Transform) (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

type bbField cp.BB

func (b bbField) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("min_x", b.L)
	enc.AddFloat64("min_y", b.B)
	enc.AddFloat64("max_x", b.R)
	enc.AddFloat64("max_y", b.T)
	return nil
}
