package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toyrts/common"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
)

type RenderSystem struct {
	assets     *Registry
	filter     ebiten.Filter
	background color.Color

	drawn int
}

func NewRenderSystem(assets *Registry, filter ebiten.Filter, background color.Color) *RenderSystem {
	return &RenderSystem{assets: assets, filter: filter, background: background}
}

// ParseFilter maps a prefab filter name to an ebiten filter.
func ParseFilter(name string) ebiten.Filter {
	if name == "linear" {
		return ebiten.FilterLinear
	}
	return ebiten.FilterNearest
}

// View returns the main camera's view for a screen of the given size. With no
// usable camera it looks at the origin at scale 1.
func View(w *ecs.World, width, height float64) common.View {
	v := common.View{Scale: 1, Width: width, Height: height}
	cam, err := ecs.Single(w, component.MainCameraTagComponent.Kind())
	if err != nil {
		return v
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		v.X, v.Y = t.X, t.Y
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Scale > 0 {
		v.Scale = c.Scale
	}
	return v
}

// Drawn returns how many entities the last Draw call rendered.
func (r *RenderSystem) Drawn() int {
	return r.drawn
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.background != nil {
		screen.Fill(r.background)
	}

	b := screen.Bounds()
	view := View(w, float64(b.Dx()), float64(b.Dy()))
	visible := view.Visible()

	entities := w.Query(component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(w, entities[i]), layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	r.drawn = 0
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if r.drawSprite(screen, view, visible, t, s) {
				r.drawn++
			}
			continue
		}
		if m, ok := ecs.Get(w, e, component.MarkerComponent.Kind()); ok {
			r.drawMarker(screen, view, t, m)
			r.drawn++
		}
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, view common.View, visible cp.BB, t *component.Transform, s *component.Sprite) bool {
	a, ok := r.assets.Get(s.ImageKey)
	if !ok || a.Image == nil || a.Width == 0 || a.Height == 0 {
		return false
	}

	imgW, imgH := float64(a.Width), float64(a.Height)
	dstW, dstH := s.Width, s.Height
	if dstW == 0 {
		dstW = imgW
	}
	if dstH == 0 {
		dstH = imgH
	}
	sx := t.ScaleX
	if sx == 0 {
		sx = 1
	}
	sy := t.ScaleY
	if sy == 0 {
		sy = 1
	}
	dstW *= sx
	dstH *= sy

	if !visible.Intersects(common.BBFromCenterSize(cp.Vector{X: t.X, Y: t.Y}, dstW, dstH)) {
		return false
	}

	zoom := 1 / view.Scale
	screenX, screenY := view.WorldToScreen(t.X, t.Y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-imgW/2, -imgH/2)
	op.GeoM.Scale(dstW/imgW*zoom, dstH/imgH*zoom)
	// World rotation is counter-clockwise with y up; screen y points down.
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Translate(screenX, screenY)
	op.Filter = r.filter

	screen.DrawImage(a.Image, op)
	return true
}

func (r *RenderSystem) drawMarker(screen *ebiten.Image, view common.View, t *component.Transform, m *component.Marker) {
	if m.Radius <= 0 {
		return
	}
	clr := m.Color
	if clr == nil {
		clr = color.White
	}
	x, y := view.WorldToScreen(t.X, t.Y)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(m.Radius/view.Scale), clr, true)
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
