package common

import "github.com/jakecoffman/cp"

// View is an orthographic camera looking at (X, Y) in y-up world space,
// drawn onto a Width x Height screen whose y axis points down. Scale is the
// number of world units per screen pixel.
type View struct {
	X, Y          float64
	Scale         float64
	Width, Height float64
}

func (v View) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// WorldToScreen maps a world point to screen pixels.
func (v View) WorldToScreen(x, y float64) (float64, float64) {
	s := v.scale()
	return (x-v.X)/s + v.Width/2, -(y-v.Y)/s + v.Height/2
}

// ScreenToWorld is the inverse of WorldToScreen.
func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	s := v.scale()
	return (sx-v.Width/2)*s + v.X, -(sy-v.Height/2)*s + v.Y
}

// Visible is the world-space box covered by the screen.
func (v View) Visible() cp.BB {
	s := v.scale()
	return BBFromCenterSize(cp.Vector{X: v.X, Y: v.Y}, v.Width*s, v.Height*s)
}
