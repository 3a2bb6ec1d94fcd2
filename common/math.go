package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

type Float interface {
	~float32 | ~float64
}

func Lerp[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeOrZero returns v scaled to unit length, or the zero vector when v
// has no length.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// BBFromCenterSize returns the axis-aligned box centred on c with the given
// full width and height.
func BBFromCenterSize(c cp.Vector, w, h float64) cp.BB {
	hw, hh := w/2, h/2
	return cp.BB{L: c.X - hw, B: c.Y - hh, R: c.X + hw, T: c.Y + hh}
}
