package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestViewRoundTrip(t *testing.T) {
	views := []View{
		{Width: 1600, Height: 900, Scale: 1},
		{X: 300, Y: -120, Width: 1600, Height: 900, Scale: 0.1},
		{X: -50, Y: 75, Width: 800, Height: 600, Scale: math.Pi / 2},
	}
	points := [][2]float64{{0, 0}, {2000, 2000}, {-13.5, 42}}
	for _, v := range views {
		for _, p := range points {
			sx, sy := v.WorldToScreen(p[0], p[1])
			x, y := v.ScreenToWorld(sx, sy)
			if math.Abs(x-p[0]) > 1e-9 || math.Abs(y-p[1]) > 1e-9 {
				t.Fatalf("view %+v: %v -> (%v, %v) -> (%v, %v)", v, p, sx, sy, x, y)
			}
		}
	}
}

func TestViewOrientation(t *testing.T) {
	v := View{X: 10, Y: 10, Width: 1600, Height: 900, Scale: 2}
	sx, sy := v.WorldToScreen(10, 10)
	if sx != 800 || sy != 450 {
		t.Fatalf("camera position should map to screen centre, got (%v, %v)", sx, sy)
	}
	_, above := v.WorldToScreen(10, 20)
	if above >= sy {
		t.Fatalf("higher world y should be higher on screen (smaller y), got %v", above)
	}
	rx, _ := v.WorldToScreen(30, 10)
	if rx != 810 {
		t.Fatalf("20 world units at scale 2 should be 10 pixels, got %v", rx-800)
	}
}

func TestViewVisible(t *testing.T) {
	v := View{Width: 1600, Height: 900}
	want := cp.BB{L: -800, B: -450, R: 800, T: 450}
	if got := v.Visible(); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
