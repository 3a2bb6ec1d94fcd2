package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 50, 140, 0, 50},
		{"end", 50, 140, 1, 140},
		{"mid", 50, 140, 0.5, 95},
		{"negative_range", -1, 1, 0.25, -0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(cp.Vector{}); got != (cp.Vector{}) {
		t.Fatalf("zero vector should stay zero, got %v", got)
	}
	got := NormalizeOrZero(cp.Vector{X: 3, Y: 4})
	if math.Abs(got.Length()-1) > 1e-12 {
		t.Fatalf("expected unit length, got %v", got.Length())
	}
	if math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Fatalf("unexpected direction %v", got)
	}
}

func TestBBFromCenterSize(t *testing.T) {
	bb := BBFromCenterSize(cp.Vector{X: 10, Y: -20}, 768, 384)
	want := cp.BB{L: -374, B: -212, R: 394, T: 172}
	if bb != want {
		t.Fatalf("got %+v, want %+v", bb, want)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0.1, math.Pi/2); got != math.Pi/2 {
		t.Fatalf("expected upper bound, got %v", got)
	}
	if got := Clamp(-1, 0.1, 2); got != 0.1 {
		t.Fatalf("expected lower bound, got %v", got)
	}
}
