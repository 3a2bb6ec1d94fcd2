package entity

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/milk9111/toyrts/common"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/system"
	"github.com/milk9111/toyrts/prefabs"
)

// ErrMissingAsset is returned when the unit image is not in the asset table.
var ErrMissingAsset = errors.New("scene: unit image not loaded")

// Scene lists what SpawnScene created.
type Scene struct {
	Camera ecs.Entity
	Marker ecs.Entity
	Units  []ecs.Entity
}

// WriteBanner prints the startup banner.
func WriteBanner(out io.Writer, title string) error {
	rule := "0" + strings.Repeat("=", 62) + "0"
	_, err := fmt.Fprintf(out, "%s\n%s successfully run and initialized!\n%s\n", rule, title, rule)
	return err
}

// SpawnScene builds the camera, the origin marker and the unit grid. Unit
// (col, row) lands at origin + index*spacing plus an independent jitter on
// each axis drawn from [JitterMin, JitterMax).
func SpawnScene(w *ecs.World, spec *prefabs.SceneSpec, assets system.AssetTable, rng *rand.Rand) (Scene, error) {
	if w == nil || spec == nil {
		return Scene{}, fmt.Errorf("scene: world and spec are required")
	}
	if assets == nil {
		return Scene{}, fmt.Errorf("%w: %s", ErrMissingAsset, spec.Units.Image)
	}
	if _, _, ok := assets.ImageSize(spec.Units.Image); !ok {
		return Scene{}, fmt.Errorf("%w: %s", ErrMissingAsset, spec.Units.Image)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var (
		scene Scene
		err   error
	)
	if scene.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	if scene.Marker, err = NewOriginMarker(w, spec.Marker); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}

	g := spec.Grid
	scene.Units = make([]ecs.Entity, 0, g.Columns*g.Rows)
	for col := 0; col < g.Columns; col++ {
		for row := 0; row < g.Rows; row++ {
			x := float64(col)*g.Spacing + g.Origin + common.Lerp(g.JitterMin, g.JitterMax, rng.Float64())
			y := float64(row)*g.Spacing + g.Origin + common.Lerp(g.JitterMin, g.JitterMax, rng.Float64())
			unit, err := NewUnit(w, spec.Units, x, y)
			if err != nil {
				return Scene{}, fmt.Errorf("scene: unit (%d, %d): %w", col, row, err)
			}
			scene.Units = append(scene.Units, unit)
		}
	}
	return scene, nil
}
