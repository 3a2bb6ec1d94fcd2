// Profiling:
// go build ./cmd/wanderbench
// ./wanderbench -frames 20000 -mode cpu
// go tool pprof -http=":8000" ./wanderbench cpu.pprof

package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/entity"
	"github.com/milk9111/toyrts/ecs/render"
	"github.com/milk9111/toyrts/ecs/system"
	"github.com/milk9111/toyrts/logging"
	"github.com/milk9111/toyrts/prefabs"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

// heldKeys presses every pan and zoom key, plus inspect every 600th frame.
type heldKeys struct {
	frame *int
}

func (k heldKeys) Pressed(a system.Action) bool {
	switch a {
	case system.ActionPanUp, system.ActionPanRight, system.ActionZoomOut:
		return true
	case system.ActionInspect:
		return *k.frame%600 == 0
	}
	return false
}

func main() {
	frames := flag.Int("frames", 10000, "frames to simulate")
	mode := flag.String("mode", "cpu", "profile mode: cpu, mem or none")
	seed := flag.Uint64("seed", 1, "random seed")
	scene := flag.String("scene", prefabs.SceneFile, "scene prefab")
	assetDir := flag.String("assets", "assets", "directory checked before the embedded images")
	level := flag.String("level", "warn", "log level")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: *level})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	var p interface{ Stop() }
	switch *mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	}

	elapsed, err := run(*scene, *assetDir, *seed, *frames, logger)
	if p != nil {
		p.Stop()
	}
	if err != nil {
		logger.Error("bench failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Warn("bench finished",
		zap.Int("frames", *frames),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_frame", elapsed/time.Duration(max(*frames, 1))),
	)
}

func run(sceneFile, assetDir string, seed uint64, frames int, logger *zap.Logger) (time.Duration, error) {
	spec, err := prefabs.LoadSceneSpec(sceneFile)
	if err != nil {
		return 0, err
	}
	// Sizes only: no GPU images are created without a window.
	sizes := render.NewRegistry()
	if err := sizes.LoadSize(spec.Units.Image, assetDir); err != nil {
		return 0, fmt.Errorf("unit image: %w", err)
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	world := ecs.NewWorld()
	if _, err := entity.SpawnScene(world, spec, sizes, rng); err != nil {
		return 0, err
	}

	frame := 0
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(heldKeys{frame: &frame}),
		system.NewCameraMoveSystem(spec.Camera.MoveSpeed, logger),
		system.NewZoomSystem(spec.Camera.ZoomStep, spec.Camera.MinScale, spec.Camera.MaxScale, logger),
		system.NewSpriteBoundsSystem(sizes, logger),
		system.NewWanderSystem(spec.Units.WanderSpeed, rng),
	)

	const dt = 1.0 / 60
	start := time.Now()
	for frame = 1; frame <= frames; frame++ {
		scheduler.Step(world, dt)
	}
	return time.Since(start), nil
}
