package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/toyrts/config"
	"github.com/milk9111/toyrts/ecs"
	"github.com/milk9111/toyrts/ecs/component"
	"github.com/milk9111/toyrts/ecs/entity"
	"github.com/milk9111/toyrts/ecs/render"
	"github.com/milk9111/toyrts/ecs/system"
	"github.com/milk9111/toyrts/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	cfg    config.Config
	spec   *prefabs.SceneSpec
	logger *zap.Logger

	world     *ecs.World
	scene     entity.Scene
	scheduler *ecs.Scheduler
	keyboard  *render.Keyboard
	renderer  *render.RenderSystem

	cameraMove *system.CameraMoveSystem
	zoom       *system.ZoomSystem
	wander     *system.WanderSystem

	watcher *prefabs.Watcher
	ui      *ebitenui.UI
	paused  bool
}

// NewGame loads the unit image, prints the banner to out and spawns the
// scene. A missing image is returned as an error.
func NewGame(cfg config.Config, spec *prefabs.SceneSpec, logger *zap.Logger, out io.Writer) (*Game, error) {
	registry := render.NewRegistry()
	if _, err := registry.LoadImage(spec.Units.Image, cfg.AssetDir); err != nil {
		return nil, fmt.Errorf("load unit image: %w", err)
	}

	keyboard, err := render.NewKeyboard(spec.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	if err := entity.WriteBanner(out, spec.Window.Title); err != nil {
		return nil, fmt.Errorf("write banner: %w", err)
	}

	rng := newRand(cfg.Seed)
	world := ecs.NewWorld()
	scene, err := entity.SpawnScene(world, spec, registry, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		spec:       spec,
		logger:     logger,
		world:      world,
		scene:      scene,
		keyboard:   keyboard,
		renderer:   render.NewRenderSystem(registry, render.ParseFilter(spec.Window.Filter), spec.Window.Background.ColorOr(nil)),
		cameraMove: system.NewCameraMoveSystem(spec.Camera.MoveSpeed, logger),
		zoom:       system.NewZoomSystem(spec.Camera.ZoomStep, spec.Camera.MinScale, spec.Camera.MaxScale, logger),
		wander:     system.NewWanderSystem(spec.Units.WanderSpeed, rng),
	}
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(keyboard),
		g.cameraMove,
		g.zoom,
		system.NewSpriteBoundsSystem(registry, logger),
		g.wander,
	)
	g.ui = NewPauseUI(g)

	logger.Info("scene spawned",
		zap.Int("units", len(scene.Units)),
		zap.Stringer("camera", scene.Camera),
		zap.Uint64("seed", cfg.Seed),
	)

	if cfg.Watch {
		g.startWatcher()
	}
	return g, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (g *Game) startWatcher() {
	dir := filepath.Dir(prefabs.DiskPath(g.cfg.Scene))
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		g.logger.Debug("prefab directory not on disk, hot reload disabled", zap.String("dir", dir))
		return
	}
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		g.logger.Warn("prefab watcher failed to start", zap.Error(err))
		return
	}
	g.watcher = w
	g.logger.Info("watching prefabs", zap.String("dir", dir))
}

func (g *Game) Update() error {
	g.pollWatcher()

	if g.keyboard.JustPressed(system.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Step(g.world, 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) != filepath.Base(g.cfg.Scene) {
				continue
			}
			g.reload()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload() {
	spec, err := prefabs.LoadSceneSpec(g.cfg.Scene)
	if err != nil {
		g.logger.Warn("scene reload failed, keeping current tuning", zap.Error(err))
		return
	}
	g.applyTuning(spec)
	g.logger.Info("scene tuning reloaded",
		zap.Float64("move_speed", spec.Camera.MoveSpeed),
		zap.Float64("zoom_step", spec.Camera.ZoomStep),
		zap.Float64("wander_speed", spec.Units.WanderSpeed),
	)
}

// applyTuning copies the live-tunable values of spec into the running
// systems. Grid and window settings only take effect on restart.
func (g *Game) applyTuning(spec *prefabs.SceneSpec) {
	g.cameraMove.Speed = spec.Camera.MoveSpeed
	g.zoom.Step = spec.Camera.ZoomStep
	g.zoom.MinScale = spec.Camera.MinScale
	g.zoom.MaxScale = spec.Camera.MaxScale
	g.wander.Speed = spec.Units.WanderSpeed
	g.spec.Camera = spec.Camera
	g.spec.Units.WanderSpeed = spec.Units.WanderSpeed
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS())
	if t, ok := ecs.Get(g.world, g.scene.Camera, component.TransformComponent.Kind()); ok {
		msg += fmt.Sprintf("\nCamera: (%.1f, %.1f)", t.X, t.Y)
	}
	if c, ok := ecs.Get(g.world, g.scene.Camera, component.CameraComponent.Kind()); ok {
		msg += fmt.Sprintf("\nZoom: %.2f", c.Scale)
	}
	msg += fmt.Sprintf("\nUnits: %d", len(g.scene.Units))
	if g.cfg.Debug {
		msg += fmt.Sprintf("\nDrawn: %d  Frame: %d", g.renderer.Drawn(), g.world.Frame())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.Window.Width, g.spec.Window.Height
}

// Close stops the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
