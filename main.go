package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/toyrts/config"
	"github.com/milk9111/toyrts/logging"
	"github.com/milk9111/toyrts/prefabs"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse("toyrts", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	spec, err := prefabs.LoadSceneSpec(cfg.Scene)
	if err != nil {
		logger.Error("failed to load scene prefab", zap.String("scene", cfg.Scene), zap.Error(err))
		return 1
	}

	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)
	if spec.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}

	game, err := NewGame(cfg, spec, logger, os.Stdout)
	if err != nil {
		logger.Error("failed to initialize scene", zap.Error(err))
		return 1
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited with error", zap.Error(err))
		return 1
	}
	return 0
}
