// Package config holds process settings. Values come from the environment
// first and command-line flags second.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/toyrts/logging"
	"github.com/milk9111/toyrts/prefabs"
)

type Config struct {
	LogLevel  string `env:"RTS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RTS_LOG_FORMAT" envDefault:"console"`
	AssetDir  string `env:"RTS_ASSET_DIR" envDefault:"assets"`
	Scene     string `env:"RTS_SCENE" envDefault:"scene.yaml"`
	Seed      uint64 `env:"RTS_SEED"`
	Debug     bool   `env:"RTS_DEBUG"`
	Watch     bool   `env:"RTS_WATCH" envDefault:"true"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Scene == "" {
		cfg.Scene = prefabs.SceneFile
	}
	return cfg, nil
}

// RegisterFlags binds flags to c, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.LogLevel, "level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log encoding (console or json)")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "directory checked for images before the embedded copies")
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene prefab file (name under prefabs/ or absolute path)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed; 0 picks one from the clock")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "development logging and HUD")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload scene tuning when the prefab changes on disk")
}

// Parse loads the environment and then applies args as flags.
func Parse(name string, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat, Development: c.Debug}
}
