package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneFile is the default scene prefab name.
const SceneFile = "scene.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SceneSpec struct {
	Name   string     `yaml:"name"`
	Window WindowSpec `yaml:"window"`
	Camera CameraSpec `yaml:"camera"`
	Marker MarkerSpec `yaml:"marker"`
	Units  UnitSpec   `yaml:"units"`
	Grid   GridSpec   `yaml:"grid"`
	Keys   KeySpec    `yaml:"keys"`
}

type WindowSpec struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Resizable  bool       `yaml:"resizable"`
	Filter     string     `yaml:"filter"`
	Background *YAMLColor `yaml:"background"`
}

type CameraSpec struct {
	Scale     float64 `yaml:"scale"`
	MoveSpeed float64 `yaml:"move_speed"`
	ZoomStep  float64 `yaml:"zoom_step"`
	MinScale  float64 `yaml:"min_scale"`
	MaxScale  float64 `yaml:"max_scale"`
}

type MarkerSpec struct {
	Radius      float64    `yaml:"radius"`
	Color       *YAMLColor `yaml:"color"`
	RenderLayer int        `yaml:"render_layer"`
}

type UnitSpec struct {
	Image        string  `yaml:"image"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WanderSpeed  float64 `yaml:"wander_speed"`
	TimerSeconds float64 `yaml:"timer_seconds"`
	RenderLayer  int     `yaml:"render_layer"`
}

// GridSpec lays units out at origin + index*spacing + jitter on both axes,
// with jitter drawn from [JitterMin, JitterMax).
type GridSpec struct {
	Columns   int     `yaml:"columns"`
	Rows      int     `yaml:"rows"`
	Spacing   float64 `yaml:"spacing"`
	Origin    float64 `yaml:"origin"`
	JitterMin float64 `yaml:"jitter_min"`
	JitterMax float64 `yaml:"jitter_max"`
}

// KeySpec names keys the way ebiten.Key prints them ("W", "Minus", ...).
type KeySpec struct {
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	ZoomOut string `yaml:"zoom_out"`
	ZoomIn  string `yaml:"zoom_in"`
	Inspect string `yaml:"inspect"`
	Pause   string `yaml:"pause"`
}

// DefaultSceneSpec mirrors the embedded scene.yaml.
func DefaultSceneSpec() SceneSpec {
	return SceneSpec{
		Name: "toy_rts",
		Window: WindowSpec{
			Title:      "Toy RTS Camera And Units System",
			Width:      1600,
			Height:     900,
			Filter:     "nearest",
			Background: &YAMLColor{Color: color.NRGBA{A: 0xff}},
		},
		Camera: CameraSpec{
			Scale:     1,
			MoveSpeed: 200,
			ZoomStep:  0.01,
			MinScale:  0.1,
			MaxScale:  math.Pi / 2,
		},
		Marker: MarkerSpec{
			Radius:      5,
			Color:       &YAMLColor{Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
			RenderLayer: 1,
		},
		Units: UnitSpec{
			Image:        "uam_riflemen_idle_s.png",
			Width:        200,
			Height:       200,
			WanderSpeed:  50,
			TimerSeconds: 2,
		},
		Grid: GridSpec{
			Columns:   20,
			Rows:      20,
			Spacing:   -200,
			Origin:    2000,
			JitterMin: 50,
			JitterMax: 140,
		},
		Keys: KeySpec{
			Up:      "W",
			Down:    "S",
			Left:    "A",
			Right:   "D",
			ZoomOut: "Minus",
			ZoomIn:  "Equal",
			Inspect: "I",
			Pause:   "Escape",
		},
	}
}

// LoadSceneSpec reads a scene prefab and checks it.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	if filename == "" {
		filename = SceneFile
	}
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate rejects specs the scene cannot be built from.
func (s *SceneSpec) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Camera.MinScale <= 0 || s.Camera.MinScale > s.Camera.MaxScale {
		errs = append(errs, fmt.Errorf("camera scale bounds [%g, %g] are invalid", s.Camera.MinScale, s.Camera.MaxScale))
	}
	if s.Camera.MoveSpeed < 0 || s.Camera.ZoomStep < 0 {
		errs = append(errs, errors.New("camera speeds must not be negative"))
	}
	if s.Units.Image == "" {
		errs = append(errs, errors.New("units.image is required"))
	}
	if s.Units.WanderSpeed < 0 {
		errs = append(errs, errors.New("units.wander_speed must not be negative"))
	}
	if s.Grid.Columns < 0 || s.Grid.Rows < 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d must not be negative", s.Grid.Columns, s.Grid.Rows))
	}
	if s.Grid.JitterMin > s.Grid.JitterMax {
		errs = append(errs, fmt.Errorf("grid jitter [%g, %g) is inverted", s.Grid.JitterMin, s.Grid.JitterMax))
	}
	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns c's colour, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
