package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSceneMatchesDefaults(t *testing.T) {
	spec, err := LoadSceneSpec(SceneFile)
	if err != nil {
		t.Fatalf("load embedded scene: %v", err)
	}
	want := DefaultSceneSpec()
	if !reflect.DeepEqual(*spec, want) {
		t.Fatalf("embedded scene differs from defaults:\n got %+v\nwant %+v", *spec, want)
	}
}

func TestDefaultSceneSpecValid(t *testing.T) {
	spec := DefaultSceneSpec()
	if err := spec.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneSpec)
		want   string
	}{
		{"window", func(s *SceneSpec) { s.Window.Width = 0 }, "window size"},
		{"scale bounds", func(s *SceneSpec) { s.Camera.MinScale = 2 }, "camera scale bounds"},
		{"zero min scale", func(s *SceneSpec) { s.Camera.MinScale = 0 }, "camera scale bounds"},
		{"negative speed", func(s *SceneSpec) { s.Camera.MoveSpeed = -1 }, "camera speeds"},
		{"image", func(s *SceneSpec) { s.Units.Image = "" }, "units.image"},
		{"wander", func(s *SceneSpec) { s.Units.WanderSpeed = -5 }, "wander_speed"},
		{"grid", func(s *SceneSpec) { s.Grid.Rows = -1 }, "grid"},
		{"jitter", func(s *SceneSpec) { s.Grid.JitterMin = 200 }, "jitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultSceneSpec()
			tt.mutate(&spec)
			err := spec.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	spec := DefaultSceneSpec()
	spec.Window.Height = -1
	spec.Units.Image = ""
	err := spec.Validate()
	if err == nil || !strings.Contains(err.Error(), "window size") || !strings.Contains(err.Error(), "units.image") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestLoadSceneSpecAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.yaml")
	spec := DefaultSceneSpec()
	spec.Grid.Columns, spec.Grid.Rows = 2, 3
	spec.Window.Background, spec.Marker.Color = nil, nil
	data, err := yaml.Marshal(spec)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSceneSpec(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Grid.Columns != 2 || got.Grid.Rows != 3 {
		t.Fatalf("unexpected grid %+v", got.Grid)
	}
}

func TestLoadSceneSpecMissing(t *testing.T) {
	if _, err := LoadSceneSpec("does_not_exist.yaml"); err == nil {
		t.Fatal("expected error for missing prefab")
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff8000"`, want: color.NRGBA{R: 0xff, G: 0x80, A: 0xff}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `"#fff"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.Color != tt.want {
				t.Fatalf("got %v, want %v", c.Color, tt.want)
			}
		})
	}
}

func TestColorOr(t *testing.T) {
	fallback := color.NRGBA{R: 1, A: 0xff}
	var unset *YAMLColor
	if unset.ColorOr(fallback) != fallback {
		t.Fatal("nil color should use fallback")
	}
	set := &YAMLColor{Color: color.NRGBA{G: 2, A: 0xff}}
	if set.ColorOr(fallback) != set.Color {
		t.Fatal("set color should win")
	}
}

func TestDiskPath(t *testing.T) {
	if got := DiskPath("prefabs/scene.yaml"); got != filepath.Join(Dir, "scene.yaml") {
		t.Fatalf("unexpected disk path %q", got)
	}
	abs := filepath.Join(t.TempDir(), "x.yaml")
	if got := DiskPath(abs); got != abs {
		t.Fatalf("absolute path should be kept, got %q", got)
	}
}
