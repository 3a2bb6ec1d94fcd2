package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

//go:embed *.png
var assetsFS embed.FS

// UnitImage is the sprite every unit in the default scene uses.
const UnitImage = "uam_riflemen_idle_s.png"

// ErrNotFound is returned when an asset is neither on disk nor embedded.
var ErrNotFound = errors.New("asset not found")

// LoadFile reads an asset, preferring dir on disk over the embedded copy.
// An empty dir skips the disk lookup.
func LoadFile(path, dir string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("load asset: empty path: %w", ErrNotFound)
	}
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile(clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load asset %q: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load asset %q: %w", path, err)
	}
	return b, nil
}

// DecodeImage loads and decodes an image asset.
func DecodeImage(path, dir string) (image.Image, error) {
	b, err := LoadFile(path, dir)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return img, nil
}

// DecodeImageSize returns an image asset's pixel size without decoding the
// pixels.
func DecodeImageSize(path, dir string) (width, height int, err error) {
	b, err := LoadFile(path, dir)
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return 0, 0, fmt.Errorf("decode config %q: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
