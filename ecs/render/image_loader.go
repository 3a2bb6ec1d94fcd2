package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/toyrts/assets"
)

// LoadImage loads an image from dir or the embedded assets and caches it
// under key. Loading an already cached key is a no-op.
func (r *Registry) LoadImage(key, dir string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("load image: empty key")
	}
	if a, ok := r.Get(key); ok && a.Image != nil {
		return a.Image, nil
	}
	src, err := assets.DecodeImage(key, dir)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	img := ebiten.NewImageFromImage(src)
	r.RegisterImage(key, img)
	return img, nil
}

// LoadSize registers only the size of an image, for runs without a window.
func (r *Registry) LoadSize(key, dir string) error {
	w, h, err := assets.DecodeImageSize(key, dir)
	if err != nil {
		return fmt.Errorf("load image size: %w", err)
	}
	r.RegisterSize(key, w, h)
	return nil
}
