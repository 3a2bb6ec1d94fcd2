package render

import "github.com/hajimehoshi/ebiten/v2"

// Asset is a loaded image and its native pixel size. Image may be nil for
// size-only entries registered by headless tools.
type Asset struct {
	Image  *ebiten.Image
	Width  int
	Height int
}

// Registry is the asset table sprites refer to by key.
type Registry struct {
	images map[string]Asset
}

func NewRegistry() *Registry {
	return &Registry{images: make(map[string]Asset)}
}

// RegisterImage stores an image by key.
func (r *Registry) RegisterImage(key string, img *ebiten.Image) {
	if r == nil || key == "" || img == nil {
		return
	}
	b := img.Bounds()
	r.images[key] = Asset{Image: img, Width: b.Dx(), Height: b.Dy()}
}

// RegisterSize records an image's size without a GPU image.
func (r *Registry) RegisterSize(key string, width, height int) {
	if r == nil || key == "" {
		return
	}
	r.images[key] = Asset{Width: width, Height: height}
}

// Get returns the asset stored under key.
func (r *Registry) Get(key string) (Asset, bool) {
	if r == nil || key == "" {
		return Asset{}, false
	}
	a, ok := r.images[key]
	return a, ok
}

// ImageSize reports the native size of the image under key.
func (r *Registry) ImageSize(key string) (float64, float64, bool) {
	a, ok := r.Get(key)
	if !ok {
		return 0, 0, false
	}
	return float64(a.Width), float64(a.Height), true
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.images)
}
