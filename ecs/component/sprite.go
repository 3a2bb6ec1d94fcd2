package component

// Sprite references an image in the asset registry by key. Width and Height
// are the on-screen size in world units; zero means the image's native size.
type Sprite struct {
	ImageKey string
	Width    float64
	Height   float64
}

var SpriteComponent = NewComponent[Sprite]()
