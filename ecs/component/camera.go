package component

// Projection selects how a camera maps world space to the screen.
type Projection int

const (
	ProjectionOrthographic Projection = iota
	ProjectionPerspective
)

func (p Projection) String() string {
	switch p {
	case ProjectionOrthographic:
		return "orthographic"
	case ProjectionPerspective:
		return "perspective"
	default:
		return "unknown"
	}
}

// ScalingMode controls how the orthographic area follows the window.
type ScalingMode int

const (
	// ScalingWindowSize maps one world unit to one window pixel at scale 1.
	ScalingWindowSize ScalingMode = iota
	ScalingFixed
)

// Camera is a 2D camera. Scale is the orthographic zoom: larger values show
// more of the world.
type Camera struct {
	Projection  Projection
	ScalingMode ScalingMode
	Scale       float64
}

var CameraComponent = NewComponent[Camera]()
