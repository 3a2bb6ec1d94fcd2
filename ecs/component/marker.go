package component

import "image/color"

// Marker is a flat filled circle, used to show the world origin.
type Marker struct {
	Radius float64
	Color  color.Color
}

var MarkerComponent = NewComponent[Marker]()
