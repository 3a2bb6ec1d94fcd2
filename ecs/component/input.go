package component

// Input stores per-frame keyboard intent for an entity. Held flags are level
// triggered; InspectPressed is true only on the frame the key went down.
type Input struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	ZoomIn  bool
	ZoomOut bool

	InspectPressed bool
}

var InputComponent = NewComponent[Input]()
