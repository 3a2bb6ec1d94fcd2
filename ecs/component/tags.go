package component

// MainCameraTag marks the one camera the controllers and renderer drive.
type MainCameraTag struct{}

var MainCameraTagComponent = NewComponent[MainCameraTag]()
