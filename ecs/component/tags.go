package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]("camera_tag")

// CorpseTag marks a soldier whose death animation has finished.
type CorpseTag struct {
	Since float64
}

var CorpseTagComponent = NewComponent[CorpseTag]("corpse_tag")
