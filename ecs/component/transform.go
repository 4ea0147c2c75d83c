package component

// Transform is a world-space position. Y is up; soldiers stand on the
// ground plane Y = 0.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]("transform")
