package component

// Input is the per-frame control state of the scene.
type Input struct {
	Left  bool
	Right bool

	AddSoldier  bool
	KillSoldier bool

	Clicked bool
	ClickX  float64
	ClickY  float64
}

var InputComponent = NewComponent[Input]("input")
