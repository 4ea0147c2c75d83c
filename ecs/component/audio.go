package component

// AudioPlayer is the subset of *audio.Player the audio system drives.
type AudioPlayer interface {
	IsPlaying() bool
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// Audio holds one entity's sound players. Play and Stop are requests
// consumed by the audio system on the next frame.
type Audio struct {
	Names   []string
	Players []AudioPlayer
	Volume  []float64
	Play    []bool
	Stop    []bool

	// RefDistance is the distance from the camera below which sounds play
	// at full volume. Zero disables attenuation.
	RefDistance float64
}

// RequestPlay marks slot i to start on the next audio update.
func (a *Audio) RequestPlay(i int) {
	if a == nil || i < 0 || i >= len(a.Play) {
		return
	}
	a.Play[i] = true
	a.Stop[i] = false
}

// RequestStop marks slot i to stop on the next audio update.
func (a *Audio) RequestStop(i int) {
	if a == nil || i < 0 || i >= len(a.Stop) {
		return
	}
	a.Stop[i] = true
	a.Play[i] = false
}

var AudioComponent = NewComponent[Audio]("audio")
