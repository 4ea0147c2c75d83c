package sprite

// AnimationEventType identifies a type of animator event.
type AnimationEventType string

const (
	AnimationEventSequenceStarted AnimationEventType = "sequence_started"
	AnimationEventFinished        AnimationEventType = "finished"
)

// AnimationEvent is emitted by an animator when its sequence state changes.
type AnimationEvent struct {
	Type     AnimationEventType
	Sequence string
	Frame    int
}

// AnimationEventHandler handles animator events.
type AnimationEventHandler func(anim *Animator, evt AnimationEvent)

// AnimationEventEmitter dispatches animator events to handlers.
type AnimationEventEmitter struct {
	Handlers []AnimationEventHandler
}

// Subscribe appends a handler.
func (e *AnimationEventEmitter) Subscribe(h AnimationEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends an event to all handlers.
func (e *AnimationEventEmitter) Emit(anim *Animator, evt AnimationEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(anim, evt)
		}
	}
}
