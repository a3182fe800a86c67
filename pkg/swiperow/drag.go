package swiperow

// DragSink consumes the horizontal drag signal of a row. Controller
// implements it; gesture sources call it.
//
// Offsets passed to OnDragChanged and OnDragEnd are translations relative
// to where the gesture began. Velocity is in units per second.
type DragSink interface {
	OnDragBegin()
	OnDragChanged(translation float64)
	OnDragEnd(translation, velocity float64)
}

// DragPhase identifies the stage of a drag gesture.
type DragPhase int

const (
	DragPhaseBegan DragPhase = iota
	DragPhaseChanged
	DragPhaseEnded
)

func (p DragPhase) String() string {
	switch p {
	case DragPhaseBegan:
		return "began"
	case DragPhaseChanged:
		return "changed"
	case DragPhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// DragEvent is a single drag sample, for sources that queue gestures
// instead of calling a DragSink directly.
type DragEvent struct {
	Phase       DragPhase
	Translation float64
	Velocity    float64 // Only meaningful for DragPhaseEnded
}

// Dispatch delivers an event to the matching DragSink method.
func Dispatch(sink DragSink, ev DragEvent) {
	switch ev.Phase {
	case DragPhaseBegan:
		sink.OnDragBegin()
	case DragPhaseChanged:
		sink.OnDragChanged(ev.Translation)
	case DragPhaseEnded:
		sink.OnDragEnd(ev.Translation, ev.Velocity)
	}
}
