// Package sdlhost hosts swipe rows in an SDL2 window: it turns mouse and
// touch events into drag gestures, draws rows with their revealed action
// views, and maps arrow keys to side changes.
package sdlhost

import (
	"math"
	"time"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/constants"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type pointerKind int

const (
	pointerNone pointerKind = iota
	pointerMouse
	pointerFinger
)

// DragRecognizer turns SDL pointer events inside a rectangle into a
// horizontal drag for a DragSink. A press becomes a drag once it moves
// horizontally past the dead zone; presses that move vertically first are
// left to the surrounding list.
type DragRecognizer struct {
	sink     swiperow.DragSink
	bounds   sdl.Rect
	deadZone float64
	velocity internal.VelocityTracker

	windowW, windowH int32

	pointer  pointerKind
	finger   sdl.FingerID
	dragging bool
	rejected bool
	pressX   float64
	pressY   float64
	startX   float64
	last     float64
}

// NewDragRecognizer creates a recognizer feeding sink for presses inside bounds.
func NewDragRecognizer(sink swiperow.DragSink, bounds sdl.Rect) *DragRecognizer {
	return &DragRecognizer{
		sink:     sink,
		bounds:   bounds,
		deadZone: constants.DefaultDragDeadZone,
		velocity: internal.NewVelocityTracker(constants.DefaultVelocityWindow),
	}
}

// SetBounds moves the hit area, e.g. when the list scrolls.
func (r *DragRecognizer) SetBounds(bounds sdl.Rect) {
	r.bounds = bounds
}

// SetDeadZone sets the minimum movement in pixels before a drag starts.
func (r *DragRecognizer) SetDeadZone(pixels float64) {
	r.deadZone = pixels
}

// SetWindowSize sets the size used to scale normalized touch coordinates.
func (r *DragRecognizer) SetWindowSize(w, h int32) {
	r.windowW, r.windowH = w, h
}

// Dragging reports whether a recognized drag is in progress.
func (r *DragRecognizer) Dragging() bool {
	return r.dragging
}

// HandleEvent processes a single SDL event and reports whether it was
// consumed as part of a drag.
func (r *DragRecognizer) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return false
		}
		at := eventTime(e.Timestamp)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return r.press(pointerMouse, 0, float64(e.X), float64(e.Y), at)
		}
		return r.release(pointerMouse, 0, float64(e.X), at)

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return false
		}
		return r.move(pointerMouse, 0, float64(e.X), float64(e.Y), eventTime(e.Timestamp))

	case *sdl.TouchFingerEvent:
		x := float64(e.X) * float64(r.windowW)
		y := float64(e.Y) * float64(r.windowH)
		at := eventTime(e.Timestamp)
		switch e.Type {
		case sdl.FINGERDOWN:
			return r.press(pointerFinger, e.FingerID, x, y, at)
		case sdl.FINGERMOTION:
			return r.move(pointerFinger, e.FingerID, x, y, at)
		case sdl.FINGERUP:
			return r.release(pointerFinger, e.FingerID, x, at)
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			r.Cancel()
		}
	}
	return false
}

// Cancel ends a gesture in progress at its last position with no velocity.
func (r *DragRecognizer) Cancel() {
	if r.dragging {
		r.sink.OnDragEnd(r.last, 0)
	}
	r.reset()
}

func (r *DragRecognizer) press(kind pointerKind, finger sdl.FingerID, x, y float64, at time.Time) bool {
	if r.pointer != pointerNone {
		return false
	}

	point := sdl.Point{X: int32(x), Y: int32(y)}
	if !point.InRect(&r.bounds) {
		return false
	}

	r.pointer = kind
	r.finger = finger
	r.pressX, r.pressY = x, y
	r.velocity.Reset()
	return false
}

func (r *DragRecognizer) move(kind pointerKind, finger sdl.FingerID, x, y float64, at time.Time) bool {
	if !r.owns(kind, finger) || r.rejected {
		return false
	}

	if !r.dragging {
		dx := math.Abs(x - r.pressX)
		dy := math.Abs(y - r.pressY)
		if dx <= r.deadZone && dy <= r.deadZone {
			return false
		}
		if dy > dx {
			r.rejected = true
			return false
		}
		r.dragging = true
		r.startX = x
		r.last = 0
		r.sink.OnDragBegin()
		r.velocity.Add(at, 0)
		return true
	}

	// Moving the finger right pulls the content right, a negative offset.
	r.last = r.startX - x
	r.velocity.Add(at, r.last)
	r.sink.OnDragChanged(r.last)
	return true
}

func (r *DragRecognizer) release(kind pointerKind, finger sdl.FingerID, x float64, at time.Time) bool {
	if !r.owns(kind, finger) {
		return false
	}

	consumed := r.dragging
	if r.dragging {
		r.last = r.startX - x
		r.velocity.Add(at, r.last)
		r.sink.OnDragEnd(r.last, r.velocity.Velocity())
	}
	r.reset()
	return consumed
}

func (r *DragRecognizer) owns(kind pointerKind, finger sdl.FingerID) bool {
	return r.pointer == kind && (kind != pointerFinger || r.finger == finger)
}

func (r *DragRecognizer) reset() {
	r.pointer = pointerNone
	r.dragging = false
	r.rejected = false
	r.last = 0
}

// eventTime converts an SDL millisecond timestamp to a time.Time on a fixed epoch.
func eventTime(ms uint32) time.Time {
	return time.Unix(0, 0).Add(time.Duration(ms) * time.Millisecond)
}
