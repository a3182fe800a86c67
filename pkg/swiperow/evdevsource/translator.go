// Package evdevsource reads horizontal drags straight from a Linux touch
// device, for hosts without a windowing system delivering touch events.
package evdevsource

import (
	"math"
	"syscall"
	"time"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/constants"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/holoplot/go-evdev"
)

// translator folds raw evdev events into drag events. Axis updates are
// applied on SYN_REPORT so a frame with both X and touch state changes is
// seen atomically.
type translator struct {
	deadZone float64
	scaleX   float64 // device units to host units
	scaleY   float64
	invert   bool // device X grows leftwards

	velocity internal.VelocityTracker

	touching    bool
	wasTouching bool
	x, y        float64
	haveX       bool
	pressX      float64
	pressY      float64
	startX      float64
	dragging    bool
	rejected    bool
	last        float64
}

// newTranslator scales each axis to host units. A non-positive scaleY
// follows scaleX.
func newTranslator(scaleX, scaleY float64) *translator {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = scaleX
	}
	return &translator{
		deadZone: constants.DefaultDragDeadZone,
		scaleX:   scaleX,
		scaleY:   scaleY,
		velocity: internal.NewVelocityTracker(constants.DefaultVelocityWindow),
	}
}

// feed consumes one event and appends any resulting drag events to out.
func (t *translator) feed(ev *evdev.InputEvent, out []swiperow.DragEvent) []swiperow.DragEvent {
	switch ev.Type {
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			t.touching = ev.Value != 0
		}
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
			t.x = float64(ev.Value) * t.scaleX
			t.haveX = true
		case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
			t.y = float64(ev.Value) * t.scaleY
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			out = t.frame(eventTime(ev.Time), out)
		}
	}
	return out
}

func (t *translator) frame(at time.Time, out []swiperow.DragEvent) []swiperow.DragEvent {
	defer func() { t.wasTouching = t.touching }()

	switch {
	case t.touching && !t.wasTouching:
		t.pressX, t.pressY = t.x, t.y
		t.dragging, t.rejected = false, false
		t.velocity.Reset()

	case t.touching && t.haveX:
		if t.rejected {
			return out
		}
		if !t.dragging {
			dx := math.Abs(t.x - t.pressX)
			dy := math.Abs(t.y - t.pressY)
			if dx <= t.deadZone && dy <= t.deadZone {
				return out
			}
			if dy > dx {
				t.rejected = true
				return out
			}
			t.dragging = true
			t.startX = t.x
			t.last = 0
			t.velocity.Add(at, 0)
			return append(out, swiperow.DragEvent{Phase: swiperow.DragPhaseBegan})
		}
		t.last = t.translation()
		t.velocity.Add(at, t.last)
		return append(out, swiperow.DragEvent{Phase: swiperow.DragPhaseChanged, Translation: t.last})

	case !t.touching && t.wasTouching:
		if !t.dragging {
			return out
		}
		t.dragging = false
		t.last = t.translation()
		t.velocity.Add(at, t.last)
		return append(out, swiperow.DragEvent{
			Phase:       swiperow.DragPhaseEnded,
			Translation: t.last,
			Velocity:    t.velocity.Velocity(),
		})
	}
	return out
}

// translation converts finger travel to an offset change: moving right
// pulls the content right, a negative offset.
func (t *translator) translation() float64 {
	d := t.startX - t.x
	if t.invert {
		d = -d
	}
	return d
}

func eventTime(tv syscall.Timeval) time.Time {
	return time.Unix(int64(tv.Sec), int64(tv.Usec)*1000)
}
