package sdlhost

import (
	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/veandco/go-sdl2/sdl"
)

// SideForKey maps an arrow key to the side a row should move to. Left
// slides the content left (toward the right action), Right slides it right,
// and an arrow pointing back toward rest closes an open row. Escape closes.
// The second result is false for keys that do not affect the row.
func SideForKey(current swiperow.Side, key sdl.Keycode) (swiperow.Side, bool) {
	switch key {
	case sdl.K_LEFT:
		if current == swiperow.SideLeft {
			return swiperow.SideNone, true
		}
		return swiperow.SideRight, true
	case sdl.K_RIGHT:
		if current == swiperow.SideRight {
			return swiperow.SideNone, true
		}
		return swiperow.SideLeft, true
	case sdl.K_ESCAPE:
		return swiperow.SideNone, true
	}
	return swiperow.SideNone, false
}

// KeyControl opens and closes a row from the keyboard.
type KeyControl struct {
	Controller *swiperow.Controller
	Animated   bool
}

// HandleEvent applies key presses to the controller. Requests for a side
// without a view are ignored.
func (k *KeyControl) HandleEvent(event sdl.Event) bool {
	e, ok := event.(*sdl.KeyboardEvent)
	if !ok || e.Type != sdl.KEYDOWN || e.Repeat != 0 {
		return false
	}

	side, ok := SideForKey(k.Controller.CurrentSide(), e.Keysym.Sym)
	if !ok {
		return false
	}

	if err := k.Controller.SetCurrentSide(side, k.Animated); err != nil {
		return false
	}
	return true
}
