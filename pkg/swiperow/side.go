package swiperow

// Side refers to a particular side of a row. The numeric values double as
// the sign of the offset that reveals that side.
type Side int

const (
	SideLeft  Side = -1 // The left action view, revealed by dragging the content to the right
	SideNone  Side = 0  // Neither side; the row's resting state
	SideRight Side = 1  // The right action view, revealed by dragging the content to the left
)

// String returns a string representation of the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideNone:
		return "none"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the three defined sides.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideNone || s == SideRight
}

// Sign returns the offset sign that reveals this side.
func (s Side) Sign() float64 {
	return float64(s)
}

// sideForOffset derives the side revealed by an offset.
func sideForOffset(offset float64) Side {
	switch {
	case offset < 0:
		return SideLeft
	case offset > 0:
		return SideRight
	default:
		return SideNone
	}
}
