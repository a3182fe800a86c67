package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks a rectangle given as x, y, w, h by the padding.
// Width and height never go negative.
func (p Padding) Inset(x, y, w, h int32) (int32, int32, int32, int32) {
	w = Max32(0, w-p.Left-p.Right)
	h = Max32(0, h-p.Top-p.Bottom)
	return x + p.Left, y + p.Top, w, h
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
