package sdlhost

import (
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// ActionView is a colored action area attached to one side of a Row.
// It implements swiperow.SideView.
type ActionView struct {
	Label   string       // Text drawn next to the icon, empty for none
	Color   sdl.Color    // Fill behind the icon
	Width   int32        // Fully open width in pixels
	Icon    *sdl.Texture // Optional icon, drawn centered in the open width
	IconW   int32        // Icon draw size; zero uses the texture size
	IconH   int32
	Padding internal.Padding

	revealed bool
}

// NewActionView creates an action view with the default padding.
func NewActionView(label string, color sdl.Color, width int32) *ActionView {
	return &ActionView{
		Label:   label,
		Color:   color,
		Width:   width,
		Padding: internal.UniformPadding(12),
	}
}

func (v *ActionView) RevealWidth() float64 {
	return float64(v.Width)
}

func (v *ActionView) SetRevealed(revealed bool) {
	v.revealed = revealed
}

// Revealed reports whether any part of the view is currently visible.
func (v *ActionView) Revealed() bool {
	return v.revealed
}

// iconRect centers the icon inside the open-width slot that starts at slotX.
func (v *ActionView) iconRect(slotX, y, h int32) sdl.Rect {
	x, y, w, h := v.Padding.Inset(slotX, y, v.Width, h)

	iw, ih := v.IconW, v.IconH
	if (iw == 0 || ih == 0) && v.Icon != nil {
		_, _, tw, th, err := v.Icon.Query()
		if err == nil {
			iw, ih = tw, th
		}
	}
	iw = internal.Min32(iw, w)
	ih = internal.Min32(ih, h)

	return sdl.Rect{X: x + (w-iw)/2, Y: y + (h-ih)/2, W: iw, H: ih}
}
