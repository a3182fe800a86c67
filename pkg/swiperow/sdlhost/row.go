package sdlhost

import (
	"math"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Row draws a swipe row and routes pointer events to its Controller.
type Row struct {
	Controller *swiperow.Controller
	Title      string
	Bounds     sdl.Rect

	recognizer *DragRecognizer
	left       *ActionView
	right      *ActionView
}

// NewRow wraps a controller for the given screen rectangle.
func NewRow(controller *swiperow.Controller, title string, bounds sdl.Rect) *Row {
	return &Row{
		Controller: controller,
		Title:      title,
		Bounds:     bounds,
		recognizer: NewDragRecognizer(controller, bounds),
	}
}

// SetActionView attaches view to side of the row's controller. Nil detaches it.
func (r *Row) SetActionView(side swiperow.Side, view *ActionView) {
	switch side {
	case swiperow.SideLeft:
		r.left = view
		if view == nil {
			r.Controller.SetLeftView(nil)
			return
		}
		r.Controller.SetLeftView(view)
	case swiperow.SideRight:
		r.right = view
		if view == nil {
			r.Controller.SetRightView(nil)
			return
		}
		r.Controller.SetRightView(view)
	}
}

// SetBounds moves the row, e.g. after the list scrolls or the window resizes.
func (r *Row) SetBounds(bounds sdl.Rect) {
	r.Bounds = bounds
	r.recognizer.SetBounds(bounds)
}

// SetWindowSize sets the size used to scale touch coordinates.
func (r *Row) SetWindowSize(w, h int32) {
	r.recognizer.SetWindowSize(w, h)
}

// HandleEvent feeds an SDL event to the row's gesture recognizer.
func (r *Row) HandleEvent(event sdl.Event) bool {
	return r.recognizer.HandleEvent(event)
}

// Dragging reports whether the row is being dragged.
func (r *Row) Dragging() bool {
	return r.recognizer.Dragging()
}

// ContentRect is the row content translated by the current offset.
func (r *Row) ContentRect() sdl.Rect {
	shift := int32(math.Round(-r.Controller.Offset()))
	return sdl.Rect{X: r.Bounds.X + shift, Y: r.Bounds.Y, W: r.Bounds.W, H: r.Bounds.H}
}

// RevealedRect is the area uncovered by the offset, and the side it belongs to.
func (r *Row) RevealedRect() (sdl.Rect, swiperow.Side) {
	offset := int32(math.Round(r.Controller.Offset()))
	switch {
	case offset < 0:
		return sdl.Rect{X: r.Bounds.X, Y: r.Bounds.Y, W: -offset, H: r.Bounds.H}, swiperow.SideLeft
	case offset > 0:
		return sdl.Rect{X: r.Bounds.X + r.Bounds.W - offset, Y: r.Bounds.Y, W: offset, H: r.Bounds.H}, swiperow.SideRight
	default:
		return sdl.Rect{}, swiperow.SideNone
	}
}

func (r *Row) actionView(side swiperow.Side) *ActionView {
	switch side {
	case swiperow.SideLeft:
		return r.left
	case swiperow.SideRight:
		return r.right
	default:
		return nil
	}
}

// Render draws the revealed action view and the row content. font may be
// nil to skip text.
func (r *Row) Render(renderer *sdl.Renderer, font *ttf.Font, cache *TextureCache) {
	theme := CurrentTheme()

	if rect, side := r.RevealedRect(); side != swiperow.SideNone {
		r.renderSide(renderer, font, cache, rect, side, theme)
	}

	content := r.ContentRect()
	setDrawColor(renderer, theme.ContentColor)
	renderer.FillRect(&content)

	if font != nil && r.Title != "" {
		r.renderText(renderer, font, cache, r.Title, theme.TextColor, content.X+20, content.Y, content.H)
	}

	setDrawColor(renderer, theme.SeparatorColor)
	bottom := r.Bounds.Y + r.Bounds.H - 1
	renderer.DrawLine(r.Bounds.X, bottom, r.Bounds.X+r.Bounds.W, bottom)
}

func (r *Row) renderSide(renderer *sdl.Renderer, font *ttf.Font, cache *TextureCache, rect sdl.Rect, side swiperow.Side, theme Theme) {
	view := r.actionView(side)

	color := theme.LeftSideColor
	if side == swiperow.SideRight {
		color = theme.RightSideColor
	}
	if view != nil && view.Color.A != 0 {
		color = view.Color
	}
	setDrawColor(renderer, color)
	renderer.FillRect(&rect)

	if view == nil {
		return
	}

	// Icons stay anchored to the row's outer edge while the content slides.
	slotX := r.Bounds.X
	if side == swiperow.SideRight {
		slotX = r.Bounds.X + r.Bounds.W - view.Width
	}

	renderer.SetClipRect(&rect)
	defer renderer.SetClipRect(nil)

	if view.Icon != nil {
		iconRect := view.iconRect(slotX, rect.Y, rect.H)
		renderer.Copy(view.Icon, nil, &iconRect)
	} else if font != nil && view.Label != "" {
		r.renderText(renderer, font, cache, view.Label, theme.TextColor, slotX+view.Padding.Left, rect.Y, rect.H)
	}
}

func (r *Row) renderText(renderer *sdl.Renderer, font *ttf.Font, cache *TextureCache, text string, color sdl.Color, x, y, h int32) {
	texture, err := cache.Text(renderer, font, text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render row text", "text", text, "error", err)
		return
	}

	_, _, w, th, err := texture.Query()
	if err != nil {
		return
	}
	dst := sdl.Rect{X: x, Y: y + (h-th)/2, W: w, H: th}
	renderer.Copy(texture, nil, &dst)
}

func setDrawColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}
