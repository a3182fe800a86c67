package sdlhost

import (
	"testing"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestRow() *Row {
	c := swiperow.New(swiperow.DefaultSettings(), nil)
	row := NewRow(c, "Inbox", sdl.Rect{X: 0, Y: 100, W: 400, H: 60})
	row.SetActionView(swiperow.SideLeft, NewActionView("Archive", sdl.Color{G: 200, A: 255}, 100))
	row.SetActionView(swiperow.SideRight, NewActionView("Delete", sdl.Color{R: 200, A: 255}, 120))
	return row
}

func TestRowRectsFollowOffset(t *testing.T) {
	row := newTestRow()

	_, side := row.RevealedRect()
	assert.Equal(t, swiperow.SideNone, side)
	assert.Equal(t, row.Bounds, row.ContentRect())

	require.NoError(t, row.Controller.SetCurrentSide(swiperow.SideRight, false))
	rect, side := row.RevealedRect()
	assert.Equal(t, swiperow.SideRight, side)
	assert.Equal(t, sdl.Rect{X: 280, Y: 100, W: 120, H: 60}, rect)
	assert.Equal(t, int32(-120), row.ContentRect().X)
	assert.True(t, row.right.Revealed())
	assert.False(t, row.left.Revealed())

	require.NoError(t, row.Controller.SetCurrentSide(swiperow.SideLeft, false))
	rect, side = row.RevealedRect()
	assert.Equal(t, swiperow.SideLeft, side)
	assert.Equal(t, sdl.Rect{X: 0, Y: 100, W: 100, H: 60}, rect)
	assert.Equal(t, int32(100), row.ContentRect().X)
}

func TestRowMouseSwipeOpensRight(t *testing.T) {
	row := newTestRow()

	row.HandleEvent(mouseDown(300, 130, 0))
	row.HandleEvent(mouseMove(290, 130, 10))
	row.HandleEvent(mouseMove(200, 130, 40))
	assert.True(t, row.Dragging())
	row.HandleEvent(mouseUp(190, 130, 50))

	assert.Equal(t, swiperow.SideRight, row.Controller.CurrentSide())
	assert.Equal(t, 120.0, row.Controller.Offset())
}

func TestRowDetachActionView(t *testing.T) {
	row := newTestRow()
	require.NoError(t, row.Controller.SetCurrentSide(swiperow.SideLeft, false))

	row.SetActionView(swiperow.SideLeft, nil)

	assert.Nil(t, row.Controller.LeftView())
	assert.Equal(t, swiperow.SideNone, row.Controller.CurrentSide())
}

func TestIconRectCentersInSlot(t *testing.T) {
	view := NewActionView("", sdl.Color{}, 100)
	view.IconW, view.IconH = 24, 24

	rect := view.iconRect(300, 100, 60)
	assert.Equal(t, sdl.Rect{X: 338, Y: 118, W: 24, H: 24}, rect)
}

func TestSideForKey(t *testing.T) {
	side, ok := SideForKey(swiperow.SideNone, sdl.K_LEFT)
	assert.True(t, ok)
	assert.Equal(t, swiperow.SideRight, side)

	side, _ = SideForKey(swiperow.SideLeft, sdl.K_LEFT)
	assert.Equal(t, swiperow.SideNone, side)

	side, _ = SideForKey(swiperow.SideRight, sdl.K_RIGHT)
	assert.Equal(t, swiperow.SideNone, side)

	side, _ = SideForKey(swiperow.SideNone, sdl.K_RIGHT)
	assert.Equal(t, swiperow.SideLeft, side)

	_, ok = SideForKey(swiperow.SideLeft, sdl.K_a)
	assert.False(t, ok)
}

func TestKeyControl(t *testing.T) {
	row := newTestRow()
	keys := &KeyControl{Controller: row.Controller}

	press := func(sym sdl.Keycode) bool {
		return keys.HandleEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sym}})
	}

	assert.True(t, press(sdl.K_RIGHT))
	assert.Equal(t, swiperow.SideLeft, row.Controller.CurrentSide())
	assert.True(t, press(sdl.K_ESCAPE))
	assert.Equal(t, swiperow.SideNone, row.Controller.CurrentSide())

	row.SetActionView(swiperow.SideRight, nil)
	assert.False(t, press(sdl.K_LEFT))
	assert.Equal(t, swiperow.SideNone, row.Controller.CurrentSide())
}
