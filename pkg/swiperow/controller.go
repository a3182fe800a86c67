// Package swiperow provides the interaction logic of a swipe-to-reveal list
// row: dragging the row horizontally reveals an action view on the left or
// right. Past a distance or velocity threshold the row settles open,
// otherwise it springs back.
//
// The Controller is toolkit independent. Gesture sources feed it through
// DragSink, an AnimationDriver performs settle animations, and an Observer
// is notified of side changes. The sdlhost and evdevsource packages adapt
// SDL and Linux input devices to it.
package swiperow

import (
	"log/slog"
	"math"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow/internal"
	"go.uber.org/atomic"
)

// SideView is an action view that can be attached to one side of a row.
type SideView interface {
	// RevealWidth is the offset magnitude at which the view is fully open.
	// Non-positive widths fall back to the open distance threshold.
	RevealWidth() float64
	// SetRevealed is called when the view becomes visible or hidden.
	SetRevealed(revealed bool)
}

type gate int

const (
	gateUnknown gate = iota
	gateAllowed
	gateVetoed
)

// Controller owns the swipe state of a single row.
//
// Offsets follow the scroll-view convention: a negative offset reveals
// the left view (row content shifted right), a positive offset reveals the
// right view. The on-screen translation of the content is -Offset().
//
// A Controller is not safe for concurrent use. Drag events, animation
// completions and programmatic calls must all arrive on one goroutine.
type Controller struct {
	settings Settings
	driver   AnimationDriver
	observer Observer
	logger   *slog.Logger

	currentSide Side
	offset      float64
	shownSide   Side // side whose view is visible, set as soon as an opening animation starts

	leftView  SideView
	rightView SideView

	animation  Animation
	animTarget float64
	generation atomic.Uint64

	dragging     bool
	baseline     float64
	baselineSide Side
	gates        [2]gate
}

// New creates a Controller at rest with no side views. A nil driver makes
// every settle instantaneous. Invalid settings are replaced by the defaults.
func New(settings Settings, driver AnimationDriver) *Controller {
	logger := internal.GetInternalLogger()
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid swipe settings; using defaults", "error", err)
		settings = DefaultSettings()
	}

	return &Controller{
		settings: settings,
		driver:   driver,
		observer: NopObserver{},
		logger:   logger,
	}
}

// SetObserver sets the observer notified of interaction. Nil clears it.
func (c *Controller) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	c.observer = o
}

// Settings returns the settings the controller was created with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// CurrentSide returns the logical side. Mid-animation this is already the
// side being settled to.
func (c *Controller) CurrentSide() Side {
	return c.currentSide
}

// Offset returns the presented offset, following an in-flight animation.
func (c *Controller) Offset() float64 {
	if c.animation != nil {
		return c.animation.Value()
	}
	return c.offset
}

// Animating reports whether a settle animation is in flight.
func (c *Controller) Animating() bool {
	return c.animation != nil
}

// Dragging reports whether a drag gesture is being tracked.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// LeftView returns the attached left view, or nil.
func (c *Controller) LeftView() SideView {
	return c.leftView
}

// RightView returns the attached right view, or nil.
func (c *Controller) RightView() SideView {
	return c.rightView
}

// View returns the view attached to side, or nil.
func (c *Controller) View(side Side) SideView {
	switch side {
	case SideLeft:
		return c.leftView
	case SideRight:
		return c.rightView
	default:
		return nil
	}
}

// SetLeftView attaches the view displayed when the row is swiped from left
// to right. Nil is equivalent to DetachView(SideLeft).
func (c *Controller) SetLeftView(v SideView) {
	c.setView(SideLeft, v)
}

// SetRightView attaches the view displayed when the row is swiped from
// right to left. Nil is equivalent to DetachView(SideRight).
func (c *Controller) SetRightView(v SideView) {
	c.setView(SideRight, v)
}

// DetachView removes the view from side. If that side is current or still
// visible the row resets to SideNone immediately, without animation.
func (c *Controller) DetachView(side Side) {
	if side == SideNone || !side.Valid() || c.View(side) == nil {
		return
	}

	if c.currentSide == side || c.shownSide == side {
		c.logger.Debug("Detaching visible side view; resetting", "side", side)
		c.forceClose()
	}
	c.storeView(side, nil)
}

// DetachLeftView is DetachView(SideLeft).
func (c *Controller) DetachLeftView() { c.DetachView(SideLeft) }

// DetachRightView is DetachView(SideRight).
func (c *Controller) DetachRightView() { c.DetachView(SideRight) }

func (c *Controller) setView(side Side, v SideView) {
	if v == nil {
		c.DetachView(side)
		return
	}

	old := c.View(side)
	if old == v {
		return
	}
	c.storeView(side, v)

	if c.shownSide == side {
		if old != nil {
			old.SetRevealed(false)
		}
		v.SetRevealed(true)
	}

	// A row resting open adopts the new view's width.
	if c.currentSide == side && !c.dragging && c.animation == nil {
		c.applyOffset(c.openOffset(side))
	}
}

func (c *Controller) storeView(side Side, v SideView) {
	if side == SideLeft {
		c.leftView = v
	} else {
		c.rightView = v
	}
}

// SetCurrentSide opens side, or closes the row for SideNone, bypassing
// gesture input. With animated false the offset and all notifications are
// applied before SetCurrentSide returns.
//
// Requesting a side without an attached view returns an *InvalidSideError.
// An observer veto leaves the row unchanged and is not an error.
func (c *Controller) SetCurrentSide(side Side, animated bool) error {
	if !side.Valid() {
		return &InvalidSideError{Side: side, Op: "set_current_side", Err: ErrUnknownSide}
	}
	if side != SideNone && c.View(side) == nil {
		c.logger.Debug("Refusing side without a view", "side", side)
		return &InvalidSideError{Side: side, Op: "set_current_side", Err: ErrInvalidSide}
	}

	target := c.openOffset(side)
	if side == c.currentSide && !c.dragging {
		if c.animation == nil && c.offset == target {
			return nil
		}
		if c.animation != nil && animated && c.animTarget == target {
			return nil
		}
	}

	if side != SideNone && side != c.currentSide && !c.observer.ShouldShowSide(c, side) {
		c.logger.Debug("Observer vetoed side", "side", side)
		return nil
	}

	c.dragging = false
	c.settle(side, animated)
	return nil
}

// Close settles the row to SideNone.
func (c *Controller) Close(animated bool) {
	// SideNone never fails validation.
	_ = c.SetCurrentSide(SideNone, animated)
}

// PrepareForReuse force-closes the row without animation and drops any
// gesture in progress, ready for new row content. Pending animation
// completions become no-ops.
func (c *Controller) PrepareForReuse() {
	c.forceClose()
	c.gates = [2]gate{}
}

// OnDragBegin starts tracking a gesture. An in-flight settle animation is
// cancelled and its current value becomes the drag baseline.
func (c *Controller) OnDragBegin() {
	if c.animation != nil {
		c.applyOffset(c.cancelAnimation())
	}

	c.dragging = true
	c.baseline = c.offset
	c.baselineSide = SideNone
	if c.currentSide != SideNone && sideForOffset(c.offset) == c.currentSide {
		c.baselineSide = c.currentSide
	}

	c.gates = [2]gate{}
	if c.baselineSide != SideNone {
		c.gates[gateIndex(c.baselineSide)] = gateAllowed
	}
}

// OnDragChanged moves the row to the baseline offset plus translation,
// clamped to the sides that may be entered.
func (c *Controller) OnDragChanged(translation float64) {
	if !c.dragging {
		return
	}
	c.track(c.baseline + translation)
}

// OnDragEnd applies the final translation and settles the row open or
// closed depending on the release distance and velocity.
func (c *Controller) OnDragEnd(translation, velocity float64) {
	if !c.dragging {
		return
	}
	c.track(c.baseline + translation)
	c.dragging = false

	target := c.releaseTarget(velocity)
	c.logger.Debug("Drag released",
		"offset", c.offset,
		"velocity", velocity,
		"target", target,
	)
	c.settle(target, true)
}

// HandleDrag dispatches a queued drag event.
func (c *Controller) HandleDrag(ev DragEvent) {
	Dispatch(c, ev)
}

func (c *Controller) track(raw float64) {
	side := sideForOffset(raw)
	if side != SideNone && !c.mayEnter(side) {
		raw, side = 0, SideNone
	}

	c.applyOffset(c.bound(raw, side))
	c.setSide(side)
}

// mayEnter reports whether the gesture may reveal side, consulting the
// observer the first time a side is approached during a gesture.
func (c *Controller) mayEnter(side Side) bool {
	if c.View(side) == nil {
		return false
	}

	i := gateIndex(side)
	switch c.gates[i] {
	case gateAllowed:
		return true
	case gateVetoed:
		return false
	}

	if side == c.currentSide || c.observer.ShouldShowSide(c, side) {
		c.gates[i] = gateAllowed
		return true
	}

	c.logger.Debug("Observer vetoed side for gesture", "side", side)
	c.gates[i] = gateVetoed
	return false
}

// bound limits the offset to the side's reveal width plus a rubber-band
// overscroll that approaches MaxOverscroll.
func (c *Controller) bound(offset float64, side Side) float64 {
	if side == SideNone {
		return 0
	}

	width := c.revealWidth(side)
	magnitude := math.Abs(offset)
	if magnitude <= width {
		return offset
	}

	limit := c.settings.MaxOverscroll
	excess := magnitude - width
	rubber := 0.0
	if limit > 0 {
		rubber = limit * excess / (excess + limit)
	}
	return side.Sign() * (width + rubber)
}

// releaseTarget picks the side to settle to when a gesture ends.
func (c *Controller) releaseTarget(velocity float64) Side {
	side := sideForOffset(c.offset)
	if side == SideNone {
		return SideNone
	}

	magnitude := math.Abs(c.offset)
	towardSide := velocity * side.Sign()

	// The row was open when the gesture began: closing needs the same
	// distance or speed that opening does, measured back toward rest.
	// Narrow views close after half their width.
	if side == c.baselineSide {
		closedBy := math.Abs(c.baseline) - magnitude
		if closedBy >= c.closeDistance(side) || -towardSide >= c.settings.OpenVelocityThreshold {
			return SideNone
		}
		return side
	}

	if magnitude >= c.settings.OpenDistanceThreshold {
		return side
	}
	if towardSide >= c.settings.OpenVelocityThreshold {
		return side
	}
	return SideNone
}

// settle makes side current immediately and moves the offset to its
// resting position, animated when possible.
func (c *Controller) settle(side Side, animated bool) {
	if c.animation != nil {
		c.applyOffset(c.cancelAnimation())
	}

	target := c.openOffset(side)
	if !animated || c.driver == nil || c.offset == target {
		c.applyOffset(target)
		c.setSide(side)
		return
	}

	c.setSide(side)

	// The view starts sliding in with the first frame.
	if c.shownSide == SideNone {
		c.reveal(sideForOffset(target))
	}

	gen := c.generation.Inc()
	c.animTarget = target
	anim := c.driver.Animate(c.offset, target, c.settings.AnimationDuration, func() {
		c.finishAnimation(gen)
	})

	// Drivers may complete synchronously; only keep a handle that is still live.
	if c.generation.Load() == gen {
		c.animation = anim
	}
}

func (c *Controller) finishAnimation(gen uint64) {
	if c.generation.Load() != gen {
		return
	}
	c.generation.Inc()
	c.animation = nil
	c.applyOffset(c.animTarget)
}

// cancelAnimation stops the in-flight animation and returns the offset it reached.
func (c *Controller) cancelAnimation() float64 {
	value := c.animation.Cancel()
	c.animation = nil
	c.generation.Inc()
	return value
}

func (c *Controller) forceClose() {
	if c.animation != nil {
		c.animation.Cancel()
		c.animation = nil
		c.generation.Inc()
	}
	c.dragging = false
	c.applyOffset(0)
	c.setSide(SideNone)
}

func (c *Controller) setSide(side Side) {
	if c.currentSide == side {
		return
	}
	c.currentSide = side
	c.observer.CurrentSideChanged(c)
}

// applyOffset stores the offset, toggles view visibility when the revealed
// side changes and reports the swipe.
func (c *Controller) applyOffset(offset float64) {
	shown := sideForOffset(offset)
	if offset == c.offset && shown == c.shownSide {
		return
	}
	c.offset = offset
	c.reveal(shown)
	c.observer.DidSwipe(c, offset, shown)
}

// reveal records which side's view is visible, hiding the previous one.
func (c *Controller) reveal(shown Side) {
	if shown == c.shownSide {
		return
	}
	previous := c.shownSide
	c.shownSide = shown
	if previous != SideNone {
		if v := c.View(previous); v != nil {
			v.SetRevealed(false)
		}
		c.observer.DidHideSide(c, previous)
	}
	if v := c.View(shown); v != nil {
		v.SetRevealed(true)
	}
}

func (c *Controller) revealWidth(side Side) float64 {
	if v := c.View(side); v != nil {
		if w := v.RevealWidth(); w > 0 {
			return w
		}
	}
	return c.settings.OpenDistanceThreshold
}

// closeDistance is how far an open side must be dragged back to close.
func (c *Controller) closeDistance(side Side) float64 {
	width := c.revealWidth(side)
	if c.settings.OpenDistanceThreshold < width {
		return c.settings.OpenDistanceThreshold
	}
	return width / 2
}

func (c *Controller) openOffset(side Side) float64 {
	if side == SideNone {
		return 0
	}
	return side.Sign() * c.revealWidth(side)
}

func gateIndex(side Side) int {
	if side == SideLeft {
		return 0
	}
	return 1
}
