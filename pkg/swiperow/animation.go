package swiperow

import (
	"time"

	"go.uber.org/atomic"
)

// Animation is a handle to an in-flight settle animation.
type Animation interface {
	// Value returns the animated offset at this instant.
	Value() float64
	// Cancel stops the animation without invoking its completion and
	// returns the offset it had reached.
	Cancel() float64
}

// AnimationDriver performs a timed transition of an offset to a target
// and invokes onComplete once the target is reached. onComplete must be
// called on the goroutine that drives the Controller.
type AnimationDriver interface {
	Animate(from, to float64, duration time.Duration, onComplete func()) Animation
}

// EasingFunc maps linear progress in [0,1] to eased progress in [0,1].
type EasingFunc func(t float64) float64

// EaseOutCubic decelerates toward the target, matching a flick settling into place.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// FrameAnimator is an AnimationDriver advanced by the host's render loop.
// Call Step once per frame; completions fire from inside Step.
type FrameAnimator struct {
	now    func() time.Time
	easing EasingFunc
	active []*frameAnimation
}

type frameAnimation struct {
	animator   *FrameAnimator
	from, to   float64
	start      time.Time
	duration   time.Duration
	onComplete func()
	easing     EasingFunc
	finished   atomic.Bool
	final      float64
}

// NewFrameAnimator creates a FrameAnimator using the wall clock and EaseOutCubic.
func NewFrameAnimator() *FrameAnimator {
	return NewFrameAnimatorWithClock(time.Now)
}

// NewFrameAnimatorWithClock creates a FrameAnimator reading time from now.
func NewFrameAnimatorWithClock(now func() time.Time) *FrameAnimator {
	return &FrameAnimator{
		now:    now,
		easing: EaseOutCubic,
	}
}

// SetEasing replaces the easing curve used for animations started afterwards.
func (a *FrameAnimator) SetEasing(easing EasingFunc) {
	if easing == nil {
		easing = Linear
	}
	a.easing = easing
}

func (a *FrameAnimator) Animate(from, to float64, duration time.Duration, onComplete func()) Animation {
	anim := &frameAnimation{
		animator:   a,
		from:       from,
		to:         to,
		start:      a.now(),
		duration:   duration,
		onComplete: onComplete,
		easing:     a.easing,
	}
	a.active = append(a.active, anim)
	return anim
}

// Step advances every in-flight animation to the current time and fires
// completions for those that reached their target. Returns the number of
// animations still running.
func (a *FrameAnimator) Step() int {
	if len(a.active) == 0 {
		return 0
	}

	now := a.now()
	running := a.active[:0]
	var completed []*frameAnimation

	for _, anim := range a.active {
		if anim.finished.Load() {
			continue
		}
		if now.Sub(anim.start) >= anim.duration {
			anim.final = anim.to
			anim.finished.Store(true)
			completed = append(completed, anim)
			continue
		}
		running = append(running, anim)
	}

	for i := len(running); i < len(a.active); i++ {
		a.active[i] = nil
	}
	a.active = running

	// Completions may start new animations, so run them after the list is settled.
	for _, anim := range completed {
		if anim.onComplete != nil {
			anim.onComplete()
		}
	}

	return len(a.active)
}

// Active reports whether any animation is in flight.
func (a *FrameAnimator) Active() bool {
	return len(a.active) > 0
}

func (f *frameAnimation) Value() float64 {
	if f.finished.Load() {
		return f.final
	}
	return f.valueAt(f.animator.now())
}

func (f *frameAnimation) valueAt(now time.Time) float64 {
	if f.duration <= 0 {
		return f.to
	}
	progress := float64(now.Sub(f.start)) / float64(f.duration)
	if progress <= 0 {
		return f.from
	}
	if progress >= 1 {
		return f.to
	}
	return f.from + (f.to-f.from)*f.easing(progress)
}

func (f *frameAnimation) Cancel() float64 {
	if f.finished.Load() {
		return f.final
	}
	f.final = f.valueAt(f.animator.now())
	f.finished.Store(true)
	return f.final
}
