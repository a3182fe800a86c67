package swiperow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestFrameAnimatorInterpolatesAndCompletes(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	animator := NewFrameAnimatorWithClock(clock.Now)
	animator.SetEasing(Linear)

	completed := 0
	anim := animator.Animate(0, 100, 100*time.Millisecond, func() { completed++ })

	assert.Equal(t, 0.0, anim.Value())
	clock.Advance(25 * time.Millisecond)
	assert.InDelta(t, 25.0, anim.Value(), 1e-9)
	assert.Equal(t, 1, animator.Step())
	assert.Zero(t, completed)

	clock.Advance(75 * time.Millisecond)
	assert.Zero(t, animator.Step())
	assert.Equal(t, 1, completed)
	assert.Equal(t, 100.0, anim.Value())
	assert.False(t, animator.Active())

	animator.Step()
	assert.Equal(t, 1, completed)
}

func TestFrameAnimatorCancelFreezesValue(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	animator := NewFrameAnimatorWithClock(clock.Now)
	animator.SetEasing(nil)

	completed := false
	anim := animator.Animate(100, 0, time.Second, func() { completed = true })

	clock.Advance(250 * time.Millisecond)
	assert.InDelta(t, 75.0, anim.Cancel(), 1e-9)

	clock.Advance(time.Second)
	assert.Zero(t, animator.Step())
	assert.False(t, completed)
	assert.InDelta(t, 75.0, anim.Value(), 1e-9)
}

func TestFrameAnimatorZeroDuration(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	animator := NewFrameAnimatorWithClock(clock.Now)

	completed := false
	anim := animator.Animate(10, 20, 0, func() { completed = true })
	assert.Equal(t, 20.0, anim.Value())

	animator.Step()
	assert.True(t, completed)
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.Greater(t, EaseOutCubic(0.5), 0.5)
}

func TestControllerWithFrameAnimator(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	animator := NewFrameAnimatorWithClock(clock.Now)
	c := New(DefaultSettings(), animator)
	c.SetRightView(&testView{width: 120})

	var changes, hides int
	c.SetObserver(ObserverFuncs{
		OnCurrentSideChanged: func(*Controller) { changes++ },
		OnHideSide:           func(*Controller, Side) { hides++ },
	})

	c.OnDragBegin()
	c.OnDragChanged(90)
	c.OnDragEnd(90, 0)
	require.True(t, c.Animating())

	clock.Advance(DefaultSettings().AnimationDuration / 2)
	animator.Step()
	mid := c.Offset()
	assert.Greater(t, mid, 90.0)
	assert.Less(t, mid, 120.0)

	// Catching the row mid-flight keeps it where it is.
	c.OnDragBegin()
	assert.Equal(t, mid, c.Offset())
	assert.False(t, c.Animating())

	c.OnDragChanged(-mid)
	c.OnDragEnd(-mid, 0)
	clock.Advance(time.Second)
	animator.Step()

	assert.Equal(t, SideNone, c.CurrentSide())
	assert.Zero(t, c.Offset())
	assert.Equal(t, 2, changes)
	assert.Equal(t, 1, hides)
}
