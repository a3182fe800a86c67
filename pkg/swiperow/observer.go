package swiperow

// Observer allows monitoring and some control of the user's interaction
// with a row. Embed NopObserver to implement only the methods you need.
//
// All methods are called synchronously on the goroutine driving the Controller.
type Observer interface {
	// ShouldShowSide is called before a side becomes current, allowing the
	// reveal to be refused. A refusal during a drag blocks that side for
	// the rest of the gesture.
	ShouldShowSide(c *Controller, side Side) bool
	// DidSwipe is called whenever the offset changes while the user drags
	// or the offset is applied directly. It is called at frame rate.
	DidSwipe(c *Controller, distance float64, side Side)
	// DidHideSide is called when a side's action view is no longer visible.
	DidHideSide(c *Controller, side Side)
	// CurrentSideChanged is called when the current side changes. This is
	// called before any settle animation completes.
	CurrentSideChanged(c *Controller)
}

// NopObserver implements Observer with neutral defaults: every reveal is
// allowed and notifications are ignored.
type NopObserver struct{}

func (NopObserver) ShouldShowSide(*Controller, Side) bool { return true }
func (NopObserver) DidSwipe(*Controller, float64, Side)   {}
func (NopObserver) DidHideSide(*Controller, Side)         {}
func (NopObserver) CurrentSideChanged(*Controller)        {}

// ObserverFuncs adapts plain functions to Observer. Nil fields fall back
// to NopObserver behavior.
type ObserverFuncs struct {
	OnShouldShowSide     func(c *Controller, side Side) bool
	OnSwipe              func(c *Controller, distance float64, side Side)
	OnHideSide           func(c *Controller, side Side)
	OnCurrentSideChanged func(c *Controller)
}

func (f ObserverFuncs) ShouldShowSide(c *Controller, side Side) bool {
	if f.OnShouldShowSide == nil {
		return true
	}
	return f.OnShouldShowSide(c, side)
}

func (f ObserverFuncs) DidSwipe(c *Controller, distance float64, side Side) {
	if f.OnSwipe != nil {
		f.OnSwipe(c, distance, side)
	}
}

func (f ObserverFuncs) DidHideSide(c *Controller, side Side) {
	if f.OnHideSide != nil {
		f.OnHideSide(c, side)
	}
}

func (f ObserverFuncs) CurrentSideChanged(c *Controller) {
	if f.OnCurrentSideChanged != nil {
		f.OnCurrentSideChanged(c)
	}
}
