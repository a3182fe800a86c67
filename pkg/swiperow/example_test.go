package swiperow_test

import (
	"fmt"

	"github.com/BrandonKowalski/swiperow/pkg/swiperow"
)

type actionView struct {
	name  string
	width float64
}

func (v *actionView) RevealWidth() float64 { return v.width }

func (v *actionView) SetRevealed(revealed bool) {
	fmt.Printf("%s revealed=%v\n", v.name, revealed)
}

// Example drives a row through a drag that passes the open threshold.
func Example() {
	// A nil driver settles instantly; hosts pass a FrameAnimator instead.
	row := swiperow.New(swiperow.DefaultSettings(), nil)
	row.SetRightView(&actionView{name: "delete", width: 120})

	row.SetObserver(swiperow.ObserverFuncs{
		OnCurrentSideChanged: func(c *swiperow.Controller) {
			fmt.Println("side:", c.CurrentSide())
		},
		OnHideSide: func(_ *swiperow.Controller, side swiperow.Side) {
			fmt.Println("hidden:", side)
		},
	})

	row.OnDragBegin()
	row.OnDragChanged(30)
	row.OnDragChanged(95)
	row.OnDragEnd(95, 0)
	fmt.Println("offset:", row.Offset())

	_ = row.SetCurrentSide(swiperow.SideNone, false)

	// Output:
	// delete revealed=true
	// side: right
	// offset: 120
	// delete revealed=false
	// hidden: right
	// side: none
}

// Example_veto shows an observer refusing a side for the whole gesture.
func Example_veto() {
	row := swiperow.New(swiperow.DefaultSettings(), nil)
	row.SetLeftView(&actionView{name: "archive", width: 100})

	row.SetObserver(swiperow.ObserverFuncs{
		OnShouldShowSide: func(_ *swiperow.Controller, side swiperow.Side) bool {
			fmt.Println("asked:", side)
			return false
		},
	})

	row.OnDragBegin()
	row.OnDragChanged(-40)
	row.OnDragChanged(-150)
	row.OnDragEnd(-150, -2000)
	fmt.Println("side:", row.CurrentSide(), "offset:", row.Offset())

	err := row.SetCurrentSide(swiperow.SideRight, true)
	fmt.Println(err)

	// Output:
	// asked: left
	// side: none offset: 0
	// swiperow: set_current_side right: side has no attached view
}
