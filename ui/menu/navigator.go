package menu

import (
	"image/color"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
)

const (
	// PercentArrowWidth is the width of each paging arrow zone.
	PercentArrowWidth = 16.0
	// ImageSizePercent is the icon size inside navigator buttons.
	ImageSizePercent = 64

	arrowImageWidth  = 40
	arrowImageHeight = 100
)

// navigatorBar is the part every navigator shares: a panel of buttons it
// owns, plus the observers that must reach all of them. Whatever buttons
// the bar currently holds are the ones that carry the observers, also
// after a rebuild.
type navigatorBar struct {
	*ui.Panel

	factory *ui.Factory
	bgr     color.Color
	buttons []*ui.Button

	update ui.UpdateObserver
	redraw ui.RedrawObserver
}

func newNavigatorBar(name string, factory *ui.Factory, bounds layout.Rectangle, bgr color.Color) navigatorBar {
	return navigatorBar{
		Panel:   ui.NewPanel(name, bounds),
		factory: factory,
		bgr:     bgr,
	}
}

// Buttons returns the bar's buttons, arrows included, in draw order.
func (n *navigatorBar) Buttons() []*ui.Button {
	return n.buttons
}

// AddObservers installs the screen observers on every button and keeps
// them for buttons created later.
func (n *navigatorBar) AddObservers(update ui.UpdateObserver, redraw ui.RedrawObserver) {
	n.update = update
	n.redraw = redraw
	for _, b := range n.buttons {
		n.AddButtonObservers(b, update, redraw)
	}
}

func (n *navigatorBar) reset() {
	n.Clear()
	n.buttons = nil
}

func (n *navigatorBar) track(b *ui.Button) {
	n.AddComponent(b)
	n.buttons = append(n.buttons, b)
	if n.update != nil {
		n.AddButtonObservers(b, n.update, n.redraw)
	}
}

// addArrows places the paging arrows in the LEFT and RIGHT regions.
func (n *navigatorBar) addArrows(arrows *layout.BorderLayout, left, right action.Listener) (*ui.Button, *ui.Button) {
	l := n.factory.CreatePageDownButton(arrows.Left, "0", arrowImageWidth, arrowImageHeight)
	l.AddReleaseListener(left)
	n.track(l)

	r := n.factory.CreatePageUpButton(arrows.Right, "0", arrowImageWidth, arrowImageHeight)
	r.AddReleaseListener(right)
	n.track(r)
	return l, r
}

// addButton places the next button of the grid.
func (n *navigatorBar) addButton(imageName, keyAlias string, grid *layout.GridLayout, l action.Listener) (*ui.Button, error) {
	c, err := grid.Next()
	if err != nil {
		return nil, err
	}
	b := n.factory.CreateButton(imageName, keyAlias, c, l, n.bgr, ImageSizePercent)
	n.track(b)
	return b, nil
}

// arrowLayout splits bounds into two arrow zones and the centre.
func arrowLayout(bounds layout.Rectangle) *layout.BorderLayout {
	b := layout.NewBorderLayout(bounds)
	b.SetPercentConstraints(0, 0, PercentArrowWidth, PercentArrowWidth)
	return b
}

// Navigator is the file browser's bottom bar.
type Navigator struct {
	navigatorBar

	LeftButton  *ui.Button
	RightButton *ui.Button
}

var navigatorKeys = []string{
	action.GoLeftPage, action.GoRightPage, action.KeyHome, action.GoUserHome,
	action.GoRoot, action.GoToParent, action.GoBack, action.GoPlayer,
}

// NewNavigator builds the bar: paging arrows around home, user home,
// root, parent, back and player buttons.
func NewNavigator(factory *ui.Factory, bounds layout.Rectangle, listeners action.Map, bgr color.Color) (*Navigator, error) {
	if err := listeners.Require(navigatorKeys...); err != nil {
		return nil, err
	}
	n := &Navigator{navigatorBar: newNavigatorBar("navigator", factory, bounds, bgr)}

	arrows := arrowLayout(bounds)
	n.LeftButton, n.RightButton = n.addArrows(arrows, listeners[action.GoLeftPage], listeners[action.GoRightPage])

	grid := layout.NewGridLayout(arrows.Center)
	grid.SetPixelConstraints(1, 6, 1, 0)

	for _, e := range []struct {
		image, key, listener string
	}{
		{icons.Home, action.KeyHome, action.KeyHome},
		{icons.UserHome, action.KeyUserHome, action.GoUserHome},
		{icons.Root, action.KeyRoot, action.GoRoot},
		{icons.Parent, action.KeyParent, action.GoToParent},
		{icons.Back, action.KeyBack, action.GoBack},
		{icons.Player, action.KeyPlayPause, action.GoPlayer},
	} {
		if _, err := n.addButton(e.image, e.key, grid, listeners[e.listener]); err != nil {
			return nil, err
		}
	}
	return n, nil
}
