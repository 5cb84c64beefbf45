package menu

import (
	"fmt"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
)

var wifiKeys = []string{
	action.KeyHome, action.KeyRefresh, action.KeySort, action.KeyCallback, action.KeyPlayer,
}

// WiFiNavigator is the bottom bar of the network list. Paging arrows are
// shown only when the list spans more than one page.
type WiFiNavigator struct {
	navigatorBar

	// nil for a single page
	LeftButton  *ui.Button
	RightButton *ui.Button
}

// NewWiFiNavigator builds the bar for a network list of pages pages.
func NewWiFiNavigator(factory *ui.Factory, cfg *config.Config, bounds layout.Rectangle, listeners action.Map, pages int) (*WiFiNavigator, error) {
	keys := wifiKeys
	if pages > 1 {
		keys = append([]string{action.GoLeftPage, action.GoRightPage}, keys...)
	}
	if err := listeners.Require(keys...); err != nil {
		return nil, fmt.Errorf("wifi navigator: %w", err)
	}
	bgr, err := cfg.Color(config.ColorDarkLight)
	if err != nil {
		return nil, fmt.Errorf("wifi navigator: %w", err)
	}

	n := &WiFiNavigator{navigatorBar: newNavigatorBar("wifi.navigator", factory, bounds, bgr)}

	center := bounds
	if pages > 1 {
		arrows := arrowLayout(bounds)
		n.LeftButton, n.RightButton = n.addArrows(arrows, listeners[action.GoLeftPage], listeners[action.GoRightPage])
		center = arrows.Center
	}

	grid := layout.NewGridLayout(center)
	grid.SetPixelConstraints(1, 5, 1, 0)
	for _, e := range []struct {
		image, key, listener string
	}{
		{icons.Home, action.KeyHome, action.KeyHome},
		{icons.Refresh, action.KeySetup, action.KeyRefresh},
		{icons.Sort, action.KeyParent, action.KeySort},
		{icons.Network, action.KeyBack, action.KeyCallback},
		{icons.Player, action.KeyPlayPause, action.KeyPlayer},
	} {
		if _, err := n.addButton(e.image, e.key, grid, listeners[e.listener]); err != nil {
			return nil, fmt.Errorf("wifi navigator: %w", err)
		}
	}
	return n, nil
}
