package menu

import (
	"fmt"
	"log"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
	"github.com/OpticalFlyer/peppy/ui"
)

// CollectionMode is the attribute a collection list is grouped by.
type CollectionMode string

const (
	ModeGenre    CollectionMode = "genre"
	ModeArtist   CollectionMode = "artist"
	ModeAlbum    CollectionMode = "album"
	ModeTitle    CollectionMode = "title"
	ModeDate     CollectionMode = "date"
	ModeType     CollectionMode = "type"
	ModeComposer CollectionMode = "composer"
)

// TextModes are the modes browsed by name, with ABC and keyboard search.
var TextModes = []CollectionMode{ModeGenre, ModeArtist, ModeAlbum, ModeTitle, ModeComposer}

// IsText reports whether m is one of TextModes.
func (m CollectionMode) IsText() bool {
	for _, t := range TextModes {
		if m == t {
			return true
		}
	}
	return false
}

var collectionKeys = []string{
	action.GoLeftPage, action.GoRightPage, action.KeyHome, action.KeyBack,
	action.Collection, action.KeyPlayer, action.KeyKeyboardKey,
	action.KeyCallback, action.KeyABC,
}

// CollectionListNavigator is the bottom bar of the collection list
// screens. Its button set depends on the collection mode.
type CollectionListNavigator struct {
	navigatorBar

	LeftButton  *ui.Button
	RightButton *ui.Button

	cfg       *config.Config
	listeners action.Map
	arrows    *layout.BorderLayout
	mode      CollectionMode
}

// NewCollectionListNavigator validates the listener map and the mode
// labels, then builds the buttons for mode.
func NewCollectionListNavigator(factory *ui.Factory, cfg *config.Config, bounds layout.Rectangle, listeners action.Map, mode CollectionMode) (*CollectionListNavigator, error) {
	if err := listeners.Require(collectionKeys...); err != nil {
		return nil, fmt.Errorf("collection navigator: %w", err)
	}
	for _, m := range TextModes {
		if _, err := cfg.Label(string(m)); err != nil {
			return nil, fmt.Errorf("collection navigator: %w", err)
		}
	}
	bgr, err := cfg.Color(config.ColorDarkLight)
	if err != nil {
		return nil, fmt.Errorf("collection navigator: %w", err)
	}

	n := &CollectionListNavigator{
		navigatorBar: newNavigatorBar("collection.navigator", factory, bounds, bgr),
		cfg:          cfg,
		listeners:    listeners,
		arrows:       arrowLayout(bounds),
	}
	if err := n.SetButtons(mode); err != nil {
		return nil, err
	}
	return n, nil
}

// Mode returns the mode the buttons were built for.
func (n *CollectionListNavigator) Mode() CollectionMode {
	return n.mode
}

// SetButtons rebuilds the bar for mode. Switching between two text modes
// keeps the existing buttons. Observers installed with AddObservers are
// carried over to the new buttons.
func (n *CollectionListNavigator) SetButtons(mode CollectionMode) error {
	if len(n.buttons) > 0 && n.mode.IsText() && mode.IsText() {
		n.mode = mode
		return nil
	}
	n.mode = mode
	n.reset()
	n.LeftButton, n.RightButton = n.addArrows(n.arrows, n.listeners[action.GoLeftPage], n.listeners[action.GoRightPage])

	type entry struct {
		image, key string
		listener   action.Listener
	}
	entries := []entry{
		{icons.Home, action.KeyHome, n.listeners[action.KeyHome]},
		{icons.Back, action.KeyBack, n.listeners[action.KeyBack]},
		{icons.Collection, action.KeyBack, n.listeners[action.Collection]},
	}
	if mode.IsText() {
		entries = append(entries, entry{icons.ABC, action.KeyHome, n.PreABC})
	}
	if mode != ModeType {
		entries = append(entries, entry{icons.BookGenre, action.KeyHome, n.PreKeyboard})
	}
	entries = append(entries, entry{icons.Player, action.KeyPlayPause, n.listeners[action.KeyPlayer]})

	grid := layout.NewGridLayout(n.arrows.Center)
	grid.SetPixelConstraints(1, len(entries), 1, 0)
	for _, e := range entries {
		if _, err := n.addButton(e.image, e.key, grid, e.listener); err != nil {
			return fmt.Errorf("collection navigator: %w", err)
		}
	}
	if n.redraw != nil {
		n.redraw()
	}
	return nil
}

// PreABC opens the ABC selector titled after the current mode.
func (n *CollectionListNavigator) PreABC(action.Request) {
	n.listeners[action.KeyABC](action.NewABCEntry(n.title(), n.listeners[action.KeyCallback]))
}

// PreKeyboard opens the on-screen keyboard titled after the current mode.
func (n *CollectionListNavigator) PreKeyboard(action.Request) {
	n.listeners[action.KeyKeyboardKey](action.NewKeyboardEntry(n.title(), n.listeners[action.KeyCallback]))
}

func (n *CollectionListNavigator) title() string {
	label, err := n.cfg.Label(string(n.mode))
	if err != nil {
		log.Printf("collection navigator: %v", err)
		return string(n.mode)
	}
	return label
}
