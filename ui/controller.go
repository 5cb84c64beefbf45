package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/peppy/action"
)

// DefaultKeyMap maps keyboard keys to button key aliases.
var DefaultKeyMap = map[ebiten.Key]string{
	ebiten.KeyHome:      action.KeyHome,
	ebiten.KeyBackspace: action.KeyBack,
	ebiten.KeyEscape:    action.KeyBack,
	ebiten.KeySpace:     action.KeyPlayPause,
	ebiten.KeyS:         action.KeySetup,
	ebiten.KeyU:         action.KeyParent,
	ebiten.KeyEnter:     action.KeySelect,
	ebiten.KeyPageUp:    action.KeyPageUp,
	ebiten.KeyPageDown:  action.KeyPageDown,
	ebiten.KeyLeft:      action.KeyPageDown,
	ebiten.KeyRight:     action.KeyPageUp,
}

// Controller owns the screens, routes input to the active one and tracks
// what needs repainting.
type Controller struct {
	screens map[string]Container
	active  Container
	name    string

	// Button held down by the pointer, if any
	pressed Component
	// Button held down by a key, if any
	keyPressed *Button
	keyHeld    ebiten.Key

	KeyMap map[ebiten.Key]string

	dirty      map[string]Component
	fullRedraw bool
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		screens:    make(map[string]Container),
		KeyMap:     DefaultKeyMap,
		dirty:      make(map[string]Component),
		fullRedraw: true,
	}
}

// AddScreen registers a screen under name.
func (c *Controller) AddScreen(name string, screen Container) {
	c.screens[name] = screen
}

// SetScreen hides the active screen and shows the named one.
func (c *Controller) SetScreen(name string) error {
	screen, ok := c.screens[name]
	if !ok {
		return fmt.Errorf("ui: no screen %q", name)
	}
	if c.active != nil {
		c.active.SetVisible(false)
	}
	c.cancelPress()
	screen.SetVisible(true)
	c.active = screen
	c.name = name
	c.Redraw()
	log.Printf("ui: switched to screen %s", name)
	return nil
}

// Active returns the screen receiving input.
func (c *Controller) Active() Container {
	return c.active
}

// ActiveName returns the name of the active screen.
func (c *Controller) ActiveName() string {
	return c.name
}

// Press dispatches a pointer press at (x, y) to the topmost component.
func (c *Controller) Press(x, y int) {
	hit := HitTest(c.active, x, y)
	if hit == nil {
		return
	}
	if hit.HandleInput(x, y, true) {
		c.pressed = hit
	}
}

// Release ends the current pointer press at (x, y). The component that
// received the press gets the release even if the pointer moved away.
func (c *Controller) Release(x, y int) {
	if c.pressed == nil {
		return
	}
	p := c.pressed
	c.pressed = nil
	p.HandleInput(x, y, false)
}

func (c *Controller) cancelPress() {
	if b, ok := c.pressed.(*Button); ok {
		b.Cancel()
	}
	c.pressed = nil
	if c.keyPressed != nil {
		c.keyPressed.Cancel()
		c.keyPressed = nil
	}
}

// FindKey returns the first visible button on the active screen with
// the given key alias.
func (c *Controller) FindKey(alias string) *Button {
	if c.active == nil || alias == "" {
		return nil
	}
	var found *Button
	Walk(c.active, func(comp Component) bool {
		if !comp.IsVisible() {
			return true
		}
		if b, ok := comp.(*Button); ok && b.KeyAlias == alias {
			found = b
			return false
		}
		return true
	})
	return found
}

// UpdateObserver marks a single component for repainting.
func (c *Controller) UpdateObserver(comp Component) {
	c.dirty[comp.ID()] = comp
}

// RedrawObserver marks the whole screen for repainting.
func (c *Controller) RedrawObserver() {
	c.fullRedraw = true
}

// Redraw forces a full repaint on the next frame.
func (c *Controller) Redraw() {
	c.fullRedraw = true
}

// NeedsRedraw reports whether anything is waiting to be painted.
func (c *Controller) NeedsRedraw() bool {
	return c.fullRedraw || len(c.dirty) > 0
}

// Update polls mouse and keyboard input. Touch input is fed in through
// Press and Release by the game loop.
func (c *Controller) Update() error {
	if c.active == nil {
		return nil
	}
	if err := c.active.Update(); err != nil {
		return err
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.Press(x, y)
	} else if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.Release(x, y)
	}

	for key, alias := range c.KeyMap {
		if c.keyPressed == nil && inpututil.IsKeyJustPressed(key) {
			if b := c.FindKey(alias); b != nil {
				b.Press()
				c.keyPressed = b
				c.keyHeld = key
			}
		}
	}
	if c.keyPressed != nil && inpututil.IsKeyJustReleased(c.keyHeld) {
		b := c.keyPressed
		c.keyPressed = nil
		b.Release()
	}
	return nil
}

// Draw paints the active screen, or only the components that changed
// since the last frame.
func (c *Controller) Draw(screen *ebiten.Image) {
	if c.active == nil {
		return
	}
	if !c.fullRedraw {
		for _, comp := range c.dirty {
			if c.shown(comp) && !opaque(comp) {
				c.fullRedraw = true
				break
			}
		}
	}
	if c.fullRedraw {
		screen.Clear()
		c.active.Draw(screen)
	} else {
		for _, comp := range c.dirty {
			if c.shown(comp) {
				comp.Draw(screen)
			}
		}
	}
	c.fullRedraw = false
	clear(c.dirty)
}

// shown reports whether comp is part of the active screen and it and all
// of its ancestors are visible.
func (c *Controller) shown(comp Component) bool {
	for {
		if !comp.IsVisible() {
			return false
		}
		parent := comp.GetParent()
		if parent == nil {
			return comp.ID() == c.active.ID()
		}
		comp = parent
	}
}

// opaque reports whether comp repaints its whole rectangle, so it can be
// drawn on its own without clearing what is underneath.
func opaque(comp Component) bool {
	switch v := comp.(type) {
	case *Button:
		return v.Bgr != nil
	case *DynamicText:
		return v.Bgr != nil
	}
	return false
}

// IsInteractingWithUI returns true while a press is in progress
func (c *Controller) IsInteractingWithUI() bool {
	return c.pressed != nil || c.keyPressed != nil
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f\nScreen: %s", fps, tps, c.name))
}
