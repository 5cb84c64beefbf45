package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/peppy/layout"
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	Update() error
	Draw(screen *ebiten.Image)
	Bounds() layout.Rectangle
	HandleInput(x, y int, pressed bool) bool
	SetParent(parent Container)
	GetParent() Container
	Name() string
	ID() string
	IsVisible() bool
	SetVisible(visible bool)
}

// Container represents a Component that can hold and manage other Components.
// Children are kept in insertion order, which is also the draw order.
type Container interface {
	Component
	AddComponent(c Component)
	RemoveComponent(c Component)
	Components() []Component
}

// UpdateObserver is told when a single component needs repainting.
type UpdateObserver func(c Component)

// RedrawObserver is told when the whole screen needs repainting.
type RedrawObserver func()

// HitTest returns the topmost visible leaf under (x, y), or nil.
// Containers never handle input themselves; later children are drawn on
// top of earlier ones and so are tested first.
func HitTest(root Component, x, y int) Component {
	if root == nil || !root.IsVisible() || !root.Bounds().Contains(x, y) {
		return nil
	}
	c, ok := root.(Container)
	if !ok {
		return root
	}
	children := c.Components()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := HitTest(children[i], x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// Walk calls fn for root and every descendant in draw order until fn
// returns false.
func Walk(root Component, fn func(Component) bool) bool {
	if !fn(root) {
		return false
	}
	if c, ok := root.(Container); ok {
		for _, child := range c.Components() {
			if !Walk(child, fn) {
				return false
			}
		}
	}
	return true
}
