package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/peppy/layout"
)

var _ Container = (*Panel)(nil)

// Panel is the composite node of the UI tree. It owns an ordered list of
// children and draws them in that order.
type Panel struct {
	Base
	components []Component
}

// NewPanel creates an empty panel covering bounds.
func NewPanel(name string, bounds layout.Rectangle) *Panel {
	return &Panel{Base: NewBase(name, bounds)}
}

// AddComponent appends c. Duplicates are not detected.
func (p *Panel) AddComponent(c Component) {
	c.SetParent(p)
	p.components = append(p.components, c)
}

// RemoveComponent removes the first occurrence of c, keeping the order of
// the others.
func (p *Panel) RemoveComponent(c Component) {
	for i, child := range p.components {
		if child == c {
			p.components = append(p.components[:i], p.components[i+1:]...)
			c.SetParent(nil)
			return
		}
	}
}

// Components returns the children in draw order.
func (p *Panel) Components() []Component {
	return p.components
}

// Clear removes every child.
func (p *Panel) Clear() {
	for _, c := range p.components {
		c.SetParent(nil)
	}
	p.components = nil
}

func (p *Panel) Update() error {
	for _, c := range p.components {
		if err := c.Update(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if !p.IsVisible() {
		return
	}
	p.Base.Draw(screen)
	for _, c := range p.components {
		c.Draw(screen)
	}
}

// HandleInput is a no-op: hit testing is done by the dispatcher.
func (p *Panel) HandleInput(x, y int, pressed bool) bool {
	return false
}

// AddButtonObservers installs the screen's observers on b. A button keeps
// one observer of each kind, so calling this again replaces them.
func (p *Panel) AddButtonObservers(b *Button, update UpdateObserver, redraw RedrawObserver) {
	b.SetObservers(update, redraw)
}
