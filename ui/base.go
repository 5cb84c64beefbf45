package ui

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/peppy/layout"
)

var _ Component = (*Base)(nil)

// Base is a plain rectangular leaf. Widgets embed it for the bookkeeping
// every component shares.
type Base struct {
	name    string
	id      string
	bounds  layout.Rectangle
	visible bool
	parent  Container

	// ContentX and ContentY offset the content from the bounds origin.
	ContentX, ContentY int

	Fgr color.Color
	Bgr color.Color
}

// NewBase returns a visible leaf covering bounds.
func NewBase(name string, bounds layout.Rectangle) Base {
	return Base{
		name:     name,
		id:       uuid.NewString(),
		bounds:   bounds,
		visible:  true,
		ContentX: bounds.X,
		ContentY: bounds.Y,
	}
}

func (b *Base) Name() string { return b.name }

// SetName renames the component.
func (b *Base) SetName(name string) { b.name = name }

// ID returns an identifier unique to this component instance.
func (b *Base) ID() string { return b.id }

func (b *Base) Bounds() layout.Rectangle { return b.bounds }

// SetBounds moves the component.
func (b *Base) SetBounds(r layout.Rectangle) {
	b.bounds = r
	b.ContentX, b.ContentY = r.X, r.Y
}

func (b *Base) IsVisible() bool { return b.visible }

// SetVisible changes only this component's flag.
func (b *Base) SetVisible(visible bool) { b.visible = visible }

func (b *Base) SetParent(parent Container) { b.parent = parent }

func (b *Base) GetParent() Container { return b.parent }

func (b *Base) Update() error { return nil }

func (b *Base) HandleInput(x, y int, pressed bool) bool { return false }

func (b *Base) Draw(screen *ebiten.Image) {
	if !b.visible {
		return
	}
	fillRect(screen, b.bounds, b.Bgr)
}
