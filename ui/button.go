package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
)

var _ Component = (*Button)(nil)

// Button is a touch target showing an icon and/or a label. Release
// listeners run when a press that started on the button ends on it.
type Button struct {
	Base

	State     *action.ButtonState
	ImageName string
	KeyAlias  string
	Label     string

	// Icon size relative to the button, in percent.
	ImageWidthPercent  float64
	ImageHeightPercent float64
	FontSize           int

	// SelectedBgr replaces Bgr while the button is held.
	SelectedBgr color.Color

	icons    *icons.Set
	selected bool

	pressListeners   []action.Listener
	releaseListeners []action.Listener
	labelListeners   []func(string)

	update UpdateObserver
	redraw RedrawObserver
}

// NewButton creates a button named after its image.
func NewButton(imageName, keyAlias string, bounds layout.Rectangle) *Button {
	return &Button{
		Base:               NewBase(imageName, bounds),
		State:              &action.ButtonState{Name: imageName, KeyAlias: keyAlias},
		ImageName:          imageName,
		KeyAlias:           keyAlias,
		ImageWidthPercent:  100,
		ImageHeightPercent: 100,
	}
}

// AddPressListener registers l to run when the button is pressed.
func (b *Button) AddPressListener(l action.Listener) {
	if l != nil {
		b.pressListeners = append(b.pressListeners, l)
	}
}

// AddReleaseListener registers l to run when the button is released.
func (b *Button) AddReleaseListener(l action.Listener) {
	if l != nil {
		b.releaseListeners = append(b.releaseListeners, l)
	}
}

// AddLabelListener registers fn to run whenever the label changes.
func (b *Button) AddLabelListener(fn func(string)) {
	b.labelListeners = append(b.labelListeners, fn)
}

// ReleaseListeners returns how many release listeners are registered.
func (b *Button) ReleaseListeners() int {
	return len(b.releaseListeners)
}

// SetObservers installs the update and redraw observers, replacing any
// previous ones.
func (b *Button) SetObservers(update UpdateObserver, redraw RedrawObserver) {
	b.update = update
	b.redraw = redraw
}

// HasObservers reports whether an update observer is installed.
func (b *Button) HasObservers() bool {
	return b.update != nil
}

// ChangeLabel replaces the label text.
func (b *Button) ChangeLabel(label string) {
	b.Label = label
	b.State.Label = label
	for _, fn := range b.labelListeners {
		fn(label)
	}
	b.notifyUpdate()
}

// Selected reports whether the button is currently held.
func (b *Button) Selected() bool {
	return b.selected
}

// Press selects the button and runs the press listeners.
func (b *Button) Press() {
	if b.selected {
		return
	}
	b.selected = true
	for _, l := range b.pressListeners {
		l(b.State)
	}
	b.notifyUpdate()
}

// Release deselects the button and runs the release listeners.
func (b *Button) Release() {
	if !b.selected {
		return
	}
	b.selected = false
	for _, l := range b.releaseListeners {
		l(b.State)
	}
	b.notifyUpdate()
	if b.redraw != nil {
		b.redraw()
	}
}

// Cancel deselects the button without firing release listeners.
func (b *Button) Cancel() {
	if !b.selected {
		return
	}
	b.selected = false
	b.notifyUpdate()
}

func (b *Button) notifyUpdate() {
	if b.update != nil {
		b.update(b)
	}
}

// HandleInput presses the button when (x, y) is inside it and releases it
// when the pointer comes up inside. Letting go outside cancels the press.
func (b *Button) HandleInput(x, y int, pressed bool) bool {
	if !b.IsVisible() {
		return false
	}
	inside := b.Bounds().Contains(x, y)
	switch {
	case inside && pressed:
		b.Press()
	case inside:
		b.Release()
	default:
		b.Cancel()
	}
	return inside
}

func (b *Button) Draw(screen *ebiten.Image) {
	if !b.IsVisible() {
		return
	}
	r := b.Bounds()

	bgr := b.Bgr
	if b.selected && b.SelectedBgr != nil {
		bgr = b.SelectedBgr
	}
	fillRect(screen, r, bgr)

	fgr := b.Fgr
	if fgr == nil {
		fgr = color.White
	}

	iconArea := r.Scale(b.ImageWidthPercent, b.ImageHeightPercent)
	drewIcon := b.icons != nil && b.icons.Draw(screen, b.ImageName, iconArea, fgr)
	switch {
	case b.Label != "" && drewIcon:
		drawText(screen, b.Label, labelArea(r, b.FontSize), fgr, b.FontSize)
	case b.Label != "":
		drawText(screen, b.Label, r, fgr, b.FontSize)
	case !drewIcon:
		drawText(screen, b.ImageName, r, fgr, b.FontSize)
	}

	if b.selected {
		vector.StrokeRect(screen, float32(r.X)+0.5, float32(r.Y)+0.5,
			float32(r.Width)-1, float32(r.Height)-1, 1, fgr, false)
	}
}

// labelArea is the strip along the bottom of r used for labels drawn
// under an icon.
func labelArea(r layout.Rectangle, size int) layout.Rectangle {
	h := size + 4
	if size <= 0 {
		h = baseFontSize + 4
	}
	h = min(h, r.Height)
	return layout.Rect(r.X, r.Bottom()-h, r.Width, h)
}
