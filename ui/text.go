package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/peppy/layout"
)

var _ Component = (*DynamicText)(nil)

// DynamicText is a single line of text whose content changes at runtime,
// such as a screen title.
type DynamicText struct {
	Base

	FontSize int
	text     string
	update   UpdateObserver
}

// NewDynamicText creates an empty text component.
func NewDynamicText(name string, bounds layout.Rectangle, bgr, fgr color.Color, fontSize int) *DynamicText {
	t := &DynamicText{
		Base:     NewBase(name, bounds),
		FontSize: fontSize,
	}
	t.Bgr = bgr
	t.Fgr = fgr
	return t
}

// Text returns the current text.
func (t *DynamicText) Text() string {
	return t.text
}

// SetText replaces the text and asks for a repaint.
func (t *DynamicText) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	if t.update != nil {
		t.update(t)
	}
}

// SetUpdateObserver installs the observer told about text changes.
func (t *DynamicText) SetUpdateObserver(update UpdateObserver) {
	t.update = update
}

func (t *DynamicText) Draw(screen *ebiten.Image) {
	if !t.IsVisible() {
		return
	}
	r := t.Bounds()
	fillRect(screen, r, t.Bgr)
	drawText(screen, fit(t.text, r.Width, t.FontSize), r, t.Fgr, t.FontSize)
}

// fit shortens s from the left until it fits in width pixels, so the end
// of a long path stays visible.
func fit(s string, width, size int) string {
	if textWidth(s, size) <= float64(width) {
		return s
	}
	r := []rune(s)
	for len(r) > 1 {
		r = r[1:]
		candidate := "..." + string(r)
		if textWidth(candidate, size) <= float64(width) {
			return candidate
		}
	}
	return string(r)
}
