package ui

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/OpticalFlyer/peppy/action"
	"github.com/OpticalFlyer/peppy/config"
	"github.com/OpticalFlyer/peppy/icons"
	"github.com/OpticalFlyer/peppy/layout"
)

// Factory builds pre-styled widgets from the configured theme.
type Factory struct {
	Icons *icons.Set

	fgr      color.RGBA
	selected color.RGBA
	missing  sync.Map // icon names already reported
}

// NewFactory reads the theme colours from cfg.
func NewFactory(cfg *config.Config, set *icons.Set) (*Factory, error) {
	fgr, err := cfg.Color(config.ColorBright)
	if err != nil {
		return nil, fmt.Errorf("factory: %w", err)
	}
	selected, err := cfg.Color(config.ColorMedium)
	if err != nil {
		return nil, fmt.Errorf("factory: %w", err)
	}
	if set == nil {
		set = icons.Builtin()
	}
	return &Factory{Icons: set, fgr: fgr, selected: selected}, nil
}

// CreateButton builds an icon button bound to listener.
func (f *Factory) CreateButton(imageName, keyAlias string, r layout.Rectangle, listener action.Listener, bgr color.Color, imageSizePercent float64) *Button {
	f.checkIcon(imageName)

	b := NewButton(imageName, keyAlias, r)
	b.icons = f.Icons
	b.Bgr = bgr
	b.Fgr = f.fgr
	b.SelectedBgr = f.selected
	b.ImageWidthPercent = imageSizePercent
	b.ImageHeightPercent = imageSizePercent
	b.AddReleaseListener(listener)
	return b
}

// CreatePageDownButton builds the left paging arrow. The label shows how
// many items lie on previous pages.
func (f *Factory) CreatePageDownButton(r layout.Rectangle, label string, wPercent, hPercent float64) *Button {
	return f.createArrowButton(icons.LeftArrow, action.KeyPageDown, r, label, wPercent, hPercent)
}

// CreatePageUpButton builds the right paging arrow. The label shows how
// many items lie on following pages.
func (f *Factory) CreatePageUpButton(r layout.Rectangle, label string, wPercent, hPercent float64) *Button {
	return f.createArrowButton(icons.RightArrow, action.KeyPageUp, r, label, wPercent, hPercent)
}

func (f *Factory) createArrowButton(imageName, keyAlias string, r layout.Rectangle, label string, wPercent, hPercent float64) *Button {
	b := NewButton(imageName, keyAlias, r)
	b.icons = f.Icons
	b.Fgr = f.fgr
	b.SelectedBgr = f.selected
	b.ImageWidthPercent = wPercent
	b.ImageHeightPercent = hPercent
	b.FontSize = r.Height / 4
	b.ChangeLabel(label)
	return b
}

// CreateTextButton builds a button that shows a label, optionally with an
// icon above it.
func (f *Factory) CreateTextButton(name, imageName, label string, r layout.Rectangle, listener action.Listener, bgr color.Color) *Button {
	b := NewButton(imageName, "", r)
	b.SetName(name)
	b.State.Name = name
	b.icons = f.Icons
	b.Bgr = bgr
	b.Fgr = f.fgr
	b.SelectedBgr = f.selected
	b.ImageWidthPercent = 50
	b.ImageHeightPercent = 50
	b.FontSize = max(r.Height/6, 8)
	b.ChangeLabel(label)
	b.AddReleaseListener(listener)
	return b
}

// CreateDynamicText builds a text line such as a screen title.
func (f *Factory) CreateDynamicText(name string, r layout.Rectangle, bgr, fgr color.Color, fontSize int) *DynamicText {
	return NewDynamicText(name, r, bgr, fgr, fontSize)
}

func (f *Factory) checkIcon(name string) {
	if f.Icons.Has(name) {
		return
	}
	if _, seen := f.missing.LoadOrStore(name, true); !seen {
		log.Printf("ui: no icon %q, falling back to its name", name)
	}
}
