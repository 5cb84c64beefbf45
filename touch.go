package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type touchPoint struct {
	x, y int
}

// handleTouchEvents turns taps into presses and releases. Only the first
// finger counts; a second finger on the screen is ignored.
func (p *Peppy) handleTouchEvents() {
	if p.touches == nil {
		p.touches = make(map[ebiten.TouchID]touchPoint)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if len(p.touches) == 0 {
			p.ui.Press(x, y)
		}
		p.touches[id] = touchPoint{x, y}
	}

	// Track the last position; a released touch reports 0,0.
	for id := range p.touches {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		p.touches[id] = touchPoint{x, y}
	}

	for id, pt := range p.touches {
		if !inpututil.IsTouchJustReleased(id) {
			continue
		}
		delete(p.touches, id)
		if len(p.touches) == 0 {
			p.ui.Release(pt.x, pt.y)
		}
	}
}
