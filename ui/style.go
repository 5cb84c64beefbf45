package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/peppy/layout"
)

// baseFontSize is the pixel height of the bitmap face all text is scaled from.
const baseFontSize = 13

// fontFace is the cached font face
var fontFace text.Face

// FontFace returns the font face to use for UI text
func FontFace() text.Face {
	if fontFace == nil {
		fontFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return fontFace
}

var backgrounds = map[color.Color]*image.NineSlice{}

// fillRect paints r with a flat nine-slice of clr.
func fillRect(dst *ebiten.Image, r layout.Rectangle, clr color.Color) {
	if clr == nil || r.Empty() {
		return
	}
	ns, ok := backgrounds[clr]
	if !ok {
		ns = image.NewNineSliceColor(clr)
		backgrounds[clr] = ns
	}
	ns.Draw(dst, r.Width, r.Height, func(opts *ebiten.DrawImageOptions) {
		opts.GeoM.Translate(float64(r.X), float64(r.Y))
	})
}

// drawText draws s centred in r at the given pixel size.
func drawText(dst *ebiten.Image, s string, r layout.Rectangle, clr color.Color, size int) {
	if s == "" || clr == nil {
		return
	}
	scale := 1.0
	if size > 0 {
		scale = float64(size) / baseFontSize
	}

	opts := &text.DrawOptions{}
	opts.LayoutOptions.PrimaryAlign = text.AlignCenter
	opts.LayoutOptions.SecondaryAlign = text.AlignCenter
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(float64(r.X)+float64(r.Width)/2, float64(r.Y)+float64(r.Height)/2)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, FontFace(), opts)
}

// textWidth returns the width of s at the given pixel size.
func textWidth(s string, size int) float64 {
	w, _ := text.Measure(s, FontFace(), 0)
	if size <= 0 {
		return w
	}
	return w * float64(size) / baseFontSize
}
