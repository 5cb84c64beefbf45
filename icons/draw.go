package icons

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/peppy/layout"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Raster returns the icon rendered white at the given size. Rasters are
// cached per name and size.
func (s *Set) Raster(name string, width, height int) (*ebiten.Image, bool) {
	if width <= 0 || height <= 0 {
		return nil, false
	}
	ic, ok := s.Lookup(name)
	if !ok {
		return nil, false
	}

	key := rasterKey{name: name, width: width, height: height}
	s.cacheMu.RLock()
	img, found := s.cache[key]
	s.cacheMu.RUnlock()
	if found {
		return img, true
	}

	img = ebiten.NewImage(width, height)
	fill(img, ic, layout.Rect(0, 0, width, height))

	s.cacheMu.Lock()
	s.cache[key] = img
	s.cacheMu.Unlock()
	return img, true
}

// Draw renders the named icon into r on dst, tinted with clr. The icon
// keeps its aspect ratio and is centred in r. It reports false if the set
// has no such icon.
func (s *Set) Draw(dst *ebiten.Image, name string, r layout.Rectangle, clr color.Color) bool {
	side := min(r.Width, r.Height)
	img, ok := s.Raster(name, side, side)
	if !ok {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X+(r.Width-side)/2), float64(r.Y+(r.Height-side)/2))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(img, op)
	return true
}

// fill draws the icon's triangles in white, scaled to r.
func fill(dst *ebiten.Image, ic *Icon, r layout.Rectangle) {
	n := len(ic.Vertices) / 2
	if n == 0 || n > 1<<16 {
		return
	}
	vs := make([]ebiten.Vertex, n)
	for i := range vs {
		vs[i] = ebiten.Vertex{
			DstX:   float32(float64(r.X) + ic.Vertices[2*i]*float64(r.Width)),
			DstY:   float32(float64(r.Y) + ic.Vertices[2*i+1]*float64(r.Height)),
			SrcX:   1,
			SrcY:   1,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	is := make([]uint16, len(ic.Indices))
	for i, idx := range ic.Indices {
		is[i] = uint16(idx)
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, white(), op)
}
