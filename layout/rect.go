// Package layout converts percentage and pixel constraints into pixel
// rectangles for the widget tree.
package layout

import (
	"errors"
	"fmt"
	"image"
)

// ErrCapacityExceeded is returned when a grid is asked for more cells than
// rows*columns provides.
var ErrCapacityExceeded = errors.New("layout: grid capacity exceeded")

// Rectangle is an axis aligned area in screen pixels.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Layout partitions a bounding rectangle into sub-rectangles.
type Layout interface {
	Bounds() Rectangle
	Rectangles() []Rectangle
}

// Rect is shorthand for a Rectangle literal.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Right returns the first x coordinate past the rectangle.
func (r Rectangle) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the rectangle.
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether o lies completely inside r.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Overlaps reports whether the two rectangles share at least one pixel.
func (r Rectangle) Overlaps(o Rectangle) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inset shrinks the rectangle by d pixels on every side.
func (r Rectangle) Inset(d int) Rectangle {
	w := max(0, r.Width-2*d)
	h := max(0, r.Height-2*d)
	return Rectangle{X: r.X + d, Y: r.Y + d, Width: w, Height: h}
}

// Scale returns a rectangle of the given width and height percentages
// centered inside r.
func (r Rectangle) Scale(wPercent, hPercent float64) Rectangle {
	w := int(float64(r.Width) * wPercent / 100)
	h := int(float64(r.Height) * hPercent / 100)
	return Rectangle{
		X:      r.X + (r.Width-w)/2,
		Y:      r.Y + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

// Image converts the rectangle to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
