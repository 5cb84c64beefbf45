package layout

// Region names one of the five areas of a BorderLayout.
type Region int

const (
	RegionTop Region = iota
	RegionBottom
	RegionLeft
	RegionRight
	RegionCenter
)

func (r Region) String() string {
	switch r {
	case RegionTop:
		return "TOP"
	case RegionBottom:
		return "BOTTOM"
	case RegionLeft:
		return "LEFT"
	case RegionRight:
		return "RIGHT"
	case RegionCenter:
		return "CENTER"
	}
	return "UNKNOWN"
}

// BorderLayout splits a rectangle into edge-anchored regions. Top and
// Bottom span the full width, Left and Right span the height left between
// them and Center takes whatever remains.
//
// Regions are plain fields so callers can nudge a single region after the
// layout has been computed (for example to fit the bottom bar against the
// screen edge). Such edits survive until Recompute is called.
type BorderLayout struct {
	Top, Bottom, Left, Right, Center Rectangle

	bounds Rectangle

	// extents in pixels, derived from whichever constraint was set last
	top, bottom, left, right int
}

// NewBorderLayout returns a layout whose Center covers all of bounds.
func NewBorderLayout(bounds Rectangle) *BorderLayout {
	b := &BorderLayout{bounds: bounds}
	b.Recompute()
	return b
}

// SetPercentConstraints sets the edge extents as percentages of the
// matching bounding box dimension.
func (b *BorderLayout) SetPercentConstraints(top, bottom, left, right float64) {
	h := float64(b.bounds.Height)
	w := float64(b.bounds.Width)
	b.SetPixelConstraints(
		int(top*h/100),
		int(bottom*h/100),
		int(left*w/100),
		int(right*w/100),
	)
}

// SetPixelConstraints sets the edge extents in pixels.
func (b *BorderLayout) SetPixelConstraints(top, bottom, left, right int) {
	b.top, b.bottom = clampPair(top, bottom, b.bounds.Height)
	b.left, b.right = clampPair(left, right, b.bounds.Width)
	b.Recompute()
}

// Recompute derives every region from the bounds and stored extents,
// discarding manual region edits.
func (b *BorderLayout) Recompute() {
	r := b.bounds
	middle := r.Height - b.top - b.bottom

	b.Top = Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: b.top}
	b.Bottom = Rectangle{X: r.X, Y: r.Bottom() - b.bottom, Width: r.Width, Height: b.bottom}
	b.Left = Rectangle{X: r.X, Y: r.Y + b.top, Width: b.left, Height: middle}
	b.Right = Rectangle{X: r.Right() - b.right, Y: r.Y + b.top, Width: b.right, Height: middle}
	b.Center = Rectangle{
		X:      r.X + b.left,
		Y:      r.Y + b.top,
		Width:  r.Width - b.left - b.right,
		Height: middle,
	}
}

// Bounds returns the rectangle being partitioned.
func (b *BorderLayout) Bounds() Rectangle {
	return b.bounds
}

// Region returns the current rectangle of the named region.
func (b *BorderLayout) Region(r Region) Rectangle {
	switch r {
	case RegionTop:
		return b.Top
	case RegionBottom:
		return b.Bottom
	case RegionLeft:
		return b.Left
	case RegionRight:
		return b.Right
	}
	return b.Center
}

// Rectangles returns TOP, BOTTOM, LEFT, RIGHT and CENTER in that order.
func (b *BorderLayout) Rectangles() []Rectangle {
	return []Rectangle{b.Top, b.Bottom, b.Left, b.Right, b.Center}
}

// clampPair keeps two opposing extents non-negative and within total.
func clampPair(a, b, total int) (int, int) {
	a = min(max(a, 0), max(total, 0))
	b = min(max(b, 0), max(total-a, 0))
	return a, b
}
