package layout

import "fmt"

// GridLayout hands out the cells of a uniform rows x columns grid in
// row-major order. Cells are separated by fixed pixel gaps and together
// tile the bounds exactly; when the space does not divide evenly the last
// column and the last row absorb the remainder.
type GridLayout struct {
	// Current is the index of the cell the next call to Next returns.
	Current int

	bounds     Rectangle
	rows, cols int
	hgap, vgap int
}

// NewGridLayout returns a grid over bounds. It has no capacity until
// SetPixelConstraints is called.
func NewGridLayout(bounds Rectangle) *GridLayout {
	return &GridLayout{bounds: bounds}
}

// SetPixelConstraints sets the grid shape and the horizontal and vertical
// gaps between cells. The cursor is rewound.
func (g *GridLayout) SetPixelConstraints(rows, cols, hgap, vgap int) {
	g.rows = max(rows, 0)
	g.cols = max(cols, 0)
	g.hgap = max(hgap, 0)
	g.vgap = max(vgap, 0)
	g.Current = 0
}

// Capacity returns rows*columns.
func (g *GridLayout) Capacity() int {
	return g.rows * g.cols
}

// Next returns the cell under the cursor and advances it.
func (g *GridLayout) Next() (Rectangle, error) {
	if g.Current < 0 || g.Current >= g.Capacity() {
		return Rectangle{}, fmt.Errorf("cell %d of %dx%d: %w", g.Current, g.rows, g.cols, ErrCapacityExceeded)
	}
	r := g.Cell(g.Current)
	g.Current++
	return r, nil
}

// Reset rewinds the cursor to the first cell.
func (g *GridLayout) Reset() {
	g.Current = 0
}

// Cell returns the rectangle of cell i without moving the cursor.
func (g *GridLayout) Cell(i int) Rectangle {
	if g.cols == 0 || g.rows == 0 {
		return Rectangle{}
	}
	row, col := i/g.cols, i%g.cols
	x, w := span(g.bounds.X, g.bounds.Width, g.cols, g.hgap, col)
	y, h := span(g.bounds.Y, g.bounds.Height, g.rows, g.vgap, row)
	return Rectangle{X: x, Y: y, Width: w, Height: h}
}

// Bounds returns the rectangle being partitioned.
func (g *GridLayout) Bounds() Rectangle {
	return g.bounds
}

// Rectangles returns every cell in row-major order.
func (g *GridLayout) Rectangles() []Rectangle {
	cells := make([]Rectangle, 0, g.Capacity())
	for i := 0; i < g.Capacity(); i++ {
		cells = append(cells, g.Cell(i))
	}
	return cells
}

// span computes the origin and length of slot i out of n along one axis.
func span(origin, length, n, gap, i int) (int, int) {
	end := origin + length
	size := max((length-(n-1)*gap)/n, 0)
	start := min(origin+i*(size+gap), end)
	if i == n-1 {
		return start, end - start
	}
	return start, min(size, end-start)
}
