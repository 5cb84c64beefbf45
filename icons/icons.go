// Package icons provides the vector icons drawn on buttons. Icons are
// polygons in a unit square, triangulated once when they are added and
// rasterised per size on first draw.
package icons

import (
	"fmt"
	"math"
	"sort"
	"sync"

	earcut "github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
)

// Point is a polygon vertex. Icon coordinates run from 0 to 1 with y
// pointing down.
type Point struct {
	X, Y float64
}

// Polygon is an outer ring followed by optional hole rings.
type Polygon [][]Point

// Icon is a triangulated shape ready to be drawn.
type Icon struct {
	Name     string
	Vertices []float64 // x,y pairs
	Indices  []int     // three per triangle
}

// Area returns the area covered by the icon's triangles.
func (ic *Icon) Area() float64 {
	var a float64
	for i := 0; i+2 < len(ic.Indices); i += 3 {
		a += triangleArea(ic.Vertices, ic.Indices[i], ic.Indices[i+1], ic.Indices[i+2])
	}
	return a
}

type rasterKey struct {
	name   string
	width  int
	height int
}

// Set is a collection of named icons.
type Set struct {
	mu    sync.RWMutex
	icons map[string]*Icon

	cacheMu sync.RWMutex
	cache   map[rasterKey]*ebiten.Image
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{
		icons: make(map[string]*Icon),
		cache: make(map[rasterKey]*ebiten.Image),
	}
}

// Add triangulates polygons and stores them under name. Adding to an
// existing name appends the new shapes to the icon.
func (s *Set) Add(name string, polygons ...Polygon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ic, ok := s.icons[name]
	if !ok {
		ic = &Icon{Name: name}
	}
	for _, p := range polygons {
		verts, idx, err := Triangulate(p)
		if err != nil {
			return fmt.Errorf("icon %q: %w", name, err)
		}
		base := len(ic.Vertices) / 2
		ic.Vertices = append(ic.Vertices, verts...)
		for _, i := range idx {
			ic.Indices = append(ic.Indices, base+i)
		}
	}
	s.icons[name] = ic

	s.dropRasters(name)
	return nil
}

// Lookup returns the icon stored under name.
func (s *Set) Lookup(name string) (*Icon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ic, ok := s.icons[name]
	return ic, ok
}

// Has reports whether name is in the set.
func (s *Set) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the icon names in sorted order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.icons))
	for n := range s.icons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Merge copies every icon of o into s, replacing icons with the same name.
func (s *Set) Merge(o *Set) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, ic := range o.icons {
		s.icons[name] = ic
		s.dropRasters(name)
	}
}

func (s *Set) dropRasters(name string) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	for k := range s.cache {
		if k.name == name {
			delete(s.cache, k)
		}
	}
}

// Triangulate flattens a polygon and splits it into triangles. It returns
// the flattened x,y coordinates and three vertex indices per triangle.
func Triangulate(p Polygon) ([]float64, []int, error) {
	if len(p) == 0 || len(p[0]) < 3 {
		return nil, nil, fmt.Errorf("polygon needs an outer ring of at least 3 points")
	}

	var data []float64
	var holes []int
	for i, ring := range p {
		if i > 0 {
			holes = append(holes, len(data)/2)
		}
		for _, pt := range ring {
			data = append(data, pt.X, pt.Y)
		}
	}

	indices, err := earcut.Earcut(data, holes, 2)
	if err != nil {
		return nil, nil, err
	}
	return data, indices, nil
}

// Normalize scales polygons so that together they fit the unit square,
// keeping their aspect ratio and centring them. When flipY is set the
// y axis is inverted, for source data whose y axis points up.
func Normalize(polygons []Polygon, flipY bool) []Polygon {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polygons {
		for _, ring := range p {
			for _, pt := range ring {
				minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
				minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
			}
		}
	}
	size := math.Max(maxX-minX, maxY-minY)
	if size <= 0 || math.IsInf(size, 0) {
		return polygons
	}
	offX := (size - (maxX - minX)) / 2
	offY := (size - (maxY - minY)) / 2

	out := make([]Polygon, len(polygons))
	for i, p := range polygons {
		out[i] = make(Polygon, len(p))
		for j, ring := range p {
			out[i][j] = make([]Point, len(ring))
			for k, pt := range ring {
				x := (pt.X - minX + offX) / size
				y := (pt.Y - minY + offY) / size
				if flipY {
					y = 1 - y
				}
				out[i][j][k] = Point{X: x, Y: y}
			}
		}
	}
	return out
}

func triangleArea(v []float64, a, b, c int) float64 {
	ax, ay := v[2*a], v[2*a+1]
	bx, by := v[2*b], v[2*b+1]
	cx, cy := v[2*c], v[2*c+1]
	return math.Abs((bx-ax)*(cy-ay)-(cx-ax)*(by-ay)) / 2
}
