package icons

import (
	"fmt"
	"log"
	"strings"

	"github.com/jonas-p/go-shp"
)

// NameField is the attribute column holding the icon name.
const NameField = "NAME"

// LoadShapefile reads an icon pack from a polygon shapefile. Each record
// is one polygon whose first part is the outline and whose remaining parts
// are holes; records sharing a NAME attribute form one icon. Coordinates
// are normalised per icon with y pointing up in the source.
func LoadShapefile(path string) (*Set, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon pack %s: %w", path, err)
	}
	defer r.Close()

	field := -1
	for i, f := range r.Fields() {
		name := strings.TrimRight(string(f.Name[:]), "\x00")
		if strings.EqualFold(strings.TrimSpace(name), NameField) {
			field = i
			break
		}
	}
	if field < 0 {
		return nil, fmt.Errorf("icon pack %s: no %s attribute", path, NameField)
	}

	shapes := make(map[string][]Polygon)
	var order []string
	for r.Next() {
		n, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			log.Printf("icons: skipping record %d of %s: not a polygon", n, path)
			continue
		}
		name := strings.Trim(r.ReadAttribute(n, field), " \x00")
		if name == "" {
			continue
		}
		if _, seen := shapes[name]; !seen {
			order = append(order, name)
		}
		shapes[name] = append(shapes[name], polygonParts(poly))
	}

	set := NewSet()
	for _, name := range order {
		if err := set.Add(name, Normalize(shapes[name], true)...); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// polygonParts splits a shapefile polygon into rings.
func polygonParts(p *shp.Polygon) Polygon {
	var rings Polygon
	for i, start := range p.Parts {
		end := int32(len(p.Points))
		if i+1 < len(p.Parts) {
			end = p.Parts[i+1]
		}
		ring := make([]Point, 0, end-start)
		for _, pt := range p.Points[start:end] {
			ring = append(ring, Point{X: pt.X, Y: pt.Y})
		}
		// shapefile rings repeat the first point at the end
		if n := len(ring); n > 1 && ring[0] == ring[n-1] {
			ring = ring[:n-1]
		}
		rings = append(rings, ring)
	}
	return rings
}
