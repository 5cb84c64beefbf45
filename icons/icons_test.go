package icons

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
)

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name      string
		polygon   Polygon
		triangles int
		area      float64
	}{
		{
			name:      "square",
			polygon:   Polygon{rect(0, 0, 1, 1)},
			triangles: 2,
			area:      1,
		},
		{
			name:      "square with hole",
			polygon:   Polygon{rect(0, 0, 1, 1), rect(0.25, 0.25, 0.5, 0.5)},
			triangles: 8,
			area:      0.75,
		},
		{
			name:      "triangle",
			polygon:   Polygon{{{0, 0}, {1, 0}, {0, 1}}},
			triangles: 1,
			area:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts, idx, err := Triangulate(tt.polygon)
			if err != nil {
				t.Fatalf("Triangulate: %v", err)
			}
			if len(idx) != tt.triangles*3 {
				t.Errorf("got %d triangles; want %d", len(idx)/3, tt.triangles)
			}
			ic := &Icon{Vertices: verts, Indices: idx}
			if math.Abs(ic.Area()-tt.area) > 1e-9 {
				t.Errorf("area %f; want %f", ic.Area(), tt.area)
			}
		})
	}
}

func TestTriangulateRejectsDegenerate(t *testing.T) {
	if _, _, err := Triangulate(Polygon{{{0, 0}, {1, 1}}}); err == nil {
		t.Error("expected error for two-point ring")
	}
	if _, _, err := Triangulate(nil); err == nil {
		t.Error("expected error for empty polygon")
	}
}

func TestBuiltinCoversNavigatorIcons(t *testing.T) {
	s := Builtin()
	for _, name := range []string{
		Home, Back, Player, Parent, Root, UserHome, Network, Refresh, Sort,
		Collection, ABC, BookGenre, LeftArrow, RightArrow, Folder, AudioFile, Playlist,
	} {
		ic, ok := s.Lookup(name)
		if !ok {
			t.Errorf("missing builtin icon %q", name)
			continue
		}
		if ic.Area() <= 0 || ic.Area() > 1.5 {
			t.Errorf("icon %q has implausible area %f", name, ic.Area())
		}
	}
}

func TestAddAppendsShapes(t *testing.T) {
	s := NewSet()
	if err := s.Add("bars", Polygon{rect(0, 0, 1, 0.25)}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add("bars", Polygon{rect(0, 0.5, 1, 0.25)}); err != nil {
		t.Fatal(err)
	}
	ic, _ := s.Lookup("bars")
	if len(ic.Indices) != 12 {
		t.Fatalf("got %d indices; want 12", len(ic.Indices))
	}
	if math.Abs(ic.Area()-0.5) > 1e-9 {
		t.Errorf("area %f; want 0.5", ic.Area())
	}
}

func TestMergeReplaces(t *testing.T) {
	a := Builtin()
	b := NewSet()
	if err := b.Add(Home, Polygon{rect(0, 0, 1, 1)}); err != nil {
		t.Fatal(err)
	}
	a.Merge(b)

	ic, _ := a.Lookup(Home)
	if math.Abs(ic.Area()-1) > 1e-9 {
		t.Errorf("home not replaced, area %f", ic.Area())
	}
	if !a.Has(Back) {
		t.Error("merge dropped unrelated icons")
	}
}

func TestNormalize(t *testing.T) {
	in := []Polygon{{rect(10, 20, 40, 20)}}
	out := Normalize(in, true)

	ring := out[0][0]
	want := []Point{{0, 0.75}, {1, 0.75}, {1, 0.25}, {0, 0.25}}
	for i, p := range ring {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v; want %v", i, p, want[i])
		}
	}
}

func TestLoadShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.shp")

	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	w.SetFields([]shp.Field{shp.StringField(NameField, 20)})

	square := shp.Polygon(*shp.NewPolyLine([][]shp.Point{
		{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}},
		{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}, {X: 2, Y: 2}},
	}))
	n := w.Write(&square)
	w.WriteAttribute(int(n), 0, "frame")

	tri := shp.Polygon(*shp.NewPolyLine([][]shp.Point{
		{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}},
	}))
	n = w.Write(&tri)
	w.WriteAttribute(int(n), 0, "play")
	w.Close()

	set, err := LoadShapefile(path)
	if err != nil {
		t.Fatalf("LoadShapefile: %v", err)
	}

	frame, ok := set.Lookup("frame")
	if !ok {
		t.Fatalf("frame icon missing; have %v", set.Names())
	}
	// 10x10 outline with a 6x6 hole, normalised to the unit square
	if math.Abs(frame.Area()-0.64) > 1e-9 {
		t.Errorf("frame area %f; want 0.64", frame.Area())
	}

	play, ok := set.Lookup("play")
	if !ok {
		t.Fatal("play icon missing")
	}
	if math.Abs(play.Area()-0.5) > 1e-9 {
		t.Errorf("play area %f; want 0.5", play.Area())
	}
}

func TestLoadShapefileMissing(t *testing.T) {
	if _, err := LoadShapefile(filepath.Join(t.TempDir(), "none.shp")); err == nil {
		t.Error("expected error for missing file")
	}
}
