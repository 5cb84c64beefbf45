package icons

import (
	"log"
	"math"
)

// Names of the icons every navigator and menu relies on.
const (
	Home       = "home"
	Back       = "back"
	Player     = "player"
	Parent     = "parent"
	Root       = "root"
	UserHome   = "user-home"
	Network    = "network"
	Refresh    = "refresh"
	Sort       = "sort"
	Collection = "collection"
	ABC        = "abc"
	BookGenre  = "book-genre"
	LeftArrow  = "left-arrow"
	RightArrow = "right-arrow"
	Folder     = "folder"
	AudioFile  = "audio-file"
	Playlist   = "playlist"
)

func rect(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

func circle(cx, cy, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

var builtin = map[string][]Polygon{
	Home: {
		{{{0.5, 0.1}, {0.95, 0.5}, {0.8, 0.5}, {0.8, 0.9}, {0.2, 0.9}, {0.2, 0.5}, {0.05, 0.5}}},
	},
	UserHome: {
		{
			{{0.5, 0.1}, {0.95, 0.5}, {0.8, 0.5}, {0.8, 0.9}, {0.2, 0.9}, {0.2, 0.5}, {0.05, 0.5}},
			rect(0.42, 0.6, 0.16, 0.3),
		},
	},
	Back: {
		{{{0.1, 0.5}, {0.45, 0.15}, {0.45, 0.35}, {0.9, 0.35}, {0.9, 0.65}, {0.45, 0.65}, {0.45, 0.85}}},
	},
	Player: {
		{{{0.25, 0.15}, {0.85, 0.5}, {0.25, 0.85}}},
	},
	Parent: {
		{{{0.5, 0.1}, {0.85, 0.45}, {0.65, 0.45}, {0.65, 0.9}, {0.35, 0.9}, {0.35, 0.45}, {0.15, 0.45}}},
	},
	Root: {
		{rect(0.1, 0.1, 0.8, 0.8), rect(0.25, 0.25, 0.5, 0.5)},
	},
	Network: {
		{{{0.5, 0.9}, {0.05, 0.3}, {0.5, 0.1}, {0.95, 0.3}}},
	},
	Refresh: {
		{circle(0.5, 0.5, 0.4, 24), circle(0.5, 0.5, 0.25, 24)},
	},
	Sort: {
		{rect(0.1, 0.15, 0.8, 0.14)},
		{rect(0.1, 0.43, 0.55, 0.14)},
		{rect(0.1, 0.71, 0.3, 0.14)},
	},
	Collection: {
		{rect(0.1, 0.3, 0.6, 0.6)},
		{{{0.3, 0.1}, {0.9, 0.1}, {0.9, 0.7}, {0.75, 0.7}, {0.75, 0.25}, {0.3, 0.25}}},
	},
	ABC: {
		{
			{{0.5, 0.1}, {0.9, 0.9}, {0.7, 0.9}, {0.6, 0.68}, {0.4, 0.68}, {0.3, 0.9}, {0.1, 0.9}},
			{{0.5, 0.35}, {0.57, 0.52}, {0.43, 0.52}},
		},
	},
	BookGenre: {
		{rect(0.05, 0.25, 0.9, 0.5), rect(0.15, 0.35, 0.1, 0.1), rect(0.35, 0.35, 0.1, 0.1), rect(0.55, 0.35, 0.1, 0.1), rect(0.75, 0.35, 0.1, 0.1), rect(0.25, 0.55, 0.5, 0.1)},
	},
	LeftArrow: {
		{{{0.8, 0.1}, {0.8, 0.9}, {0.2, 0.5}}},
	},
	RightArrow: {
		{{{0.2, 0.1}, {0.8, 0.5}, {0.2, 0.9}}},
	},
	Folder: {
		{{{0.05, 0.2}, {0.4, 0.2}, {0.5, 0.3}, {0.95, 0.3}, {0.95, 0.85}, {0.05, 0.85}}},
	},
	AudioFile: {
		{{{0.35, 0.15}, {0.85, 0.1}, {0.85, 0.65}, {0.7, 0.65}, {0.7, 0.3}, {0.5, 0.32}, {0.5, 0.75}, {0.35, 0.75}}},
		{circle(0.3, 0.75, 0.15, 16)},
		{circle(0.65, 0.68, 0.15, 16)},
	},
	Playlist: {
		{rect(0.1, 0.15, 0.8, 0.12)},
		{rect(0.1, 0.44, 0.8, 0.12)},
		{rect(0.1, 0.73, 0.5, 0.12)},
		{{{0.7, 0.65}, {0.95, 0.8}, {0.7, 0.95}}},
	},
}

// Builtin returns the icons compiled into the binary.
func Builtin() *Set {
	s := NewSet()
	for name, polys := range builtin {
		if err := s.Add(name, polys...); err != nil {
			log.Printf("icons: dropping builtin %q: %v", name, err)
		}
	}
	return s
}
