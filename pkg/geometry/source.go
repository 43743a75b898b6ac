// Package geometry resolves selector strings into on-screen rectangles. It is
// the boundary between the simulation and whatever layout system actually
// positions elements: the simulation only ever sees axis-aligned rects.
package geometry

import (
	"fmt"
	"strings"
)

// Rect is an element rectangle in surface coordinates, with the origin at the
// top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bottom returns the y coordinate of the rect's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Source resolves a selector string to the rectangles of the currently
// visible elements it matches. An unmatched selector yields an empty slice,
// not an error; errors are reserved for selectors the source cannot parse.
type Source interface {
	Resolve(selector string) ([]Rect, error)
}

// StaticSource is a Source backed by a fixed selector-to-rectangle table,
// used by headless runs and tests.
type StaticSource struct {
	Rects map[string][]Rect
}

// NewStaticSource creates an empty static source.
func NewStaticSource() *StaticSource {
	return &StaticSource{
		Rects: make(map[string][]Rect),
	}
}

// Set registers the rectangles a selector resolves to, replacing any previous
// registration.
func (s *StaticSource) Set(selector string, rects ...Rect) {
	s.Rects[selector] = rects
}

// Resolve implements Source. A selector that is empty or all whitespace is
// considered invalid; a well-formed selector with no registration resolves to
// no rectangles.
func (s *StaticSource) Resolve(selector string) ([]Rect, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("invalid selector %q", selector)
	}
	return s.Rects[selector], nil
}
