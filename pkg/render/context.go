package render

import (
	"fmt"
	"math"

	"github.com/akeil/rmlines/pkg/lines"
)

// Context holds the parameters for rendering operations.
//
// The same Context can be used for any number of pages.
// It is not modified while rendering.
type Context struct {
	// Palettes holds the output colors per layer,
	// pages may not have more layers than palettes.
	Palettes []Palette
	// AutoCrop sets the output frame to the bounding box of all points.
	AutoCrop bool
	// PadCrop extends the crop box by half the width of each point.
	PadCrop bool
	// Threshold is the minimum distance between rendered points.
	// Zero renders all points.
	Threshold float64
	// Debug adds annotations and outlines to SVG output.
	Debug bool
	// Scale is the pixel size of one page unit for bitmap output.
	Scale float64
}

// NewContext sets up a new rendering context with the given palettes.
//
// If no palettes are given, DefaultPalettes are used.
func NewContext(palettes ...Palette) *Context {
	if len(palettes) == 0 {
		palettes = DefaultPalettes()
	}
	return &Context{
		Palettes: palettes,
		Scale:    1.0,
	}
}

// DefaultContext returns a context with the default palettes,
// no cropping and no simplification.
func DefaultContext() *Context {
	return NewContext()
}

// palette returns the palette for the layer with the given index.
func (c *Context) palette(layer int) (Palette, error) {
	if layer < 0 || layer >= len(c.Palettes) {
		return nil, fmt.Errorf("no palette for layer %d, have %d palettes", layer, len(c.Palettes))
	}
	return c.Palettes[layer], nil
}

// checkPage makes sure the page can be rendered with this context.
// It is called before any output is written.
func (c *Context) checkPage(p *lines.Page) error {
	if p.NumLayers() > len(c.Palettes) {
		return fmt.Errorf("page has %d layers but only %d palettes are configured", p.NumLayers(), len(c.Palettes))
	}
	return nil
}

// lineColor returns the output color for a line on the given layer.
func (c *Context) lineColor(layer int, l *lines.Line) (string, error) {
	if l.BrushType == lines.Highlighter {
		return highlighterColor, nil
	}
	p, err := c.palette(layer)
	if err != nil {
		return "", err
	}
	return p.Color(l.Color)
}

// points returns the points of a line after simplification.
// Points without finite coordinates are dropped.
func (c *Context) points(l *lines.Line) []lines.Point {
	points := l.Points
	for i, p := range l.Points {
		if !finitePoint(p) {
			points = dropInvalid(l.Points, i)
			break
		}
	}
	return Simplify(points, c.Threshold)
}

func dropInvalid(points []lines.Point, first int) []lines.Point {
	out := make([]lines.Point, first, len(points))
	copy(out, points[:first])
	for _, p := range points[first+1:] {
		if finitePoint(p) {
			out = append(out, p)
		}
	}
	return out
}

func finitePoint(p lines.Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}
