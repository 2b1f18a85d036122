package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akeil/rmlines/pkg/lines"
)

func TestFrame(t *testing.T) {
	p := newPage([]lines.Line{
		newLine(lines.Pen, lines.Black, pt(10, 20, 4, 1), pt(110, 220, 4, 1)),
	})

	c := DefaultContext()
	assert.Equal(t, lines.Rect{MaxX: 1404, MaxY: 1872}, c.frame(p))

	c.AutoCrop = true
	assert.Equal(t, lines.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220}, c.frame(p))

	c.PadCrop = true
	assert.Equal(t, lines.Rect{MinX: 8, MinY: 18, MaxX: 112, MaxY: 222}, c.frame(p))

	// empty page
	assert.Equal(t, nominalFrame, c.frame(newPage()))

	// a single point
	c.PadCrop = false
	single := newPage([]lines.Line{newLine(lines.Pen, lines.Black, pt(10, 20, 4, 1))})
	assert.Equal(t, lines.Rect{MinX: 10, MinY: 20, MaxX: 11, MaxY: 21}, c.frame(single))
}

func TestFrameInvalidCoordinates(t *testing.T) {
	c := DefaultContext()
	c.AutoCrop = true

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	pages := []*lines.Page{
		newPage([]lines.Line{newLine(lines.Pen, lines.Black, pt(10, 10, 2, 1), pt(nan, 20, 2, 1))}),
		newPage([]lines.Line{newLine(lines.Pen, lines.Black, pt(10, 10, 2, 1), pt(20, inf, 2, 1))}),
		newPage([]lines.Line{newLine(lines.Pen, lines.Black, pt(10, 10, nan, 1), pt(20, 20, 2, 1))}),
	}

	for i, p := range pages {
		c.PadCrop = i == 2
		assert.Equal(t, nominalFrame, c.frame(p), "page %d", i)
	}
}

func TestSVGInvalidCoordinates(t *testing.T) {
	c := DefaultContext()
	c.AutoCrop = true

	p := newPage([]lines.Line{
		newLine(lines.Pen, lines.Black, pt(10, 10, 2, 1), pt(float32(math.NaN()), 20, 2, 1)),
	})
	out := renderSVG(t, c, p)
	assert.Contains(t, out, `viewBox="0 0 1404 1872"`)
	assert.NotContains(t, out, "NaN")
}

func TestPointsDropInvalid(t *testing.T) {
	nan := float32(math.NaN())
	l := newLine(lines.Fineliner, lines.Black,
		pt(1, 1, 2, 1), pt(nan, 2, 2, 1), pt(3, float32(math.Inf(-1)), 2, 1), pt(4, 4, 2, 1))

	points := DefaultContext().points(&l)
	assert.Equal(t, []lines.Point{pt(1, 1, 2, 1), pt(4, 4, 2, 1)}, points)

	empty := newLine(lines.Fineliner, lines.Black, pt(nan, nan, 2, 1))
	doc, err := DefaultContext().svgDocument(newPage([]lines.Line{empty}))
	assert.NoError(t, err)
	assert.Empty(t, doc.Layers[0].Children)
}

func TestFlipped(t *testing.T) {
	m := flipped(lines.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220})

	x, y := m.Apply(10, 20)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 200.0, y)

	x, y = m.Apply(110, 220)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 0.0, y)
}

func TestScaled(t *testing.T) {
	m := scaled(lines.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220}, 0.5)

	x, y := m.Apply(110, 220)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 100.0, y)
}
