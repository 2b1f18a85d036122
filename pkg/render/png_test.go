package render

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/rmlines/pkg/lines"
)

func TestBitmap(t *testing.T) {
	p := newPage(
		[]lines.Line{
			newLine(lines.Fineliner, lines.Black, pt(100, 100, 10, 1), pt(300, 100, 10, 1)),
			newLine(lines.Eraser, lines.Black, pt(100, 500, 10, 1), pt(300, 500, 10, 1)),
		},
	)

	img, err := DefaultContext().Bitmap(p)
	require.NoError(t, err)
	assert.Equal(t, 1404, img.Bounds().Dx())
	assert.Equal(t, 1872, img.Bounds().Dy())

	// on the stroke
	c := img.RGBAAt(200, 100)
	assert.Less(t, c.R, uint8(64))

	// off the stroke
	c = img.RGBAAt(200, 200)
	assert.Equal(t, uint8(255), c.R)

	// erased
	c = img.RGBAAt(200, 500)
	assert.Equal(t, uint8(255), c.R)
}

func TestBitmapScaleAndCrop(t *testing.T) {
	p := newPage([]lines.Line{
		newLine(lines.Marker, lines.Black, pt(100, 100, 10, 1), pt(300, 200, 10, 1)),
	})

	c := DefaultContext()
	c.Scale = 0.5
	img, err := c.Bitmap(p)
	require.NoError(t, err)
	assert.Equal(t, 702, img.Bounds().Dx())
	assert.Equal(t, 936, img.Bounds().Dy())

	c.AutoCrop = true
	c.Scale = 1
	img, err = c.Bitmap(p)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestPNG(t *testing.T) {
	p := newPage([]lines.Line{
		newLine(lines.Highlighter, lines.Black, pt(10, 10, 20, 1), pt(50, 10, 20, 1)),
	})

	var buf bytes.Buffer
	err := DefaultContext().PNG(p, &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1404, img.Bounds().Dx())
}

func TestBitmapInvalidCrop(t *testing.T) {
	c := DefaultContext()
	c.AutoCrop = true

	// finite but far too large
	huge := newPage([]lines.Line{
		newLine(lines.Pen, lines.Black, pt(0, 0, 2, 1), pt(3e38, 3e38, 2, 1)),
	})
	_, err := c.Bitmap(huge)
	assert.Error(t, err)

	var buf bytes.Buffer
	err = c.PNG(huge, &buf)
	assert.Error(t, err)
	assert.Equal(t, 0, buf.Len())

	// not finite, rendered with the full page
	nan := newPage([]lines.Line{
		newLine(lines.Pen, lines.Black, pt(10, 10, 2, 1), pt(float32(math.NaN()), 20, 2, 1)),
	})
	img, err := c.Bitmap(nan)
	require.NoError(t, err)
	assert.Equal(t, 1404, img.Bounds().Dx())
	assert.Equal(t, 1872, img.Bounds().Dy())
}

func TestBitmapMaxSize(t *testing.T) {
	p := newPage([]lines.Line{
		newLine(lines.Pen, lines.Black, pt(10, 10, 2, 1)),
	})

	c := DefaultContext()
	c.Scale = 100
	_, err := c.Bitmap(p)
	assert.Error(t, err)
}
