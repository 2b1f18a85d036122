package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/akeil/rmlines/pkg/lines"
)

var bgColor = color.White

// maxBitmapSize is the maximum width and height of a bitmap in pixels.
const maxBitmapSize = 16384

// PNG paints the given page to a PNG image and writes the PNG data
// to the given writer.
//
// The image has the size of the rendered frame multiplied by Scale.
func (c *Context) PNG(p *lines.Page, w io.Writer) error {
	img, err := c.Bitmap(p)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// Bitmap paints the given page to an image,
// using the same brush rules as SVG output.
func (c *Context) Bitmap(p *lines.Page) (*image.RGBA, error) {
	err := c.checkPage(p)
	if err != nil {
		return nil, err
	}

	scale := c.Scale
	if scale <= 0 {
		scale = 1.0
	}

	f := c.frame(p)
	w, h := math.Ceil(f.Dx()*scale), math.Ceil(f.Dy()*scale)
	// negated so that NaN is rejected, too
	if !(w <= maxBitmapSize && h <= maxBitmapSize) {
		return nil, fmt.Errorf("bitmap size %vx%v exceeds the maximum of %d pixels", w, h, maxBitmapSize)
	}
	r := image.Rect(0, 0, int(w), int(h))
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.NewUniform(bgColor), image.Point{}, draw.Src)

	m := scaled(f, scale)
	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetMatrixTransform(draw2d.Matrix{m.A, m.B, m.C, m.D, m.E, m.F})

	for i := range p.Layers {
		for j := range p.Layers[i].Lines {
			err = c.paintLine(gc, i, &p.Layers[i].Lines[j])
			if err != nil {
				return nil, err
			}
		}
	}

	return dst, nil
}

// paintLine strokes a single line onto the graphic context.
func (c *Context) paintLine(gc draw2d.GraphicContext, layer int, l *lines.Line) error {
	if l.NumPoints() == 0 {
		return nil
	}

	brush := NewBrush(l.BrushType)
	if brush.Style() == Hidden {
		return nil
	}

	name, err := c.lineColor(layer, l)
	if err != nil {
		return err
	}
	rgba, err := parseColor(name)
	if err != nil {
		return err
	}

	points := c.points(l)
	if len(points) == 0 {
		return nil
	}

	gc.SetLineCap(lineCap(brush.Cap()))
	gc.SetLineJoin(lineJoin(brush.Join()))
	switch brush.Style() {
	case Constant:
		first := points[0]
		gc.SetStrokeColor(withOpacity(rgba, brush.Opacity(first)))
		gc.SetLineWidth(brush.Width(first))
		stroke(gc, points)
	case Variable:
		for i := 1; i < len(points); i++ {
			end := points[i]
			gc.SetStrokeColor(withOpacity(rgba, brush.Opacity(end)))
			gc.SetLineWidth(brush.Width(end))
			stroke(gc, points[i-1:i+1])
		}
	}

	return nil
}

func stroke(gc draw2d.GraphicContext, points []lines.Point) {
	gc.BeginPath()
	for i, p := range points {
		if i == 0 {
			gc.MoveTo(float64(p.X), float64(p.Y))
		} else {
			gc.LineTo(float64(p.X), float64(p.Y))
		}
	}
	gc.Stroke()
}

func withOpacity(c color.RGBA, opacity float64) color.NRGBA {
	a := math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

func lineCap(s string) draw2d.LineCap {
	switch s {
	case CapButt:
		return draw2d.ButtCap
	default:
		return draw2d.RoundCap
	}
}

func lineJoin(s string) draw2d.LineJoin {
	switch s {
	case JoinBevel:
		return draw2d.BevelJoin
	default:
		return draw2d.RoundJoin
	}
}
