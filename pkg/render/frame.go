package render

import (
	"math"

	"github.com/akeil/rmlines/internal/affine"
	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
)

// nominalFrame is the full display area.
var nominalFrame = lines.Rect{
	MaxX: lines.MaxWidth,
	MaxY: lines.MaxHeight,
}

// frame returns the area of the page that is rendered.
//
// With auto-crop, this is the bounding box of all points on the page.
// A page without points, or with points that have no finite bounds,
// falls back to the nominal page size.
func (c *Context) frame(p *lines.Page) lines.Rect {
	if !c.AutoCrop {
		return nominalFrame
	}

	r := p.Bounds(c.PadCrop)
	if r.Empty() {
		logging.Info("Page has no points, cannot crop; using full page")
		return nominalFrame
	}
	if !finiteRect(r) {
		logging.Warning("Page has invalid coordinates, cannot crop; using full page")
		return nominalFrame
	}

	// a single point or a straight line has no area
	if r.Dx() < 1 {
		r.MaxX = r.MinX + 1
	}
	if r.Dy() < 1 {
		r.MaxY = r.MinY + 1
	}
	return r
}

func finiteRect(r lines.Rect) bool {
	for _, v := range []float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// toOrigin moves the top left corner of the frame to 0,0.
func toOrigin(r lines.Rect) affine.Matrix {
	return affine.Translation(-r.MinX, -r.MinY)
}

// flipped maps the frame to a coordinate system with the origin
// at the bottom left corner and the y-axis pointing up.
func flipped(r lines.Rect) affine.Matrix {
	return toOrigin(r).Then(affine.Scaling(1, -1)).Then(affine.Translation(0, r.Dy()))
}

// scaled maps the frame to a bitmap with the given scale.
func scaled(r lines.Rect, s float64) affine.Matrix {
	return toOrigin(r).Then(affine.Scaling(s, s))
}
