package lines

import (
	"math"
)

// Vector is a displacement in page coordinates.
type Vector struct {
	X float64
	Y float64
}

// Distance is the euclidean distance between two points.
func Distance(p, q Point) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	return math.Hypot(dx, dy)
}

// NumSegments returns the number of segments between consecutive points.
func (l *Line) NumSegments() int {
	if len(l.Points) < 2 {
		return 0
	}
	return len(l.Points) - 1
}

func (l *Line) checkSegment(i int) error {
	if i < 0 || i+1 >= len(l.Points) {
		return InvalidSegmentError{Index: i, NumPoints: len(l.Points)}
	}
	return nil
}

// SegmentLength returns the length of the segment from point i to i+1.
func (l *Line) SegmentLength(i int) (float64, error) {
	err := l.checkSegment(i)
	if err != nil {
		return 0, err
	}
	return Distance(l.Points[i], l.Points[i+1]), nil
}

// Length is the sum of all segment lengths.
func (l *Line) Length() float64 {
	var total float64
	for i := 1; i < len(l.Points); i++ {
		total += Distance(l.Points[i-1], l.Points[i])
	}
	return total
}

// SegmentOffset returns the vector perpendicular to the segment from point
// i to i+1 with length d.
//
// The direction is rotated by 90 degrees as (x, y) -> (-y, x).
// A segment of zero length yields the zero vector.
func (l *Line) SegmentOffset(i int, d float64) (Vector, error) {
	err := l.checkSegment(i)
	if err != nil {
		return Vector{}, err
	}
	return offset(l.Points[i], l.Points[i+1], d), nil
}

// OffsetVectors returns one offset vector per segment, see SegmentOffset.
func (l *Line) OffsetVectors(d float64) []Vector {
	n := l.NumSegments()
	v := make([]Vector, n)
	for i := 0; i < n; i++ {
		v[i] = offset(l.Points[i], l.Points[i+1], d)
	}
	return v
}

func offset(p, q Point, d float64) Vector {
	dx := float64(q.X) - float64(p.X)
	dy := float64(q.Y) - float64(p.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Vector{}
	}
	dx, dy = dx/length, dy/length
	return Vector{X: -dy * d, Y: dx * d}
}

// AverageWidth is the mean of the point widths, weighted by segment length.
//
// The mean is updated incrementally per segment, using the width of the
// segment's end point. A line without any segment of positive length
// returns the width of its first point.
func (l *Line) AverageWidth() float64 {
	if len(l.Points) == 0 {
		return 0
	}

	var mean, total float64
	for i := 1; i < len(l.Points); i++ {
		w := Distance(l.Points[i-1], l.Points[i])
		if w == 0 {
			continue
		}
		total += w
		mean += (w / total) * (float64(l.Points[i].Width) - mean)
	}

	if total == 0 {
		return float64(l.Points[0].Width)
	}
	return mean
}

// Rect is an axis aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns an inverted, infinite rect.
// Adding any point to it yields a valid rect.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Empty tells if the rect does not contain any point.
func (r Rect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Dx is the width of the rect.
func (r Rect) Dx() float64 {
	if r.Empty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Dy is the height of the rect.
func (r Rect) Dy() float64 {
	if r.Empty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Union returns the smallest rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

func (r Rect) add(p Point, padded bool) Rect {
	var pad float64
	if padded {
		pad = float64(p.Width) / 2
	}
	x, y := float64(p.X), float64(p.Y)
	return Rect{
		MinX: math.Min(r.MinX, x-pad),
		MinY: math.Min(r.MinY, y-pad),
		MaxX: math.Max(r.MaxX, x+pad),
		MaxY: math.Max(r.MaxY, y+pad),
	}
}

// Bounds returns the bounding box of all points in the line.
// If padded is set, each point is extended by half its width.
//
// A line without points has an empty bounding box.
func (l *Line) Bounds(padded bool) Rect {
	r := EmptyRect()
	for _, p := range l.Points {
		r = r.add(p, padded)
	}
	return r
}

// Bounds returns the bounding box of all points on the page.
// If padded is set, each point is extended by half its width.
//
// Callers must check Empty() on the result, a page without points
// yields an inverted rect.
func (p *Page) Bounds(padded bool) Rect {
	r := EmptyRect()
	for _, layer := range p.Layers {
		for i := range layer.Lines {
			r = r.Union(layer.Lines[i].Bounds(padded))
		}
	}
	return r
}
