package render

import (
	"github.com/akeil/rmlines/pkg/lines"
)

// Simplify drops points that are closer than threshold to the last point
// that was kept.
//
// The first and the last point of a line are always kept.
// A threshold of zero or less returns the points unchanged.
func Simplify(points []lines.Point, threshold float64) []lines.Point {
	if threshold <= 0 || len(points) < 3 {
		return points
	}

	out := make([]lines.Point, 0, len(points))
	out = append(out, points[0])
	last := points[0]
	end := len(points) - 1
	for i := 1; i < end; i++ {
		if lines.Distance(last, points[i]) < threshold {
			continue
		}
		out = append(out, points[i])
		last = points[i]
	}

	return append(out, points[end])
}
