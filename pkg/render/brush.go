package render

import (
	"math"

	"github.com/akeil/rmlines/pkg/lines"
)

// widthFactor scales the recorded point width to the stroke width.
const widthFactor = 0.8

// highlighterColor is used for all highlighter lines, regardless of palette.
const highlighterColor = "rgb(240, 220, 40)"

// Style selects how a line is turned into paths.
type Style int

const (
	// Constant brushes render a line as a single path with one width.
	Constant Style = iota
	// Variable brushes render one path per segment,
	// each with its own width and opacity.
	Variable
	// Hidden brushes do not produce any output.
	Hidden
)

// Line caps and joins, named like the SVG attribute values.
const (
	CapRound  = "round"
	CapButt   = "butt"
	JoinRound = "round"
	JoinBevel = "bevel"
)

// Brush describes how lines drawn with a brush type are stroked.
//
// Width and Opacity take the point that determines the style:
// the first point for Constant brushes,
// the trailing point of a segment for Variable brushes.
type Brush interface {
	Name() string
	Style() Style
	Width(p lines.Point) float64
	Opacity(p lines.Point) float64
	Cap() string
	Join() string
}

// NewBrush returns the brush for the given brush type.
func NewBrush(t lines.BrushType) Brush {
	switch t {
	case lines.Fineliner:
		return &Fineliner{}
	case lines.Highlighter:
		return &Highlighter{}
	case lines.BallPoint:
		return &BallPoint{}
	case lines.Eraser, lines.EraseArea, lines.EraseAll, lines.SelectionBrush:
		return &hidden{BasePen{name: t.String()}}
	default:
		return &BasePen{name: t.String()}
	}
}

// BasePen is a variable width pen with full opacity.
//
// Used for Marker, SharpPencil, TiltPencil, Brush, Calligraphy and Pen.
type BasePen struct {
	name string
}

func (b *BasePen) Name() string {
	return b.name
}

func (b *BasePen) Style() Style {
	return Variable
}

func (b *BasePen) Width(p lines.Point) float64 {
	return float64(p.Width) * widthFactor
}

func (b *BasePen) Opacity(p lines.Point) float64 {
	return 1.0
}

func (b *BasePen) Cap() string {
	return CapRound
}

func (b *BasePen) Join() string {
	return JoinRound
}

// BallPoint -----------------------------------------------------------------

// The BallPoint pen is sensitive to pressure.
type BallPoint struct {
	BasePen
}

func (b *BallPoint) Name() string {
	return lines.BallPoint.String()
}

// Opacity is mostly opaque, light and heavy pressure make a difference.
// Values of 1 and above mean fully opaque.
func (b *BallPoint) Opacity(p lines.Point) float64 {
	return math.Pow(float64(p.Pressure), 5) + 0.7
}

// Fineliner ------------------------------------------------------------------

// Fineliner has no sensitivity to pressure or tilt.
type Fineliner struct{}

func (f *Fineliner) Name() string {
	return lines.Fineliner.String()
}

func (f *Fineliner) Style() Style {
	return Constant
}

func (f *Fineliner) Width(p lines.Point) float64 {
	return float64(p.Width) * widthFactor
}

func (f *Fineliner) Opacity(p lines.Point) float64 {
	return 1.0
}

func (f *Fineliner) Cap() string {
	return CapRound
}

func (f *Fineliner) Join() string {
	return JoinRound
}

// Highlighter ----------------------------------------------------------------

// Highlighter is translucent and uses the recorded width as is.
type Highlighter struct{}

func (h *Highlighter) Name() string {
	return lines.Highlighter.String()
}

func (h *Highlighter) Style() Style {
	return Constant
}

func (h *Highlighter) Width(p lines.Point) float64 {
	return float64(p.Width)
}

func (h *Highlighter) Opacity(p lines.Point) float64 {
	return 0.25
}

func (h *Highlighter) Cap() string {
	return CapButt
}

func (h *Highlighter) Join() string {
	return JoinBevel
}

// hidden is used for erasers and selections.
type hidden struct {
	BasePen
}

func (h *hidden) Style() Style {
	return Hidden
}
