package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
)

const svgNamespace = "http://www.w3.org/2000/svg"

type svgDocument struct {
	XMLName xml.Name   `xml:"svg"`
	Xmlns   string     `xml:"xmlns,attr"`
	ViewBox string     `xml:"viewBox,attr"`
	Layers  []svgGroup `xml:"g"`
}

type svgGroup struct {
	XMLName  xml.Name `xml:"g"`
	Fill     string   `xml:"fill,attr,omitempty"`
	Stroke   string   `xml:"stroke,attr,omitempty"`
	LineCap  string   `xml:"stroke-linecap,attr,omitempty"`
	Class    string   `xml:"class,attr,omitempty"`
	Children []interface{}
}

type svgPath struct {
	XMLName     xml.Name `xml:"path"`
	Fill        string   `xml:"fill,attr,omitempty"`
	Stroke      string   `xml:"stroke,attr,omitempty"`
	StrokeWidth string   `xml:"stroke-width,attr,omitempty"`
	LineCap     string   `xml:"stroke-linecap,attr,omitempty"`
	LineJoin    string   `xml:"stroke-linejoin,attr,omitempty"`
	Opacity     string   `xml:"stroke-opacity,attr,omitempty"`
	Class       string   `xml:"class,attr,omitempty"`
	D           string   `xml:"d,attr"`
}

type svgCircle struct {
	XMLName xml.Name `xml:"circle"`
	Cx      string   `xml:"cx,attr"`
	Cy      string   `xml:"cy,attr"`
	R       string   `xml:"r,attr"`
	Class   string   `xml:"class,attr,omitempty"`
}

type svgTitle struct {
	XMLName xml.Name `xml:"title"`
	Text    string   `xml:",chardata"`
}

// SVG renders a single page as an SVG document to the given writer.
//
// Nothing is written if the page cannot be rendered.
func (c *Context) SVG(p *lines.Page, w io.Writer) error {
	doc, err := c.svgDocument(p)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, xml.Header)
	if err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	err = enc.Encode(doc)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, "\n")
	return err
}

func (c *Context) svgDocument(p *lines.Page) (*svgDocument, error) {
	err := c.checkPage(p)
	if err != nil {
		return nil, err
	}

	f := c.frame(p)
	doc := &svgDocument{
		Xmlns:   svgNamespace,
		ViewBox: strings.Join([]string{fmtFloat(f.MinX), fmtFloat(f.MinY), fmtFloat(f.Dx()), fmtFloat(f.Dy())}, " "),
		Layers:  make([]svgGroup, 0, p.NumLayers()),
	}

	for i := range p.Layers {
		g := svgGroup{Class: "layer"}
		for j := range p.Layers[i].Lines {
			nodes, err := c.svgLine(i, &p.Layers[i].Lines[j])
			if err != nil {
				return nil, err
			}
			g.Children = append(g.Children, nodes...)
		}
		doc.Layers = append(doc.Layers, g)
	}

	return doc, nil
}

// svgLine returns the nodes for a single line.
// Hidden brushes and lines without points produce no nodes.
func (c *Context) svgLine(layer int, l *lines.Line) ([]interface{}, error) {
	if l.NumPoints() == 0 {
		return nil, nil
	}

	brush := NewBrush(l.BrushType)
	if brush.Style() == Hidden {
		logging.Debug("Skip line with brush %v", l.BrushType)
		return nil, nil
	}

	color, err := c.lineColor(layer, l)
	if err != nil {
		return nil, err
	}

	points := c.points(l)
	if len(points) == 0 {
		return nil, nil
	}

	var nodes []interface{}
	switch brush.Style() {
	case Constant:
		nodes = append(nodes, constantPath(brush, color, points))
	case Variable:
		nodes = append(nodes, variableGroup(brush, color, points))
	}

	if c.Debug {
		nodes = append(nodes, debugGroup(l))
	}

	return nodes, nil
}

// constantPath draws the whole line as one path,
// styled after the first point.
func constantPath(b Brush, color string, points []lines.Point) svgPath {
	first := points[0]
	path := svgPath{
		Fill:        "none",
		Stroke:      color,
		StrokeWidth: fmtFloat(b.Width(first)),
		LineCap:     b.Cap(),
		LineJoin:    b.Join(),
		Class:       b.Name(),
		D:           pathData(points),
	}
	if o := b.Opacity(first); o < 1 {
		path.Opacity = fmtFloat(o)
	}
	return path
}

// variableGroup draws one path for each segment,
// styled after the segment's end point.
func variableGroup(b Brush, color string, points []lines.Point) svgGroup {
	g := svgGroup{
		Fill:    "none",
		Stroke:  color,
		LineCap: b.Cap(),
		Class:   b.Name(),
	}

	for i := 1; i < len(points); i++ {
		end := points[i]
		path := svgPath{
			StrokeWidth: fmtFloat(b.Width(end)),
			D:           pathData(points[i-1 : i+1]),
		}
		if o := b.Opacity(end); o < 1 {
			path.Opacity = fmtFloat(o)
		}
		g.Children = append(g.Children, path)
	}

	return g
}

// debugGroup annotates a line with its attributes, the outline built from
// the segment offsets and a marker for each point.
func debugGroup(l *lines.Line) svgGroup {
	g := svgGroup{
		Fill:   "none",
		Stroke: "red",
		Class:  "debug",
	}

	g.Children = append(g.Children, svgTitle{
		Text: fmt.Sprintf("%v %v attributes=%d,%d points=%d length=%s average-width=%s",
			l.BrushType, l.Color, l.Unknown, l.Unknown2, l.NumPoints(),
			fmtFloat(l.Length()), fmtFloat(l.AverageWidth())),
	})

	for i, v := range l.OffsetVectors(l.AverageWidth() / 2) {
		p, q := l.Points[i], l.Points[i+1]
		px, py := float64(p.X), float64(p.Y)
		qx, qy := float64(q.X), float64(q.Y)
		d := fmt.Sprintf("M %s %s L %s %s L %s %s L %s %s Z",
			fmtFloat(px+v.X), fmtFloat(py+v.Y),
			fmtFloat(qx+v.X), fmtFloat(qy+v.Y),
			fmtFloat(qx-v.X), fmtFloat(qy-v.Y),
			fmtFloat(px-v.X), fmtFloat(py-v.Y))
		g.Children = append(g.Children, svgPath{
			StrokeWidth: "0.5",
			Class:       "outline",
			D:           d,
		})
	}

	for _, p := range l.Points {
		g.Children = append(g.Children, svgCircle{
			Cx:    fmtFloat(float64(p.X)),
			Cy:    fmtFloat(float64(p.Y)),
			R:     "1",
			Class: "point",
		})
	}

	return g
}

// pathData is the SVG path data for a polyline through the given points.
func pathData(points []lines.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(fmtFloat(float64(p.X)))
		sb.WriteString(" ")
		sb.WriteString(fmtFloat(float64(p.Y)))
	}
	return sb.String()
}

// fmtFloat formats with the shortest representation of a float32,
// which is the precision of the recorded values.
func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 32)
}
