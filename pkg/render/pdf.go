package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/rmlines/internal/logging"
	"github.com/akeil/rmlines/pkg/lines"
)

// baseLineWidth is multiplied with the pressure to get the PDF line width.
const baseLineWidth = 4.0

// compressPDF controls compression of page content streams.
var compressPDF = true

// PDFDocument renders all pages of a document to a PDF file.
func (c *Context) PDFDocument(d *lines.Document, w io.Writer) error {
	return c.PDF(d.Pages, w)
}

// PDF renders the given pages to a PDF file with one PDF page per page.
//
// Each PDF page has the size of the rendered frame, in points.
// The resulting PDF document is written to the given writer,
// nothing is written if any of the pages cannot be rendered.
func (c *Context) PDF(pages []lines.Page, w io.Writer) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to render")
	}
	for i := range pages {
		err := c.checkPage(&pages[i])
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}

	pdf := setupPDF(c.frame(&pages[0]))
	for i := range pages {
		logging.Debug("Render PDF page %d", i)
		err := c.pdfPage(pdf, &pages[i])
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}

	return pdf.Output(w)
}

func setupPDF(first lines.Rect) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P", // [P]ortrait or [L]andscape
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: first.Dx(), Ht: first.Dy()},
	})

	pdf.SetCompression(compressPDF)
	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("rmlines", true)

	return pdf
}

func (c *Context) pdfPage(pdf *gofpdf.Fpdf, p *lines.Page) error {
	f := c.frame(p)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: f.Dx(), Ht: f.Dy()})

	// The PDF origin is at the bottom left,
	// lines are drawn in page coordinates within the flipped frame.
	m := flipped(f)
	pdf.TransformBegin()
	pdf.Transform(gofpdf.TransformMatrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})

	for i := range p.Layers {
		for j := range p.Layers[i].Lines {
			err := c.pdfLine(pdf, i, &p.Layers[i].Lines[j])
			if err != nil {
				return err
			}
		}
	}

	pdf.TransformEnd()
	return pdf.Error()
}

// pdfLine strokes a line as one continuous path.
func (c *Context) pdfLine(pdf *gofpdf.Fpdf, layer int, l *lines.Line) error {
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

	alpha := 1.0
	if l.BrushType == lines.Highlighter {
		alpha = brush.Opacity(points[0])
	}

	last := points[len(points)-1]

	pdf.SetDrawColor(int(rgba.R), int(rgba.G), int(rgba.B))
	pdf.SetAlpha(alpha, "Normal")
	pdf.SetLineWidth(float64(last.Pressure) * baseLineWidth)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for i, p := range points {
		op := "l"
		if i == 0 {
			op = "m"
		}
		pdf.RawWriteStr(fmt.Sprintf("%s %s %s", fmtFloat(float64(p.X)), fmtFloat(float64(p.Y)), op))
	}
	// a single point becomes a dot with round caps
	if len(points) == 1 {
		pdf.RawWriteStr(fmt.Sprintf("%s %s l", fmtFloat(float64(last.X)), fmtFloat(float64(last.Y))))
	}
	pdf.RawWriteStr("S")

	return nil
}
