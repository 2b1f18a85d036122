package lines

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strings"

	"github.com/akeil/rmlines/internal/logging"
)

var endianess = binary.LittleEndian

// legacyPrefix is the part of the legacy header that fits into the
// fixed header size, after trimming.
var legacyPrefix = strings.TrimRight(headerLegacy[:headerLen], " ")

// UnmarshalBinary reads a reMarkable document from the given bytes.
func (d *Document) UnmarshalBinary(data []byte) error {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

// ReadFile decodes the .rm file at the given path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a complete document from the given reader.
//
// Decoding stops at the first error, no partial document is returned.
func Decode(r io.Reader) (*Document, error) {
	rd := newReader(r)

	err := rd.readHeader()
	if err != nil {
		return nil, err
	}

	pages, err := rd.readPages()
	if err != nil {
		return nil, err
	}

	return &Document{
		Version: rd.version,
		Pages:   pages,
	}, nil
}

type reader struct {
	r       *bufio.Reader
	version Version
}

// newReader creates a new document reader.
func newReader(r io.Reader) *reader {
	// V5 will be replaced after reading the header
	return &reader{
		r:       bufio.NewReader(r),
		version: V5,
	}
}

// readHeader reads the header and checks if it is one of the supported versions.
func (r *reader) readHeader() error {
	buf := make([]byte, headerLen)
	_, err := io.ReadFull(r.r, buf)
	if err != nil {
		return truncated("header", err)
	}

	header := strings.TrimRight(string(buf), " \x00")
	switch {
	case header == headerV3:
		r.version = V3
	case header == headerV5:
		r.version = V5
	case header == legacyPrefix:
		// the legacy header is longer than the fixed header size
		return NewUnsupportedVersion(header, true)
	default:
		return NewUnsupportedVersion(header, false)
	}
	logging.Debug("Found header %q, version %d", header, r.version)

	if r.version >= V3 {
		_, err = io.CopyN(io.Discard, r.r, reservedLen)
		if err != nil {
			return truncated("reserved header bytes", err)
		}
	}

	return nil
}

func (r *reader) readPages() ([]Page, error) {
	// From version 3 on, only a single page is stored per file
	// and there is no page count.
	n := int32(1)
	if r.version < V3 {
		var err error
		n, err = r.readCount("pages")
		if err != nil {
			return nil, err
		}
	}

	pages := make([]Page, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		p, err := r.readPage()
		if err != nil {
			return nil, err
		}
		logging.Debug("Read page %d with %d layers", i, p.NumLayers())
		pages = append(pages, p)
	}

	return pages, nil
}

func (r *reader) readPage() (Page, error) {
	var p Page
	n, err := r.readCount("layers")
	if err != nil {
		return p, err
	}

	p.Layers = make([]Layer, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		l, err := r.readLayer()
		if err != nil {
			return p, err
		}
		p.Layers = append(p.Layers, l)
	}

	return p, nil
}

func (r *reader) readLayer() (Layer, error) {
	var l Layer
	n, err := r.readCount("lines")
	if err != nil {
		return l, err
	}

	l.Lines = make([]Line, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		line, err := r.readLine()
		if err != nil {
			return l, err
		}
		l.Lines = append(l.Lines, line)
	}

	return l, nil
}

// readLine reads a Line (incl. Points) from the reader.
func (r *reader) readLine() (Line, error) {
	var l Line
	var err error

	l.BrushCode, err = r.readInt32("brush type")
	if err != nil {
		return l, err
	}
	l.BrushType, err = BrushTypeFromCode(l.BrushCode)
	if err != nil {
		return l, err
	}

	code, err := r.readInt32("color")
	if err != nil {
		return l, err
	}
	l.Color, err = ColorFromCode(code)
	if err != nil {
		return l, err
	}

	l.Unknown, err = r.readInt32("line attribute")
	if err != nil {
		return l, err
	}

	l.BrushBaseSize, err = r.readFloat32("brush size")
	if err != nil {
		return l, err
	}

	// additional attribute in v5 only
	if r.version >= V5 {
		l.Unknown2, err = r.readInt32("second line attribute")
		if err != nil {
			return l, err
		}
		l.HasUnknown2 = true
	}

	n, err := r.readCount("points")
	if err != nil {
		return l, err
	}

	l.Points = make([]Point, 0, capacity(n))
	for i := int32(0); i < n; i++ {
		p, err := r.readPoint()
		if err != nil {
			return l, err
		}
		l.Points = append(l.Points, p)
	}

	return l, nil
}

// readPoint reads a Point struct from the reader.
func (r *reader) readPoint() (Point, error) {
	var p Point
	var err error

	fields := []struct {
		name string
		dst  *float32
	}{
		{"x-coordinate", &p.X},
		{"y-coordinate", &p.Y},
		{"speed", &p.Speed},
		{"direction", &p.Direction},
		{"width", &p.Width},
		{"pressure", &p.Pressure},
	}
	for _, f := range fields {
		*f.dst, err = r.readFloat32(f.name)
		if err != nil {
			return p, err
		}
	}

	return p, nil
}

// readCount reads a number of elements and rejects negative values.
func (r *reader) readCount(field string) (int32, error) {
	n, err := r.readInt32("number of " + field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, InvalidCountError{Field: field, Count: n}
	}
	return n, nil
}

// readInt32 reads a little endian int32.
func (r *reader) readInt32(field string) (int32, error) {
	var n int32
	err := binary.Read(r.r, endianess, &n)
	if err != nil {
		return 0, truncated(field, err)
	}
	return n, nil
}

// readFloat32 reads a little endian IEEE-754 float32.
func (r *reader) readFloat32(field string) (float32, error) {
	var f float32
	err := binary.Read(r.r, endianess, &f)
	if err != nil {
		return 0, truncated(field, err)
	}
	return f, nil
}

func truncated(field string, err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return TruncatedError{Field: field, Err: io.ErrUnexpectedEOF}
	}
	return err
}

// maxPrealloc limits the capacity that is reserved up front for a count
// read from the input, so a corrupt count cannot force a huge allocation.
const maxPrealloc = 1024

func capacity(n int32) int {
	if n > maxPrealloc {
		return maxPrealloc
	}
	return int(n)
}
