package lines

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// MarshalBinary returns the byte representation of the document.
func (d *Document) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := Encode(buf, d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes the given document to the given writer,
// using the byte layout for the document's version.
func Encode(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	err := write(bw, d)
	if err != nil {
		return err
	}
	return bw.Flush()
}

func write(w io.Writer, d *Document) error {
	err := writeHeader(w, d)
	if err != nil {
		return err
	}

	// only a single page and no page count since version 3
	if len(d.Pages) != 1 {
		return fmt.Errorf("version %d requires exactly one page, got %d", d.Version, len(d.Pages))
	}

	return writePage(w, d.Version, d.Pages[0])
}

func writeHeader(w io.Writer, d *Document) error {
	var h string
	switch d.Version {
	case V3:
		h = headerV3
	case V5:
		h = headerV5
	default:
		return fmt.Errorf("invalid version %v", d.Version)
	}

	// header and reserved bytes are padded with spaces
	h += strings.Repeat(" ", headerLen+reservedLen-len(h))
	_, err := io.WriteString(w, h)
	return err
}

func writePage(w io.Writer, v Version, p Page) error {
	err := writeCount(w, len(p.Layers))
	if err != nil {
		return err
	}

	for _, l := range p.Layers {
		err = writeLayer(w, v, l)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLayer(w io.Writer, v Version, l Layer) error {
	err := writeCount(w, len(l.Lines))
	if err != nil {
		return err
	}

	for _, line := range l.Lines {
		err = writeLine(w, v, line)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, v Version, l Line) error {
	code := l.BrushCode
	// a raw code is only kept if it still denotes the brush type
	if b, ok := brushCodes[code]; !ok || b != l.BrushType {
		code = l.BrushType.Code(v)
		if code < 0 {
			return fmt.Errorf("cannot encode brush type %v", l.BrushType)
		}
	}

	color := l.Color.Code()
	if color < 0 {
		return fmt.Errorf("cannot encode color %v", l.Color)
	}

	header := []interface{}{
		code,
		color,
		l.Unknown,
		l.BrushBaseSize,
	}
	// additional attribute in v5 only
	if v >= V5 {
		header = append(header, l.Unknown2)
	}

	for _, field := range header {
		err := binary.Write(w, endianess, field)
		if err != nil {
			return err
		}
	}

	err := writeCount(w, len(l.Points))
	if err != nil {
		return err
	}

	for _, p := range l.Points {
		err = binary.Write(w, endianess, p)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeCount(w io.Writer, n int) error {
	return binary.Write(w, endianess, int32(n))
}
