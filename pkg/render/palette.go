package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/akeil/rmlines/pkg/lines"
)

// DefaultColors is the palette specification for five layers.
const DefaultColors = "black,grey,white;red,magenta,white;blue,cyan,white;limegreen,yellow,white;darkorchid,darkorange,white"

// Palette maps the colors of a line to output colors for one layer.
//
// Values are SVG color names, "#rrggbb" or "rgb(r, g, b)".
type Palette map[lines.Color]string

// DefaultPalettes returns one palette per layer, for up to five layers.
func DefaultPalettes() []Palette {
	p, err := ParsePalettes(DefaultColors)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalettes reads palettes from a string like
// "black,grey,white;red,magenta,white".
//
// Palettes for subsequent layers are separated by semicolons.
// Each palette lists the colors for Black, Grey and White,
// optionally followed by Blue and Red.
func ParsePalettes(s string) ([]Palette, error) {
	var palettes []Palette
	for i, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := parsePalette(part)
		if err != nil {
			return nil, fmt.Errorf("palette for layer %d: %w", i, err)
		}
		palettes = append(palettes, p)
	}

	if len(palettes) == 0 {
		return nil, fmt.Errorf("no palettes in %q", s)
	}
	return palettes, nil
}

var paletteOrder = []lines.Color{lines.Black, lines.Grey, lines.White, lines.Blue, lines.Red}

func parsePalette(part string) (Palette, error) {
	names := splitColors(part)
	if len(names) < 3 || len(names) > len(paletteOrder) {
		return nil, fmt.Errorf("expected 3 to %d colors, got %d in %q", len(paletteOrder), len(names), part)
	}

	p := Palette{
		lines.Blue: "blue",
		lines.Red:  "red",
	}
	for i, name := range names {
		if _, err := parseColor(name); err != nil {
			return nil, err
		}
		p[paletteOrder[i]] = name
	}

	return p, nil
}

// splitColors splits a list of colors at commas,
// except for commas inside of "rgb(...)".
func splitColors(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

// Color returns the output color string for the given line color.
func (p Palette) Color(c lines.Color) (string, error) {
	s, ok := p[c]
	if !ok {
		return "", fmt.Errorf("no palette color for %v", c)
	}
	return s, nil
}

// RGBA resolves the palette color for the given line color.
func (p Palette) RGBA(c lines.Color) (color.RGBA, error) {
	s, err := p.Color(c)
	if err != nil {
		return color.RGBA{}, err
	}
	return parseColor(s)
}

// parseColor resolves a color name, "#rrggbb" or "rgb(r, g, b)".
func parseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("invalid rgb color %q", s)
		}
		var rgb [3]uint8
		for i, part := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid rgb color %q", s)
			}
			rgb[i] = uint8(n)
		}
		return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}, nil
	}

	c, ok := colornames.Map[s]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}
