package lines

import (
	"math"
)

// Validate checks this document and all pages, layers, lines and points
// for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
func (d *Document) Validate() error {
	if d.Version != V3 && d.Version != V5 {
		return NewValidationError("invalid version: %v", d.Version)
	}

	if len(d.Pages) != 1 {
		return NewValidationError("version %d requires exactly one page, got %d", d.Version, len(d.Pages))
	}

	for i := range d.Pages {
		err := d.Pages[i].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a page and all associated layers.
func (p *Page) Validate() error {
	for i := range p.Layers {
		err := p.Layers[i].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a layer and all associated lines and points for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
func (l *Layer) Validate() error {
	for i := range l.Lines {
		err := l.Lines[i].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a line and the associated points for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
func (l *Line) Validate() error {
	if _, ok := brushNames[l.BrushType]; !ok {
		return NewValidationError("invalid brush type: %v", l.BrushType)
	}

	if _, ok := colorNames[l.Color]; !ok {
		return NewValidationError("invalid color: %v", l.Color)
	}

	if !finite(l.BrushBaseSize) || l.BrushBaseSize < 0 {
		return NewValidationError("invalid brush size: %v", l.BrushBaseSize)
	}

	for i := range l.Points {
		err := l.Points[i].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a point for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
//
// Coordinates may lie outside of the display area.
func (p *Point) Validate() error {
	if !finite(p.X) || !finite(p.Y) {
		return NewValidationError("invalid coordinates: %v, %v", p.X, p.Y)
	}

	// TODO: not sure what the MAX value for Speed should be
	if !finite(p.Speed) || p.Speed < 0 {
		return NewValidationError("invalid speed value: %v", p.Speed)
	}

	if !finite(p.Direction) {
		return NewValidationError("invalid direction value: %v", p.Direction)
	}

	if !finite(p.Width) || p.Width < 0 {
		return NewValidationError("invalid width value: %v", p.Width)
	}

	if !finite(p.Pressure) || p.Pressure < 0 || p.Pressure > 1 {
		return NewValidationError("invalid pressure value: %v", p.Pressure)
	}

	return nil
}

func finite(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
