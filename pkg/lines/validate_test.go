package lines

import (
	"math"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	d := NewDocument(V5)
	err := d.Validate()
	if err != nil {
		t.Log("newly initialized document should be valid")
		t.Error(err)
	}

	d.Version = Version(100)
	err = d.Validate()
	if err == nil {
		t.Errorf("Invalid version should not be accepted")
	}
	if !IsValidationError(err) {
		t.Errorf("unexpected error type: %v", err)
	}

	d.Version = V3
	d.Pages = append(d.Pages, Page{})
	err = d.Validate()
	if err == nil {
		t.Errorf("more than one page should not be accepted")
	}
}

func TestValidateLayer(t *testing.T) {
	var l Layer
	err := l.Validate()
	if err != nil {
		t.Log("newly initialized layer should be valid")
		t.Error(err)
	}
}

func TestValidateLine(t *testing.T) {
	var l Line
	err := l.Validate()
	if err != nil {
		t.Log("newly initialized line should be valid")
		t.Error(err)
	}

	l.BrushType = BrushType(100)
	err = l.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid brush type %v", l.BrushType)
	}
	l.BrushType = BallPoint
	err = l.Validate()
	if err != nil {
		t.Errorf("valid brush type %v was not accepted: %v", l.BrushType, err)
	}

	l.Color = Color(100)
	err = l.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid color %v", l.Color)
	}
	l.Color = Red
	err = l.Validate()
	if err != nil {
		t.Errorf("valid color %v was not accepted: %v", l.Color, err)
	}

	l.BrushBaseSize = -1
	err = l.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid brush size %v", l.BrushBaseSize)
	}
	l.BrushBaseSize = 2.125
	err = l.Validate()
	if err != nil {
		t.Errorf("valid brush size %v was not accepted: %v", l.BrushBaseSize, err)
	}

	l.Points = []Point{{Pressure: 3}}
	err = l.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid point")
	}
}

func TestValidatePoint(t *testing.T) {
	var p Point
	err := p.Validate()
	if err != nil {
		t.Log("newly initialized point should be valid")
		t.Error(err)
	}

	p.X = float32(math.NaN())
	err = p.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid x-coordinate %v", p.X)
	}
	p.X = -20
	err = p.Validate()
	if err != nil {
		t.Errorf("coordinate outside the display should be accepted: %v", err)
	}

	p.Speed = -1
	err = p.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid speed value %v", p.Speed)
	}
	p.Speed = 5.5

	p.Width = -1
	err = p.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid width value %v", p.Width)
	}
	p.Width = 5.5

	p.Pressure = -1
	err = p.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid pressure value %v", p.Pressure)
	}
	p.Pressure = 2
	err = p.Validate()
	if err == nil {
		t.Errorf("failed to detect invalid pressure value %v", p.Pressure)
	}
	p.Pressure = 0.7
	err = p.Validate()
	if err != nil {
		t.Errorf("valid pressure value %v was not accepted: %v", p.Pressure, err)
	}
}
