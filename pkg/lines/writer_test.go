package lines

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTripV3(t *testing.T) {
	f := newV3()
	f.i32(2)
	f.i32(2)
	f.line(0, 0, 2).point(1, 2).point(3, 4)
	f.line(12, 6, 1).point(5, 6)
	f.i32(1)
	f.line(8, 2, 0)
	original := append([]byte(nil), f.Bytes()...)

	d, err := Decode(bytes.NewReader(original))
	require.NoError(t, err)

	encoded, err := d.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, original, encoded)
}

func TestEncodeRoundTripV5(t *testing.T) {
	f := newV5()
	f.i32(1, 1)
	f.i32(18, 1, 7)
	f.f32(2.125)
	f.i32(99, 2)
	f.point(100, 200)
	f.point(101, 201)
	original := append([]byte(nil), f.Bytes()...)

	d, err := Decode(bytes.NewReader(original))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, d))
	assert.Equal(t, original, buf.Bytes())
}

func TestEncodeCanonicalCodes(t *testing.T) {
	d := NewDocument(V5)
	layer := d.Pages[0].AddLayer()
	layer.Lines = append(layer.Lines, Line{
		BrushType: Fineliner,
		Color:     Red,
		Points:    pts(1, 1),
	})

	data, err := d.MarshalBinary()
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	l := decoded.Pages[0].Layers[0].Lines[0]
	assert.Equal(t, Fineliner, l.BrushType)
	assert.Equal(t, int32(17), l.BrushCode)
	assert.Equal(t, Red, l.Color)
	assert.True(t, l.HasUnknown2)
}

func TestEncodeInvalid(t *testing.T) {
	d := NewDocument(Version(4))
	_, err := d.MarshalBinary()
	assert.Error(t, err)

	d = &Document{Version: V3}
	_, err = d.MarshalBinary()
	assert.Error(t, err, "missing page")

	d = NewDocument(V3)
	d.Pages[0].AddLayer().Lines = []Line{{BrushType: BrushType(77)}}
	_, err = d.MarshalBinary()
	assert.Error(t, err)
}
