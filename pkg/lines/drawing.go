package lines

// Header starting a .rm binary file. This can help recognizing a .rm file.
const (
	headerV3     = "reMarkable .lines file, version=3"
	headerV5     = "reMarkable .lines file, version=5"
	headerLegacy = "reMarkable lines with selections and layers"
	headerLen    = 33
	// reservedLen is the number of padding bytes following the header
	// since version 3.
	reservedLen = 10
)

// Version defines the version number of a remarkable .lines file.
type Version int

const (
	V3 Version = 3
	V5 Version = 5
)

const (
	// MaxWidth is the display width of the reMarkable tablet.
	MaxWidth = 1404
	// MaxHeight is the display height of the reMarkable tablet.
	MaxHeight = 1872
)

// Document is the content of a single .lines file.
//
// Files with version 3 or higher always hold exactly one page.
type Document struct {
	Version Version
	Pages   []Page
}

// NewDocument creates a document with a single empty page.
func NewDocument(v Version) *Document {
	return &Document{
		Version: v,
		Pages:   []Page{{}},
	}
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.Pages)
}

// Page is a single page with drawings.
// Layers are ordered bottom to top.
type Page struct {
	Layers []Layer
}

// NumLayers returns the number of layers on the page.
func (p *Page) NumLayers() int {
	return len(p.Layers)
}

// AddLayer appends an empty layer and returns a pointer to it.
func (p *Page) AddLayer() *Layer {
	p.Layers = append(p.Layers, Layer{})
	return &p.Layers[len(p.Layers)-1]
}

// Layer is one layer on a page.
type Layer struct {
	Lines []Line
}

// Line is a single continous brush stroke.
type Line struct {
	// BrushType is the logical pen type, e.g. Fineliner or BallPoint.
	BrushType BrushType
	// BrushCode is the raw brush code as it was found in the file.
	// Several codes map to the same BrushType.
	BrushCode int32
	// Color is one of the available ink colors.
	Color Color
	// Unknown is an attribute with unknown meaning. It is kept as is.
	Unknown int32
	// BrushBaseSize is the nominal width of the brush.
	BrushBaseSize float32
	// Unknown2 is the second unknown attribute.
	// It is only present in version 5 files, see HasUnknown2.
	Unknown2    int32
	HasUnknown2 bool
	// Points are the sampled coordinates that make up this line.
	Points []Point
}

// NumPoints returns the number of points in the line.
func (l *Line) NumPoints() int {
	return len(l.Points)
}

// Point is a single sample from a stroke.
type Point struct {
	// X is the x-coordinate for this point.
	X float32
	// Y is the y-coordinate for this point.
	Y float32
	// Speed is the speed with which the stylus moved across the screen.
	Speed float32
	// Direction is the angle of the stylus movement in radians.
	Direction float32
	// Width is the effective width of the brush at this point.
	Width float32
	// Pressure is the amount of pressure applied to the stylus.
	// Value range is 0.0 trough 1.0
	Pressure float32
}
