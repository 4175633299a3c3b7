package document

// Kind tells the renderer how to draw an element.
type Kind int

const (
	KindText Kind = iota
	KindLine
	KindRect
	KindWatermark
)

// Region names the form section an element belongs to.
type Region string

const (
	RegionHeader    Region = "header"
	RegionWatermark Region = "watermark"
	RegionSummary   Region = "summary"
	RegionKPIHeader Region = "kpi-header"
	RegionKPIRow    Region = "kpi-row"
	RegionSchedule  Region = "schedule"
	RegionNotes     Region = "notes"
	RegionSignature Region = "signature"
	RegionFooter    Region = "footer"
)

// Align is the horizontal alignment of text inside its box.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font is the face of a text element.
type Font struct {
	Bold bool
	Size float64
}

// LineHeight is the vertical advance of one line set in f.
func (f Font) LineHeight() float64 { return f.Size * 1.25 }

// Color is an RGB colour.
type Color struct{ R, G, B uint8 }

var (
	Black = Color{0, 0, 0}
	Ink   = Color{0x11, 0x11, 0x11}
	Red   = Color{0xef, 0x44, 0x44}
)

// Element is one positioned drawing instruction. Text and watermarks fill
// the box X, Y, W, H; lines run from X, Y to X2, Y2; rectangles are outlined.
// A watermark is rotated by Rotation degrees about X2, Y2.
type Element struct {
	Kind   Kind
	Region Region

	X, Y, W, H float64
	X2, Y2     float64

	Text  string
	Font  Font
	Color Color
	Align Align

	Opacity  float64
	Rotation float64
}

// Page holds elements in drawing order.
type Page struct {
	Elements []Element
}

// Document is a laid-out form.
type Document struct {
	Title  string
	Width  float64
	Height float64
	Pages  []Page
}
