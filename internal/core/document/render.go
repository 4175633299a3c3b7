package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

// ContentType is sent with every rendered form.
const ContentType = "application/pdf"

const (
	coreFamily = "Helvetica"
	ttfFamily  = "body"
)

// Options configure a Renderer. Font paths are optional; without them the
// built-in Helvetica is used and text is limited to Windows-1252.
type Options struct {
	Geometry    Geometry
	Location    *time.Location
	RegularFont string
	BoldFont    string
}

// Renderer writes laid-out forms as PDF.
type Renderer struct {
	geom    Geometry
	loc     *time.Location
	regular []byte
	bold    []byte
}

// NewRenderer reads the configured fonts once so rendering does no file I/O.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{geom: opts.Geometry, loc: opts.Location}
	if len(r.geom.ColumnWidths) == 0 {
		r.geom = A4()
	}
	if r.loc == nil {
		r.loc = time.UTC
	}
	if opts.RegularFont != "" {
		b, err := os.ReadFile(opts.RegularFont)
		if err != nil {
			return nil, fmt.Errorf("read regular font: %w", err)
		}
		r.regular = b
		r.bold = b
	}
	if opts.BoldFont != "" {
		b, err := os.ReadFile(opts.BoldFont)
		if err != nil {
			return nil, fmt.Errorf("read bold font: %w", err)
		}
		r.bold = b
		if r.regular == nil {
			r.regular = b
		}
	}
	return r, nil
}

// Render lays out in and writes the PDF to w. The creation date is pinned to
// in.PrintedAt, so equal inputs produce equal bytes. ctx is checked before
// each page is drawn.
func (r *Renderer) Render(ctx context.Context, in Input, w io.Writer) error {
	if in.Location == nil {
		in.Location = r.loc
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: r.geom.PageWidth, Ht: r.geom.PageHeight},
	})
	pdf.SetMargins(r.geom.Margin, r.geom.Margin, r.geom.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(in.PrintedAt)
	pdf.SetModificationDate(in.PrintedAt)
	pdf.SetCreator("ADPAAS", false)
	pdf.SetLineWidth(0.75)

	family, tr := coreFamily, pdf.UnicodeTranslatorFromDescriptor("")
	if r.regular != nil {
		pdf.AddUTF8FontFromBytes(ttfFamily, "", r.regular)
		pdf.AddUTF8FontFromBytes(ttfFamily, "B", r.bold)
		family, tr = ttfFamily, func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("init pdf: %w", err)
	}

	doc, err := Layout(in, r.geom, pdfMeasurer{pdf: pdf, family: family, tr: tr})
	if err != nil {
		return err
	}
	pdf.SetTitle(doc.Title, true)

	for _, p := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdf.AddPage()
		for _, e := range p.Elements {
			draw(pdf, family, tr, e)
		}
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("draw pdf: %w", err)
	}
	return pdf.Output(w)
}

func draw(pdf *fpdf.Fpdf, family string, tr func(string) string, e Element) {
	switch e.Kind {
	case KindLine:
		pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		pdf.Line(e.X, e.Y, e.X2, e.Y2)
	case KindRect:
		pdf.SetDrawColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
		pdf.Rect(e.X, e.Y, e.W, e.H, "D")
	case KindText:
		text(pdf, family, tr, e)
	case KindWatermark:
		pdf.TransformBegin()
		pdf.TransformRotate(e.Rotation, e.X2, e.Y2)
		pdf.SetAlpha(e.Opacity, "Normal")
		text(pdf, family, tr, e)
		pdf.SetAlpha(1, "Normal")
		pdf.TransformEnd()
	}
}

func text(pdf *fpdf.Fpdf, family string, tr func(string) string, e Element) {
	pdf.SetFont(family, style(e.Font), e.Font.Size)
	pdf.SetTextColor(int(e.Color.R), int(e.Color.G), int(e.Color.B))
	pdf.SetXY(e.X, e.Y)
	pdf.CellFormat(e.W, e.H, tr(e.Text), "", 0, string(e.Align), false, 0, "")
}

func style(f Font) string {
	if f.Bold {
		return "B"
	}
	return ""
}

type pdfMeasurer struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func (m pdfMeasurer) TextWidth(s string, f Font) float64 {
	m.pdf.SetFont(m.family, style(f), f.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}
