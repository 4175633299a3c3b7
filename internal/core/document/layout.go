// Package document lays out the request and approval forms as positioned
// page elements and renders them to PDF.
package document

import (
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"adpaas/internal/core/domain"
	"adpaas/internal/core/schedule"
)

// Byline is printed in the footer of every page.
const Byline = "ADPAAS — Adwords Planner, Audit & Approve System"

const (
	titleApproved = "APPROVED — Campaign Approval Form"
	titleRequest  = "REQUEST FORM — Campaign Approval Request"
	watermarkText = "APPROVED"
	ellipsis      = "…"
)

// Geometry fixes the page and table dimensions, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	// FooterReserve is kept free below the KPI table on every page.
	FooterReserve float64
	RowHeight     float64
	ColumnWidths  []float64
	LabelWidth    float64
}

// A4 is the geometry used for every exported form.
func A4() Geometry {
	return Geometry{
		PageWidth:     595.28,
		PageHeight:    841.89,
		Margin:        42,
		FooterReserve: 120,
		RowHeight:     22,
		ColumnWidths:  []float64{30, 140, 70, 80, 70, 150},
		LabelWidth:    130,
	}
}

// ContentWidth is the printable width between the margins.
func (g Geometry) ContentWidth() float64 { return g.PageWidth - 2*g.Margin }

// TableLimit is the lowest y a KPI row may reach before a page break.
func (g Geometry) TableLimit() float64 { return g.PageHeight - g.Margin - g.FooterReserve }

// FlowLimit is the lowest y ordinary text may reach; the footer sits below it.
func (g Geometry) FlowLimit() float64 { return g.PageHeight - g.Margin - footerOffset - 4 }

func (g Geometry) tableWidth() float64 {
	var w float64
	for _, c := range g.ColumnWidths {
		w += c
	}
	return w
}

const (
	footerOffset = 20
	bylineOffset = 16
	cellPadding  = 4
)

// Input is everything a form is built from.
type Input struct {
	Request   domain.Request
	Approved  bool
	PrintedAt time.Time
	Location  *time.Location
}

// Measurer reports the width of text set in a font.
type Measurer interface {
	TextWidth(s string, f Font) float64
}

type builder struct {
	g       Geometry
	m       Measurer
	in      Input
	printed string
	doc     *Document
	y       float64
}

// Layout positions every element of the form. It never loops: a KPI row
// that does not fit on an empty page yields domain.ErrLayoutOverflow.
func Layout(in Input, g Geometry, m Measurer) (*Document, error) {
	b := &builder{
		g:       g,
		m:       m,
		in:      in,
		printed: Timestamp(&in.PrintedAt, in.Location),
		doc:     &Document{Width: g.PageWidth, Height: g.PageHeight, Title: title(in.Approved)},
	}
	b.newPage()

	steps := []func() error{b.header, b.summary, b.kpiTable, b.schedule, b.notes, b.signatures}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	b.footers()
	return b.doc, nil
}

func title(approved bool) string {
	if approved {
		return titleApproved
	}
	return titleRequest
}

func (b *builder) add(e Element) {
	p := &b.doc.Pages[len(b.doc.Pages)-1]
	p.Elements = append(p.Elements, e)
}

func (b *builder) newPage() {
	b.doc.Pages = append(b.doc.Pages, Page{})
	b.y = b.g.Margin
	if b.in.Approved {
		b.watermark()
	}
}

// watermark is placed absolutely around the page centre, so the flow
// cursor is saved and restored untouched.
func (b *builder) watermark() {
	saved := b.y
	defer func() { b.y = saved }()

	f := Font{Bold: true, Size: 36}
	cx, cy := b.g.PageWidth/2, b.g.PageHeight/2
	b.add(Element{
		Kind:     KindWatermark,
		Region:   RegionWatermark,
		X:        b.g.Margin,
		Y:        cy - f.Size/2,
		W:        b.g.ContentWidth(),
		H:        f.Size,
		X2:       cx,
		Y2:       cy,
		Text:     watermarkText,
		Font:     f,
		Color:    Red,
		Align:    AlignCenter,
		Opacity:  0.18,
		Rotation: 20,
	})
}

// ensure breaks the page when h more points would cross limit.
func (b *builder) ensure(h, limit float64) error {
	if b.y+h <= limit {
		return nil
	}
	b.newPage()
	if b.y+h > limit {
		return domain.ErrLayoutOverflow
	}
	return nil
}

func (b *builder) gap(h float64) { b.y += h }

func (b *builder) rule(region Region) {
	b.add(Element{Kind: KindLine, Region: region, X: b.g.Margin, Y: b.y, X2: b.g.PageWidth - b.g.Margin, Y2: b.y, Color: Black})
}

// line adds one text line of the flow and advances the cursor.
func (b *builder) line(region Region, x, w float64, s string, f Font, c Color) error {
	h := f.LineHeight()
	if err := b.ensure(h, b.g.FlowLimit()); err != nil {
		return err
	}
	b.add(Element{Kind: KindText, Region: region, X: x, Y: b.y, W: w, H: h, Text: s, Font: f, Color: c, Align: AlignLeft})
	b.y += h
	return nil
}

func (b *builder) paragraph(region Region, s string, f Font) error {
	for _, l := range wrap(b.m, s, b.g.ContentWidth(), f) {
		if err := b.line(region, b.g.Margin, b.g.ContentWidth(), l, f, Black); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) heading(region Region, s string) error {
	return b.line(region, b.g.Margin, b.g.ContentWidth(), s, Font{Bold: true, Size: 12}, Black)
}

func (b *builder) header() error {
	color := Black
	if b.in.Approved {
		color = Red
	}
	if err := b.line(RegionHeader, b.g.Margin, b.g.ContentWidth(), b.doc.Title, Font{Bold: true, Size: 16}, color); err != nil {
		return err
	}
	if err := b.line(RegionHeader, b.g.Margin, b.g.ContentWidth(), "Printed: "+b.printed, Font{Size: 10}, Black); err != nil {
		return err
	}
	b.gap(4)
	b.rule(RegionHeader)
	b.gap(8)
	return nil
}

func (b *builder) summary() error {
	r := b.in.Request
	funnel := orDash(string(r.Funnel)) + " / " + orDash(r.Objective)
	pairs := [][2]string{
		{"Campaign Name", orDash(r.CampaignName)},
		{"Platform", orDash(r.Platform)},
		{"Funnel / Objective", funnel},
		{"Channels", channels(r.Channels)},
		{"Budget", Budget(r)},
		{"Project Period", Period(r)},
		{"Final URL", orDash(r.FinalURL)},
		{"Languages", csv(r.Languages)},
		{"Locations", csv(r.Locations)},
		{"Status", orDash(string(r.Status))},
		{"Created", Timestamp(&r.CreatedAt, b.in.Location)},
		{"Submitted", Timestamp(r.SubmittedAt, b.in.Location)},
	}
	if err := b.heading(RegionSummary, "CAMPAIGN SUMMARY"); err != nil {
		return err
	}
	b.gap(2)

	f := Font{Size: 10}
	valueX := b.g.Margin + b.g.LabelWidth
	valueW := b.g.ContentWidth() - b.g.LabelWidth
	for _, p := range pairs {
		for i, l := range wrap(b.m, p[1], valueW, f) {
			if err := b.ensure(f.LineHeight(), b.g.FlowLimit()); err != nil {
				return err
			}
			if i == 0 {
				b.add(Element{Kind: KindText, Region: RegionSummary, X: b.g.Margin, Y: b.y, W: b.g.LabelWidth, H: f.LineHeight(), Text: p[0], Font: f, Color: Black, Align: AlignLeft})
			}
			if err := b.line(RegionSummary, valueX, valueW, l, f, Ink); err != nil {
				return err
			}
		}
	}
	b.gap(6)
	b.rule(RegionSummary)
	b.gap(8)
	return nil
}

var kpiHeaders = []string{"#", "KPI", "Operator", "Target", "Unit", "Method"}

func (b *builder) kpiTable() error {
	if err := b.heading(RegionKPIHeader, "KPI SUMMARY"); err != nil {
		return err
	}
	b.gap(2)

	rows := slices.Clone(b.in.Request.KPIs)
	slices.SortStableFunc(rows, func(a, c domain.KpiRow) int { return a.Index - c.Index })

	limit := b.g.TableLimit()
	rowH := b.g.RowHeight
	if b.y+2*rowH > limit {
		b.newPage()
		if b.y+2*rowH > limit {
			return domain.ErrLayoutOverflow
		}
	}
	b.tableRow(RegionKPIHeader, kpiHeaders, true)

	if len(rows) == 0 {
		if err := b.kpiRow(slices.Repeat([]string{Dash}, len(kpiHeaders)), false); err != nil {
			return err
		}
	}
	for _, k := range rows {
		cells := []string{
			strconv.Itoa(k.Index + 1),
			k.DisplayName(),
			orDash(string(k.Operator)),
			Target(k),
			orDash(string(k.Unit)),
			orDash(k.Method),
		}
		if err := b.kpiRow(cells, k.IsPrimary); err != nil {
			return err
		}
	}
	b.gap(6)
	b.rule(RegionKPIRow)
	b.gap(8)
	return nil
}

// kpiRow breaks the page before a row that would cross the table limit and
// repeats the header row at the top of the new page.
func (b *builder) kpiRow(cells []string, bold bool) error {
	limit := b.g.TableLimit()
	rowH := b.g.RowHeight
	if b.y+rowH > limit {
		b.newPage()
		if b.y+2*rowH > limit {
			return domain.ErrLayoutOverflow
		}
		b.tableRow(RegionKPIHeader, kpiHeaders, true)
	}
	b.tableRow(RegionKPIRow, cells, bold)
	return nil
}

func (b *builder) tableRow(region Region, cells []string, bold bool) {
	f := Font{Bold: bold, Size: 10}
	b.add(Element{Kind: KindRect, Region: region, X: b.g.Margin, Y: b.y, W: b.g.tableWidth(), H: b.g.RowHeight, Color: Black})
	x := b.g.Margin
	for i, w := range b.g.ColumnWidths {
		s := Dash
		if i < len(cells) {
			s = cells[i]
		}
		inner := w - 2*cellPadding
		b.add(Element{
			Kind: KindText, Region: region,
			X: x + cellPadding, Y: b.y, W: inner, H: b.g.RowHeight,
			Text: fit(b.m, s, inner, f), Font: f, Color: Black, Align: AlignLeft,
		})
		x += w
	}
	b.y += b.g.RowHeight
}

func (b *builder) schedule() error {
	if err := b.heading(RegionSchedule, "AD SCHEDULE"); err != nil {
		return err
	}
	b.gap(2)
	return b.paragraph(RegionSchedule, schedule.Summarize(b.in.Request.Schedule), Font{Size: 10})
}

func (b *builder) notes() error {
	notes := strings.TrimSpace(b.in.Request.Notes)
	if notes == "" {
		return nil
	}
	b.gap(8)
	if err := b.heading(RegionNotes, "NOTES"); err != nil {
		return err
	}
	b.gap(2)
	for _, p := range strings.Split(notes, "\n") {
		if err := b.paragraph(RegionNotes, p, Font{Size: 10}); err != nil {
			return err
		}
	}
	return nil
}

const signatureSpacing = 24

func (b *builder) signatures() error {
	b.gap(12)
	labels := []string{"Requested by", "Reviewed by", "Approved by"}
	if err := b.ensure(float64(len(labels))*signatureSpacing, b.g.FlowLimit()); err != nil {
		return err
	}
	w := b.g.ContentWidth()
	mid := b.g.Margin + w*0.62
	f := Font{Size: 10}
	for _, l := range labels {
		b.add(Element{Kind: KindText, Region: RegionSignature, X: b.g.Margin, Y: b.y, W: mid - b.g.Margin, H: f.LineHeight(), Text: l, Font: f, Color: Black, Align: AlignLeft})
		ry := b.y + 12
		b.add(Element{Kind: KindLine, Region: RegionSignature, X: mid, Y: ry, X2: mid + w*0.35, Y2: ry, Color: Black})
		b.y += signatureSpacing
	}
	return nil
}

func (b *builder) footers() {
	g := b.g
	f := Font{Size: 9}
	ry := g.PageHeight - g.Margin - footerOffset
	ty := g.PageHeight - g.Margin - bylineOffset
	for i := range b.doc.Pages {
		p := &b.doc.Pages[i]
		p.Elements = append(p.Elements,
			Element{Kind: KindLine, Region: RegionFooter, X: g.Margin, Y: ry, X2: g.PageWidth - g.Margin, Y2: ry, Color: Black},
			Element{Kind: KindText, Region: RegionFooter, X: g.Margin, Y: ty, W: g.ContentWidth(), H: f.LineHeight(), Text: Byline, Font: f, Color: Black, Align: AlignLeft},
			Element{Kind: KindText, Region: RegionFooter, X: g.Margin, Y: ty, W: g.ContentWidth(), H: f.LineHeight(), Text: "Printed on " + b.printed, Font: f, Color: Black, Align: AlignRight},
		)
	}
}

// wrap breaks s into lines no wider than w, splitting on spaces and, for a
// single overlong word, between runes.
func wrap(m Measurer, s string, w float64, f Font) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{Dash}
	}
	var (
		lines []string
		cur   string
	)
	for _, word := range words {
		cand := word
		if cur != "" {
			cand = cur + " " + word
		}
		if m.TextWidth(cand, f) <= w {
			cur = cand
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for m.TextWidth(word, f) > w && utf8.RuneCountInString(word) > 1 {
			head, rest := splitAt(m, word, w, f)
			lines = append(lines, head)
			word = rest
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// splitAt returns the longest prefix of s (at least one rune) that fits w.
func splitAt(m Measurer, s string, w float64, f Font) (string, string) {
	cut := 0
	for i := range s {
		if i > 0 && m.TextWidth(s[:i], f) > w {
			break
		}
		cut = i
	}
	if cut == 0 {
		_, size := utf8.DecodeRuneInString(s)
		cut = size
	}
	return s[:cut], s[cut:]
}

// fit truncates s with an ellipsis so it fits w.
func fit(m Measurer, s string, w float64, f Font) string {
	if m.TextWidth(s, f) <= w {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		if t := string(runes[:n]) + ellipsis; m.TextWidth(t, f) <= w {
			return t
		}
	}
	return ellipsis
}
