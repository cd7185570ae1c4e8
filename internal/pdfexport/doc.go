// Package pdfexport renders worksheets, question papers and answer keys
// as PDF documents.
package pdfexport

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/go-pdf/fpdf"
)

// Config controls page geometry and fixed header text.
type Config struct {
	PageSize       string // fpdf size name, e.g. "Letter" or "A4"
	FontFamily     string
	HeaderTitle    string // first line of a question paper
	WorksheetTitle string // first line of a worksheet
	Compress       bool
}

// DefaultConfig returns the layout used for printed screening tests.
func DefaultConfig() Config {
	return Config{
		PageSize:       "Letter",
		FontFamily:     "Helvetica",
		HeaderTitle:    "NavGurukul – Screening Test",
		WorksheetTitle: "Question Generator - Admissions NG ST",
		Compress:       true,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PageSize == "" {
		c.PageSize = d.PageSize
	}
	if c.FontFamily == "" {
		c.FontFamily = d.FontFamily
	}
	if c.HeaderTitle == "" {
		c.HeaderTitle = d.HeaderTitle
	}
	if c.WorksheetTitle == "" {
		c.WorksheetTitle = d.WorksheetTitle
	}
	return c
}

// Safe replaces the rupee sign, which the core PDF fonts cannot draw.
func Safe(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs.")
}

// page wraps an fpdf document with a vertical cursor and manual page breaks.
type page struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	family string

	width, height float64
	left, right   float64
	top, bottom   float64
	y             float64
}

func newPage(cfg Config, size string, left, right, top, bottom float64) *page {
	pdf := fpdf.New("P", "mm", size, "")
	pdf.SetCompression(cfg.Compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(left, top, right)
	pdf.SetCreator("quizgen", false)
	w, h := pdf.GetPageSize()
	p := &page{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		family: cfg.FontFamily,
		width:  w,
		height: h,
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
	}
	pdf.AddPage()
	p.y = top
	return p
}

func (p *page) contentWidth() float64 {
	return p.width - p.left - p.right
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

// encode converts UTF-8 text into the single-byte encoding of the core fonts.
func (p *page) encode(s string) string {
	return p.tr(Safe(s))
}

// ensure starts a new page unless needed millimetres still fit.
func (p *page) ensure(needed float64) {
	if p.y+needed > p.height-p.bottom {
		p.pdf.AddPage()
		p.y = p.top
	}
}

func (p *page) text(x float64, s string) {
	p.pdf.Text(x, p.y, p.encode(s))
}

func (p *page) centered(s string) {
	enc := p.encode(s)
	p.pdf.Text((p.width-p.pdf.GetStringWidth(enc))/2, p.y, enc)
}

func (p *page) textWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.encode(s))
}

// wrap splits s into lines no wider than w. Lines are already encoded.
//
// SplitText indexes glyph widths by rune, so the encoded bytes are split
// as one rune each and packed back afterwards.
func (p *page) wrap(s string, w float64) []string {
	enc := []byte(p.encode(s))
	runes := make([]rune, len(enc))
	for i, b := range enc {
		runes[i] = rune(b)
	}
	lines := p.pdf.SplitText(string(runes), w)
	out := make([]string, len(lines))
	for i, l := range lines {
		bs := make([]byte, 0, len(l))
		for _, r := range l {
			bs = append(bs, byte(r))
		}
		out[i] = string(bs)
	}
	return out
}

func (p *page) separator() {
	p.pdf.SetDrawColor(100, 100, 100)
	p.pdf.SetLineWidth(0.4)
	p.pdf.Line(p.left, p.y, p.width-p.right, p.y)
	p.y += 5
}

// raw draws text that wrap has already encoded.
func (p *page) raw(x float64, enc string) {
	p.pdf.Text(x, p.y, enc)
}

func (p *page) output(w io.Writer) error {
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
