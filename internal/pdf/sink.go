package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/paperforge/paperforge-backend/internal/config"
)

// Line height as a multiple of the font size.
const lineSpacing = 1.3

// Sink is the append-only output stream the block renderers write to.
// It is implemented by an external document-rendering engine; the layout
// core depends on it only through this contract and makes no assumption
// about the produced binary format.
type Sink interface {
	// AddPage opens a fresh page; subsequent writes land on it.
	AddPage()

	// Text writes txt wrapped within width starting at (x, y) and
	// returns the vertical space consumed.
	Text(txt string, x, y, width float64, st TextStyle) float64

	// LabeledText writes label at (x, y) and continues body inline on
	// the same line, wrapping onto the full width below. Returns the
	// vertical space consumed.
	LabeledText(label string, labelStyle TextStyle, body string, bodyStyle TextStyle, x, y, width float64) float64

	// TextWidth measures txt in the given style without writing it.
	TextWidth(txt string, st TextStyle) float64

	// LineHeight is the vertical advance of one text line in the style.
	LineHeight(st TextStyle) float64

	// Image places the raster image at (x, y) scaled to width, and
	// returns the height it occupies.
	Image(path string, x, y, width float64) (float64, error)

	// Line draws a vector line between two points.
	Line(x1, y1, x2, y2 float64)

	// PageCount reports the number of pages created so far.
	PageCount() int

	// Bytes finalizes the document and returns the complete encoded
	// byte sequence. No writes may follow.
	Bytes() ([]byte, error)
}

// documentSink renders through go-pdf/fpdf. The engine owns the PDF
// encoding; this type only translates the Sink contract onto it.
type documentSink struct {
	doc    *fpdf.Fpdf
	family string
}

// NewDocumentSink creates a Sink backed by a fresh fpdf document with the
// first page already open. Automatic page breaks are disabled: the layout
// cursor owns every page transition.
func NewDocumentSink(cfg *config.Config) Sink {
	doc := fpdf.New("P", "pt", cfg.PageSizeName, "")
	doc.SetMargins(cfg.Margins.Left, cfg.Margins.Top, cfg.Margins.Right)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCellMargin(0)
	// Sorted object catalogs keep the encoded output stable across runs.
	doc.SetCatalogSort(true)
	if !cfg.EmbedTimestamp {
		// Pin the metadata dates so identical input yields identical bytes.
		doc.SetCreationDate(time.Unix(0, 0).UTC())
		doc.SetModificationDate(time.Unix(0, 0).UTC())
	}
	doc.AddPage()
	return &documentSink{doc: doc, family: cfg.FontFamily}
}

func (s *documentSink) AddPage() {
	s.doc.AddPage()
}

func (s *documentSink) Text(txt string, x, y, width float64, st TextStyle) float64 {
	s.apply(st)
	s.doc.SetXY(x, y)
	s.doc.MultiCell(width, s.LineHeight(st), txt, "", alignStr(st.Align), false)
	return s.doc.GetY() - y
}

func (s *documentSink) LabeledText(label string, labelStyle TextStyle, body string, bodyStyle TextStyle, x, y, width float64) float64 {
	s.apply(labelStyle)
	labelW := s.doc.GetStringWidth(label)
	lh := s.LineHeight(labelStyle)
	if blh := s.LineHeight(bodyStyle); blh > lh {
		lh = blh
	}
	s.doc.SetXY(x, y)
	s.doc.CellFormat(labelW, lh, label, "", 0, "L", false, 0, "")

	s.apply(bodyStyle)
	rest := width - labelW
	if rest <= s.doc.GetStringWidth("W") {
		// Label nearly fills the band; flow the body below it.
		s.doc.SetXY(x, y+lh)
		s.doc.MultiCell(width, lh, body, "", alignStr(bodyStyle.Align), false)
		return s.doc.GetY() - y
	}

	lines := s.doc.SplitLines([]byte(body), rest)
	if len(lines) == 0 {
		return lh
	}
	s.doc.SetXY(x+labelW, y)
	s.doc.CellFormat(rest, lh, string(lines[0]), "", 0, "L", false, 0, "")
	if len(lines) == 1 {
		return lh
	}
	remainder := make([]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		remainder = append(remainder, string(l))
	}
	s.doc.SetXY(x, y+lh)
	s.doc.MultiCell(width, lh, strings.Join(remainder, " "), "", alignStr(bodyStyle.Align), false)
	return s.doc.GetY() - y
}

func (s *documentSink) TextWidth(txt string, st TextStyle) float64 {
	s.apply(st)
	return s.doc.GetStringWidth(txt)
}

func (s *documentSink) LineHeight(st TextStyle) float64 {
	return st.Size * lineSpacing
}

func (s *documentSink) Image(path string, x, y, width float64) (float64, error) {
	info := s.doc.RegisterImageOptions(path, fpdf.ImageOptions{})
	if s.doc.Err() {
		return 0, fmt.Errorf("register image %s: %w", path, s.doc.Error())
	}
	w, h := info.Extent()
	scaled := width * h / w
	s.doc.ImageOptions(path, x, y, width, scaled, false, fpdf.ImageOptions{}, 0, "")
	if s.doc.Err() {
		return 0, fmt.Errorf("place image %s: %w", path, s.doc.Error())
	}
	return scaled, nil
}

func (s *documentSink) Line(x1, y1, x2, y2 float64) {
	s.doc.SetDrawColor(0, 0, 0)
	s.doc.SetLineWidth(0.5)
	s.doc.Line(x1, y1, x2, y2)
}

func (s *documentSink) PageCount() int {
	return s.doc.PageCount()
}

func (s *documentSink) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *documentSink) apply(st TextStyle) {
	s.doc.SetFont(s.family, fontStyleStr(st.Role), st.Size)
}

func fontStyleStr(role FontRole) string {
	switch role {
	case FontBold:
		return "B"
	case FontItalic:
		return "I"
	default:
		return ""
	}
}

func alignStr(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignJustify:
		return "J"
	default:
		return "L"
	}
}
