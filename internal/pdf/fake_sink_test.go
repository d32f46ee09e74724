package pdf

import (
	"math"
	"unicode/utf8"

	"github.com/paperforge/paperforge-backend/internal/config"
)

// fakeSink is a minimal Sink for layout tests. It records every operation
// with the page it landed on and measures text with a fixed per-rune
// width, so block heights are deterministic without a rendering engine.
type fakeSink struct {
	ops       []sinkOp
	pages     int
	finalized bool
}

type sinkOp struct {
	kind  string // "text", "image", "line", "page"
	text  string
	x, y  float64
	page  int
	style TextStyle
}

func newFakeSink() *fakeSink {
	return &fakeSink{pages: 1}
}

func (f *fakeSink) AddPage() {
	f.pages++
	f.ops = append(f.ops, sinkOp{kind: "page", page: f.pages})
}

func (f *fakeSink) Text(txt string, x, y, width float64, st TextStyle) float64 {
	f.ops = append(f.ops, sinkOp{kind: "text", text: txt, x: x, y: y, page: f.pages, style: st})
	return f.heightFor(txt, width, st)
}

func (f *fakeSink) LabeledText(label string, labelStyle TextStyle, body string, bodyStyle TextStyle, x, y, width float64) float64 {
	f.ops = append(f.ops, sinkOp{kind: "text", text: label + body, x: x, y: y, page: f.pages, style: bodyStyle})
	return f.heightFor(label+body, width, bodyStyle)
}

func (f *fakeSink) TextWidth(txt string, st TextStyle) float64 {
	return float64(utf8.RuneCountInString(txt)) * st.Size * 0.5
}

func (f *fakeSink) LineHeight(st TextStyle) float64 {
	return st.Size * lineSpacing
}

func (f *fakeSink) Image(path string, x, y, width float64) (float64, error) {
	f.ops = append(f.ops, sinkOp{kind: "image", text: path, x: x, y: y, page: f.pages})
	return width * 0.6, nil
}

func (f *fakeSink) Line(x1, y1, x2, y2 float64) {
	f.ops = append(f.ops, sinkOp{kind: "line", x: x1, y: y1, page: f.pages})
}

func (f *fakeSink) PageCount() int { return f.pages }

func (f *fakeSink) Bytes() ([]byte, error) {
	f.finalized = true
	return []byte("%FAKE"), nil
}

func (f *fakeSink) heightFor(txt string, width float64, st TextStyle) float64 {
	lines := 1.0
	if width > 0 {
		lines = math.Ceil(f.TextWidth(txt, st) / width)
		if lines < 1 {
			lines = 1
		}
	}
	return lines * f.LineHeight(st)
}

// texts returns all recorded text runs in write order.
func (f *fakeSink) texts() []string {
	var out []string
	for _, o := range f.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

// textIndex returns the position of the first text run equal to s, or -1.
func (f *fakeSink) textIndex(s string) int {
	for i, t := range f.texts() {
		if t == s {
			return i
		}
	}
	return -1
}

func testGeometry() Geometry {
	return Geometry{
		Page:      config.PageSize{Width: 595.28, Height: 841.89},
		Margins:   config.Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		ColumnGap: 20,
	}
}

func testStyles() Styles {
	return Styles{
		Family: "Helvetica",
		Sizes:  config.FontSizes{Title: 18, Header: 14, SubHeader: 12, Normal: 10, Small: 8},
	}
}
