package pdf

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/paperforge/paperforge-backend/internal/config"
	"github.com/paperforge/paperforge-backend/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		PageSizeName: "A4",
		Page:         config.PageSize{Width: 595.28, Height: 841.89},
		Margins:      config.Margins{Top: 50, Bottom: 50, Left: 50, Right: 50},
		ColumnGap:    20,
		FontFamily:   "Helvetica",
		Sizes:        config.FontSizes{Title: 18, Header: 14, SubHeader: 12, Normal: 10, Small: 8},
		AssetDir:     "testdata",
	}
}

func TestDocumentSinkText(t *testing.T) {
	cfg := testConfig()
	s := NewDocumentSink(cfg)

	st := TextStyle{Role: FontRegular, Size: 10, Align: AlignLeft}
	lh := s.LineHeight(st)
	if lh <= 0 {
		t.Fatal("non-positive line height")
	}

	h := s.Text("hello", 50, 50, 200, st)
	if h < lh {
		t.Fatalf("single line consumed %v, want at least %v", h, lh)
	}

	// A run that cannot fit one line wraps and consumes more height.
	long := s.Text("the quick brown fox jumps over the lazy dog, twice at least", 50, 100, 80, st)
	if long <= h {
		t.Fatalf("wrapped run consumed %v, want more than %v", long, h)
	}

	if w := s.TextWidth("hello", st); w <= 0 {
		t.Fatalf("TextWidth = %v", w)
	}
}

func TestDocumentSinkLabeledText(t *testing.T) {
	s := NewDocumentSink(testConfig())

	label := TextStyle{Role: FontBold, Size: 10, Align: AlignLeft}
	body := TextStyle{Role: FontRegular, Size: 10, Align: AlignJustify}

	h := s.LabeledText("Q1. ", label, "short", body, 50, 50, 200)
	if h < s.LineHeight(body) {
		t.Fatalf("labeled run consumed %v, want at least one line", h)
	}

	wrapped := s.LabeledText("Q2. ", label, "a body long enough to spill onto the following line comfortably", body, 50, 100, 120)
	if wrapped <= h {
		t.Fatalf("wrapped labeled run consumed %v, want more than %v", wrapped, h)
	}
}

func TestDocumentSinkFinalize(t *testing.T) {
	s := NewDocumentSink(testConfig())
	s.Text("content", 50, 50, 200, TextStyle{Role: FontRegular, Size: 10})
	s.AddPage()

	if got := s.PageCount(); got != 2 {
		t.Fatalf("PageCount = %d, want 2", got)
	}

	out, err := s.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatal("output is not a PDF stream")
	}
}

// Identical input and configuration must yield byte-identical documents.
func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig()
	p := model.Paper{
		Title:        "Determinism Check",
		Subject:      "Physics",
		Date:         "2026-01-15",
		Duration:     "90m",
		TotalMarks:   "40",
		Instructions: []string{"Answer all questions."},
		Questions: []model.Question{
			mcq("2+2=?", []string{"3", "4", "5", "6"}, 1, "Basic addition."),
			{Type: model.QuestionTypeNumerical, Text: "Speed of light?", Answer: strPtr("3e8")},
		},
	}

	render := func() []byte {
		sink := NewDocumentSink(cfg)
		asm := NewAssembler(sink, GeometryFromConfig(cfg), StylesFromConfig(cfg), cfg.AssetDir, zerolog.Nop())
		out, err := asm.Generate(p)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		return out
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Fatal("identical input produced different bytes")
	}
}
