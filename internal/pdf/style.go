package pdf

import "github.com/paperforge/paperforge-backend/internal/config"

// FontRole names one of the configured font faces.
type FontRole int

const (
	FontRegular FontRole = iota
	FontBold
	FontItalic
)

// Align is the horizontal alignment of a text run within its band.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignJustify
)

// TextStyle carries the attributes of a single text run.
type TextStyle struct {
	Role  FontRole
	Size  float64
	Align Align
}

// Styles resolves the configured font role and size presets into the
// concrete text styles the block renderers use.
type Styles struct {
	Family string
	Sizes  config.FontSizes
}

// StylesFromConfig builds the style set from process configuration.
func StylesFromConfig(cfg *config.Config) Styles {
	return Styles{Family: cfg.FontFamily, Sizes: cfg.Sizes}
}

func (s Styles) title() TextStyle {
	return TextStyle{Role: FontBold, Size: s.Sizes.Title, Align: AlignCenter}
}

func (s Styles) sectionTitle() TextStyle {
	return TextStyle{Role: FontBold, Size: s.Sizes.Header, Align: AlignCenter}
}

func (s Styles) subHeader() TextStyle {
	return TextStyle{Role: FontRegular, Size: s.Sizes.SubHeader, Align: AlignCenter}
}

func (s Styles) normal(align Align) TextStyle {
	return TextStyle{Role: FontRegular, Size: s.Sizes.Normal, Align: align}
}

func (s Styles) bold(align Align) TextStyle {
	return TextStyle{Role: FontBold, Size: s.Sizes.Normal, Align: align}
}

func (s Styles) italic(align Align) TextStyle {
	return TextStyle{Role: FontItalic, Size: s.Sizes.Normal, Align: align}
}
