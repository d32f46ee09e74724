package pdf

import "github.com/paperforge/paperforge-backend/internal/config"

// Geometry describes the fixed page layout for one generation call:
// page dimensions, margin offsets and the gap between the two columns.
// All values are in PDF points.
type Geometry struct {
	Page      config.PageSize
	Margins   config.Margins
	ColumnGap float64
}

// GeometryFromConfig builds the page geometry from process configuration.
func GeometryFromConfig(cfg *config.Config) Geometry {
	return Geometry{Page: cfg.Page, Margins: cfg.Margins, ColumnGap: cfg.ColumnGap}
}

// ContentWidth is the horizontal band between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.Page.Width - g.Margins.Left - g.Margins.Right
}

// ColumnWidth is the width of one of the two layout columns.
func (g Geometry) ColumnWidth() float64 {
	return (g.ContentWidth() - g.ColumnGap) / 2
}

// LeftColumnX is the left edge of column 0.
func (g Geometry) LeftColumnX() float64 {
	return g.Margins.Left
}

// RightColumnX is the left edge of column 1.
func (g Geometry) RightColumnX() float64 {
	return g.Margins.Left + g.ColumnWidth() + g.ColumnGap
}

// DividerX is the x position of the vertical rule between the columns.
func (g Geometry) DividerX() float64 {
	return g.Margins.Left + g.ColumnWidth() + g.ColumnGap/2
}

// ContentBottom is the y position of the bottom margin.
func (g Geometry) ContentBottom() float64 {
	return g.Page.Height - g.Margins.Bottom
}
