package pdf

import (
	"fmt"

	"github.com/paperforge/paperforge-backend/internal/model"
)

// Width the optional logo is scaled to, in points.
const logoWidth = 70.0

// renderHeader draws the paper header on the first page: optional logo
// top-left, centered title, subject line, the date/time/marks summary and
// the numbered instructions list. A missing or unreadable logo is skipped
// with a warning; a corrupt one aborts generation.
func (a *Assembler) renderHeader(p model.Paper) error {
	g := a.geom
	left := g.Margins.Left
	cw := g.ContentWidth()
	y := g.Margins.Top

	if p.Logo != "" {
		if path, ok := a.assetPath(p.Logo); ok {
			if _, err := a.sink.Image(path, left, y, logoWidth); err != nil {
				return err
			}
		} else {
			a.log.Warn().Str("logo", p.Logo).Msg("Logo not readable, skipping")
		}
	}

	y += a.sink.Text(p.Title, left, y, cw, a.styles.title()) + 8
	y += a.sink.Text("Subject: "+p.Subject, left, y, cw, a.styles.subHeader()) + 4

	summary := fmt.Sprintf("Date: %s  |  Time: %s  |  Marks: %s", p.Date, p.Duration, p.TotalMarks)
	y += a.sink.Text(summary, left, y, cw, a.styles.normal(AlignCenter)) + 14

	if len(p.Instructions) > 0 {
		y += a.sink.Text("Instructions:", left, y, cw, a.styles.italic(AlignLeft)) + 2
		for i, ins := range p.Instructions {
			y += a.sink.Text(fmt.Sprintf("%d. %s", i+1, ins), left+10, y, cw-10, a.styles.normal(AlignLeft))
		}
	}
	return nil
}
