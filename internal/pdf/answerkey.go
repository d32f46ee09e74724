package pdf

import (
	"fmt"

	"github.com/paperforge/paperforge-backend/internal/model"
)

// Answers per grid row.
const answerColumns = 4

// renderAnswerKey lays the answers out in a 4-cell grid across the full
// content width — not the two-column question layout. Rows advance by the
// tallest cell rendered in the row; a row boundary that would cross the
// bottom margin minus the row buffer starts a new page, except when the
// very last answer has just been written.
func (a *Assembler) renderAnswerKey(questions []model.Question) {
	g := a.geom
	y := g.Margins.Top
	y += a.sink.Text("ANSWER KEY", g.Margins.Left, y, g.ContentWidth(), a.styles.sectionTitle()) + sectionGap

	cellW := g.ContentWidth() / answerColumns
	rowH := 0.0
	for i, q := range questions {
		cell := fmt.Sprintf("%d. %s", i+1, q.AnswerText())
		x := g.Margins.Left + float64(i%answerColumns)*cellW
		if h := a.sink.Text(cell, x, y, cellW, a.styles.normal(AlignLeft)); h > rowH {
			rowH = h
		}

		last := i == len(questions)-1
		if i%answerColumns == answerColumns-1 && !last {
			y += rowH
			rowH = 0
			if y+answerRowBuffer > g.ContentBottom() {
				a.sink.AddPage()
				y = g.Margins.Top
			}
		}
	}
}
