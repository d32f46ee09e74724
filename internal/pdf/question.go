package pdf

import (
	"fmt"

	"github.com/paperforge/paperforge-backend/internal/model"
)

// Horizontal indent of MCQ option lines relative to the column edge.
const optionIndent = 14.0

// Vertical spacing after each question, in line-units of the normal style.
const questionSpacing = 0.8

// renderQuestions lays the questions out in the two-column flow. Each
// question is written at the cursor, then the cursor advances and wraps
// to the next column or page when the overflow buffer is crossed.
func (a *Assembler) renderQuestions(questions []model.Question) error {
	g := a.geom
	titleH := a.sink.Text("QUESTIONS", g.Margins.Left, g.Margins.Top, g.ContentWidth(), a.styles.sectionTitle())

	if len(questions) == 0 {
		a.sink.Text("No questions available.", g.Margins.Left, g.Margins.Top+titleH+sectionGap, g.ContentWidth(), a.styles.normal(AlignLeft))
		return nil
	}

	drawDivider(a.sink, g)
	a.cur.Reset()
	a.cur.y = g.Margins.Top + titleH + sectionGap

	spacing := questionSpacing * a.sink.LineHeight(a.styles.normal(AlignJustify))
	for i, q := range questions {
		res, err := a.renderQuestion(i+1, q)
		if err != nil {
			return err
		}
		if a.cur.Advance(res.Height+spacing, questionOverflow) {
			a.cur.NextColumnOrPage(a.sink)
		}
	}
	return nil
}

// renderQuestion writes one question block at the cursor position:
// the "Q{n}." label continued inline with the justified question text,
// the lettered option lines for a valid MCQ, and any images scaled to the
// column width. Missing optional fields degrade to omitted elements.
func (a *Assembler) renderQuestion(num int, q model.Question) (RenderResult, error) {
	w := a.geom.ColumnWidth()
	x, y := a.cur.x, a.cur.y

	h := a.sink.LabeledText(
		fmt.Sprintf("Q%d. ", num), a.styles.normal(AlignLeft),
		q.Text, a.styles.normal(AlignJustify),
		x, y, w,
	)

	if q.HasOptions() {
		for j, opt := range q.Options {
			line := fmt.Sprintf("%c) %s", rune('A'+j), opt)
			h += a.sink.Text(line, x+optionIndent, y+h, w-optionIndent, a.styles.normal(AlignJustify))
		}
	}

	for _, ref := range q.Images {
		path, ok := a.assetPath(ref)
		if !ok {
			a.log.Warn().Int("question", num).Str("image", ref).Msg("Question image not readable, skipping")
			continue
		}
		ih, err := a.sink.Image(path, x, y+h+2, w)
		if err != nil {
			return RenderResult{}, err
		}
		h += ih + 4
	}

	return RenderResult{Height: h, EndY: y + h}, nil
}
