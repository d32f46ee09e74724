package pdf

import (
	"fmt"

	"github.com/paperforge/paperforge-backend/internal/model"
)

// Maximum length, in runes, of the question echo in a solution block.
const solutionEchoLimit = 60

// renderSolutions writes one full-width block per question carrying a
// non-empty solution; questions without one are skipped entirely. The
// section title prints even when every question is skipped. A block that
// would start with less than the solution buffer of remaining space
// begins on a fresh page instead.
func (a *Assembler) renderSolutions(questions []model.Question) {
	g := a.geom
	left := g.Margins.Left
	cw := g.ContentWidth()
	y := g.Margins.Top
	y += a.sink.Text("SOLUTIONS", left, y, cw, a.styles.sectionTitle()) + sectionGap

	lh := a.sink.LineHeight(a.styles.normal(AlignJustify))
	for i, q := range questions {
		if !q.HasSolution() {
			continue
		}
		if g.ContentBottom()-y < solutionOverflow {
			a.sink.AddPage()
			y = g.Margins.Top
		}
		y += a.sink.LabeledText(
			fmt.Sprintf("Question %d: ", i+1), a.styles.bold(AlignLeft),
			truncateEcho(q.Text), a.styles.italic(AlignLeft),
			left, y, cw,
		) + 2
		y += a.sink.Text(*q.Solution, left, y, cw, a.styles.normal(AlignJustify))
		y += lh
	}
}

// truncateEcho shortens the question text to the echo limit, appending an
// ellipsis when anything was cut.
func truncateEcho(text string) string {
	r := []rune(text)
	if len(r) <= solutionEchoLimit {
		return text
	}
	return string(r[:solutionEchoLimit]) + "..."
}
