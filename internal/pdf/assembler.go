package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/paperforge/paperforge-backend/internal/model"
)

// section is a state of the assembly state machine. Sections are strictly
// sequential; the assembler never branches back to an earlier one.
type section int

const (
	secInit section = iota
	secHeader
	secQuestions
	secAnswerKey
	secSolutions
	secFinalized
)

// Vertical gap between a section title and its body.
const sectionGap = 12.0

// RenderResult reports what a block renderer consumed: the vertical space
// taken and the y position just past the block.
type RenderResult struct {
	Height float64
	EndY   float64
}

// Assembler renders one Paper into one document: it owns page creation,
// drives the block renderers in section order and threads the layout
// cursor through them. One Assembler serves exactly one generation call.
type Assembler struct {
	sink     Sink
	cur      *Cursor
	geom     Geometry
	styles   Styles
	assetDir string
	log      zerolog.Logger
	state    section
}

// NewAssembler wires an assembler to an output sink. assetDir is the root
// directory logo and image references resolve against.
func NewAssembler(sink Sink, geom Geometry, styles Styles, assetDir string, log zerolog.Logger) *Assembler {
	return &Assembler{
		sink:     sink,
		cur:      NewCursor(geom),
		geom:     geom,
		styles:   styles,
		assetDir: assetDir,
		log:      log.With().Str("component", "assembler").Logger(),
		state:    secInit,
	}
}

// Generate renders the paper and finalizes the sink. Any rendering failure
// aborts the whole document; partial output is never returned.
func (a *Assembler) Generate(p model.Paper) ([]byte, error) {
	if err := a.begin(secHeader); err != nil {
		return nil, err
	}
	if err := a.renderHeader(p); err != nil {
		return nil, err
	}

	if err := a.begin(secQuestions); err != nil {
		return nil, err
	}
	if err := a.renderQuestions(p.Questions); err != nil {
		return nil, err
	}

	if err := a.begin(secAnswerKey); err != nil {
		return nil, err
	}
	a.renderAnswerKey(p.Questions)

	if err := a.begin(secSolutions); err != nil {
		return nil, err
	}
	a.renderSolutions(p.Questions)

	a.state = secFinalized
	return a.sink.Bytes()
}

// begin transitions to the next section. Every transition except
// INIT→HEADER starts a fresh page; the header uses the page the sink
// opened at construction.
func (a *Assembler) begin(next section) error {
	if next != a.state+1 {
		return fmt.Errorf("section transition %d -> %d out of order", a.state, next)
	}
	a.state = next
	if next != secHeader {
		a.sink.AddPage()
		a.cur.Reset()
	}
	return nil
}

// assetPath resolves an asset reference against the asset directory and
// reports whether the file is readable. References are confined to the
// asset dir; traversal segments are stripped.
func (a *Assembler) assetPath(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	ref = strings.TrimPrefix(ref, "/assets")
	path := filepath.Join(a.assetDir, filepath.Clean("/"+ref))
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}
