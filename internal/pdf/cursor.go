package pdf

// Overflow buffers in points, per content type. A block is written first
// and the cursor checked afterwards, so the buffer reserves enough room
// that the next block of the same kind cannot run off the page.
const (
	questionOverflow = 70
	answerRowBuffer  = 40
	solutionOverflow = 150
)

// Cursor tracks the current writing position within the two-column
// question flow: column index, x/y coordinates and the page geometry.
// One Cursor lives for exactly one generation call.
type Cursor struct {
	col  int
	x, y float64
	geom Geometry
}

// NewCursor returns a cursor positioned at the top of column 0.
func NewCursor(geom Geometry) *Cursor {
	c := &Cursor{geom: geom}
	c.Reset()
	return c
}

// Reset places the cursor at the top-left of the content area, column 0.
func (c *Cursor) Reset() {
	c.col = 0
	c.x = c.geom.LeftColumnX()
	c.y = c.geom.Margins.Top
}

// Advance moves the vertical position down by consumed points and reports
// whether the new position exceeds the column's usable height, i.e. the
// content bottom minus the given overflow buffer.
func (c *Cursor) Advance(consumed, buffer float64) bool {
	c.y += consumed
	return c.y > c.geom.ContentBottom()-buffer
}

// NextColumnOrPage wraps the flow: from column 0 it switches to column 1
// at the top of the same page; from column 1 it creates a new page on the
// sink, returns to column 0 and redraws the column divider.
func (c *Cursor) NextColumnOrPage(s Sink) {
	if c.col == 0 {
		c.col = 1
		c.x = c.geom.RightColumnX()
		c.y = c.geom.Margins.Top
		return
	}
	s.AddPage()
	c.Reset()
	drawDivider(s, c.geom)
}

// drawDivider draws the vertical rule separating the two columns,
// from the top margin down to the bottom margin.
func drawDivider(s Sink, g Geometry) {
	s.Line(g.DividerX(), g.Margins.Top, g.DividerX(), g.ContentBottom())
}
