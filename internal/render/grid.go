package render

import (
	"fmt"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// GridPanel is the traffic-light matrix: one row per study, top to bottom in
// table order, and one column per domain in schema order.
type GridPanel struct {
	title   string
	studies []string
	columns [][]string
	cells   [][]domain.Encoding

	x, top vg.Length
}

// NewGrid maps every judgement of m to its theme encoding.
func NewGrid(table domain.AssessmentTable, m domain.JudgementMatrix, theme domain.ThemeEncoding) (*GridPanel, error) {
	if len(m) != table.Len() {
		return nil, fmt.Errorf("matrix has %d rows for %d studies", len(m), table.Len())
	}
	g := &GridPanel{
		title:   table.Schema.Title(),
		studies: table.IDs(),
		cells:   make([][]domain.Encoding, len(m)),
	}
	label := textStyle(domainSize, text.XCenter)
	for _, d := range table.Schema.Domains {
		g.columns = append(g.columns, wrap(label, Humanize(d), cellW-labelPad))
	}
	for r, row := range m {
		if len(row) != len(table.Schema.Domains) {
			return nil, fmt.Errorf("row %d has %d judgements, want %d", r+1, len(row), len(table.Schema.Domains))
		}
		g.cells[r] = make([]domain.Encoding, len(row))
		for c, j := range row {
			e, ok := theme.Lookup(j)
			if !ok {
				return nil, fmt.Errorf("%w: theme %q has no encoding for %q", domaintypes.ErrIncompleteTheme, theme.Name, j)
			}
			g.cells[r][c] = e
		}
	}
	return g, nil
}

// Rows returns the number of study rows.
func (g *GridPanel) Rows() int { return len(g.studies) }

func (g *GridPanel) labelWidth() vg.Length {
	return widest(textStyle(studySize, text.XRight), g.studies)
}

func (g *GridPanel) width() vg.Length { return vg.Length(len(g.columns)) * cellW }

// header is the space taken by the title above the first row.
func (g *GridPanel) header() vg.Length { return lineHeight(titleSize) + titleGap }

func (g *GridPanel) footer() vg.Length {
	lines := 0
	for _, c := range g.columns {
		lines = max(lines, len(c))
	}
	return labelPad + vg.Length(lines)*lineHeight(domainSize)
}

func (g *GridPanel) height() vg.Length {
	return g.header() + vg.Length(len(g.studies))*rowH + g.footer()
}

func (g *GridPanel) draw(f frame) {
	w := g.width()
	f.text(textStyle(titleSize, text.XCenter), g.x+w/2, g.top+lineHeight(titleSize)/2, g.title)

	top := g.top + g.header()
	bottom := top + vg.Length(len(g.studies))*rowH
	for r := 0; r <= len(g.studies); r++ {
		y := top + vg.Length(r)*rowH
		f.line(separatorLine(), g.x, y, g.x+w, y)
	}
	for c := range g.columns {
		x := g.x + (vg.Length(c)+0.5)*cellW
		f.line(guideLine(), x, top, x, bottom)
	}

	study := textStyle(studySize, text.XRight)
	for r, id := range g.studies {
		y := top + (vg.Length(r)+0.5)*rowH
		f.text(study, g.x-labelPad, y, id)
		for c, e := range g.cells[r] {
			f.glyph(glyphStyle(e, glyphR), g.x+(vg.Length(c)+0.5)*cellW, y)
		}
	}

	label := textStyle(domainSize, text.XCenter)
	lh := lineHeight(domainSize)
	for c, lines := range g.columns {
		x := g.x + (vg.Length(c)+0.5)*cellW
		for i, line := range lines {
			f.text(label, x, bottom+labelPad+(vg.Length(i)+0.5)*lh, line)
		}
	}
}
