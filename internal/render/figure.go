package render

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// Figure is a composed, fixed-size figure ready to be drawn onto a canvas.
// It is built for one export batch and released afterwards.
type Figure struct {
	title         string
	width, height vg.Length

	grid   *GridPanel
	bars   *BarPanel
	legend *Legend
}

// Compose builds every panel for table and lays them out.
func Compose(table domain.AssessmentTable, m domain.JudgementMatrix, dist domaintypes.Distribution, theme domain.ThemeEncoding) (*Figure, error) {
	grid, err := NewGrid(table, m, theme)
	if err != nil {
		return nil, err
	}
	bars, err := NewBars(dist, theme, table.Schema.DistributionTitle)
	if err != nil {
		return nil, err
	}
	return Layout(grid, bars, NewLegend(table.Schema.LegendTitle, theme)), nil
}

// Layout positions the panels. The grid and the bars share a left gutter
// wide enough for both label sets, so their plotting areas line up; the
// legend sits to the right of the grid, level with its first row.
func Layout(grid *GridPanel, bars *BarPanel, legend *Legend) *Figure {
	gutter := max(grid.labelWidth(), bars.labelWidth()) + labelPad
	x := margin + gutter

	grid.x, grid.top = x, margin
	legend.x = x + grid.width() + legendGap
	legend.top = margin + grid.header()

	bars.x = x
	bars.w = max(grid.width(), minBarW)
	bars.top = margin + max(grid.height(), grid.header()+legend.height()) + panelGap

	return &Figure{
		title:  grid.title,
		width:  max(legend.x+legend.width(), bars.x+bars.w) + margin,
		height: bars.top + bars.height() + margin,
		grid:   grid,
		bars:   bars,
		legend: legend,
	}
}

// Title returns the grid title, used as the document title where a format
// supports one.
func (f *Figure) Title() string { return f.title }

// Size returns the figure dimensions.
func (f *Figure) Size() (w, h vg.Length) { return f.width, f.height }

// Draw renders the figure onto c, anchored at its top-left corner.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Released() {
		return
	}
	fr := frame{c: c}
	fr.fillBox(paper, 0, 0, f.width, f.height)
	f.grid.draw(fr)
	f.legend.draw(fr)
	f.bars.draw(fr)
}

// Release drops the panels. A released figure draws nothing.
func (f *Figure) Release() {
	f.grid, f.bars, f.legend = nil, nil, nil
}

// Released reports whether Release has been called.
func (f *Figure) Released() bool { return f.grid == nil }
