package render

import (
	"slices"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"critiplot/internal/domain"
)

const legendRowH = 0.3 * vg.Inch

// Legend lists every state of the theme, least severe first, with the same
// glyph the grid uses.
type Legend struct {
	title   string
	entries []domain.Encoding

	x, top vg.Length
}

// NewLegend builds the legend for theme under title.
func NewLegend(title string, theme domain.ThemeEncoding) *Legend {
	entries := slices.Clone(theme.Entries)
	slices.Reverse(entries)
	return &Legend{title: title, entries: entries}
}

func (l *Legend) labels() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Label
	}
	return out
}

func (l *Legend) width() vg.Length {
	title := textStyle(legendSize+2, text.XCenter).Width(l.title)
	rows := 2*glyphR + labelPad + widest(textStyle(legendSize, text.XLeft), l.labels())
	return 2*legendPad + max(title, rows)
}

func (l *Legend) height() vg.Length {
	return 2*legendPad + lineHeight(legendSize+2) + vg.Length(len(l.entries))*legendRowH
}

func (l *Legend) draw(f frame) {
	w, h := l.width(), l.height()
	f.fillBox(paper, l.x, l.top, w, h)
	f.strokeBox(outlineLine(), l.x, l.top, w, h)

	f.text(textStyle(legendSize+2, text.XCenter), l.x+w/2, l.top+legendPad+lineHeight(legendSize+2)/2, l.title)

	label := textStyle(legendSize, text.XLeft)
	top := l.top + legendPad + lineHeight(legendSize+2)
	for i, e := range l.entries {
		y := top + (vg.Length(i)+0.5)*legendRowH
		gx := l.x + legendPad + glyphR
		f.glyph(glyphStyle(e, glyphR*0.8), gx, y)
		f.text(label, gx+glyphR+labelPad, y, e.Label)
	}
}
