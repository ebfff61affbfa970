package render

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

const axisLabel = "Percentage of Studies (%)"

type segment struct {
	percent float64
	enc     domain.Encoding
}

// BarPanel is the horizontal 0..100% stacked bar chart, one bar per domain.
// Segments are stacked most severe first from the origin.
type BarPanel struct {
	title   string
	domains []string
	bars    [][]segment

	x, top, w vg.Length
}

// NewBars builds one stacked bar per domain of dist.
func NewBars(dist domaintypes.Distribution, theme domain.ThemeEncoding, title string) (*BarPanel, error) {
	b := &BarPanel{title: title, w: minBarW}
	for _, dd := range dist.Domains {
		if len(dd.Percent) != len(dist.States) {
			return nil, fmt.Errorf("domain %s has %d shares for %d states", dd.Domain, len(dd.Percent), len(dist.States))
		}
		segs := make([]segment, len(dist.States))
		for k, st := range dist.States {
			e, ok := theme.Lookup(st.Judgement)
			if !ok {
				return nil, fmt.Errorf("%w: theme %q has no encoding for %q", domaintypes.ErrIncompleteTheme, theme.Name, st.Judgement)
			}
			segs[k] = segment{percent: dd.Percent[k], enc: e}
		}
		b.domains = append(b.domains, Humanize(dd.Domain))
		b.bars = append(b.bars, segs)
	}
	return b, nil
}

func (b *BarPanel) labelWidth() vg.Length {
	return widest(textStyle(domainSize, text.XRight), b.domains)
}

func (b *BarPanel) header() vg.Length { return lineHeight(titleSize) + titleGap }

func (b *BarPanel) axis() vg.Length {
	return tickLen + lineHeight(axisSize) + labelPad + lineHeight(domainSize)
}

func (b *BarPanel) height() vg.Length {
	return b.header() + vg.Length(len(b.bars))*barRowH + b.axis()
}

func (b *BarPanel) draw(f frame) {
	f.text(textStyle(titleSize, text.XCenter), b.x+b.w/2, b.top+lineHeight(titleSize)/2, b.title)

	top := b.top + b.header()
	bottom := top + vg.Length(len(b.bars))*barRowH
	scale := b.w / 100

	for r := 0; r <= len(b.bars); r++ {
		y := top + vg.Length(r)*barRowH
		f.line(separatorLine(), b.x, y, b.x+b.w, y)
	}
	for p := 0; p <= 100; p += 20 {
		x := b.x + vg.Length(p)*scale
		f.line(guideLine(), x, top, x, bottom)
	}

	name := textStyle(domainSize, text.XRight)
	value := textStyle(valueSize, text.XCenter)
	for r, segs := range b.bars {
		mid := top + (vg.Length(r)+0.5)*barRowH
		f.text(name, b.x-labelPad, mid, b.domains[r])

		left := b.x
		for _, s := range segs {
			if s.percent <= 0 {
				continue
			}
			w := vg.Length(s.percent) * scale
			f.fillBox(s.enc.Color, left, mid-barH/2, w, barH)
			f.strokeBox(outlineLine(), left, mid-barH/2, w, barH)
			value.Color = contrast(s.enc.Color)
			f.text(value, left+w/2, mid, fmt.Sprintf("%.0f%%", s.percent))
			left += w
		}
	}

	f.line(outlineLine(), b.x, bottom, b.x+b.w, bottom)
	tick := textStyle(axisSize, text.XCenter)
	for p := 0; p <= 100; p += 20 {
		x := b.x + vg.Length(p)*scale
		f.line(outlineLine(), x, bottom, x, bottom+tickLen)
		f.text(tick, x, bottom+tickLen+lineHeight(axisSize)/2, strconv.Itoa(p))
	}
	f.text(textStyle(domainSize, text.XCenter), b.x+b.w/2,
		bottom+tickLen+lineHeight(axisSize)+labelPad+lineHeight(domainSize)/2, axisLabel)
}
