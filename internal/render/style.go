package render

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Geometry, in points.
const (
	margin    = 0.4 * vg.Inch
	cellW     = 1.2 * vg.Inch
	rowH      = 0.4 * vg.Inch
	glyphR    = 0.13 * vg.Inch
	barRowH   = 0.45 * vg.Inch
	barH      = 0.3 * vg.Inch
	minBarW   = 5 * vg.Inch
	labelPad  = 0.12 * vg.Inch
	titleGap  = 0.15 * vg.Inch
	panelGap  = 0.55 * vg.Inch
	legendGap = 0.35 * vg.Inch
	legendPad = 0.12 * vg.Inch
	tickLen   = 0.06 * vg.Inch
)

// Font sizes.
const (
	titleSize  = vg.Length(16)
	studySize  = vg.Length(11)
	domainSize = vg.Length(10)
	legendSize = vg.Length(11)
	valueSize  = vg.Length(10)
	axisSize   = vg.Length(10)
)

var (
	ink       = color.Black
	paper     = color.White
	separator = color.Gray{Y: 0xd3}
	guide     = color.Gray{Y: 0xbf}
)

func face(size vg.Length) font.Font {
	return font.Font{Typeface: "Liberation", Variant: "Sans", Weight: xfont.WeightBold, Size: size}
}

func textStyle(size vg.Length, x text.XAlignment) text.Style {
	return text.Style{
		Color:   ink,
		Font:    face(size),
		XAlign:  x,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// lineHeight is the vertical advance for one line of text at size.
func lineHeight(size vg.Length) vg.Length { return size * 1.3 }

func widest(sty text.Style, items []string) vg.Length {
	var w vg.Length
	for _, s := range items {
		if sw := sty.Width(s); sw > w {
			w = sw
		}
	}
	return w
}

func separatorLine() draw.LineStyle {
	return draw.LineStyle{Color: separator, Width: vg.Points(0.8)}
}

func guideLine() draw.LineStyle {
	return draw.LineStyle{Color: guide, Width: vg.Points(0.6), Dashes: []vg.Length{vg.Points(3), vg.Points(3)}}
}

func outlineLine() draw.LineStyle {
	return draw.LineStyle{Color: ink, Width: vg.Points(0.8)}
}

// contrast picks black or white text for legibility on bg.
func contrast(bg color.Color) color.Color {
	n := color.NRGBAModel.Convert(bg).(color.NRGBA)
	lum := 0.299*float64(n.R) + 0.587*float64(n.G) + 0.114*float64(n.B)
	if lum > 140 {
		return color.Black
	}
	return color.White
}

// frame addresses a canvas from its top-left corner, y growing downwards.
type frame struct {
	c draw.Canvas
}

func (f frame) at(x, top vg.Length) vg.Point {
	return vg.Point{X: f.c.Min.X + x, Y: f.c.Max.Y - top}
}

func (f frame) box(x, top, w, h vg.Length) []vg.Point {
	return []vg.Point{f.at(x, top), f.at(x+w, top), f.at(x+w, top+h), f.at(x, top+h)}
}

func (f frame) fillBox(clr color.Color, x, top, w, h vg.Length) {
	f.c.FillPolygon(clr, f.box(x, top, w, h))
}

func (f frame) strokeBox(sty draw.LineStyle, x, top, w, h vg.Length) {
	pts := f.box(x, top, w, h)
	f.c.StrokeLines(sty, append(pts, pts[0]))
}

func (f frame) line(sty draw.LineStyle, x0, top0, x1, top1 vg.Length) {
	f.c.StrokeLines(sty, []vg.Point{f.at(x0, top0), f.at(x1, top1)})
}

func (f frame) text(sty text.Style, x, top vg.Length, s string) {
	f.c.FillText(sty, f.at(x, top), s)
}

func (f frame) glyph(sty draw.GlyphStyle, x, top vg.Length) {
	f.c.DrawGlyph(sty, f.at(x, top))
}
