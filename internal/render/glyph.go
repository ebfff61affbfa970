package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// squareGlyph is a filled square with a thin outline, side 2*radius.
type squareGlyph struct{}

func (squareGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X - r, Y: pt.Y - r}, {X: pt.X + r, Y: pt.Y - r},
		{X: pt.X + r, Y: pt.Y + r}, {X: pt.X - r, Y: pt.Y + r},
	}
	c.FillPolygon(sty.Color, pts)
	c.StrokeLines(draw.LineStyle{Color: ink, Width: vg.Points(0.5)}, append(pts, pts[0]))
}

// faceGlyph is a filled disc with eyes and a smiling or frowning mouth.
type faceGlyph struct {
	smile bool
}

func (g faceGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	c.SetColor(sty.Color)
	c.Fill(circle(pt, r))

	c.SetLineDash(nil, 0)
	c.SetLineWidth(vg.Points(0.5))
	c.SetColor(ink)
	c.Stroke(circle(pt, r))

	features := contrast(sty.Color)
	c.SetColor(features)
	for _, dx := range []vg.Length{-0.35 * r, 0.35 * r} {
		c.Fill(circle(vg.Point{X: pt.X + dx, Y: pt.Y + 0.3*r}, 0.12*r))
	}

	// Smiles curve below their centre, frowns above theirs.
	mouth := vg.Point{X: pt.X, Y: pt.Y}
	start, sweep := 7*math.Pi/6, 2*math.Pi/3
	if !g.smile {
		mouth.Y = pt.Y - 0.65*r
		start = math.Pi / 6
	}
	mr := 0.5 * r
	var p vg.Path
	p.Move(vg.Point{
		X: mouth.X + mr*vg.Length(math.Cos(start)),
		Y: mouth.Y + mr*vg.Length(math.Sin(start)),
	})
	p.Arc(mouth, mr, start, sweep)
	c.SetLineWidth(0.13 * r)
	c.Stroke(p)
}

func circle(pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// glyphStyle returns the glyph used for e in both grid and legend.
func glyphStyle(e domain.Encoding, radius vg.Length) draw.GlyphStyle {
	var shape draw.GlyphDrawer = squareGlyph{}
	switch e.Glyph {
	case domaintypes.GlyphSmile:
		shape = faceGlyph{smile: true}
	case domaintypes.GlyphFrown:
		shape = faceGlyph{}
	}
	var clr color.Color = e.Color
	if clr == nil {
		clr = separator
	}
	return draw.GlyphStyle{Color: clr, Radius: radius, Shape: shape}
}
