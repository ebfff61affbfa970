package types

import "image/color"

// Glyph is the symbol drawn in a grid cell.
type Glyph int

const (
	GlyphSquare Glyph = iota
	GlyphSmile
	GlyphFrown
)

// Encoding is the visual form of one judgement under a theme.
type Encoding struct {
	Judgement Judgement
	Label     string
	Hex       string
	Color     color.Color
	Glyph     Glyph
}

// ThemeEncoding holds one Encoding per schema state, in schema state order.
type ThemeEncoding struct {
	Name    string
	Tool    ToolID
	Smiley  bool
	Entries []Encoding
}

// Lookup returns the encoding for j.
func (t ThemeEncoding) Lookup(j Judgement) (Encoding, bool) {
	for _, e := range t.Entries {
		if e.Judgement == j {
			return e, true
		}
	}
	return Encoding{}, false
}
