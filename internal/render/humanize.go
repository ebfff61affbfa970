package render

import (
	"strings"
	"unicode"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Humanize splits CamelCase domain names: "ClinicalCondition" becomes
// "Clinical Condition". Names that already contain spaces are unchanged.
func Humanize(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rs[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wrap breaks s into lines no wider than max. A single word wider than max
// gets a line of its own.
func wrap(sty text.Style, s string, max vg.Length) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := len(lines) - 1
		if cand := lines[last] + " " + w; sty.Width(cand) <= max {
			lines[last] = cand
			continue
		}
		lines = append(lines, w)
	}
	return lines
}
