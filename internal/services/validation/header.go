package validation

import (
	"strings"
	"unicode"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// header indexes trimmed column names.
type header struct {
	names []string
}

func newHeader(raw []string) header {
	names := make([]string, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		names[i] = strings.TrimSpace(h)
	}
	return header{names: names}
}

// find returns the index of name, falling back to a match that ignores
// whitespace ("Author, Year" for "Author,Year"). It returns -1 when absent.
func (h header) find(name string) int {
	for i, n := range h.names {
		if n == name {
			return i
		}
	}
	squeezed := squeeze(name)
	for i, n := range h.names {
		if squeeze(n) == squeezed {
			return i
		}
	}
	return -1
}

// identifierColumn yields a study identifier from a row, either from a single
// column or by joining several.
type identifierColumn struct {
	cols []int
}

func (c identifierColumn) value(row []string) string {
	parts := make([]string, 0, len(c.cols))
	for _, i := range c.cols {
		if v := cell(row, i); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// identifier resolves the identifier column: canonical name, then aliases,
// then a whitespace-insensitive match, then the compose columns.
func (h header) identifier(schema domain.DomainSchema) (identifierColumn, error) {
	spec := schema.Identifier
	for i, n := range h.names {
		if n == spec.Column {
			return identifierColumn{cols: []int{i}}, nil
		}
	}
	for _, alias := range spec.Aliases {
		for i, n := range h.names {
			if n == alias {
				return identifierColumn{cols: []int{i}}, nil
			}
		}
	}
	if i := h.find(spec.Column); i >= 0 {
		return identifierColumn{cols: []int{i}}, nil
	}
	if len(spec.Compose) > 0 {
		cols := make([]int, len(spec.Compose))
		ok := true
		for j, name := range spec.Compose {
			if cols[j] = h.find(name); cols[j] < 0 {
				ok = false
				break
			}
		}
		if ok {
			return identifierColumn{cols: cols}, nil
		}
	}

	tried := append([]string{spec.Column}, spec.Aliases...)
	if len(spec.Compose) > 0 {
		tried = append(tried, strings.Join(spec.Compose, " + "))
	}
	return identifierColumn{}, &domaintypes.SchemaError{
		Kind:    domaintypes.MissingIdentifier,
		Tool:    schema.ID,
		Columns: tried,
	}
}

func squeeze(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
