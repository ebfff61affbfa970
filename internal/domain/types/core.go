package types

import (
	"fmt"
	"strings"
)

// ToolID identifies a risk-of-bias assessment tool, e.g. "jbi-case-report".
type ToolID string

// String returns the string form of the tool identifier.
func (id ToolID) String() string { return string(id) }

// Judgement is a canonical risk or certainty category.
type Judgement string

// Canonical judgements shared by all tools. Each schema uses a subset.
const (
	JudgementLow      Judgement = "Low"
	JudgementHigh     Judgement = "High"
	JudgementUnclear  Judgement = "Unclear"
	JudgementModerate Judgement = "Moderate"
	JudgementVeryLow  Judgement = "Very Low"
	JudgementNone     Judgement = "None"
)

// String returns the string form of the judgement.
func (j Judgement) String() string { return string(j) }

// ValueKind describes the raw value space of a tool's domain columns.
type ValueKind string

const (
	// KindBinary domains hold 0 or 1 scores.
	KindBinary ValueKind = "binary"
	// KindCategorical domains hold judgement tokens.
	KindCategorical ValueKind = "categorical"
)

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
	FormatEPS Format = "eps"
)

// AllFormats lists every supported export format in output order.
var AllFormats = []Format{FormatPNG, FormatPDF, FormatSVG, FormatEPS}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// String returns the string form of the format.
func (f Format) String() string { return string(f) }

// ParseFormat parses a format name or extension ("svg", ".SVG").
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, f := range AllFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use one of png, pdf, svg, eps)", ErrUnsupportedFormat, s)
}
