package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is. Typed errors below unwrap to one of these.
var (
	ErrUnknownTool         = errors.New("unknown tool")
	ErrUnsupportedInput    = errors.New("unsupported input file")
	ErrInputTooLarge       = errors.New("input file too large")
	ErrMissingIdentifier   = errors.New("missing study identifier column")
	ErrMissingColumns      = errors.New("missing required columns")
	ErrInvalidDomainValue  = errors.New("invalid domain value")
	ErrInvalidSummaryValue = errors.New("invalid summary value")
	ErrEmptyTable          = errors.New("table has no studies")
	ErrTotalMismatch       = errors.New("declared total does not match domain scores")
	ErrUnmappedValue       = errors.New("value has no canonical judgement")
	ErrUnknownTheme        = errors.New("unknown theme")
	ErrIncompleteTheme     = errors.New("theme does not cover every judgement")
	ErrUnsupportedFormat   = errors.New("unsupported output format")
	ErrExportFailed        = errors.New("export failed")
)

// SchemaErrorKind classifies a SchemaError.
type SchemaErrorKind int

const (
	MissingIdentifier SchemaErrorKind = iota + 1
	MissingColumns
	InvalidDomainValue
	InvalidSummaryValue
	EmptyTable
	TotalMismatch
)

var schemaKindErr = map[SchemaErrorKind]error{
	MissingIdentifier:   ErrMissingIdentifier,
	MissingColumns:      ErrMissingColumns,
	InvalidDomainValue:  ErrInvalidDomainValue,
	InvalidSummaryValue: ErrInvalidSummaryValue,
	EmptyTable:          ErrEmptyTable,
	TotalMismatch:       ErrTotalMismatch,
}

// SchemaError is a fatal structural or value violation found during validation.
type SchemaError struct {
	Kind    SchemaErrorKind
	Tool    ToolID
	Columns []string
	Row     int    // 1-based data row, 0 when not row specific
	Study   string // study identifier when known
	Value   string
	Reason  string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Tool, e.Unwrap())
	if len(e.Columns) > 0 {
		fmt.Fprintf(&b, " %s", quoteList(e.Columns))
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " at row %d", e.Row)
		if e.Study != "" {
			fmt.Fprintf(&b, " (%s)", e.Study)
		}
	}
	if e.Kind == InvalidDomainValue || e.Kind == InvalidSummaryValue || e.Kind == TotalMismatch {
		fmt.Fprintf(&b, ": got %q", e.Value)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, "; %s", e.Reason)
	}
	return b.String()
}

// Unwrap returns the sentinel for the error kind.
func (e *SchemaError) Unwrap() error { return schemaKindErr[e.Kind] }

// ThemeErrorKind classifies a ThemeError.
type ThemeErrorKind int

const (
	UnknownTheme ThemeErrorKind = iota + 1
	IncompleteTheme
)

// ThemeError reports a theme that cannot be used for a tool.
type ThemeError struct {
	Kind      ThemeErrorKind
	Theme     string
	Tool      ToolID
	Available []string
	Missing   []Judgement
}

func (e *ThemeError) Error() string {
	if e.Kind == IncompleteTheme {
		missing := make([]string, len(e.Missing))
		for i, j := range e.Missing {
			missing[i] = string(j)
		}
		return fmt.Sprintf("theme %q for %s has no colour for %s", e.Theme, e.Tool, quoteList(missing))
	}
	return fmt.Sprintf("%v %q for %s (choose from %s)", ErrUnknownTheme, e.Theme, e.Tool, strings.Join(e.Available, ", "))
}

// Unwrap returns the sentinel for the error kind.
func (e *ThemeError) Unwrap() error {
	if e.Kind == IncompleteTheme {
		return ErrIncompleteTheme
	}
	return ErrUnknownTheme
}

// ExportError reports a single export target that could not be produced.
type ExportError struct {
	Target string
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Target, e.Err)
}

// Unwrap exposes the cause; unsupported formats wrap ErrUnsupportedFormat.
func (e *ExportError) Unwrap() error { return e.Err }

func quoteList(items []string) string {
	q := make([]string, len(items))
	for i, s := range items {
		q[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(q, ", ") + "]"
}
