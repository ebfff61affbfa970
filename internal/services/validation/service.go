package validation

import (
	"math"
	"strconv"
	"strings"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

const bom = "\ufeff"

// Service validates raw tables.
type Service struct {
	// StrictTotals turns a declared/computed total mismatch into an error.
	StrictTotals bool
}

// New returns a validator. With strictTotals set, total mismatches are fatal.
func New(strictTotals bool) *Service { return &Service{StrictTotals: strictTotals} }

// Validate builds an AssessmentTable from raw. Fatal problems are returned as
// *domain.SchemaError; total mismatches become warnings unless StrictTotals.
func (s *Service) Validate(raw domain.RawTable, schema domain.DomainSchema) (domain.ValidatedTable, error) {
	h := newHeader(raw.Header)

	id, err := h.identifier(schema)
	if err != nil {
		return domain.ValidatedTable{}, err
	}

	cols := make([]int, len(schema.Domains))
	var missing []string
	qualifier := -1
	if q := schema.Identifier.Qualifier; q != "" {
		if qualifier = h.find(q); qualifier < 0 {
			missing = append(missing, q)
		}
	}
	for i, d := range schema.Domains {
		if cols[i] = h.find(d); cols[i] < 0 {
			missing = append(missing, d)
		}
	}
	total := -1
	if schema.TotalColumn != "" {
		if total = h.find(schema.TotalColumn); total < 0 {
			missing = append(missing, schema.TotalColumn)
		}
	}
	overall := h.find(schema.OverallColumn)
	if overall < 0 {
		missing = append(missing, schema.OverallColumn)
	}
	if len(missing) > 0 {
		return domain.ValidatedTable{}, &domaintypes.SchemaError{
			Kind: domaintypes.MissingColumns, Tool: schema.ID, Columns: missing,
		}
	}

	out := domain.ValidatedTable{Table: domain.AssessmentTable{Schema: schema}}
	n := 0
	for _, row := range raw.Rows {
		if blank(row) {
			continue
		}
		n++
		rec := domain.StudyRecord{Row: n, ID: id.value(row)}
		if qualifier >= 0 {
			if q := cell(row, qualifier); q != "" {
				rec.ID += " (" + q + ")"
			}
		}
		if rec.ID == "" {
			return domain.ValidatedTable{}, &domaintypes.SchemaError{
				Kind: domaintypes.MissingIdentifier, Tool: schema.ID, Row: n,
				Reason: "study identifier is empty",
			}
		}

		rec.Values = make([]string, len(schema.Domains))
		if schema.Kind == domaintypes.KindBinary {
			rec.Scores = make([]int, len(schema.Domains))
		}
		for i, c := range cols {
			v := cell(row, c)
			bad := &domaintypes.SchemaError{
				Kind: domaintypes.InvalidDomainValue, Tool: schema.ID,
				Columns: []string{schema.Domains[i]}, Row: n, Study: rec.ID, Value: v,
			}
			if schema.Kind == domaintypes.KindBinary {
				score, ok := parseScore(v)
				if !ok {
					bad.Reason = "expected 0 or 1"
					return domain.ValidatedTable{}, bad
				}
				rec.Scores[i] = score
				rec.ComputedTotal += score
				rec.Values[i] = strconv.Itoa(score)
				continue
			}
			if !validToken(v, schema) {
				bad.Reason = "expected one of " + strings.Join(schema.Tokens(), ", ")
				return domain.ValidatedTable{}, bad
			}
			rec.Values[i] = v
		}

		if total >= 0 {
			rec.HasComputedTotal = true
			if v := cell(row, total); v != "" {
				declared, err := strconv.ParseFloat(v, 64)
				if err != nil || math.IsNaN(declared) || math.IsInf(declared, 0) {
					return domain.ValidatedTable{}, &domaintypes.SchemaError{
						Kind: domaintypes.InvalidSummaryValue, Tool: schema.ID,
						Columns: []string{schema.TotalColumn}, Row: n, Study: rec.ID, Value: v,
						Reason: "expected a number",
					}
				}
				rec.DeclaredTotal, rec.HasDeclaredTotal = declared, true
				if declared != float64(rec.ComputedTotal) {
					if s.StrictTotals {
						return domain.ValidatedTable{}, &domaintypes.SchemaError{
							Kind: domaintypes.TotalMismatch, Tool: schema.ID,
							Columns: []string{schema.TotalColumn}, Row: n, Study: rec.ID, Value: v,
							Reason: "domain scores sum to " + strconv.Itoa(rec.ComputedTotal),
						}
					}
					out.Warnings = append(out.Warnings, domain.ReconciliationWarning{
						Row: n, Study: rec.ID, Declared: declared, Computed: rec.ComputedTotal,
					})
				}
			}
		}
		rec.Overall = cell(row, overall)

		out.Table.Records = append(out.Table.Records, rec)
	}

	if len(out.Table.Records) == 0 {
		return domain.ValidatedTable{}, &domaintypes.SchemaError{Kind: domaintypes.EmptyTable, Tool: schema.ID}
	}
	return out, nil
}

// parseScore accepts numbers equal to 0 or 1, e.g. "1", "0", "1.0".
func parseScore(v string) (int, bool) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	switch f {
	case 0:
		return 0, true
	case 1:
		return 1, true
	}
	return 0, false
}

func validToken(v string, schema domain.DomainSchema) bool {
	for _, st := range schema.States {
		if v == string(st.Judgement) {
			return true
		}
	}
	return false
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Compile-time assertion that Service implements domain.Validator.
var _ domain.Validator = (*Service)(nil)
