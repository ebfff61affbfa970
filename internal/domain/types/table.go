package types

// RawTable is an unvalidated header plus string rows as read from a file.
type RawTable struct {
	Source string     `json:"source"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// StudyRecord is one validated row.
//
// Values is aligned index-for-index with DomainSchema.Domains. Scores is set
// for binary schemas only.
type StudyRecord struct {
	Row              int
	ID               string
	Values           []string
	Scores           []int
	DeclaredTotal    float64
	HasDeclaredTotal bool
	ComputedTotal    int
	HasComputedTotal bool
	Overall          string
}

// DisplayTotal returns the declared total when present, else the computed one.
func (r StudyRecord) DisplayTotal() (float64, bool) {
	if r.HasDeclaredTotal {
		return r.DeclaredTotal, true
	}
	if r.HasComputedTotal {
		return float64(r.ComputedTotal), true
	}
	return 0, false
}

// AssessmentTable is an ordered sequence of records sharing one schema.
type AssessmentTable struct {
	Schema  DomainSchema
	Records []StudyRecord
}

// Len returns the number of studies.
func (t AssessmentTable) Len() int { return len(t.Records) }

// IDs returns the study identifiers in table order.
func (t AssessmentTable) IDs() []string {
	out := make([]string, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.ID
	}
	return out
}

// ReconciliationWarning reports a declared total that differs from the sum of
// the domain scores. It never fails validation on its own.
type ReconciliationWarning struct {
	Row      int
	Study    string
	Declared float64
	Computed int
}

// ValidatedTable is the result of Process: a table plus non-fatal warnings.
type ValidatedTable struct {
	Table    AssessmentTable
	Warnings []ReconciliationWarning
}

// JudgementMatrix is the canonical projection of a table, rows x domains.
type JudgementMatrix [][]Judgement
