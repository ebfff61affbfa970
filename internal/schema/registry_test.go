package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/schema"
)

func TestBuiltinTools(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)

	want := []string{"grade", "jbi-case-report", "jbi-case-series", "nos", "robis"}
	if diff := cmp.Diff(want, r.IDs()); diff != "" {
		t.Fatalf("IDs mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, r.Schemas(), 5)
}

func TestLookupNormalizesName(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)

	for _, name := range []string{"jbi-case-report", "JBI Case Report", "jbi_case_report", "  JBI-CASE-REPORT "} {
		s, err := r.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, domaintypes.ToolID("jbi-case-report"), s.ID)
	}
}

func TestLookupUnknownTool(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)

	_, err = r.Lookup("cochrane")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domaintypes.ErrUnknownTool))
	assert.Contains(t, err.Error(), "robis")
}

func TestJBICaseReportSchema(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)
	s, err := r.Lookup("jbi-case-report")
	require.NoError(t, err)

	assert.Equal(t, domaintypes.KindBinary, s.Kind)
	assert.Equal(t, []string{
		"Demographics", "History", "ClinicalCondition", "Diagnostics",
		"Intervention", "PostCondition", "AdverseEvents", "Lessons",
	}, s.Domains)
	assert.Equal(t, "Total", s.TotalColumn)
	assert.Equal(t, "Overall RoB", s.OverallColumn)
	assert.Equal(t, "JBI_Case_Report_TrafficLight.svg", s.OutputName(domaintypes.FormatSVG))
	assert.Equal(t, "JBI Case Report Traffic-Light Plot", s.Title())
	assert.Equal(t, []string{"Author", "Year"}, s.Identifier.Compose)
}

func TestStateOrdering(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)

	robis, err := r.Lookup("robis")
	require.NoError(t, err)
	assert.Equal(t, []string{"High", "Unclear", "Low"}, robis.Tokens())
	assert.Equal(t, 1, robis.StateIndex(domaintypes.JudgementUnclear))
	assert.Equal(t, -1, robis.StateIndex(domaintypes.JudgementModerate))

	grade, err := r.Lookup("grade")
	require.NoError(t, err)
	assert.Equal(t, []string{"Very Low", "Low", "Moderate", "High", "None"}, grade.Tokens())
	assert.Equal(t, "Study", grade.Identifier.Qualifier)
	assert.Empty(t, grade.TotalColumn)
}

func TestParseRejectsBadBinaryStates(t *testing.T) {
	doc := []byte(`
tools:
  - id: broken
    name: Broken
    file_prefix: Broken
    identifier: {column: Study}
    domains: [A]
    kind: binary
    states:
      - {judgement: High, label: High}
      - {judgement: Unclear, label: Unclear}
    total_column: Total
    overall_column: Overall
    palette: risk2
`)
	_, err := schema.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "High and Low")
}

func TestParseRejectsDuplicateDomain(t *testing.T) {
	doc := []byte(`
tools:
  - id: dup
    name: Dup
    file_prefix: Dup
    identifier: {column: Study}
    domains: [A, A]
    kind: categorical
    states: [{judgement: Low, label: Low}]
    overall_column: Overall
    palette: risk3
`)
	_, err := schema.Parse(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate domain")
}

func TestRequiredColumns(t *testing.T) {
	r, err := schema.Builtin()
	require.NoError(t, err)

	nos, err := r.Lookup("nos")
	require.NoError(t, err)
	cols := nos.RequiredColumns()
	require.Len(t, cols, len(nos.Domains)+2)
	assert.Equal(t, "Representativeness", cols[0])
	assert.Equal(t, []string{"Total Score", "Overall RoB"}, cols[len(cols)-2:])

	robis, err := r.Lookup("robis")
	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, robis.Domains...), "Overall Risk"), robis.RequiredColumns())
}
