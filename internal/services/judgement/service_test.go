package judgement_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/schema"
	"critiplot/internal/services/judgement"
	"critiplot/internal/services/validation"
)

func lookup(t *testing.T, tool string) domain.DomainSchema {
	t.Helper()
	reg, err := schema.Builtin()
	require.NoError(t, err)
	s, err := reg.Lookup(tool)
	require.NoError(t, err)
	return s
}

func TestNormalizeBinary(t *testing.T) {
	s := lookup(t, "nos")
	n := judgement.New()

	for raw, want := range map[string]domain.Judgement{
		"1": domaintypes.JudgementLow, "1.0": domaintypes.JudgementLow,
		"0": domaintypes.JudgementHigh, "0.0": domaintypes.JudgementHigh,
	} {
		got, err := n.Normalize(raw, s)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := n.Normalize("2", s)
	assert.True(t, errors.Is(err, domaintypes.ErrUnmappedValue))
}

func TestNormalizeCategorical(t *testing.T) {
	n := judgement.New()

	got, err := n.Normalize("Unclear", lookup(t, "robis"))
	require.NoError(t, err)
	assert.Equal(t, domaintypes.JudgementUnclear, got)

	got, err = n.Normalize("Very Low", lookup(t, "grade"))
	require.NoError(t, err)
	assert.Equal(t, domaintypes.JudgementVeryLow, got)

	_, err = n.Normalize("Moderate", lookup(t, "robis"))
	assert.True(t, errors.Is(err, domaintypes.ErrUnmappedValue))
}

func TestProjectCaseReport(t *testing.T) {
	s := lookup(t, "jbi-case-report")
	raw := domain.RawTable{
		Header: []string{"Author,Year", "Demographics", "History", "ClinicalCondition", "Diagnostics",
			"Intervention", "PostCondition", "AdverseEvents", "Lessons", "Total", "Overall RoB"},
		Rows: [][]string{{"Doe 2020", "1", "1", "0", "1", "1", "0", "1", "1", "6", "Low"}},
	}
	vt, err := validation.New(false).Validate(raw, s)
	require.NoError(t, err)

	m, err := judgement.New().Project(vt.Table)
	require.NoError(t, err)

	L, H := domaintypes.JudgementLow, domaintypes.JudgementHigh
	assert.Equal(t, domain.JudgementMatrix{{L, L, H, L, L, H, L, L}}, m)
}

func TestProjectReportsRow(t *testing.T) {
	s := lookup(t, "robis")
	table := domain.AssessmentTable{Schema: s, Records: []domain.StudyRecord{
		{Row: 4, ID: "R4", Values: []string{"Low", "Low", "Maybe", "Low"}},
	}}
	_, err := judgement.New().Project(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 4 Data Collection")
}
