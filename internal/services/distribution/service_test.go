package distribution_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/schema"
	"critiplot/internal/services/distribution"
)

func lookup(t *testing.T, tool string) domain.DomainSchema {
	t.Helper()
	reg, err := schema.Builtin()
	require.NoError(t, err)
	s, err := reg.Lookup(tool)
	require.NoError(t, err)
	return s
}

func TestAggregateRobis(t *testing.T) {
	s := lookup(t, "robis")
	H, U, L := domaintypes.JudgementHigh, domaintypes.JudgementUnclear, domaintypes.JudgementLow
	m := domain.JudgementMatrix{
		{U, L, H, L},
		{L, L, H, L},
		{L, U, L, L},
	}

	dist, err := distribution.Aggregate(m, s)
	require.NoError(t, err)
	assert.Equal(t, 3, dist.Total)
	require.Len(t, dist.Domains, 4)

	eligibility := dist.Domains[0]
	assert.Equal(t, "Study Eligibility", eligibility.Domain)
	assert.Equal(t, []int{0, 1, 2}, eligibility.Counts) // High, Unclear, Low
	assert.InDelta(t, 100.0/3, eligibility.Percent[1], 1e-9)
	assert.Equal(t, []int{0, 0, 3}, dist.Domains[3].Counts)
	assert.Equal(t, 100.0, dist.Domains[3].Percent[2])
}

func TestPercentagesSumToHundred(t *testing.T) {
	s := lookup(t, "grade")
	states := s.Tokens()
	m := make(domain.JudgementMatrix, 7)
	for r := range m {
		m[r] = make([]domain.Judgement, len(s.Domains))
		for d := range m[r] {
			m[r][d] = domain.Judgement(states[(r*3+d)%len(states)])
		}
	}

	dist, err := distribution.Aggregate(m, s)
	require.NoError(t, err)
	for _, dd := range dist.Domains {
		sum := 0.0
		for _, p := range dd.Percent {
			sum += p
		}
		assert.LessOrEqual(t, math.Abs(sum-100), 0.01, dd.Domain)
	}
}

func TestAggregateRejectsForeignJudgement(t *testing.T) {
	s := lookup(t, "nos")
	row := make([]domain.Judgement, len(s.Domains))
	for i := range row {
		row[i] = domaintypes.JudgementLow
	}
	row[2] = domaintypes.JudgementUnclear

	_, err := distribution.Aggregate(domain.JudgementMatrix{row}, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domaintypes.ErrUnmappedValue))
}
