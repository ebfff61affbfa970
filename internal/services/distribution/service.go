package distribution

import (
	"fmt"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// Aggregate counts each state per domain and converts the counts to
// percentages of all studies. Domains and states follow schema order.
func Aggregate(m domain.JudgementMatrix, schema domain.DomainSchema) (domaintypes.Distribution, error) {
	dist := domaintypes.Distribution{
		States:  schema.States,
		Total:   len(m),
		Domains: make([]domaintypes.DomainDistribution, len(schema.Domains)),
	}
	for d, name := range schema.Domains {
		dist.Domains[d] = domaintypes.DomainDistribution{
			Domain:  name,
			Counts:  make([]int, len(schema.States)),
			Percent: make([]float64, len(schema.States)),
		}
	}

	for r, row := range m {
		if len(row) != len(schema.Domains) {
			return domaintypes.Distribution{}, fmt.Errorf("row %d has %d judgements, want %d", r+1, len(row), len(schema.Domains))
		}
		for d, j := range row {
			k := schema.StateIndex(j)
			if k < 0 {
				return domaintypes.Distribution{}, fmt.Errorf("%w: %q in %s", domaintypes.ErrUnmappedValue, j, schema.Domains[d])
			}
			dist.Domains[d].Counts[k]++
		}
	}

	if dist.Total == 0 {
		return dist, nil
	}
	for d := range dist.Domains {
		for k, c := range dist.Domains[d].Counts {
			dist.Domains[d].Percent[k] = float64(c) / float64(dist.Total) * 100
		}
	}
	return dist, nil
}
