package judgement

import (
	"fmt"
	"strconv"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// Service normalises raw values.
type Service struct{}

// New returns a judgement normaliser.
func New() *Service { return &Service{} }

// Normalize returns the canonical judgement of a single raw domain value.
func (s *Service) Normalize(raw string, schema domain.DomainSchema) (domain.Judgement, error) {
	switch schema.Kind {
	case domaintypes.KindBinary:
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			switch f {
			case 1:
				return domaintypes.JudgementLow, nil
			case 0:
				return domaintypes.JudgementHigh, nil
			}
		}
	case domaintypes.KindCategorical:
		j := domain.Judgement(raw)
		if schema.StateIndex(j) >= 0 {
			return j, nil
		}
	}
	return "", fmt.Errorf("%w: %s value %q", domaintypes.ErrUnmappedValue, schema.ID, raw)
}

// Project normalises every cell of table into a rows x domains matrix.
func (s *Service) Project(table domain.AssessmentTable) (domain.JudgementMatrix, error) {
	m := make(domain.JudgementMatrix, len(table.Records))
	for i, rec := range table.Records {
		m[i] = make([]domain.Judgement, len(rec.Values))
		for d, v := range rec.Values {
			j, err := s.Normalize(v, table.Schema)
			if err != nil {
				return nil, fmt.Errorf("row %d %s: %w", rec.Row, table.Schema.Domains[d], err)
			}
			m[i][d] = j
		}
	}
	return m, nil
}

// Compile-time assertion that Service implements domain.Normalizer.
var _ domain.Normalizer = (*Service)(nil)
