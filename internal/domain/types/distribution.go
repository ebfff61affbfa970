package types

// DomainDistribution counts one domain's judgements across all studies.
// Counts and Percent are aligned with DomainSchema.States.
type DomainDistribution struct {
	Domain  string
	Counts  []int
	Percent []float64
}

// Distribution is the per-domain judgement breakdown, in schema domain order.
type Distribution struct {
	States  []JudgementState
	Total   int
	Domains []DomainDistribution
}
