package interfaces

import (
	domaintypes "critiplot/internal/domain/types"
)

// SchemaRegistry resolves tool identifiers to their static schemas.
type SchemaRegistry interface {
	Lookup(tool string) (domaintypes.DomainSchema, error)
	Schemas() []domaintypes.DomainSchema
}

// Validator checks a raw table against a schema and builds typed records.
type Validator interface {
	Validate(raw domaintypes.RawTable, schema domaintypes.DomainSchema) (domaintypes.ValidatedTable, error)
}

// Normalizer maps raw domain values onto canonical judgements.
type Normalizer interface {
	Normalize(raw string, schema domaintypes.DomainSchema) (domaintypes.Judgement, error)
	Project(table domaintypes.AssessmentTable) (domaintypes.JudgementMatrix, error)
}

// ThemeResolver turns a theme name into per-judgement encodings for a schema.
type ThemeResolver interface {
	Resolve(schema domaintypes.DomainSchema, theme string) (domaintypes.ThemeEncoding, error)
	Names(schema domaintypes.DomainSchema) []string
}
