package domain

import (
	interfaces "critiplot/internal/domain/interfaces"
	types "critiplot/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ToolID                = types.ToolID
	Judgement             = types.Judgement
	ValueKind             = types.ValueKind
	Format                = types.Format
	IdentifierSpec        = types.IdentifierSpec
	JudgementState        = types.JudgementState
	DomainSchema          = types.DomainSchema
	RawTable              = types.RawTable
	StudyRecord           = types.StudyRecord
	AssessmentTable       = types.AssessmentTable
	ValidatedTable        = types.ValidatedTable
	ReconciliationWarning = types.ReconciliationWarning
	JudgementMatrix       = types.JudgementMatrix
	Encoding              = types.Encoding
	ThemeEncoding         = types.ThemeEncoding
	Distribution          = types.Distribution
	Artifact              = types.Artifact
	Manifest              = types.Manifest
	RenderResult          = types.RenderResult
	SchemaError           = types.SchemaError
	ThemeError            = types.ThemeError
	ExportError           = types.ExportError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SchemaRegistry = interfaces.SchemaRegistry
	Validator      = interfaces.Validator
	Normalizer     = interfaces.Normalizer
	ThemeResolver  = interfaces.ThemeResolver
	TableReader    = interfaces.TableReader
	ArtifactStore  = interfaces.ArtifactStore
)
