package app

import (
	"go.uber.org/zap"

	"critiplot/internal/domain"
	"critiplot/internal/schema"
	"critiplot/internal/services/export"
	"critiplot/internal/services/judgement"
	"critiplot/internal/services/pipeline"
	"critiplot/internal/services/validation"
	"critiplot/internal/store"
	"critiplot/internal/tabular"
	"critiplot/internal/theme"
)

// Wire bundles the registries, services and stores for the CLI.
type Wire struct {
	Config   Config
	Logger   *zap.Logger
	Schemas  *schema.Registry
	Themes   *theme.Resolver
	Reader   *tabular.Reader
	Store    *store.FileStore
	Exporter *export.Service

	validator  domain.Validator
	normalizer domain.Normalizer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Embedded tool and theme definitions
	schemas, err := schema.Builtin()
	if err != nil {
		return nil, err
	}
	themes, err := theme.Builtin()
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:     cfg,
		Logger:     logger,
		Schemas:    schemas,
		Themes:     themes,
		Reader:     tabular.New(cfg.MaxInputBytes),
		Store:      store.NewFileStore(),
		Exporter:   export.New(cfg.DPI),
		validator:  validation.New(cfg.StrictTotals),
		normalizer: judgement.New(),
	}, nil
}

// Engine returns a pipeline engine for tool.
func (w *Wire) Engine(tool string) (*pipeline.Engine, error) {
	s, err := w.Schemas.Lookup(tool)
	if err != nil {
		return nil, err
	}
	return pipeline.New(s, pipeline.Deps{
		Validator:  w.validator,
		Normalizer: w.normalizer,
		Themes:     w.Themes,
		Exporter:   w.Exporter,
		Store:      w.Store,
		Logger:     w.Logger,
		Manifest:   w.Config.Manifest,
	}), nil
}
