package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
	"critiplot/internal/render"
	"critiplot/internal/services/distribution"
	"critiplot/internal/services/export"
	"critiplot/internal/store"
)

// Deps are the collaborators an Engine needs.
type Deps struct {
	Validator  domain.Validator
	Normalizer domain.Normalizer
	Themes     domain.ThemeResolver
	Exporter   *export.Service
	Store      domain.ArtifactStore
	Logger     *zap.Logger

	// Manifest enables the JSON manifest written next to the artifacts.
	Manifest bool
	// Now stamps manifests; defaults to time.Now.
	Now func() time.Time
}

// Engine renders tables of one tool.
type Engine struct {
	schema domain.DomainSchema
	deps   Deps
	log    *zap.Logger
}

// New returns an engine for schema.
func New(schema domain.DomainSchema, deps Deps) *Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Engine{
		schema: schema,
		deps:   deps,
		log:    deps.Logger.With(zap.String("tool", schema.ID.String())),
	}
}

// Schema returns the engine's tool schema.
func (e *Engine) Schema() domain.DomainSchema { return e.schema }

// Themes returns the theme names valid for this tool.
func (e *Engine) Themes() []string { return e.deps.Themes.Names(e.schema) }

// CheckTheme resolves name for this tool without touching any table.
func (e *Engine) CheckTheme(name string) (domain.ThemeEncoding, error) {
	enc, err := e.deps.Themes.Resolve(e.schema, name)
	if err != nil {
		return domain.ThemeEncoding{}, err
	}
	e.log.Debug("theme resolved", zap.String("theme", enc.Name), zap.Bool("smiley", enc.Smiley))
	return enc, nil
}

// Process validates raw against the tool schema. Reconciliation warnings are
// logged and returned with the table.
func (e *Engine) Process(raw domain.RawTable) (domain.ValidatedTable, error) {
	vt, err := e.deps.Validator.Validate(raw, e.schema)
	if err != nil {
		e.log.Info("validation failed", zap.String("source", raw.Source), zap.Error(err))
		return domain.ValidatedTable{}, err
	}
	for _, w := range vt.Warnings {
		e.log.Warn("declared total does not match domain scores",
			zap.Int("row", w.Row),
			zap.String("study", w.Study),
			zap.Float64("declared", w.Declared),
			zap.Int("computed", w.Computed),
		)
	}
	e.log.Info("table validated",
		zap.String("source", raw.Source),
		zap.Int("studies", vt.Table.Len()),
		zap.Int("warnings", len(vt.Warnings)),
	)
	return vt, nil
}

// Targets returns the default output path in dir for each format.
func (e *Engine) Targets(dir string, formats []domain.Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = filepath.Join(dir, e.schema.OutputName(f))
	}
	return out
}

// Render draws vt with the named theme and writes one file per target. The
// format of each target comes from its extension.
//
// An unknown theme fails before anything is written. A failing target does
// not stop the others: the result lists what was written and the error joins
// one *domain.ExportError per failed target.
func (e *Engine) Render(vt domain.ValidatedTable, theme string, targets ...string) (*domain.RenderResult, error) {
	enc, err := e.CheckTheme(theme)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no output targets", domaintypes.ErrExportFailed)
	}
	if vt.Table.Schema.ID != e.schema.ID {
		return nil, fmt.Errorf("table validated for %s, engine renders %s", vt.Table.Schema.ID, e.schema.ID)
	}

	m, err := e.deps.Normalizer.Project(vt.Table)
	if err != nil {
		return nil, err
	}
	dist, err := distribution.Aggregate(m, e.schema)
	if err != nil {
		return nil, err
	}
	fig, err := render.Compose(vt.Table, m, dist, enc)
	if err != nil {
		return nil, err
	}
	defer fig.Release()

	runID := uuid.NewString()
	log := e.log.With(zap.String("run_id", runID), zap.String("theme", enc.Name))

	res := &domain.RenderResult{}
	var errs []error
	for _, target := range targets {
		a, err := e.exportOne(fig, target)
		if err != nil {
			log.Error("export failed", zap.String("target", target), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		log.Info("artifact written",
			zap.String("path", a.Path),
			zap.Int("bytes", a.Bytes),
			zap.String("blake2b_256", a.Digest),
		)
		res.Artifacts = append(res.Artifacts, a)
	}

	if e.deps.Manifest && len(res.Artifacts) > 0 {
		path := store.ManifestPath(res.Artifacts[0].Path)
		man := domain.Manifest{
			RunID:     runID,
			Tool:      e.schema.ID,
			Theme:     enc.Name,
			Studies:   vt.Table.Len(),
			CreatedAt: e.deps.Now().UTC().Format(time.RFC3339),
			Artifacts: res.Artifacts,
		}
		if err := e.deps.Store.WriteManifest(path, man); err != nil {
			log.Error("manifest failed", zap.String("path", path), zap.Error(err))
			errs = append(errs, err)
		} else {
			res.ManifestPath = path
		}
	}
	return res, errors.Join(errs...)
}

func (e *Engine) exportOne(fig *render.Figure, target string) (domain.Artifact, error) {
	f, err := export.FormatFromPath(target)
	if err != nil {
		return domain.Artifact{}, &domain.ExportError{Target: target, Err: err}
	}
	b, err := e.deps.Exporter.Export(fig, f)
	if err != nil {
		return domain.Artifact{}, &domain.ExportError{Target: target, Format: f, Err: err}
	}
	sum, err := e.deps.Store.WriteArtifact(target, b)
	if err != nil {
		return domain.Artifact{}, &domain.ExportError{
			Target: target, Format: f,
			Err: fmt.Errorf("%w: %v", domaintypes.ErrExportFailed, err),
		}
	}
	return domain.Artifact{Path: target, Format: f, Bytes: len(b), Digest: sum}, nil
}
