package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

//go:embed tools.yaml
var toolsYAML []byte

type toolFile struct {
	Tools []domain.DomainSchema `yaml:"tools"`
}

// Registry maps tool identifiers to schemas.
type Registry struct {
	order []domain.ToolID
	byID  map[domain.ToolID]domain.DomainSchema
}

var builtin = sync.OnceValues(func() (*Registry, error) { return Parse(toolsYAML) })

// Builtin returns the registry of the five embedded tools.
func Builtin() (*Registry, error) { return builtin() }

// Parse decodes and checks a tools document.
func Parse(b []byte) (*Registry, error) {
	var f toolFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}
	r := &Registry{byID: make(map[domain.ToolID]domain.DomainSchema, len(f.Tools))}
	for _, s := range f.Tools {
		if err := check(s); err != nil {
			return nil, err
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("tool %q declared twice", s.ID)
		}
		r.byID[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("decode tools: no tools declared")
	}
	return r, nil
}

func check(s domain.DomainSchema) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("tool without id")
	case s.Name == "" || s.FilePrefix == "":
		return fmt.Errorf("tool %s: name and file_prefix are required", s.ID)
	case s.Identifier.Column == "":
		return fmt.Errorf("tool %s: identifier column is required", s.ID)
	case len(s.Domains) == 0:
		return fmt.Errorf("tool %s: no domains", s.ID)
	case len(s.States) == 0:
		return fmt.Errorf("tool %s: no states", s.ID)
	case s.OverallColumn == "":
		return fmt.Errorf("tool %s: overall column is required", s.ID)
	case s.Palette == "":
		return fmt.Errorf("tool %s: palette is required", s.ID)
	}
	seen := make(map[string]bool, len(s.Domains))
	for _, d := range s.Domains {
		if d == "" || seen[d] {
			return fmt.Errorf("tool %s: empty or duplicate domain %q", s.ID, d)
		}
		seen[d] = true
	}
	states := make(map[domain.Judgement]bool, len(s.States))
	for _, st := range s.States {
		if states[st.Judgement] {
			return fmt.Errorf("tool %s: duplicate state %q", s.ID, st.Judgement)
		}
		states[st.Judgement] = true
	}
	switch s.Kind {
	case domaintypes.KindBinary:
		if len(s.States) != 2 || !states[domaintypes.JudgementHigh] || !states[domaintypes.JudgementLow] {
			return fmt.Errorf("tool %s: binary tools use exactly the High and Low states", s.ID)
		}
		if s.TotalColumn == "" {
			return fmt.Errorf("tool %s: binary tools need a total column", s.ID)
		}
	case domaintypes.KindCategorical:
		if s.TotalColumn != "" {
			return fmt.Errorf("tool %s: categorical tools have no total column", s.ID)
		}
	default:
		return fmt.Errorf("tool %s: unknown kind %q", s.ID, s.Kind)
	}
	return nil
}

// Lookup returns the schema for tool. Case, spaces and underscores are
// ignored, so "JBI Case Report" and "jbi_case_report" both resolve.
func (r *Registry) Lookup(tool string) (domain.DomainSchema, error) {
	id := domain.ToolID(normalizeID(tool))
	s, ok := r.byID[id]
	if !ok {
		return domain.DomainSchema{}, fmt.Errorf("%w %q (choose from %s)",
			domaintypes.ErrUnknownTool, tool, strings.Join(r.IDs(), ", "))
	}
	return s, nil
}

// Schemas returns every schema in declaration order.
func (r *Registry) Schemas() []domain.DomainSchema {
	out := make([]domain.DomainSchema, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out
}

// IDs returns the sorted tool identifiers.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	for i, id := range r.order {
		ids[i] = string(id)
	}
	sort.Strings(ids)
	return ids
}

func normalizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' {
			return '-'
		}
		return r
	}, s)
}

// Compile-time assertion that Registry implements domain.SchemaRegistry.
var _ domain.SchemaRegistry = (*Registry)(nil)
