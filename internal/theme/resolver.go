package theme

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

//go:embed themes.yaml
var themesYAML []byte

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type themeDef struct {
	Name   string            `yaml:"name"`
	Smiley bool              `yaml:"smiley"`
	Colors map[string]string `yaml:"colors"`
}

type themeFile struct {
	Palettes map[string][]themeDef `yaml:"palettes"`
}

// Resolver resolves theme names against palette families.
type Resolver struct {
	palettes map[string][]themeDef
}

var builtin = sync.OnceValues(func() (*Resolver, error) { return Parse(themesYAML) })

// Builtin returns the resolver over the embedded themes.
func Builtin() (*Resolver, error) { return builtin() }

// Parse decodes a themes document. Colours must be #RRGGBB.
func Parse(b []byte) (*Resolver, error) {
	var f themeFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode themes: %w", err)
	}
	for family, defs := range f.Palettes {
		seen := make(map[string]bool, len(defs))
		for _, d := range defs {
			if d.Name == "" || seen[d.Name] {
				return nil, fmt.Errorf("palette %s: empty or duplicate theme %q", family, d.Name)
			}
			seen[d.Name] = true
			for j, hex := range d.Colors {
				if !hexColor.MatchString(hex) {
					return nil, fmt.Errorf("palette %s theme %s: colour for %s is not #RRGGBB: %q", family, d.Name, j, hex)
				}
			}
		}
	}
	return &Resolver{palettes: f.Palettes}, nil
}

// Names returns the theme names available for schema, in declaration order.
func (r *Resolver) Names(schema domain.DomainSchema) []string {
	defs := r.palettes[schema.Palette]
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name
	}
	return out
}

// Resolve builds the encoding of every schema state under the named theme.
//
// An empty name selects "default". Smiley themes give favourable states the
// smiling glyph and every other state the frowning one.
func (r *Resolver) Resolve(schema domain.DomainSchema, name string) (domain.ThemeEncoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "default"
	}
	def, ok := r.find(schema.Palette, name)
	if !ok {
		return domain.ThemeEncoding{}, &domaintypes.ThemeError{
			Kind:      domaintypes.UnknownTheme,
			Theme:     name,
			Tool:      schema.ID,
			Available: r.Names(schema),
		}
	}

	enc := domain.ThemeEncoding{Name: def.Name, Tool: schema.ID, Smiley: def.Smiley}
	var missing []domain.Judgement
	for _, st := range schema.States {
		hex, ok := def.Colors[string(st.Judgement)]
		if !ok {
			missing = append(missing, st.Judgement)
			continue
		}
		glyph := domaintypes.GlyphSquare
		if def.Smiley {
			glyph = domaintypes.GlyphFrown
			if st.Favourable {
				glyph = domaintypes.GlyphSmile
			}
		}
		enc.Entries = append(enc.Entries, domain.Encoding{
			Judgement: st.Judgement,
			Label:     st.Label,
			Hex:       strings.ToUpper(hex),
			Color:     drawing.ColorFromHex(strings.TrimPrefix(hex, "#")),
			Glyph:     glyph,
		})
	}
	if len(missing) > 0 {
		return domain.ThemeEncoding{}, &domaintypes.ThemeError{
			Kind:    domaintypes.IncompleteTheme,
			Theme:   name,
			Tool:    schema.ID,
			Missing: missing,
		}
	}
	return enc, nil
}

func (r *Resolver) find(palette, name string) (themeDef, bool) {
	for _, d := range r.palettes[palette] {
		if d.Name == name {
			return d, true
		}
	}
	return themeDef{}, false
}

// Compile-time assertion that Resolver implements domain.ThemeResolver.
var _ domain.ThemeResolver = (*Resolver)(nil)
