package types

// IdentifierSpec describes how a study identifier column is resolved.
type IdentifierSpec struct {
	// Column is the canonical identifier header, e.g. "Author,Year".
	Column string `yaml:"column"`
	// Aliases are accepted alternative headers, e.g. "Author, Year".
	Aliases []string `yaml:"aliases"`
	// Compose lists columns joined by a space when no identifier column exists.
	Compose []string `yaml:"compose"`
	// Qualifier is an optional extra column appended as "ID (Qualifier)".
	Qualifier string `yaml:"qualifier"`
}

// JudgementState is one canonical state of a schema, with its legend label.
type JudgementState struct {
	Judgement  Judgement `yaml:"judgement"`
	Label      string    `yaml:"label"`
	Favourable bool      `yaml:"favourable"`
}

// DomainSchema is the static description of one assessment tool.
//
// States are ordered from most to least severe; that order drives bar stacking
// and, reversed, the legend.
type DomainSchema struct {
	ID                ToolID           `yaml:"id"`
	Name              string           `yaml:"name"`
	FilePrefix        string           `yaml:"file_prefix"`
	Identifier        IdentifierSpec   `yaml:"identifier"`
	Domains           []string         `yaml:"domains"`
	Kind              ValueKind        `yaml:"kind"`
	States            []JudgementState `yaml:"states"`
	TotalColumn       string           `yaml:"total_column"`
	OverallColumn     string           `yaml:"overall_column"`
	Palette           string           `yaml:"palette"`
	LegendTitle       string           `yaml:"legend_title"`
	DistributionTitle string           `yaml:"distribution_title"`
}

// Tokens returns the allowed raw tokens of a categorical schema, in state order.
func (s DomainSchema) Tokens() []string {
	out := make([]string, len(s.States))
	for i, st := range s.States {
		out[i] = string(st.Judgement)
	}
	return out
}

// StateIndex returns the position of j in States, or -1.
func (s DomainSchema) StateIndex(j Judgement) int {
	for i, st := range s.States {
		if st.Judgement == j {
			return i
		}
	}
	return -1
}

// RequiredColumns returns the domain, total and overall columns in schema order.
func (s DomainSchema) RequiredColumns() []string {
	cols := make([]string, 0, len(s.Domains)+2)
	cols = append(cols, s.Domains...)
	if s.TotalColumn != "" {
		cols = append(cols, s.TotalColumn)
	}
	if s.OverallColumn != "" {
		cols = append(cols, s.OverallColumn)
	}
	return cols
}

// Title is the traffic-light panel title.
func (s DomainSchema) Title() string { return s.Name + " Traffic-Light Plot" }

// OutputName returns "<FilePrefix>_TrafficLight<ext>" for f.
func (s DomainSchema) OutputName(f Format) string {
	return s.FilePrefix + "_TrafficLight" + f.Ext()
}
