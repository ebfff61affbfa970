// Package theme resolves named colour themes into per-judgement encodings.
//
// Themes are grouped into palette families in the embedded themes.yaml. Each
// tool schema names its family, so the set of valid theme names is tool
// specific. Resolution fails fast on unknown or incomplete themes.
package theme
