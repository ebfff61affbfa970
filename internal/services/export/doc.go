// Package export encodes a composed figure as PNG, PDF, SVG or EPS.
//
// Each call replays the figure onto a fresh gonum/plot canvas for the
// requested backend. The output format is taken from the target extension.
package export
