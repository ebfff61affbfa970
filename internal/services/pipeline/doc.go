// Package pipeline runs one assessment tool end to end.
//
// An Engine is bound to a single tool schema. Process validates a raw table;
// Render resolves the theme, projects judgements, aggregates the distribution,
// composes the figure and exports it to every target. Export failures are
// collected per target, so the targets that did succeed are still written.
// Batch fans several input files out over a bounded errgroup.
package pipeline
