// Package domain defines the core data models and contracts shared across critiplot.
// It contains plain types (schemas, records, encodings, errors) and interfaces only.
package domain
