// Package validation checks raw tables against a tool schema.
//
// It resolves the study identifier column, verifies that every required column
// is present, type-checks each domain cell and reconciles declared totals with
// the sum of the domain scores. The input table is never modified.
package validation
