// Package tabular reads assessment tables from CSV, TSV and Excel workbooks.
//
// Readers return a domain.RawTable: the first non-blank row is the header and
// every later non-blank row is padded to the header width. No value is
// interpreted here; that is the validator's job.
package tabular
