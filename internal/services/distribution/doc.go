// Package distribution aggregates a judgement matrix into per-domain shares.
package distribution
