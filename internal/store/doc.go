// Package store writes rendered artifacts and their manifests to disk.
//
// Every write goes through a temp file in the target directory followed by a
// rename, so a reader never observes a partially written figure. FileStore
// is safe for concurrent use.
package store
