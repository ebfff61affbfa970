// Package schema loads the built-in assessment tool definitions.
//
// Tools are declared in the embedded tools.yaml and validated once at first
// use; the resulting Registry is read-only and safe for concurrent use.
package schema
