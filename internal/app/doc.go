// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML and the environment, builds the zap logger and
// constructs the registries, services and stores, exposing them via the
// Wire struct for commands to use.
package app
