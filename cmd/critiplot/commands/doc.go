// Package commands defines the critiplot CLI and wires dependencies for subcommands.
//
// Commands
//
//   - render    Validate a table and export the traffic-light figure
//   - validate  Check a table and print studies, totals and warnings
//   - batch     Render several tables concurrently
//   - tools     List the supported assessment tools and their columns
//   - themes    List the themes accepted by each tool
//   - digest    Print BLAKE2b digests of rendered files
//
// # Implementation
//
// The root command loads the YAML config, applies environment and flag
// overrides, builds the zap logger and the dependency graph (registries,
// services, stores) before any subcommand runs. The logger is synced after
// the subcommand returns.
package commands
