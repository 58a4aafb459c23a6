// Package cli defines the Cobra command tree for the widgetgen CLI. The root
// command runs the generator; version, config and doctor are registered as
// subcommands, one per file. Commands only handle flags and I/O and delegate
// the work to the internal packages.
package cli
