// Package runtime runs the package manager after generation: a blocking
// dependency install followed, when node_modules is populated, by a build
// that is spawned and left running on its own.
package runtime
