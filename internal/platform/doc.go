// Package platform provides the small filesystem primitives the generator
// stages share: idempotent removal, directory listing and emptiness checks,
// and file writes that create parent directories on demand.
package platform
