// Package detect inspects a destination directory and reports whether it
// holds a new (empty) location, an existing widget project, or something the
// generator must refuse to touch.
package detect
