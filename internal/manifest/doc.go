// Package manifest reads and writes the project-level files the generator
// owns in every run, new or upgrade: package.json, exactly one builder config
// (Gulpfile.js or Gruntfile.js), and the ignore, lint and editor config files.
// Written manifests are checked against an embedded JSON Schema.
package manifest
