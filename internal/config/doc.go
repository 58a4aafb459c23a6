// Package config manages user-level settings stored at ~/.widgetgen/config.yaml.
// Settings provide the defaults offered when scaffolding a new widget (author,
// copyright, license, builder, boilerplate) and the package manager used after
// generation. Every key can be overridden with a WIDGETGEN_* environment variable.
package config
