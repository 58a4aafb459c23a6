package widget

import (
	"fmt"
	"strings"
	"time"
)

// Builder is the build-automation tool wired into a generated project.
// Only one builder config file may exist in a project at a time.
type Builder string

const (
	BuilderGulp  Builder = "gulp"
	BuilderGrunt Builder = "grunt"
)

// ConfigFile returns the build-config file name owned by the builder.
func (b Builder) ConfigFile() string {
	if b == BuilderGrunt {
		return "Gruntfile.js"
	}
	return "Gulpfile.js"
}

// Builders returns all supported builders in prompt order.
func Builders() []Builder {
	return []Builder{BuilderGulp, BuilderGrunt}
}

// ParseBuilder converts a string into a Builder.
func ParseBuilder(s string) (Builder, error) {
	switch Builder(strings.ToLower(strings.TrimSpace(s))) {
	case BuilderGulp:
		return BuilderGulp, nil
	case BuilderGrunt:
		return BuilderGrunt, nil
	default:
		return "", fmt.Errorf("unknown builder %q: must be %q or %q", s, BuilderGulp, BuilderGrunt)
	}
}

// Boilerplate is the starter template flavor for a new project.
type Boilerplate string

const (
	// BoilerplateAppStore is the full-featured starter.
	BoilerplateAppStore Boilerplate = "appstore"
	// BoilerplateEmpty is the minimal starter with opt-in features.
	BoilerplateEmpty Boilerplate = "empty"
)

// Feature is an optional capability of the empty boilerplate.
type Feature string

const (
	FeatureJQuery    Feature = "jquery"
	FeatureTemplates Feature = "templates"
)

// Features returns the optional features in prompt order.
func Features() []Feature {
	return []Feature{FeatureJQuery, FeatureTemplates}
}

// Default metadata used when nothing can be detected in the destination.
const (
	DefaultName    = "CurrentWidget"
	DefaultVersion = "1.0.0"
)

// State is what the detector learned about the destination directory.
// It is populated once at startup and read-only afterwards.
type State struct {
	// IsNew is true when the destination is empty or absent.
	IsNew bool

	Name        string
	Version     string
	Description string
	Author      string
	Copyright   string
	License     string
	Builder     Builder

	// GeneratorVersion is the generator version recorded in an existing
	// manifest, empty when unknown.
	GeneratorVersion string
}

// NewState returns a State carrying the detection defaults.
func NewState() State {
	return State{
		IsNew:   true,
		Name:    DefaultName,
		Version: DefaultVersion,
		Builder: BuilderGulp,
	}
}

// Options is the set of enabled optional features.
type Options struct {
	JQuery    bool
	Templates bool
}

// Enabled reports whether the feature is switched on.
func (o Options) Enabled(f Feature) bool {
	switch f {
	case FeatureJQuery:
		return o.JQuery
	case FeatureTemplates:
		return o.Templates
	}
	return false
}

// Spec is the final, merged configuration used for rendering.
type Spec struct {
	WidgetName       string
	PackageName      string
	Description      string
	Version          string
	Author           string
	Date             string
	Copyright        string
	License          string
	GeneratorVersion string
	Builder          Builder
	Boilerplate      Boilerplate
	Options          Options
}

// DateLayout is the layout of Spec.Date.
const DateLayout = "2006-01-02"

// NewSpec merges answers with the detected state. Blank descriptive answers
// fall back to the values found in the existing project.
func NewSpec(a Answers, s State, generatorVersion string, now time.Time) Spec {
	name := a.String(KeyWidgetName)
	if name == "" {
		name = s.Name
	}
	version := a.String(KeyVersion)
	if version == "" {
		version = s.Version
	}

	builder := s.Builder
	if b, err := ParseBuilder(a.String(KeyBuilder)); err == nil {
		builder = b
	}
	if builder == "" {
		builder = BuilderGulp
	}

	spec := Spec{
		WidgetName:       name,
		PackageName:      name,
		Description:      firstNonEmpty(a.String(KeyDescription), s.Description),
		Version:          version,
		Author:           firstNonEmpty(a.String(KeyAuthor), s.Author),
		Date:             now.Format(DateLayout),
		Copyright:        firstNonEmpty(a.String(KeyCopyright), s.Copyright),
		License:          firstNonEmpty(a.String(KeyLicense), s.License),
		GeneratorVersion: generatorVersion,
		Builder:          builder,
		Boilerplate:      Boilerplate(a.String(KeyBoilerplate)),
	}
	if spec.Boilerplate == "" {
		spec.Boilerplate = BoilerplateAppStore
	}

	if spec.Boilerplate == BoilerplateEmpty {
		for _, f := range a.Strings(KeyWidgetOptions) {
			switch Feature(f) {
			case FeatureJQuery:
				spec.Options.JQuery = true
			case FeatureTemplates:
				spec.Options.Templates = true
			}
		}
	}
	return spec
}

// Includes reports whether an optional feature's files belong in the output:
// always for the app store boilerplate, otherwise only when enabled.
func (s Spec) Includes(f Feature) bool {
	return s.Boilerplate == BoilerplateAppStore || s.Options.Enabled(f)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
