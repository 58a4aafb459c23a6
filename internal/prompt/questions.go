package prompt

import (
	"fmt"
	"regexp"

	"github.com/widgetkit/widgetgen/internal/config"
	"github.com/widgetkit/widgetgen/internal/versioning"
	"github.com/widgetkit/widgetgen/internal/widget"
)

var widgetNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateWidgetName checks that name is usable as a folder, file and
// JavaScript identifier.
func ValidateWidgetName(name string) error {
	if !widgetNamePattern.MatchString(name) {
		return fmt.Errorf("invalid widget name %q: must start with a letter and contain only letters, digits or underscores", name)
	}
	return nil
}

var builderChoices = []Choice{
	{Label: "Gulp", Value: string(widget.BuilderGulp)},
	{Label: "Grunt", Value: string(widget.BuilderGrunt)},
}

// NewProject returns the questions for scaffolding a new widget.
func NewProject(d config.Defaults) []Question {
	return []Question{
		{
			Key:      widget.KeyWidgetName,
			Message:  "What is the name of your widget?",
			Kind:     Input,
			Default:  "MyWidget",
			Validate: ValidateWidgetName,
		},
		{
			Key:     widget.KeyDescription,
			Message: "Enter a description for your widget",
			Kind:    Input,
			Default: "My brand new widget",
		},
		{
			Key:      widget.KeyVersion,
			Message:  "Initial version",
			Kind:     Input,
			Default:  widget.DefaultVersion,
			Validate: versioning.Validate,
		},
		{
			Key:     widget.KeyAuthor,
			Message: "Author",
			Kind:    Input,
			Default: d.Author,
		},
		{
			Key:     widget.KeyCopyright,
			Message: "Copyright",
			Kind:    Input,
			Default: d.Copyright,
		},
		{
			Key:     widget.KeyLicense,
			Message: "License",
			Kind:    Input,
			Default: d.License,
		},
		{
			Key:     widget.KeyBoilerplate,
			Message: "Which boilerplate do you want to start from?",
			Kind:    List,
			Default: orDefault(d.Boilerplate, string(widget.BoilerplateAppStore)),
			Choices: []Choice{
				{Label: "App Store boilerplate (jQuery and HTML templates included)", Value: string(widget.BoilerplateAppStore)},
				{Label: "Empty widget (choose features below)", Value: string(widget.BoilerplateEmpty)},
			},
		},
		{
			Key:     widget.KeyWidgetOptions,
			Message: "Which features should the empty widget include?",
			Kind:    Checkbox,
			Default: []string{},
			Choices: []Choice{
				{Label: "jQuery library", Value: string(widget.FeatureJQuery)},
				{Label: "HTML template (dijit templated widget)", Value: string(widget.FeatureTemplates)},
			},
			When: func(a widget.Answers) bool {
				return a.String(widget.KeyBoilerplate) == string(widget.BoilerplateEmpty)
			},
		},
		{
			Key:     widget.KeyBuilder,
			Message: "Which build tool do you want to use?",
			Kind:    List,
			Default: orDefault(d.Builder, string(widget.BuilderGulp)),
			Choices: builderChoices,
		},
	}
}

// Upgrade returns the questions for upgrading an existing project. The first
// question gates the rest; every override is pre-filled from s.
func Upgrade(s widget.State) []Question {
	upgrading := func(a widget.Answers) bool { return a.Bool(widget.KeyUpgrade) }

	return []Question{
		{
			Key:     widget.KeyUpgrade,
			Message: fmt.Sprintf("%s looks like an existing widget project. Regenerate package.json, build and lint files? Sources in src/ are left untouched.", s.Name),
			Kind:    Confirm,
			Default: false,
		},
		{
			Key:      widget.KeyWidgetName,
			Message:  "Widget name",
			Kind:     Input,
			Default:  s.Name,
			Validate: unlessDetected(s.Name, ValidateWidgetName),
			When:     upgrading,
		},
		{
			Key:     widget.KeyDescription,
			Message: "Description",
			Kind:    Input,
			Default: s.Description,
			When:    upgrading,
		},
		{
			Key:      widget.KeyVersion,
			Message:  "Version",
			Kind:     Input,
			Default:  s.Version,
			Validate: unlessDetected(s.Version, versioning.Validate),
			When:     upgrading,
		},
		{
			Key:     widget.KeyAuthor,
			Message: "Author",
			Kind:    Input,
			Default: s.Author,
			When:    upgrading,
		},
		{
			Key:     widget.KeyCopyright,
			Message: "Copyright",
			Kind:    Input,
			Default: s.Copyright,
			When:    upgrading,
		},
		{
			Key:     widget.KeyLicense,
			Message: "License",
			Kind:    Input,
			Default: s.License,
			When:    upgrading,
		},
		{
			Key:     widget.KeyBuilder,
			Message: "Which build tool do you want to use?",
			Kind:    List,
			Default: orDefault(string(s.Builder), string(widget.BuilderGulp)),
			Choices: builderChoices,
			When:    upgrading,
		},
	}
}

// For returns the question set matching the detected state.
func For(s widget.State, d config.Defaults) []Question {
	if s.IsNew {
		return NewProject(d)
	}
	return Upgrade(s)
}

// unlessDetected accepts the value found in the existing project as is and
// validates only overrides.
func unlessDetected(detected string, validate func(string) error) func(string) error {
	return func(v string) error {
		if v == detected {
			return nil
		}
		return validate(v)
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
