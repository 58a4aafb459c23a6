package widget

import (
	"testing"
	"time"
)

func TestParseBuilder(t *testing.T) {
	tests := []struct {
		in      string
		want    Builder
		wantErr bool
	}{
		{"gulp", BuilderGulp, false},
		{"grunt", BuilderGrunt, false},
		{" Grunt ", BuilderGrunt, false},
		{"webpack", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBuilder(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBuilder(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBuilder(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseBuilder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuilderConfigFile(t *testing.T) {
	if got := BuilderGulp.ConfigFile(); got != "Gulpfile.js" {
		t.Errorf("gulp config = %q", got)
	}
	if got := BuilderGrunt.ConfigFile(); got != "Gruntfile.js" {
		t.Errorf("grunt config = %q", got)
	}
}

func TestNewSpecFallsBackToState(t *testing.T) {
	state := State{
		Name:        "Existing",
		Version:     "2.1.0",
		Description: "old description",
		Author:      "Jane",
		Copyright:   "2019 Jane",
		License:     "MIT",
		Builder:     BuilderGrunt,
	}
	answers := Answers{
		KeyUpgrade:    true,
		KeyWidgetName: "Existing",
		KeyVersion:    "2.2.0",
		KeyAuthor:     "",
	}
	now := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	spec := NewSpec(answers, state, "1.4.0", now)

	if spec.WidgetName != "Existing" || spec.PackageName != "Existing" {
		t.Errorf("names = %q/%q", spec.WidgetName, spec.PackageName)
	}
	if spec.Version != "2.2.0" {
		t.Errorf("Version = %q, want 2.2.0", spec.Version)
	}
	if spec.Author != "Jane" {
		t.Errorf("Author = %q, want fallback Jane", spec.Author)
	}
	if spec.Description != "old description" || spec.License != "MIT" || spec.Copyright != "2019 Jane" {
		t.Errorf("fallbacks not applied: %+v", spec)
	}
	if spec.Builder != BuilderGrunt {
		t.Errorf("Builder = %q, want grunt", spec.Builder)
	}
	if spec.Date != "2024-03-09" {
		t.Errorf("Date = %q", spec.Date)
	}
	if spec.GeneratorVersion != "1.4.0" {
		t.Errorf("GeneratorVersion = %q", spec.GeneratorVersion)
	}
}

func TestNewSpecOptions(t *testing.T) {
	t.Run("empty boilerplate collects features", func(t *testing.T) {
		spec := NewSpec(Answers{
			KeyWidgetName:    "Foo",
			KeyBoilerplate:   "empty",
			KeyWidgetOptions: []string{"jquery"},
			KeyBuilder:       "gulp",
		}, NewState(), "dev", time.Now())

		if !spec.Options.JQuery || spec.Options.Templates {
			t.Errorf("Options = %+v, want jquery only", spec.Options)
		}
		if !spec.Includes(FeatureJQuery) {
			t.Error("jquery should be included")
		}
		if spec.Includes(FeatureTemplates) {
			t.Error("templates should not be included")
		}
	})

	t.Run("app store boilerplate includes everything", func(t *testing.T) {
		spec := NewSpec(Answers{
			KeyWidgetName:    "Foo",
			KeyBoilerplate:   "appstore",
			KeyWidgetOptions: []string{"jquery"},
		}, NewState(), "dev", time.Now())

		if spec.Options.JQuery {
			t.Error("options are only collected for the empty boilerplate")
		}
		for _, f := range Features() {
			if !spec.Includes(f) {
				t.Errorf("appstore should include %s", f)
			}
		}
	})
}
