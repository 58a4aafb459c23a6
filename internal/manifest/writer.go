package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/widgetkit/widgetgen/internal/branding"
	"github.com/widgetkit/widgetgen/internal/output"
	"github.com/widgetkit/widgetgen/internal/platform"
	"github.com/widgetkit/widgetgen/internal/widget"
)

//go:embed templates
var templateFS embed.FS

// Result lists what Write produced.
type Result struct {
	Files    []string
	Warnings []string
}

// auxFiles are copied verbatim on every run.
var auxFiles = []struct {
	source string
	target string
}{
	{"gitignore", ".gitignore"},
	{"jshintrc", ".jshintrc"},
	{"editorconfig", ".editorconfig"},
}

type templateData struct {
	widget.Spec
	GeneratorPackage string
	IsGrunt          bool
}

var funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	},
}

// Write regenerates the manifest, the builder config and the auxiliary files
// in dest. Stale copies of package.json and of both builder configs are
// removed first so exactly one builder config remains.
func Write(spec widget.Spec, dest string) (*Result, error) {
	data := templateData{
		Spec:             spec,
		GeneratorPackage: branding.GeneratorPackage(),
		IsGrunt:          spec.Builder == widget.BuilderGrunt,
	}
	result := &Result{}

	manifestPath := filepath.Join(dest, FileName)
	if err := platform.EnsureAbsent(manifestPath); err != nil {
		return nil, err
	}
	pkgJSON, err := render("package.json.tmpl", data)
	if err != nil {
		return nil, err
	}
	valResult, err := Validate(pkgJSON)
	if err != nil {
		return nil, fmt.Errorf("rendered %s is malformed: %w", FileName, err)
	}
	for _, issue := range valResult.Issues {
		result.Warnings = append(result.Warnings, FileName+" "+issue.String())
	}
	if err := platform.WriteFile(manifestPath, pkgJSON); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, FileName)

	for _, b := range widget.Builders() {
		if err := platform.EnsureAbsent(filepath.Join(dest, b.ConfigFile())); err != nil {
			return nil, err
		}
	}
	builderFile := spec.Builder.ConfigFile()
	builderJS, err := render(builderFile+".tmpl", data)
	if err != nil {
		return nil, err
	}
	if err := platform.WriteFile(filepath.Join(dest, builderFile), builderJS); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, builderFile)

	for _, f := range auxFiles {
		content, err := templateFS.ReadFile("templates/" + f.source)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", f.source, err)
		}
		if err := platform.WriteFile(filepath.Join(dest, f.target), content); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.target)
	}

	output.Debug("wrote project files", "builder", spec.Builder, "files", len(result.Files))
	return result, nil
}

func render(name string, data templateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
