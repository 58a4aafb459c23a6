package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/widgetkit/widgetgen/internal/output"
	"github.com/widgetkit/widgetgen/internal/platform"
	"github.com/widgetkit/widgetgen/internal/widget"
)

//go:embed boilerplate
var boilerplateFS embed.FS

// Op is the transform applied to one boilerplate file.
type Op int

const (
	// Copy writes the file byte for byte.
	Copy Op = iota
	// Substitute applies a Replacer to the file text.
	Substitute
	// Render executes the file as a Go template with the widget spec.
	Render
)

func (o Op) String() string {
	switch o {
	case Copy:
		return "copy"
	case Substitute:
		return "substitute"
	case Render:
		return "render"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// File is one entry of the generation plan.
type File struct {
	// Source is the path inside the embedded boilerplate tree.
	Source string
	// Target is the slash-separated destination path, before the sentinel
	// is replaced with the widget name.
	Target string
	Op     Op
	// Replacer builds the substitutions for Substitute entries.
	Replacer func(widget.Spec) Replacer
	// When gates the entry; nil means always.
	When func(widget.Spec) bool
}

// Result lists what Generate produced.
type Result struct {
	OutputDir string
	Files     []string
}

const (
	sharedDir = "boilerplate/shared"
	widgetDir = "src/" + Sentinel
)

// Plan returns the ordered file plan for spec's boilerplate flavor. Entries
// whose When condition is false are still listed.
func Plan(spec widget.Spec) []File {
	flavor := "boilerplate/" + string(spec.Boilerplate)
	includes := func(f widget.Feature) func(widget.Spec) bool {
		return func(s widget.Spec) bool { return s.Includes(f) }
	}

	script := File{
		Source:   flavor + "/" + widgetDir + "/widget/" + Sentinel + ".js",
		Target:   widgetDir + "/widget/" + Sentinel + ".js",
		Op:       Substitute,
		Replacer: ScriptReplacer,
	}
	if spec.Boilerplate == widget.BoilerplateEmpty {
		script.Source += ".tmpl"
		script.Op = Render
		script.Replacer = nil
	}

	return []File{
		{Source: sharedDir + "/icon.png", Target: "icon.png", Op: Copy},
		{Source: sharedDir + "/assets/app_store_banner.png", Target: "assets/app_store_banner.png", Op: Copy},
		{Source: sharedDir + "/assets/app_store_icon.png", Target: "assets/app_store_icon.png", Op: Copy},
		{Source: flavor + "/README.md", Target: "README.md", Op: Copy},
		{Source: sharedDir + "/test/Test.mpr", Target: "test/Test.mpr", Op: Copy},
		{Source: sharedDir + "/xsd/widget.xsd", Target: "xsd/widget.xsd", Op: Copy},
		{
			Source: sharedDir + "/" + widgetDir + "/lib/jquery-1.11.2.js",
			Target: widgetDir + "/lib/jquery-1.11.2.js",
			Op:     Copy,
			When:   includes(widget.FeatureJQuery),
		},
		{
			Source: flavor + "/" + widgetDir + "/widget/template/" + Sentinel + ".html",
			Target: widgetDir + "/widget/template/" + Sentinel + ".html",
			Op:     Copy,
			When:   includes(widget.FeatureTemplates),
		},
		{
			Source: flavor + "/" + widgetDir + "/widget/ui/" + Sentinel + ".css",
			Target: widgetDir + "/widget/ui/" + Sentinel + ".css",
			Op:     Copy,
		},
		script,
		{
			Source:   sharedDir + "/src/package.xml",
			Target:   "src/package.xml",
			Op:       Substitute,
			Replacer: DescriptorReplacer,
		},
		{
			Source:   flavor + "/" + widgetDir + "/" + Sentinel + ".xml",
			Target:   widgetDir + "/" + Sentinel + ".xml",
			Op:       Substitute,
			Replacer: NameReplacer,
		},
	}
}

// TargetPath returns the destination path of f for spec, relative to the
// project root and slash-separated.
func (f File) TargetPath(spec widget.Spec) string {
	segments := strings.Split(f.Target, "/")
	for i, s := range segments {
		segments[i] = strings.ReplaceAll(s, Sentinel, spec.WidgetName)
	}
	return path.Join(segments...)
}

// Generate writes the boilerplate tree for a new project into dest.
func Generate(spec widget.Spec, dest string) (*Result, error) {
	switch spec.Boilerplate {
	case widget.BoilerplateAppStore, widget.BoilerplateEmpty:
	default:
		return nil, fmt.Errorf("unknown boilerplate %q", spec.Boilerplate)
	}

	result := &Result{OutputDir: dest}
	for _, f := range Plan(spec) {
		if f.When != nil && !f.When(spec) {
			output.Debug("skipping boilerplate file", "file", f.Source)
			continue
		}

		content, err := f.produce(spec)
		if err != nil {
			return nil, err
		}

		target := f.TargetPath(spec)
		if err := platform.WriteFile(filepath.Join(dest, filepath.FromSlash(target)), content); err != nil {
			return nil, err
		}
		output.Debug("created", "file", target, "op", f.Op)
		result.Files = append(result.Files, target)
	}
	return result, nil
}

func (f File) produce(spec widget.Spec) ([]byte, error) {
	raw, err := boilerplateFS.ReadFile(f.Source)
	if err != nil {
		return nil, fmt.Errorf("reading boilerplate %s: %w", f.Source, err)
	}

	switch f.Op {
	case Copy:
		return raw, nil
	case Substitute:
		if f.Replacer == nil {
			return nil, fmt.Errorf("boilerplate %s has no replacer", f.Source)
		}
		return []byte(f.Replacer(spec).Apply(string(raw))), nil
	case Render:
		tmpl, err := template.New(path.Base(f.Source)).Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", f.Source, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, spec); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.Source, err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("boilerplate %s has unknown op %s", f.Source, f.Op)
}
