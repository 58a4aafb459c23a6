package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/widgetkit/widgetgen/internal/widget"
)

func testSpec(boilerplate widget.Boilerplate, opts widget.Options) widget.Spec {
	return widget.Spec{
		WidgetName:  "Foo",
		PackageName: "Foo",
		Description: "A foo widget",
		Version:     "1.2.3",
		Author:      "Jane Doe",
		Date:        "2024-05-01",
		Copyright:   "2024 Jane Doe",
		License:     "MIT",
		Builder:     widget.BuilderGulp,
		Boilerplate: boilerplate,
		Options:     opts,
	}
}

func TestGenerateAppStore(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(testSpec(widget.BoilerplateAppStore, widget.Options{}), dir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	expectedFiles := []string{
		"icon.png",
		"assets/app_store_banner.png",
		"assets/app_store_icon.png",
		"README.md",
		"test/Test.mpr",
		"xsd/widget.xsd",
		"src/Foo/lib/jquery-1.11.2.js",
		"src/Foo/widget/template/Foo.html",
		"src/Foo/widget/ui/Foo.css",
		"src/Foo/widget/Foo.js",
		"src/package.xml",
		"src/Foo/Foo.xml",
	}
	assertFiles(t, result, expectedFiles)
	for _, f := range expectedFiles {
		assertFileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}

	script := readGenerated(t, dir, "src/Foo/widget/Foo.js")
	assertContains(t, script, `declare("Foo.widget.Foo"`)
	assertContains(t, script, `require(["Foo/widget/Foo"]);`)
	assertContains(t, script, "@version   : 1.2.3")
	assertContains(t, script, "@author    : Jane Doe")
	assertContains(t, script, "@date      : 2024-05-01")
	assertContains(t, script, "@copyright : 2024 Jane Doe")
	assertContains(t, script, "@license   : MIT")
	assertNotContains(t, script, Sentinel)
	assertNotContains(t, script, "{{")

	descriptor := readGenerated(t, dir, "src/package.xml")
	assertContains(t, descriptor, `<clientModule name="Foo" version="1.2.3"`)
	assertContains(t, descriptor, `<widgetFile path="Foo/Foo.xml"/>`)

	widgetXML := readGenerated(t, dir, "src/Foo/Foo.xml")
	assertContains(t, widgetXML, `id="Foo.widget.Foo"`)
	assertContains(t, widgetXML, "<name>Foo</name>")
}

func TestGenerateBinaryAssetsVerbatim(t *testing.T) {
	dir := t.TempDir()
	if _, err := Generate(testSpec(widget.BoilerplateAppStore, widget.Options{}), dir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	want, err := boilerplateFS.ReadFile("boilerplate/shared/icon.png")
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "icon.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Error("icon.png differs from the embedded asset")
	}
}

func TestGenerateEmptyFeatureSelection(t *testing.T) {
	tests := []struct {
		name          string
		opts          widget.Options
		wantJQuery    bool
		wantTemplates bool
	}{
		{"no features", widget.Options{}, false, false},
		{"jquery only", widget.Options{JQuery: true}, true, false},
		{"templates only", widget.Options{Templates: true}, false, true},
		{"both", widget.Options{JQuery: true, Templates: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := Generate(testSpec(widget.BoilerplateEmpty, tt.opts), dir); err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			jquery := filepath.Join(dir, "src", "Foo", "lib", "jquery-1.11.2.js")
			html := filepath.Join(dir, "src", "Foo", "widget", "template", "Foo.html")
			assertPresence(t, jquery, tt.wantJQuery)
			assertPresence(t, html, tt.wantTemplates)

			// The stylesheet is always copied.
			assertFileExists(t, filepath.Join(dir, "src", "Foo", "widget", "ui", "Foo.css"))

			script := readGenerated(t, dir, "src/Foo/widget/Foo.js")
			assertContains(t, script, `declare("Foo.widget.Foo"`)
			assertContains(t, script, "@version   : 1.2.3")
			if tt.wantJQuery {
				assertContains(t, script, `"Foo/lib/jquery-1.11.2"`)
				assertContains(t, script, "var $ = _jQuery.noConflict(true);")
			} else {
				assertNotContains(t, script, "jquery")
			}
			if tt.wantTemplates {
				assertContains(t, script, `"dojo/text!Foo/widget/template/Foo.html"`)
				assertContains(t, script, "templateString: widgetTemplate,")
			} else {
				assertNotContains(t, script, "_TemplatedMixin")
			}
		})
	}
}

func TestGenerateEmptyScriptDependencyList(t *testing.T) {
	dir := t.TempDir()
	if _, err := Generate(testSpec(widget.BoilerplateEmpty, widget.Options{}), dir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	script := readGenerated(t, dir, "src/Foo/widget/Foo.js")
	assertContains(t, script, "\"dojo/_base/lang\"\n], function (declare, _WidgetBase, dom, dojoStyle, dojoLang) {")
}

func TestGenerateUnknownBoilerplate(t *testing.T) {
	if _, err := Generate(testSpec("fancy", widget.Options{}), t.TempDir()); err == nil {
		t.Fatal("expected error for unknown boilerplate")
	}
}

func TestPlanSourcesExist(t *testing.T) {
	for _, b := range []widget.Boilerplate{widget.BoilerplateAppStore, widget.BoilerplateEmpty} {
		for _, f := range Plan(testSpec(b, widget.Options{})) {
			if _, err := boilerplateFS.ReadFile(f.Source); err != nil {
				t.Errorf("%s: plan source %s missing from embedded tree", b, f.Source)
			}
		}
	}
}

func TestTargetPath(t *testing.T) {
	spec := testSpec(widget.BoilerplateAppStore, widget.Options{})
	f := File{Target: "src/WidgetName/widget/ui/WidgetName.css"}

	if got := f.TargetPath(spec); got != "src/Foo/widget/ui/Foo.css" {
		t.Errorf("TargetPath() = %q, want %q", got, "src/Foo/widget/ui/Foo.css")
	}
}

// --- helpers ---

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if len(result.Files) != len(expected) {
		t.Errorf("got %d files %v, want %d %v", len(result.Files), result.Files, len(expected), expected)
		return
	}
	for i, want := range expected {
		if result.Files[i] != want {
			t.Errorf("file[%d] = %q, want %q", i, result.Files[i], want)
		}
	}
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q", substr)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content unexpectedly contains %q", substr)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertPresence(t *testing.T, path string, want bool) {
	t.Helper()
	_, err := os.Stat(path)
	switch {
	case want && err != nil:
		t.Errorf("expected %s to exist: %v", path, err)
	case !want && err == nil:
		t.Errorf("expected %s to be absent", path)
	}
}
