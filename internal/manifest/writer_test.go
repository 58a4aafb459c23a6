package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/widgetkit/widgetgen/internal/widget"
)

func testSpec(builder widget.Builder) widget.Spec {
	return widget.Spec{
		WidgetName:       "Foo",
		PackageName:      "Foo",
		Description:      `Says "hello"`,
		Version:          "1.0.0",
		Author:           "Jane",
		Date:             "2024-03-09",
		Copyright:        "2024 Jane",
		License:          "Apache 2",
		GeneratorVersion: "1.4.0",
		Builder:          builder,
		Boilerplate:      widget.BoilerplateAppStore,
	}
}

func TestWriteGulp(t *testing.T) {
	dest := t.TempDir()

	result, err := Write(testSpec(widget.BuilderGulp), dest)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	assertExists(t, filepath.Join(dest, "Gulpfile.js"))
	assertMissing(t, filepath.Join(dest, "Gruntfile.js"))
	for _, f := range []string{".gitignore", ".jshintrc", ".editorconfig", "package.json"} {
		assertExists(t, filepath.Join(dest, f))
	}

	pkg, err := ReadPackage(filepath.Join(dest, FileName))
	if err != nil {
		t.Fatalf("generated manifest does not parse: %v", err)
	}
	if pkg.Name != "Foo" || pkg.Version != "1.0.0" || pkg.GeneratorVersion != "1.4.0" {
		t.Errorf("manifest fields = %+v", pkg)
	}
	if pkg.Description != `Says "hello"` {
		t.Errorf("Description = %q, quotes must survive", pkg.Description)
	}
	if pkg.DetectBuilder() != widget.BuilderGulp {
		t.Errorf("builder round-trip = %q", pkg.DetectBuilder())
	}
	if _, ok := pkg.DevDependencies["gulp"]; !ok {
		t.Error("gulp devDependency missing")
	}

	gulpfile := readFile(t, filepath.Join(dest, "Gulpfile.js"))
	if !strings.Contains(gulpfile, `var name = "Foo";`) {
		t.Errorf("Gulpfile does not reference widget name:\n%s", gulpfile)
	}
}

func TestWriteGruntReplacesGulp(t *testing.T) {
	dest := t.TempDir()
	os.WriteFile(filepath.Join(dest, "Gulpfile.js"), []byte("stale"), 0644)
	os.WriteFile(filepath.Join(dest, FileName), []byte(`{"name":"Old"}`), 0644)

	if _, err := Write(testSpec(widget.BuilderGrunt), dest); err != nil {
		t.Fatalf("Write: %v", err)
	}

	assertExists(t, filepath.Join(dest, "Gruntfile.js"))
	assertMissing(t, filepath.Join(dest, "Gulpfile.js"))

	var raw map[string]any
	if err := json.Unmarshal([]byte(readFile(t, filepath.Join(dest, FileName))), &raw); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if raw["builder"] != "grunt" {
		t.Errorf("builder = %v, want grunt", raw["builder"])
	}
	deps, _ := raw["devDependencies"].(map[string]any)
	if _, ok := deps["grunt"]; !ok {
		t.Error("grunt devDependency missing")
	}
	if _, ok := deps["gulp"]; ok {
		t.Error("gulp devDependency should not be present for grunt projects")
	}
}

func TestWriteRecordsSchemaWarnings(t *testing.T) {
	spec := testSpec(widget.BuilderGulp)
	spec.Version = "1.0"

	result, err := Write(spec, t.TempDir())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a schema warning for a two-part version")
	}
	if !strings.Contains(result.Warnings[0], "/version") {
		t.Errorf("warning should point at /version: %v", result.Warnings)
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
