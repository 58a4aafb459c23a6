package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/widgetkit/widgetgen/internal/widget"
)

// FileName is the manifest file at the project root.
const FileName = "package.json"

// Package is the subset of package.json the generator reads back on upgrade.
type Package struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Description      string            `json:"description,omitempty"`
	Author           Person            `json:"author,omitempty"`
	Copyright        string            `json:"copyright,omitempty"`
	License          string            `json:"license,omitempty"`
	Builder          string            `json:"builder,omitempty"`
	GeneratorVersion string            `json:"generatorVersion,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
}

// Person is an npm author field. npm accepts either a plain string or an
// object with name and email; both decode to the display string.
type Person string

// UnmarshalJSON accepts "Name <email>" strings and {"name","email"} objects.
func (p *Person) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Person(s)
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("author must be a string or an object: %w", err)
	}
	if obj.Email != "" {
		*p = Person(fmt.Sprintf("%s <%s>", obj.Name, obj.Email))
		return nil
	}
	*p = Person(obj.Name)
	return nil
}

// ReadPackage parses the manifest at path.
func ReadPackage(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &pkg, nil
}

// DetectBuilder returns the builder recorded in the manifest. Manifests
// written before the builder field existed are recognised by a grunt
// devDependency; anything else is gulp.
func (p *Package) DetectBuilder() widget.Builder {
	if b, err := widget.ParseBuilder(p.Builder); err == nil {
		return b
	}
	if _, ok := p.DevDependencies["grunt"]; ok {
		return widget.BuilderGrunt
	}
	return widget.BuilderGulp
}
