package runtime

import (
	"context"
	"path/filepath"

	"github.com/widgetkit/widgetgen/internal/platform"
)

// Runner performs the post-generation steps in a project directory.
type Runner interface {
	// Install installs the project's dependencies and blocks until done.
	Install(ctx context.Context, dir string) error
	// Build starts the project build and returns without waiting for it.
	Build(dir string) error
}

// DependencyDir is the directory populated by a successful install.
const DependencyDir = "node_modules"

// DependenciesInstalled reports whether dir has a non-empty dependency
// directory.
func DependenciesInstalled(dir string) bool {
	return !platform.IsEmpty(filepath.Join(dir, DependencyDir))
}
