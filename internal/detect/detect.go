package detect

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/widgetkit/widgetgen/internal/manifest"
	"github.com/widgetkit/widgetgen/internal/output"
	"github.com/widgetkit/widgetgen/internal/platform"
	"github.com/widgetkit/widgetgen/internal/widget"
)

// Fatal preconditions. Each one ends the run before any prompt or write.
var (
	ErrDirNotEmpty     = errors.New("directory is not empty and does not contain a widget project")
	ErrManifestParse   = errors.New("cannot read existing package.json")
	ErrDescriptorParse = errors.New("cannot read existing src/package.xml")
)

// SourceDir is the folder that marks an existing widget project.
const SourceDir = "src"

// Detect inspects dir and returns the detected project state.
func Detect(dir string) (widget.State, error) {
	state := widget.NewState()

	folders, err := platform.ListDirs(dir)
	if err != nil {
		return state, err
	}

	if !slices.Contains(folders, SourceDir) {
		if !platform.IsEmpty(dir) {
			return state, ErrDirNotEmpty
		}
		output.Debug("destination is empty", "dir", dir)
		return state, nil
	}

	state.IsNew = false

	srcDirs, err := platform.ListDirs(filepath.Join(dir, SourceDir))
	if err != nil {
		return state, err
	}
	if len(srcDirs) == 1 {
		state.Name = srcDirs[0]
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if !platform.IsEmpty(manifestPath) {
		pkg, err := manifest.ReadPackage(manifestPath)
		if err != nil {
			return state, fmt.Errorf("%w: %w", ErrManifestParse, err)
		}
		state.Description = pkg.Description
		state.Author = string(pkg.Author)
		state.Copyright = pkg.Copyright
		state.License = pkg.License
		state.Builder = pkg.DetectBuilder()
		state.GeneratorVersion = pkg.GeneratorVersion
	}

	descriptorPath := filepath.Join(dir, SourceDir, DescriptorFile)
	if !platform.IsEmpty(descriptorPath) {
		version, err := ReadDescriptorVersion(descriptorPath)
		if err != nil {
			return state, fmt.Errorf("%w: %w", ErrDescriptorParse, err)
		}
		if version != "" {
			state.Version = NormalizeVersion(version)
		}
	}

	output.Debug("detected existing project",
		"name", state.Name,
		"version", state.Version,
		"builder", state.Builder)
	return state, nil
}
