package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/widgetkit/widgetgen/internal/config"
	"github.com/widgetkit/widgetgen/internal/manifest"
	"github.com/widgetkit/widgetgen/internal/runtime"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools a generated widget needs",
	Long:  `Report whether node, the configured package manager and git are on PATH, and optionally validate a generated package.json.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runRuntimeCheck(out, config.LoadDefaults().NPM)

		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}
		return nil
	},
}

func runRuntimeCheck(w io.Writer, npm string) {
	if npm == "" {
		npm = runtime.DefaultNPM
	}
	fmt.Fprintln(w, "Runtime check:")
	checkBinary(w, "node")
	checkBinary(w, npm)
	checkBinary(w, "git")
}

func checkBinary(w io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		pkg, err := manifest.ReadPackage(path)
		if err != nil {
			fmt.Fprintf(w, "  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Fprintf(w, "  [ OK ] Valid manifest: %s (v%s, %s)\n", pkg.Name, pkg.Version, pkg.DetectBuilder())
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
