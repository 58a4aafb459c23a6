//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"
	"time"

	"github.com/widgetkit/widgetgen/internal/runtime"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // WIDGETGEN_HOME, holds config.yaml
	ProjectDir string // the generator destination
	NPM        *runtime.NPM
}

// setupTestEnv creates isolated temp directories, points WIDGETGEN_HOME at
// one of them and installs a fake npm that populates node_modules on install
// and touches a marker file on build.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("fake npm script requires a POSIX shell")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: filepath.Join(t.TempDir(), "project"),
	}
	t.Setenv("WIDGETGEN_HOME", env.HomeDir)

	bin := filepath.Join(t.TempDir(), "npm")
	writeFile(t, bin, `#!/bin/sh
echo "$@" >> .npm-calls
case "$1" in
  install) mkdir -p node_modules/.bin ;;
  run) touch .built ;;
esac
`)
	if err := os.Chmod(bin, 0755); err != nil {
		t.Fatalf("chmod %s: %v", bin, err)
	}
	env.NPM = &runtime.NPM{Binary: bin, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// waitForFile polls until path exists or the timeout elapses.
func waitForFile(t *testing.T, path string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if _, err := os.Stat(path); err == nil {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", path)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
