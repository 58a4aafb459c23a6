package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/widgetkit/widgetgen/internal/output"
)

// DefaultNPM is the package manager binary used when none is configured.
const DefaultNPM = "npm"

// NPM drives a Node.js package manager.
type NPM struct {
	// Binary is the package manager executable, resolved on PATH when not
	// absolute. Defaults to "npm".
	Binary string
	// Stdout and Stderr receive install output and can be set for testing;
	// defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// BuildStdout and BuildStderr are inherited by the spawned build, which
	// outlives the generator and so needs real file descriptors rather than
	// pipes. Defaults to os.Stdout/os.Stderr.
	BuildStdout *os.File
	BuildStderr *os.File
}

// Install runs `<npm> install` in dir. A non-zero exit is returned as an
// error carrying the last line written to stderr.
func (n *NPM) Install(ctx context.Context, dir string) error {
	bin, err := n.lookPath()
	if err != nil {
		return err
	}

	var stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "install")
	cmd.Dir = dir
	cmd.Stdout = n.stdout()
	cmd.Stderr = io.MultiWriter(n.stderr(), &stderrBuf)

	output.Debug("installing dependencies", "bin", bin, "dir", dir)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s install exited with code %d%s", n.binary(), exitErr.ExitCode(), lastLine(stderrBuf.String()))
		}
		return fmt.Errorf("running %s install: %w", n.binary(), err)
	}
	return nil
}

// Build spawns `<npm> run build` in dir and returns once it has started.
// The process is reaped in the background; its exit status is not reported.
// It writes straight to BuildStdout/BuildStderr so it keeps running after
// the generator exits.
func (n *NPM) Build(dir string) error {
	bin, err := n.lookPath()
	if err != nil {
		return err
	}

	cmd := exec.Command(bin, "run", "build")
	cmd.Dir = dir
	cmd.Stdout = fileOr(n.BuildStdout, os.Stdout)
	cmd.Stderr = fileOr(n.BuildStderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s run build: %w", n.binary(), err)
	}
	output.Debug("build started", "pid", cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

func (n *NPM) binary() string {
	if n.Binary == "" {
		return DefaultNPM
	}
	return n.Binary
}

func (n *NPM) lookPath() (string, error) {
	bin, err := exec.LookPath(n.binary())
	if err != nil {
		return "", fmt.Errorf("package manager %q not found; install Node.js or set the npm config key: %w", n.binary(), err)
	}
	return bin, nil
}

func (n *NPM) stdout() io.Writer {
	if n.Stdout == nil {
		return os.Stdout
	}
	return n.Stdout
}

func (n *NPM) stderr() io.Writer {
	if n.Stderr == nil {
		return os.Stderr
	}
	return n.Stderr
}

func fileOr(f, fallback *os.File) *os.File {
	if f == nil {
		return fallback
	}
	return f
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return ""
	}
	return ": " + last
}
