package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/widgetkit/widgetgen/internal/branding"
	"github.com/widgetkit/widgetgen/internal/config"
	"github.com/widgetkit/widgetgen/internal/detect"
	"github.com/widgetkit/widgetgen/internal/manifest"
	"github.com/widgetkit/widgetgen/internal/output"
	"github.com/widgetkit/widgetgen/internal/prompt"
	"github.com/widgetkit/widgetgen/internal/runtime"
	"github.com/widgetkit/widgetgen/internal/scaffold"
	"github.com/widgetkit/widgetgen/internal/versioning"
	"github.com/widgetkit/widgetgen/internal/widget"
)

// Outcome is how a run ended.
type Outcome int

const (
	// proceed lets the next stage run; it never ends a run.
	proceed Outcome = iota
	// OutcomeCompleted means every stage ran.
	OutcomeCompleted
	// OutcomeDeclined means the user declined the upgrade; nothing was written.
	OutcomeDeclined
	// OutcomeTerminated means a fatal precondition was found; nothing was
	// prompted or written. Result.Reason says why.
	OutcomeTerminated
	// OutcomeFailed means a stage returned an error; Run returns it too.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case proceed:
		return "proceed"
	case OutcomeCompleted:
		return "completed"
	case OutcomeDeclined:
		return "declined"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options configures a Generator.
type Options struct {
	// Dir is the destination project directory.
	Dir string
	// Version is the generator version written into the manifest.
	Version string
	// Prompter collects the answers.
	Prompter prompt.Prompter
	// Runner installs and builds. A nil Runner skips both steps.
	Runner runtime.Runner
	// Defaults seed the new-project questions.
	Defaults config.Defaults
	// SkipInstall skips the install and end stages.
	SkipInstall bool
	// Out receives user-facing text; defaults to os.Stdout.
	Out io.Writer
	// Now returns the generation time; defaults to time.Now.
	Now func() time.Time
}

// Result describes a finished run.
type Result struct {
	Outcome Outcome
	// Reason is the fatal precondition behind OutcomeTerminated.
	Reason error

	State    widget.State
	Answers  widget.Answers
	Spec     widget.Spec
	Files    []string
	Warnings []string

	// Installed reports whether node_modules was populated at the end.
	Installed bool
	// BuildStarted reports whether the build was spawned.
	BuildStarted bool
}

// Generator runs the widget generation pipeline.
type Generator struct {
	opts Options
}

// New returns a Generator for opts.
func New(opts Options) *Generator {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Prompter == nil {
		opts.Prompter = prompt.DefaultsPrompter{}
	}
	return &Generator{opts: opts}
}

type stage struct {
	name string
	run  func(ctx context.Context, res *Result) (Outcome, error)
}

// Run executes the stages in order. It stops at the first stage that returns
// an outcome other than proceed, or at the first error, which also sets
// OutcomeFailed. Fatal preconditions and a declined upgrade
// are outcomes, not errors; the returned error is reserved for failures
// while writing files or for a cancelled context.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	stages := []stage{
		{"detect", g.detect},
		{"prompt", g.prompt},
		{"write", g.write},
		{"install", g.install},
		{"end", g.end},
	}

	res := &Result{}
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			res.Outcome = OutcomeFailed
			return res, err
		}

		output.Debug("stage", "name", s.name)
		outcome, err := s.run(ctx, res)
		if err != nil {
			res.Outcome = OutcomeFailed
			return res, fmt.Errorf("%s: %w", s.name, err)
		}
		if outcome != proceed {
			output.Debug("run finished", "stage", s.name, "outcome", outcome)
			res.Outcome = outcome
			return res, nil
		}
	}

	res.Outcome = OutcomeCompleted
	return res, nil
}

func (g *Generator) banner() {
	fmt.Fprintln(g.opts.Out, output.Banner(branding.DisplayName(), g.opts.Version))
}

func (g *Generator) detect(_ context.Context, res *Result) (Outcome, error) {
	state, err := detect.Detect(g.opts.Dir)
	res.State = state
	if err != nil {
		if isFatalPrecondition(err) {
			if errors.Is(err, detect.ErrDirNotEmpty) {
				g.banner()
			}
			output.Error(err.Error(), "dir", g.opts.Dir)
			res.Reason = err
			return OutcomeTerminated, nil
		}
		return proceed, err
	}

	if !state.IsNew && versioning.GeneratedByNewer(state.GeneratorVersion, g.opts.Version) {
		msg := fmt.Sprintf("project was generated by %s %s, newer than this %s", branding.CLIName(), state.GeneratorVersion, g.opts.Version)
		output.Warn(msg)
		res.Warnings = append(res.Warnings, msg)
	}
	return proceed, nil
}

func isFatalPrecondition(err error) bool {
	return errors.Is(err, detect.ErrDirNotEmpty) ||
		errors.Is(err, detect.ErrManifestParse) ||
		errors.Is(err, detect.ErrDescriptorParse)
}

func (g *Generator) prompt(_ context.Context, res *Result) (Outcome, error) {
	g.banner()

	answers, err := g.opts.Prompter.Ask(prompt.For(res.State, g.opts.Defaults))
	if err != nil {
		return proceed, err
	}
	res.Answers = answers

	if !res.State.IsNew && !answers.Bool(widget.KeyUpgrade) {
		output.Info("upgrade declined, nothing changed")
		return OutcomeDeclined, nil
	}
	return proceed, nil
}

func (g *Generator) write(_ context.Context, res *Result) (Outcome, error) {
	spec := widget.NewSpec(res.Answers, res.State, g.opts.Version, g.opts.Now())
	res.Spec = spec
	output.Debug("widget spec",
		"name", spec.WidgetName,
		"version", spec.Version,
		"builder", spec.Builder,
		"boilerplate", spec.Boilerplate,
		"jquery", spec.Options.JQuery,
		"templates", spec.Options.Templates)

	if res.State.IsNew {
		sr, err := scaffold.Generate(spec, g.opts.Dir)
		if err != nil {
			return proceed, err
		}
		res.Files = append(res.Files, sr.Files...)
	} else {
		output.Debug("existing project, sources left untouched")
	}

	mr, err := manifest.Write(spec, g.opts.Dir)
	if err != nil {
		return proceed, err
	}
	res.Files = append(res.Files, mr.Files...)
	for _, w := range mr.Warnings {
		output.Warn(w)
		res.Warnings = append(res.Warnings, w)
	}

	fmt.Fprintln(g.opts.Out)
	for _, f := range res.Files {
		fmt.Fprintln(g.opts.Out, output.FormatCreated(f))
	}
	fmt.Fprintln(g.opts.Out)
	return proceed, nil
}

func (g *Generator) install(ctx context.Context, res *Result) (Outcome, error) {
	if g.opts.SkipInstall || g.opts.Runner == nil {
		output.Debug("install skipped")
		fmt.Fprintln(g.opts.Out, "Skipping dependency installation. Run `npm install` and then `npm run build` to package the widget.")
		return OutcomeCompleted, nil
	}

	fmt.Fprintln(g.opts.Out, "Installing dependencies. This may take a while...")
	err := output.RunWithSpinner(ctx, "Installing dependencies", func() error {
		return g.opts.Runner.Install(ctx, g.opts.Dir)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return proceed, ctxErr
		}
		output.Warn("dependency installation failed", "err", err)
		res.Warnings = append(res.Warnings, err.Error())
	}
	return proceed, nil
}

func (g *Generator) end(_ context.Context, res *Result) (Outcome, error) {
	if !runtime.DependenciesInstalled(g.opts.Dir) {
		fmt.Fprintln(g.opts.Out, "Dependencies are not installed. Run `npm install` and then `npm run build` to package the widget.")
		return OutcomeCompleted, nil
	}
	res.Installed = true

	fmt.Fprintln(g.opts.Out, "Dependencies installed. Running `npm run build`; the packaged widget is written to dist/.")
	if err := g.opts.Runner.Build(g.opts.Dir); err != nil {
		output.Warn("could not start build", "err", err)
		res.Warnings = append(res.Warnings, err.Error())
		return OutcomeCompleted, nil
	}
	res.BuildStarted = true
	return OutcomeCompleted, nil
}
