package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/widgetkit/widgetgen/internal/branding"
	"github.com/widgetkit/widgetgen/internal/config"
	"github.com/widgetkit/widgetgen/internal/generator"
	"github.com/widgetkit/widgetgen/internal/output"
	"github.com/widgetkit/widgetgen/internal/prompt"
	"github.com/widgetkit/widgetgen/internal/runtime"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagYes         bool
	flagSkipInstall bool
	flagVerbose     bool
	flagNPM         string
)

func init() {
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Accept every default without prompting")
	rootCmd.Flags().BoolVar(&flagSkipInstall, "skip-install", false, "Do not install dependencies or start the build")
	rootCmd.Flags().StringVar(&flagNPM, "npm", "", "Package manager binary (defaults to the npm config key)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [directory]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new widget project or upgrades the generated files
(package.json, build config, lint and editor settings) of an existing one.
Sources under src/ are never touched on upgrade.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLogging(flagVerbose)
		config.Load()
	},
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving destination: %w", err)
	}

	defaults := config.LoadDefaults()
	out := cmd.OutOrStdout()

	var prompter prompt.Prompter = prompt.NewLinePrompter(cmd.InOrStdin(), out)
	if flagYes {
		prompter = prompt.DefaultsPrompter{}
	}

	npm := &runtime.NPM{Binary: defaults.NPM, Stdout: out, Stderr: cmd.ErrOrStderr()}
	if flagNPM != "" {
		npm.Binary = flagNPM
	}
	if output.IsTTY() && !flagVerbose {
		// The spinner owns the terminal while installing.
		npm.Stdout = io.Discard
	}

	g := generator.New(generator.Options{
		Dir:         dir,
		Version:     buildVersion,
		Prompter:    prompter,
		Runner:      npm,
		Defaults:    defaults,
		SkipInstall: flagSkipInstall || defaults.SkipInstall,
		Out:         out,
	})

	res, err := g.Run(cmd.Context())
	if err != nil {
		return err
	}
	output.Debug("done", "outcome", res.Outcome, "files", len(res.Files))
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		return err
	}
	return nil
}
