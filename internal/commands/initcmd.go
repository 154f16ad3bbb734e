package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/config"
	"github.com/plugsmith/plugsmith/internal/generator"
	"github.com/plugsmith/plugsmith/internal/name"
	"github.com/plugsmith/plugsmith/internal/output"
	"github.com/plugsmith/plugsmith/internal/scaffold"
	"github.com/plugsmith/plugsmith/internal/vcs"
)

// toggleFlags are the per-feature flags that conflict with --preset.
var toggleFlags = []string{
	"add-bin-dir",
	"add-bash-wrapper",
	"no-aliases",
	"no-functions-dir",
	"no-git-init",
	"no-github-dir",
	"no-readme",
	"no-shell-check",
	"no-shell-spec",
}

// InitCmd creates and returns the 'init' command for scaffolding a new
// Zsh plugin.
func InitCmd() *cobra.Command {
	var (
		force         bool
		presetName    string
		addBinDir     bool
		addWrapper    bool
		noAliases     bool
		noFunctions   bool
		noGitInit     bool
		noGithubDir   bool
		noReadme      bool
		noShellCheck  bool
		noShellSpec   bool
		supportPlugin bool
		description   string
		githubUser    string
	)

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Initialize a new Zsh plugin structure",
		Long: `Creates a new plugin directory named zsh-NAME-plugin containing:
• NAME.plugin.zsh — the main plugin source, with function and alias
  tracking so the plugin can be cleanly unloaded
• functions/ — autoloaded functions with an example (optional)
• bin/ — a directory for plugin-specific scripts (optional)
• NAME.bash — a Bash entry point for the plugin (optional)
• .github/workflows/shell.yml — CI for shellcheck and shellspec (optional)
• Makefile, README.md, .gitignore, and a fresh git repository

Plugin names must start with a letter and may only contain letters,
digits, hyphens, and underscores.

A preset (--preset minimal|simple|complete) fixes every feature toggle
at once and cannot be combined with the individual toggle flags.

Examples:
  plugsmith init my-plugin --preset complete
  plugsmith init my-plugin --no-readme --add-bin-dir
  plugsmith init my-plugin -t minimal --force`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			// Preset and individual toggles are mutually exclusive.
			if cmd.Flags().Changed("preset") {
				var conflicting []string
				for _, f := range toggleFlags {
					if cmd.Flags().Changed(f) {
						conflicting = append(conflicting, "--"+f)
					}
				}
				if len(conflicting) > 0 {
					output.Error(fmt.Sprintf("Conflicting flags: --preset cannot be combined with %s", strings.Join(conflicting, ", ")))
					os.Exit(1)
				}
			}

			n, err := name.Parse(args[0])
			if err != nil {
				reportError(err)
				os.Exit(1)
			}

			defaults, err := config.LoadDefaults()
			if err != nil {
				output.Error(fmt.Sprintf("Failed to load defaults: %v", err))
				os.Exit(1)
			}

			var preset *config.Preset
			switch {
			case cmd.Flags().Changed("preset"):
				p, err := config.ParsePreset(presetName)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				preset = &p
			case defaults.Preset != "" && !anyToggleChanged(cmd):
				p, err := config.ParsePreset(defaults.Preset)
				if err != nil {
					output.Error(fmt.Sprintf("Invalid preset in defaults: %v", err))
					os.Exit(1)
				}
				preset = &p
			}

			if description == "" {
				description = defaults.Description
			}
			if githubUser == "" {
				githubUser = defaults.GithubUser
			}

			explicit := config.Features{
				Aliases:       !noAliases,
				BashWrapper:   addWrapper,
				BinDir:        addBinDir,
				FunctionsDir:  !noFunctions,
				GitInit:       !noGitInit,
				GithubDir:     !noGithubDir,
				Readme:        !noReadme,
				ShellCheck:    !noShellCheck,
				ShellSpec:     !noShellSpec,
				SupportPlugin: supportPlugin,
			}

			cfg := config.Resolve(preset, explicit, n, description, githubUser, force)

			output.Verbose(fmt.Sprintf("Scaffolding plugin %s into %s", cfg.DisplayName, scaffold.RootDir(cfg)))

			gen := scaffold.New(vcs.NewGit(true))
			if err := gen.Generate(context.Background(), cfg, os.Stdout); err != nil {
				reportError(err)
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Created %s", scaffold.RootDir(cfg)))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", scaffold.RootDir(cfg)))
			output.Step(fmt.Sprintf("source %s.plugin.zsh", cfg.NormalizedName))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files and directories")
	cmd.Flags().StringVarP(&presetName, "preset", "t", "", "Use a preset (minimal, simple, or complete) instead of individual toggles")
	cmd.Flags().BoolVarP(&addBinDir, "add-bin-dir", "a", false, "Add a 'bin' directory for plugin-specific scripts")
	cmd.Flags().BoolVarP(&addWrapper, "add-bash-wrapper", "w", false, "Add a Bash wrapper file to load the plugin from Bash")
	cmd.Flags().BoolVarP(&noAliases, "no-aliases", "A", false, "Do not include alias tracking support")
	cmd.Flags().BoolVarP(&noFunctions, "no-functions-dir", "F", false, "Do not include a 'functions' directory and example")
	cmd.Flags().BoolVarP(&noGitInit, "no-git-init", "G", false, "Do not initialize a git repository")
	cmd.Flags().BoolVarP(&noGithubDir, "no-github-dir", "H", false, "Do not include a '.github' directory")
	cmd.Flags().BoolVarP(&noReadme, "no-readme", "R", false, "Do not include a README file")
	cmd.Flags().BoolVarP(&noShellCheck, "no-shell-check", "C", false, "Do not include shellcheck linting support")
	cmd.Flags().BoolVarP(&noShellSpec, "no-shell-spec", "S", false, "Do not include shellspec testing support")
	cmd.Flags().BoolVarP(&supportPlugin, "use-support-plugin", "z", false, "Use the zplugins support plugin for helper functions")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description of the plugin")
	cmd.Flags().StringVarP(&githubUser, "github-user", "u", "", "GitHub user name for README attribution (default $USER)")

	return cmd
}

func anyToggleChanged(cmd *cobra.Command) bool {
	for _, f := range toggleFlags {
		if cmd.Flags().Changed(f) {
			return true
		}
	}
	return false
}

// reportError prints a classified error with a suggested remedy, the
// way a user can actually act on it.
func reportError(err error) {
	var (
		nameErr      *name.Error
		existsErr    *generator.TargetExistsError
		vcsErr       *generator.VCSInitError
		renderErr    *generator.RenderError
		aggregateErr *generator.AggregateError
	)

	switch {
	case errors.As(err, &nameErr):
		output.Error(fmt.Sprintf("Invalid plugin name: %v", nameErr))
		output.Step("Plugin names must start with a letter and can only contain letters, digits, hyphens and underscores.")
	case errors.As(err, &aggregateErr):
		output.Error(fmt.Sprintf("Initialization failed with %d errors:", len(aggregateErr.Errs)))
		for _, e := range aggregateErr.Errs {
			output.Step(e.Error())
		}
		remedyForAggregate(aggregateErr)
	case errors.As(err, &existsErr):
		output.Error(fmt.Sprintf("Target already exists: %s", existsErr.Path))
		output.Step("Use --force to overwrite existing files and directories.")
	case errors.As(err, &vcsErr):
		output.Error(fmt.Sprintf("Git initialization failed: %v", vcsErr.Err))
		output.Step("Ensure git is installed and on your PATH, or use --no-git-init to skip it.")
	case errors.As(err, &renderErr):
		output.Error(fmt.Sprintf("Template rendering failed: %v", renderErr))
		output.Step("This is a bug in plugsmith; please report it.")
	default:
		output.Error(fmt.Sprintf("Initialization failed: %v", err))
	}
}

func remedyForAggregate(agg *generator.AggregateError) {
	for _, e := range agg.Errs {
		var existsErr *generator.TargetExistsError
		if errors.As(e, &existsErr) {
			output.Step("Use --force to overwrite existing files and directories.")
			return
		}
	}
}
