package scaffold

import "github.com/plugsmith/plugsmith/internal/config"

// Context is the flat variable mapping fed to template rendering. It is
// built once from a resolved configuration and never mutated afterwards.
type Context map[string]any

// Variable and toggle keys available inside template bodies.
const (
	varDisplayName = "plugin_display_name"
	varPluginName  = "plugin_name"
	varPluginVar   = "plugin_var"
	varDescription = "short_description"
	varGithubUser  = "github_user"

	optAliases       = "include_aliases"
	optBashWrapper   = "include_bash_wrapper"
	optBinDir        = "include_bin_dir"
	optFunctionsDir  = "include_functions_dir"
	optGitInit       = "include_git_init"
	optGithubDir     = "include_github_dir"
	optReadme        = "include_readme"
	optShellCheck    = "include_shell_check"
	optShellSpec     = "include_shell_spec"
	optSupportPlugin = "use_support_plugin"
)

// BuildContext projects a resolved configuration into the template
// context. Pure 1:1 copy; it cannot fail.
func BuildContext(cfg config.Config) Context {
	return Context{
		varDisplayName: cfg.DisplayName,
		varPluginName:  cfg.NormalizedName,
		varPluginVar:   cfg.ShoutName,
		varDescription: cfg.Description,
		varGithubUser:  cfg.GithubUser,

		optAliases:       cfg.Features.Aliases,
		optBashWrapper:   cfg.Features.BashWrapper,
		optBinDir:        cfg.Features.BinDir,
		optFunctionsDir:  cfg.Features.FunctionsDir,
		optGitInit:       cfg.Features.GitInit,
		optGithubDir:     cfg.Features.GithubDir,
		optReadme:        cfg.Features.Readme,
		optShellCheck:    cfg.Features.ShellCheck,
		optShellSpec:     cfg.Features.ShellSpec,
		optSupportPlugin: cfg.Features.SupportPlugin,
	}
}
