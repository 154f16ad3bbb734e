// Package scaffold turns a resolved configuration into a new Zsh plugin
// directory: it builds the ordered, feature-gated plan of filesystem
// operations and executes it.
package scaffold

import (
	"context"
	"embed"
	"io"
	"path/filepath"

	"github.com/plugsmith/plugsmith/internal/config"
	"github.com/plugsmith/plugsmith/internal/generator"
	"github.com/plugsmith/plugsmith/internal/output"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Template identifiers, one per generated artifact.
const (
	tmplGitignore       = "templates/gitignore.tmpl"
	tmplWorkflow        = "templates/workflow.tmpl"
	tmplBinKeep         = "templates/bin_keep.tmpl"
	tmplFunctionExample = "templates/function_example.tmpl"
	tmplMakefile        = "templates/makefile.tmpl"
	tmplBashWrapper     = "templates/bash_wrapper.tmpl"
	tmplReadme          = "templates/readme.tmpl"
	tmplPlugin          = "templates/plugin.tmpl"
	tmplPluginSupport   = "templates/plugin_support.tmpl"
)

// Generator builds and executes scaffolding plans.
type Generator struct {
	renderer *generator.Renderer
	vcs      generator.Initializer
}

// New creates a Generator that initializes repositories through vcs.
func New(vcs generator.Initializer) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		vcs:      vcs,
	}
}

// RootDir returns the target root directory derived from the plugin
// name, e.g. "zsh-my_plugin-plugin" for "my-plugin".
func RootDir(cfg config.Config) string {
	return "zsh-" + cfg.NormalizedName + "-plugin"
}

// step is one entry in the fixed generation plan: a gate over the
// feature set and a builder producing the operations for that artifact.
type step struct {
	name  string
	gate  func(config.Features) bool
	build func(p *planner) ([]generator.Operation, error)
}

// planSteps is the full dependency-ordered plan. The order is part of
// the contract: the root directory first, version control before any
// file lands in it, nested directories before their files, and the main
// plugin source last.
var planSteps = []step{
	{
		name: "root directory",
		gate: always,
		build: func(p *planner) ([]generator.Operation, error) {
			return []generator.Operation{&generator.EnsureDirOp{Path: p.root}}, nil
		},
	},
	{
		name: "git repository",
		gate: func(f config.Features) bool { return f.GitInit },
		build: func(p *planner) ([]generator.Operation, error) {
			op, err := p.renderFile(tmplGitignore, filepath.Join(p.root, ".gitignore"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{
				&generator.InitRepoOp{Path: p.root, Init: p.vcs},
				op,
			}, nil
		},
	},
	{
		name: "github workflow",
		gate: func(f config.Features) bool { return f.GithubDir },
		build: func(p *planner) ([]generator.Operation, error) {
			github := filepath.Join(p.root, ".github")
			workflows := filepath.Join(github, "workflows")
			op, err := p.renderFile(tmplWorkflow, filepath.Join(workflows, "shell.yml"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{
				&generator.EnsureDirOp{Path: github},
				&generator.EnsureDirOp{Path: workflows},
				op,
			}, nil
		},
	},
	{
		name: "bin directory",
		gate: func(f config.Features) bool { return f.BinDir },
		build: func(p *planner) ([]generator.Operation, error) {
			bin := filepath.Join(p.root, "bin")
			op, err := p.renderFile(tmplBinKeep, filepath.Join(bin, ".keep"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{&generator.EnsureDirOp{Path: bin}, op}, nil
		},
	},
	{
		name: "functions directory",
		gate: func(f config.Features) bool { return f.FunctionsDir },
		build: func(p *planner) ([]generator.Operation, error) {
			functions := filepath.Join(p.root, "functions")
			op, err := p.renderFile(tmplFunctionExample, filepath.Join(functions, p.cfg.NormalizedName+"_example"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{&generator.EnsureDirOp{Path: functions}, op}, nil
		},
	},
	{
		// A Makefile is only useful if at least one check runs.
		name: "makefile",
		gate: func(f config.Features) bool { return f.ShellCheck || f.ShellSpec },
		build: func(p *planner) ([]generator.Operation, error) {
			op, err := p.renderFile(tmplMakefile, filepath.Join(p.root, "Makefile"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{op}, nil
		},
	},
	{
		name: "bash wrapper",
		gate: func(f config.Features) bool { return f.BashWrapper },
		build: func(p *planner) ([]generator.Operation, error) {
			op, err := p.renderFile(tmplBashWrapper, filepath.Join(p.root, p.cfg.NormalizedName+".bash"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{op}, nil
		},
	},
	{
		name: "readme",
		gate: func(f config.Features) bool { return f.Readme },
		build: func(p *planner) ([]generator.Operation, error) {
			op, err := p.renderFile(tmplReadme, filepath.Join(p.root, "README.md"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{op}, nil
		},
	},
	{
		name: "plugin source",
		gate: always,
		build: func(p *planner) ([]generator.Operation, error) {
			tmpl := tmplPlugin
			if p.cfg.Features.SupportPlugin {
				tmpl = tmplPluginSupport
			}
			op, err := p.renderFile(tmpl, filepath.Join(p.root, p.cfg.NormalizedName+".plugin.zsh"))
			if err != nil {
				return nil, err
			}
			return []generator.Operation{op}, nil
		},
	},
}

func always(config.Features) bool { return true }

// planner carries everything a step builder needs.
type planner struct {
	cfg      config.Config
	ctx      Context
	root     string
	renderer *generator.Renderer
	vcs      generator.Initializer
}

// renderFile renders a template body against the context and stages the
// result as a file write. Rendering happens at plan-build time, so a
// template failure aborts before any filesystem effect.
func (p *planner) renderFile(tmpl, path string) (generator.Operation, error) {
	content, err := p.renderer.RenderFS(templatesFS, tmpl, p.ctx)
	if err != nil {
		return nil, err
	}
	return &generator.WriteFileOp{Path: path, Content: content, Mode: 0644}, nil
}

// Plan builds the ordered operation list for cfg without executing it.
func (g *Generator) Plan(cfg config.Config) ([]generator.Operation, error) {
	p := &planner{
		cfg:      cfg,
		ctx:      BuildContext(cfg),
		root:     RootDir(cfg),
		renderer: g.renderer,
		vcs:      g.vcs,
	}

	var ops []generator.Operation
	for _, s := range planSteps {
		if !s.gate(cfg.Features) {
			continue
		}
		output.Verbose("Planning " + s.name)
		stepOps, err := s.build(p)
		if err != nil {
			return nil, err
		}
		ops = append(ops, stepOps...)
	}
	return ops, nil
}

// Generate builds the plan for cfg and executes it against the
// filesystem, honoring the overwrite flag. Progress lines go to w.
func (g *Generator) Generate(ctx context.Context, cfg config.Config, w io.Writer) error {
	ops, err := g.Plan(cfg)
	if err != nil {
		return err
	}
	return generator.Execute(ctx, ops, generator.ExecuteOptions{
		Force:  cfg.Overwrite,
		Writer: w,
	})
}
