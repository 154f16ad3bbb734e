// Package config resolves the options selected on the command line into
// one coherent generation configuration.
//
// A preset, when given, pins every artifact toggle at once; otherwise the
// individually supplied toggles pass through untouched. Resolution is
// pure and total: it cannot fail, and it is the single place where final
// toggle values are materialized.
package config

import (
	"fmt"
	"strings"

	"github.com/plugsmith/plugsmith/internal/name"
)

// DefaultDescription is used when no plugin description is supplied.
const DefaultDescription = "Zsh plugin to do something..."

// Features holds one toggle per optional generated artifact.
type Features struct {
	Aliases       bool // alias tracking helpers in the plugin source
	BashWrapper   bool // NAME.bash entry point for Bash users
	BinDir        bool // bin/ directory for plugin-specific scripts
	FunctionsDir  bool // functions/ directory with an example autoload
	GitInit       bool // git repository + .gitignore
	GithubDir     bool // .github/workflows CI workflow
	Readme        bool // README.md skeleton
	ShellCheck    bool // shellcheck lint steps in Makefile and workflow
	ShellSpec     bool // shellspec test steps in Makefile and workflow
	SupportPlugin bool // delegate helpers to the zplugins support plugin
}

// Preset is a named bundle that fixes every feature toggle at once.
type Preset int

const (
	Minimal Preset = iota
	Simple
	Complete
)

// ParsePreset parses a preset name as given on the command line.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(s) {
	case "minimal":
		return Minimal, nil
	case "simple":
		return Simple, nil
	case "complete":
		return Complete, nil
	}
	return 0, fmt.Errorf("unknown preset %q (expected minimal, simple, or complete)", s)
}

func (p Preset) String() string {
	switch p {
	case Minimal:
		return "minimal"
	case Simple:
		return "simple"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("preset(%d)", int(p))
}

// apply pins the nine preset-controlled toggles. SupportPlugin is never
// preset-controlled and keeps its explicit value.
func (p Preset) apply(f Features) Features {
	switch p {
	case Minimal:
		f.BinDir = false
		f.BashWrapper = false
		f.Aliases = false
		f.FunctionsDir = false
		f.GithubDir = false
		f.GitInit = true
		f.Readme = false
		f.ShellCheck = false
		f.ShellSpec = false
	case Simple:
		f.BinDir = false
		f.BashWrapper = false
		f.Aliases = true
		f.FunctionsDir = false
		f.GithubDir = false
		f.GitInit = true
		f.Readme = true
		f.ShellCheck = true
		f.ShellSpec = true
	case Complete:
		f.BinDir = true
		f.BashWrapper = true
		f.Aliases = true
		f.FunctionsDir = true
		f.GithubDir = true
		f.GitInit = true
		f.Readme = true
		f.ShellCheck = true
		f.ShellSpec = true
	}
	return f
}

// Config is the fully resolved generation configuration. Built once per
// run, read-only thereafter.
type Config struct {
	Features Features

	Name name.Name

	// DisplayName is the name exactly as typed, hyphens preserved.
	DisplayName string
	// NormalizedName is DisplayName with hyphens replaced by
	// underscores, safe as a Zsh identifier and file name stem.
	NormalizedName string
	// ShoutName is NormalizedName upper-cased, used for the plugin's
	// global variable.
	ShoutName string

	Description string
	GithubUser  string
	Overwrite   bool
}

// Resolve reconciles a preset (if any) with the explicitly supplied
// toggles and derives the naming variants. The preset-vs-flags mutual
// exclusion is enforced by the command layer; Resolve itself is total.
func Resolve(preset *Preset, explicit Features, n name.Name, description, githubUser string, overwrite bool) Config {
	features := explicit
	if preset != nil {
		features = preset.apply(explicit)
	}

	if description == "" {
		description = DefaultDescription
	}

	displayName := n.String()
	normalized := strings.ReplaceAll(displayName, "-", "_")

	return Config{
		Features:       features,
		Name:           n,
		DisplayName:    displayName,
		NormalizedName: normalized,
		ShoutName:      strings.ToUpper(normalized),
		Description:    description,
		GithubUser:     githubUser,
		Overwrite:      overwrite,
	}
}
