// Package vcs provides the version-control capability used by the
// scaffolder: initializing a fresh repository in the generated plugin
// directory.
package vcs

import (
	"context"
	"fmt"

	"github.com/plugsmith/plugsmith/internal/exec"
)

// Git initializes repositories by shelling out to the git binary.
type Git struct {
	runner  *exec.Runner
	spinner bool
}

// NewGit creates a Git initializer. When spinner is true a progress
// spinner is shown while git runs.
func NewGit(spinner bool) *Git {
	return &Git{
		runner:  exec.NewRunner(nil),
		spinner: spinner,
	}
}

// Init creates a new git repository at path.
func (g *Git) Init(ctx context.Context, path string) error {
	if g.spinner {
		return g.runner.RunWithSpinner(ctx, fmt.Sprintf("Initializing git repository in %s", path), "git", "init", path)
	}
	return g.runner.Run(ctx, "git", "init", path)
}
