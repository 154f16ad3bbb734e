package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a filesystem action that can be validated and
// executed.
//
// Validate checks whether the operation would succeed without executing
// it; it never touches the filesystem beyond stat calls, so a failed
// pre-flight leaves the tree exactly as it was. force=true skips conflict
// checks against existing targets.
//
// Execute performs the actual operation and should only be called after
// Validate succeeds.
//
// Description returns a human-readable line for progress output.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Initializer creates a version-control repository at a path. Any failure
// is surfaced as a single opaque error.
type Initializer interface {
	Init(ctx context.Context, path string) error
}

// EnsureDirOp creates a directory (and any missing parents).
type EnsureDirOp struct {
	Path string
}

func (op *EnsureDirOp) Validate(ctx context.Context, force bool) error {
	return checkTarget(op.Path, force)
}

func (op *EnsureDirOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(op.Path, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: op.Path, Err: err}
	}
	return nil
}

func (op *EnsureDirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.Path)
}

// WriteFileOp writes a file with pre-rendered content.
type WriteFileOp struct {
	Path    string
	Content []byte // may be empty, must not be nil
	Mode    fs.FileMode
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if op.Content == nil {
		return &UnclassifiedError{Message: fmt.Sprintf("content is nil for file: %s", op.Path)}
	}
	return checkTarget(op.Path, force)
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	if err := os.WriteFile(op.Path, op.Content, op.Mode); err != nil {
		return &IOError{Op: "write", Path: op.Path, Err: err}
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// InitRepoOp initializes a version-control repository at Path. The
// conflict target is the repository directory itself (Path/.git), so an
// existing working tree without a repository does not count as a
// conflict.
type InitRepoOp struct {
	Path string
	Init Initializer
}

func (op *InitRepoOp) Validate(ctx context.Context, force bool) error {
	return checkTarget(filepath.Join(op.Path, ".git"), force)
}

func (op *InitRepoOp) Execute(ctx context.Context) error {
	if err := op.Init.Init(ctx, op.Path); err != nil {
		return &VCSInitError{Err: err}
	}
	return nil
}

func (op *InitRepoOp) Description() string {
	return fmt.Sprintf("Initialize git repository in %s", op.Path)
}

// checkTarget enforces the conflict policy: an existing target fails
// unless force is set.
func checkTarget(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return &TargetExistsError{Path: path}
	}
	return nil
}
