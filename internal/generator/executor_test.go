package generator

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_RunsOperationsInOrder(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer

	ops := []Operation{
		&EnsureDirOp{Path: filepath.Join(tmpDir, "dir")},
		&WriteFileOp{Path: filepath.Join(tmpDir, "dir", "file"), Content: []byte("x"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &buf})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "dir", "file"))
	assert.Contains(t, buf.String(), "Create directory")
	assert.Contains(t, buf.String(), "(1 bytes)")
}

func TestExecute_ValidatesBeforeWriting(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "taken")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	ops := []Operation{
		&EnsureDirOp{Path: filepath.Join(tmpDir, "newdir")},
		&WriteFileOp{Path: existing, Content: []byte("new"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &bytes.Buffer{}})

	var existsErr *TargetExistsError
	require.True(t, errors.As(err, &existsErr))
	assert.Equal(t, existing, existsErr.Path)

	// Validation failed before execution, so nothing was created.
	assert.NoDirExists(t, filepath.Join(tmpDir, "newdir"))

	content, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(content))
}

func TestExecute_AggregatesMultipleConflicts(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "a")
	second := filepath.Join(tmpDir, "b")
	require.NoError(t, os.WriteFile(first, []byte(""), 0644))
	require.NoError(t, os.WriteFile(second, []byte(""), 0644))

	ops := []Operation{
		&WriteFileOp{Path: first, Content: []byte("x"), Mode: 0644},
		&WriteFileOp{Path: second, Content: []byte("x"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &bytes.Buffer{}})

	var agg *AggregateError
	require.True(t, errors.As(err, &agg))
	assert.Len(t, agg.Errs, 2)

	// errors.As traverses into the aggregate.
	var existsErr *TargetExistsError
	assert.True(t, errors.As(err, &existsErr))
}

func TestExecute_ForceOverwritesConflicts(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "taken")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	ops := []Operation{
		&WriteFileOp{Path: existing, Content: []byte("new"), Mode: 0644},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Force: true, Writer: &bytes.Buffer{}})
	require.NoError(t, err)

	content, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "new", string(content))
}

func TestExecute_DryRunWritesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	var buf bytes.Buffer

	ops := []Operation{
		&EnsureDirOp{Path: filepath.Join(tmpDir, "dir")},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{DryRun: true, Writer: &buf})
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(tmpDir, "dir"))
	assert.Contains(t, buf.String(), "[DRY RUN]")
}

// failingOp validates fine but fails to execute.
type failingOp struct {
	err error
}

func (f *failingOp) Validate(ctx context.Context, force bool) error { return nil }
func (f *failingOp) Execute(ctx context.Context) error              { return f.err }
func (f *failingOp) Description() string                            { return "failing op" }

func TestExecute_FailFastAbortsRemainingPlan(t *testing.T) {
	tmpDir := t.TempDir()
	cause := errors.New("boom")

	ops := []Operation{
		&EnsureDirOp{Path: filepath.Join(tmpDir, "before")},
		&failingOp{err: cause},
		&EnsureDirOp{Path: filepath.Join(tmpDir, "after")},
	}

	err := Execute(context.Background(), ops, ExecuteOptions{Writer: &bytes.Buffer{}})
	require.ErrorIs(t, err, cause)

	// Completed steps stay; later steps never ran. No rollback.
	assert.DirExists(t, filepath.Join(tmpDir, "before"))
	assert.NoDirExists(t, filepath.Join(tmpDir, "after"))
}
