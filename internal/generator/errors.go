package generator

import (
	"fmt"
	"strings"
)

// TargetExistsError reports a generation target that already exists on
// disk while overwriting is disabled.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target already exists: %s", e.Path)
}

// RenderError reports a template that failed to parse or execute. Name is
// the template identifier; Err carries the engine's message.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template %s: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// VCSInitError reports a failed version-control repository
// initialization. The cause is surfaced without further taxonomy.
type VCSInitError struct {
	Err error
}

func (e *VCSInitError) Error() string {
	return fmt.Sprintf("initializing repository: %v", e.Err)
}

func (e *VCSInitError) Unwrap() error { return e.Err }

// IOError reports a failed filesystem operation.
type IOError struct {
	Op   string // "mkdir" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// AggregateError collects multiple failures from contexts that must
// report more than one, such as batch plan validation.
type AggregateError struct {
	Errs []error
}

func (e *AggregateError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors: %s", len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errs }

// UnclassifiedError is the catch-all for collaborator failures with no
// dedicated kind.
type UnclassifiedError struct {
	Message string
}

func (e *UnclassifiedError) Error() string { return e.Message }
