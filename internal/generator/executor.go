package generator

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ExecuteOptions configures plan execution.
type ExecuteOptions struct {
	DryRun bool
	Force  bool      // overwrite existing targets
	Writer io.Writer // progress output (defaults to os.Stdout)
}

// Execute runs a plan of operations.
//
// Phase 1 validates every operation up front, so conflicts are reported
// before anything is written; multiple validation failures are collected
// into an AggregateError. Phase 2 executes in plan order and is
// fail-fast: the first failing operation aborts the remainder. Already
// completed operations are not rolled back.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	var errs []error
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
	case 1:
		return errs[0]
	default:
		return &AggregateError{Errs: errs}
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
			continue
		}
		if err := op.Execute(ctx); err != nil {
			return err
		}
		fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
	}

	return nil
}
