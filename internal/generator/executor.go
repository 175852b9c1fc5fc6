package generator

import (
	"context"
	"fmt"

	"github.com/sellorm/rgear/internal/output"
)

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun  bool
	Force   bool
	Verbose bool // Echo the content of each file right after it is handled
}

// Execute runs operations with validation.
//
// All operations are validated first. Validation errors are returned as-is
// so callers can inspect them with errors.As.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	// Phase 1: Validate all operations
	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return err
		}
		if _, ok := op.(precondition); ok {
			output.Verbose(op.Description())
		}
	}

	// Phase 2: Execute or report, echoing each file before the next is written
	for _, op := range ops {
		if _, ok := op.(precondition); ok {
			continue
		}

		if opts.DryRun {
			output.Step(fmt.Sprintf("[DRY RUN] %s", op.Description()))
		} else {
			if err := op.Execute(ctx); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			output.Verbose(op.Description())
		}

		if p, ok := op.(Previewer); ok && opts.Verbose {
			title, body := p.Preview()
			output.Block(title, string(body))
		}
	}

	return nil
}
