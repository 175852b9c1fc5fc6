package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/sellorm/rgear/internal/guard"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create app.sh (98 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// Previewer is implemented by operations whose result can be echoed in
// verbose mode.
type Previewer interface {
	Preview() (title string, body []byte)
}

// precondition marks operations that only take part in validation.
// Execute reports them while validating and skips them afterwards.
type precondition interface {
	precondition()
}

// WriteFileOp creates or truncates a file with content.
//
// Validation behavior:
//   - Fails with a guard.PreconditionError if the file exists, unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Writes the file, creating it with Mode (subject to umask)
//   - If Mode carries any execute bit, chmods the file to Mode afterwards so
//     an overwritten file ends up executable too
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0755)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	// Check file conflict unless force is enabled
	if !force {
		if err := guard.MustNotExist(op.Path); err != nil {
			return err
		}
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.WriteFile(op.Path, op.Content, op.Mode); err != nil {
		return err
	}
	if op.Mode&0111 != 0 {
		return os.Chmod(op.Path, op.Mode)
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// Preview returns the file name and the content that will be written.
func (op *WriteFileOp) Preview() (string, []byte) {
	return op.Path, op.Content
}

// RequireOp asserts that Path exists. It writes nothing and ignores force:
// generated files must never point at missing content.
type RequireOp struct {
	Path string
}

func (op *RequireOp) Validate(ctx context.Context, force bool) error {
	return guard.MustExist(op.Path)
}

func (op *RequireOp) Execute(ctx context.Context) error {
	return nil
}

func (op *RequireOp) Description() string {
	return fmt.Sprintf("Found %s", op.Path)
}

func (op *RequireOp) precondition() {}
