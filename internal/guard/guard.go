// Package guard holds the filesystem preconditions checked before any
// generated file is written.
//
// The checks never terminate the process. They return a *PreconditionError
// and leave the decision to the caller; callers that only need the answer
// use Exists.
package guard

import (
	"fmt"
	"os"
)

// Reason identifies which precondition failed.
type Reason int

const (
	// AlreadyExists means an output file is present and overwriting was not requested.
	AlreadyExists Reason = iota
	// NotFound means the referenced source content is missing.
	NotFound
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case AlreadyExists:
		return "already exists"
	case NotFound:
		return "does not exist"
	default:
		return "unknown"
	}
}

// PreconditionError reports a failed guard check for Path.
type PreconditionError struct {
	Path   string
	Reason Reason
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("The file, %s, %s.", e.Path, e.Reason)
}

// Hint is the follow-up line shown beneath the error.
func (e *PreconditionError) Hint() string {
	return "Please check and try again."
}

// Exists reports whether anything (file or directory) is present at path.
// A directory sitting at an output path is a collision as well: writing the
// file would fail on it.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MustNotExist fails if path is already present.
func MustNotExist(path string) error {
	if Exists(path) {
		return &PreconditionError{Path: path, Reason: AlreadyExists}
	}
	return nil
}

// MustExist fails if path is missing.
func MustExist(path string) error {
	if !Exists(path) {
		return &PreconditionError{Path: path, Reason: NotFound}
	}
	return nil
}
