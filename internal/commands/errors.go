package commands

import "errors"

// Exit codes returned by the rgear binary
const (
	ExitOK      = 0
	ExitFailure = 1 // A guard check or a write failed
	ExitUsage   = 2 // The command line could not be parsed
)

// UsageError marks a failure caused by the command line itself.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var uerr *UsageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}

	return ExitFailure
}
