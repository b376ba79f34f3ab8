package cli

import "errors"

// Exit codes
const (
	ExitOK           = 0
	ExitFailure      = 1 // unreadable input, missing files, write errors
	ExitUsage        = 2 // invalid flags, config or arguments
	ExitInconsistent = 3 // bench saw serial and parallel disagree
)

// CLIError is a structured error used for consistent NDJSON/text emission.
// The process exit code is derived from it in main via ExitCode.
type CLIError struct {
	Code    string
	Message string
	Hint    string
	Err     error // underlying cause, if any
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// withCause attaches the underlying error so callers can use errors.Is
func withCause(err error, cause error) error {
	if ce, ok := err.(*CLIError); ok {
		ce.Err = cause
	}
	return err
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ce *CLIError
	if !errors.As(err, &ce) {
		return ExitFailure
	}
	switch ce.Code {
	case "INVALID_CONFIG", "INVALID_FILTER", "INVALID_ARGS":
		return ExitUsage
	case "INCONSISTENT_RESULTS":
		return ExitInconsistent
	default:
		return ExitFailure
	}
}
