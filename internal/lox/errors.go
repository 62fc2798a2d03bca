package lox

import "fmt"

// Process exit codes, following sysexits(3).
const (
	ExitOK        = 0
	ExitUsage     = 64 // command line usage error
	ExitDataError = 65 // source had scan or parse errors
	ExitIOError   = 74 // source could not be read
)

// ExitError carries the process exit code for a failed invocation.
// Err is nil when the failure was already reported, e.g. as diagnostics.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Silent reports whether the error has nothing left to print.
func (e *ExitError) Silent() bool {
	return e.Err == nil
}
