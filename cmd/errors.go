package cmd

import (
	"errors"
	"fmt"
)

// Process exit statuses for fatal errors.
const (
	exitUsage    = 1
	exitResource = 2
	exitInvalid  = 3
)

// fatalError ends the process with a category message and status.
type fatalError struct {
	code     int
	category string
	err      error
}

func (e *fatalError) Error() string {
	return fmt.Sprintf("[ERR] %s: %v", e.category, e.err)
}

func (e *fatalError) Unwrap() error {
	return e.err
}

func usageError(err error) error {
	return &fatalError{code: exitUsage, category: "Usage", err: err}
}

func invalidFile(err error) error {
	return &fatalError{code: exitInvalid, category: "Invalid file", err: err}
}

func resourceError(err error) error {
	return &fatalError{code: exitResource, category: "Resource failure", err: err}
}

// ExitCode is the process status for an error returned by a command.
func ExitCode(err error) int {
	var fatal *fatalError
	if errors.As(err, &fatal) {
		return fatal.code
	}
	return exitUsage
}
