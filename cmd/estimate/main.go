package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess           = 0 // Calculation succeeded
	ExitCalculationFailed = 1 // A mutation ended processing with a CRITICAL message
	ExitError             = 2 // Usage, file or configuration error
)

// CalculationFailedError reports a calculation whose outcome was FAILURE.
// The result has already been printed when it is returned.
type CalculationFailedError struct {
	Message string
}

func (e *CalculationFailedError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var failed *CalculationFailedError
		if errors.As(err, &failed) {
			os.Exit(ExitCalculationFailed)
		}
		os.Exit(ExitError)
	}
}
