package cli

import (
	"fmt"

	"github.com/ariel-frischer/addonbuild/internal/errors"
)

// Exit codes for the addonbuild CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeFailure indicates the command failed mid-execution
	ExitRuntimeFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitMissingPrerequisites indicates required files or repository state are missing
	ExitMissingPrerequisites = 3

	// ExitInvalidConfiguration indicates the configuration could not be loaded
	ExitInvalidConfiguration = 4
)

// ExitError carries an explicit exit code through RunE without extra output.
// Execute unwraps it after the command has already explained the failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error that terminates with the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// exitCodeFor maps an error category to its process exit code.
func exitCodeFor(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitInvalidConfiguration
	case errors.Prerequisite:
		return ExitMissingPrerequisites
	default:
		return ExitRuntimeFailure
	}
}
