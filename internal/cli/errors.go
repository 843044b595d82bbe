package cli

import (
	"context"
	"errors"
	"fmt"

	"frc-deploy/internal/deploy"
	"frc-deploy/internal/network"
	"frc-deploy/internal/runner"
)

// ExitCodeCancelled is the status used when the user interrupts a run.
const ExitCodeCancelled = 130

// Describe turns an error from Execute into the one-line message shown to
// the user.
func Describe(err error) string {
	var (
		missing *deploy.MissingExecutableError
		exitErr *runner.ExitError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, network.ErrNoRoborio):
		return "Unable to connect to roborio."
	case errors.As(err, &missing):
		return fmt.Sprintf("Robot executable %s not found.", missing.Path)
	case errors.As(err, &exitErr):
		return fmt.Sprintf("Command failed with exit code %d: %v", exitErr.Code, err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// ExitCode maps an error from Execute to a process exit status. A failed
// external command surfaces its own status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		return ExitCodeCancelled
	}

	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
