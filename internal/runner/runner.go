// Package runner executes the external tools (ping, cargo, ssh, scp) a deploy
// shells out to.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"frc-deploy/internal/logger"

	"github.com/alessio/shellescape"
)

// Command is a single external program invocation.
type Command struct {
	Name     string
	Args     []string
	// Dir is the working directory; empty means the current one.
	Dir      string
	// Suppress discards the child's stdout and stderr.
	Suppress bool
}

// String renders the command as a shell-quoted line.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Name}, c.Args...))
}

// Runner runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that ran and exited with a non-zero status.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecRunner creates a runner attached to the process's standard streams
func NewExecRunner(verbose bool) *ExecRunner {
	return &ExecRunner{
		Verbose: verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run starts the command and waits for it. Cancelling ctx kills the child.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	if r.Verbose {
		logger.Plain("%s", c)
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	if !c.Suppress {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: c.String(), Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to run %s: %w", c.Name, err)
}
