// Package runnertest provides a Runner that records commands instead of
// running them.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"frc-deploy/internal/runner"
)

// Recorder captures every command passed to Run.
type Recorder struct {
	mu       sync.Mutex
	commands []runner.Command

	// ExitCode, when set, decides the exit status of each command.
	ExitCode func(cmd runner.Command) int
}

// Run records cmd and fails with an ExitError when ExitCode says so.
func (r *Recorder) Run(ctx context.Context, cmd runner.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if r.ExitCode != nil {
		if code := r.ExitCode(cmd); code != 0 {
			return &runner.ExitError{Command: cmd.String(), Code: code}
		}
	}
	return nil
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.commands...)
}

// Lines returns the recorded commands rendered as shell lines.
func (r *Recorder) Lines() []string {
	var lines []string
	for _, cmd := range r.Commands() {
		lines = append(lines, cmd.String())
	}
	return lines
}

// FailWhen returns an ExitCode func that fails commands whose rendered line
// contains substr.
func FailWhen(substr string, code int) func(runner.Command) int {
	return func(cmd runner.Command) int {
		if strings.Contains(cmd.String(), substr) {
			return code
		}
		return 0
	}
}
