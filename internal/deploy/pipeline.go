package deploy

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"frc-deploy/internal/logger"
	"frc-deploy/internal/network"
	"frc-deploy/internal/runner"
)

// ErrStepsFailed is returned after a KeepGoing run in which some remote
// steps failed.
var ErrStepsFailed = errors.New("deploy finished with failed steps")

// Pipeline runs deploy steps in order against one Context.
type Pipeline struct {
	Runner runner.Runner
	Prober network.Prober
	// Dir is the workspace root that local paths are relative to. Empty
	// means the current directory.
	Dir    string
	Steps  []Step
}

// New creates the pipeline for dc, probing hosts through r.
func New(r runner.Runner, dc Context) *Pipeline {
	return &Pipeline{
		Runner: r,
		Prober: network.Pinger{Runner: r},
		Steps:  Steps(dc),
	}
}

// Run executes every step. By default the first failure ends the run and is
// returned wrapped with the step name. With KeepGoing, failed remote steps
// are reported and the run continues; ErrStepsFailed is returned at the end.
func (p *Pipeline) Run(ctx context.Context, dc Context) (*Report, error) {
	report := &Report{}

	for _, step := range p.Steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if step.Announce != "" {
			logger.Info("%s", step.Announce)
		}

		start := time.Now()
		next, err := step.Run(ctx, p, dc)
		report.add(step.Name, err)
		record(step, next, err, time.Since(start))

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, ctxErr
			}
			if step.Remote && dc.Options.KeepGoing {
				logger.ErrorWithDetails(fmt.Sprintf("%s failed", step.Name), err)
				continue
			}
			return report, fmt.Errorf("%s: %w", step.Name, err)
		}
		dc = next
	}

	if failed := report.Failed(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, r := range failed {
			names = append(names, r.Step)
		}
		return report, fmt.Errorf("%w: %s", ErrStepsFailed, strings.Join(names, ", "))
	}
	return report, nil
}

func (p *Pipeline) local(path string) string {
	if p.Dir == "" {
		return path
	}
	return filepath.Join(p.Dir, path)
}

func record(step Step, dc Context, err error, elapsed time.Duration) {
	args := []any{
		"package", dc.Options.Package,
		"profile", dc.Profile.Name,
		"step", step.Name,
		"address", dc.Address,
		"ok", err == nil,
		"elapsed", elapsed,
	}
	if err != nil {
		args = append(args, "error", err.Error())
	}
	logger.Record("deploy step", args...)
}
