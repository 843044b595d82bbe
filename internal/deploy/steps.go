package deploy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"frc-deploy/internal/config"
	"frc-deploy/internal/logger"
	"frc-deploy/internal/network"
	"frc-deploy/internal/runner"
)

// ErrExecutableNotFound is matched by MissingExecutableError.
var ErrExecutableNotFound = errors.New("robot executable not found")

// MissingExecutableError reports that the compiled program is not on disk.
type MissingExecutableError struct {
	Path string
}

func (e *MissingExecutableError) Error() string {
	return fmt.Sprintf("robot executable %s not found", e.Path)
}

func (e *MissingExecutableError) Unwrap() error {
	return ErrExecutableNotFound
}

// StepFunc performs one step and returns the context for the next one.
type StepFunc func(ctx context.Context, p *Pipeline, dc Context) (Context, error)

// Step is one named unit of a deploy.
type Step struct {
	Name     string
	// Announce is printed before the step runs.
	Announce string
	// Remote steps may fail without ending the run when KeepGoing is set.
	Remote   bool
	Run      StepFunc
}

// Steps returns the ordered steps for a deploy: build, verify, discover,
// libraries, predeploy, executable, postdeploy.
func Steps(dc Context) []Step {
	var steps []Step

	if dc.Options.Build {
		steps = append(steps, Step{Name: "build", Run: buildPackage})
	}
	steps = append(steps,
		Step{Name: "verify executable", Run: verifyExecutable},
		Step{Name: "discover roborio", Run: discoverRoborio},
	)

	if !dc.Options.SkipLibs {
		for _, lib := range dc.Profile.Libraries(dc.Options.Debug) {
			steps = append(steps, Step{
				Name:   "copy " + filepath.Base(lib),
				Remote: true,
				Run:    copyLibrary(lib),
			})
		}
		steps = append(steps, remoteSteps("", LibraryCommands())...)
	}

	steps = append(steps, remoteSteps("Running predeploy scripts", PredeployCommands(dc.RemoteExecutable()))...)
	steps = append(steps, Step{Name: "copy executable", Remote: true, Run: copyExecutable})
	steps = append(steps, remoteSteps("Running postdeploy scripts",
		PostdeployCommands(dc.RemoteExecutable(), dc.Profile.SetCapability))...)

	return steps
}

func remoteSteps(announce string, cmds []RemoteCommand) []Step {
	steps := make([]Step, 0, len(cmds))
	for i, c := range cmds {
		step := Step{Name: c.Name, Remote: true, Run: execRemote(c.Command)}
		if i == 0 {
			step.Announce = announce
		}
		steps = append(steps, step)
	}
	return steps
}

func buildPackage(ctx context.Context, p *Pipeline, dc Context) (Context, error) {
	logger.Info("Building %s", dc.Options.Package)
	err := p.Runner.Run(ctx, runner.Command{
		Name: "cargo",
		Args: BuildArgs(dc.Options),
		Dir:  p.Dir,
	})
	if err != nil {
		return dc, fmt.Errorf("failed to build %s: %w", dc.Options.Package, err)
	}
	return dc, nil
}

func verifyExecutable(_ context.Context, p *Pipeline, dc Context) (Context, error) {
	exe := dc.Executable()
	if _, err := os.Stat(p.local(exe)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dc, &MissingExecutableError{Path: exe}
		}
		return dc, fmt.Errorf("failed to check executable: %w", err)
	}
	logger.Success("Executable found at %s", exe)
	return dc, nil
}

func discoverRoborio(ctx context.Context, p *Pipeline, dc Context) (Context, error) {
	if dc.Options.Address != "" {
		logger.Info("Using roborio address %s", dc.Options.Address)
		return dc.WithAddress(dc.Options.Address), nil
	}

	address, err := network.Discover(ctx, p.Prober, network.Candidates(dc.Options.Team))
	if err != nil {
		return dc, err
	}
	return dc.WithAddress(address), nil
}

func copyLibrary(lib string) StepFunc {
	return func(ctx context.Context, p *Pipeline, dc Context) (Context, error) {
		logger.Info("Deploying vendor library: %s", lib)
		return dc, dc.Remote(p.Runner).Copy(ctx, p.local(lib), config.RemoteLibDir)
	}
}

func copyExecutable(ctx context.Context, p *Pipeline, dc Context) (Context, error) {
	exe := dc.Executable()
	logger.Info("Deploying executable: %s", exe)
	return dc, dc.Remote(p.Runner).Copy(ctx, p.local(exe), dc.RemoteExecutable())
}

func execRemote(command string) StepFunc {
	return func(ctx context.Context, p *Pipeline, dc Context) (Context, error) {
		return dc, dc.Remote(p.Runner).Exec(ctx, command)
	}
}
