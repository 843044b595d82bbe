// Package deploy installs a robot program on a roboRIO as a fixed, ordered
// list of steps.
package deploy

import (
	"frc-deploy/internal/config"
	"frc-deploy/internal/runner"
)

// Context is the read-only state threaded through every step. Steps that
// learn something new return an updated copy rather than mutating it.
type Context struct {
	Options config.Options
	Profile config.Profile
	// Address is empty until discovery succeeds.
	Address string
}

// NewContext creates the initial context for a run.
func NewContext(opts config.Options, profile config.Profile) Context {
	return Context{Options: opts, Profile: profile}
}

// WithAddress returns a copy of c bound to a roboRIO address.
func (c Context) WithAddress(address string) Context {
	c.Address = address
	return c
}

// Executable returns the local path of the compiled robot program.
func (c Context) Executable() string {
	return c.Profile.Executable(c.Options.Package, c.Options.Debug)
}

// RemoteExecutable returns where the program is installed on the roboRIO.
func (c Context) RemoteExecutable() string {
	return c.Profile.RemoteExecutable(c.Options.Package)
}

// Remote returns an ssh/scp channel to the discovered roboRIO.
func (c Context) Remote(r runner.Runner) runner.Remote {
	return runner.Remote{Runner: r, User: c.Options.User, Host: c.Address}
}
