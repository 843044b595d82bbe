package runner

import (
	"context"
	"errors"
)

// Remote runs commands on, and copies files to, a host reachable over ssh.
type Remote struct {
	Runner Runner
	User   string
	Host   string
}

var errNoHost = errors.New("remote host address is empty")

// Target returns the user@host login.
func (r Remote) Target() string {
	return r.User + "@" + r.Host
}

// Exec runs a shell command on the remote host with its output discarded.
func (r Remote) Exec(ctx context.Context, command string) error {
	if r.Host == "" {
		return errNoHost
	}
	return r.Runner.Run(ctx, Command{
		Name:     "ssh",
		Args:     []string{r.Target(), command},
		Suppress: true,
	})
}

// Copy copies a local file to a path on the remote host.
func (r Remote) Copy(ctx context.Context, source, target string) error {
	if r.Host == "" {
		return errNoHost
	}
	return r.Runner.Run(ctx, Command{
		Name:     "scp",
		Args:     []string{source, r.Target() + ":" + target},
		Suppress: true,
	})
}
