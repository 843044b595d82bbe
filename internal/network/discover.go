package network

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"frc-deploy/internal/config"
	"frc-deploy/internal/logger"
	"frc-deploy/internal/runner"
)

// ErrNoRoborio is returned when no candidate address answers a ping.
var ErrNoRoborio = errors.New("unable to connect to roborio")

// Prober checks whether an address is reachable.
type Prober interface {
	Ping(ctx context.Context, address string) error
}

// Pinger probes addresses with a single ICMP echo using the system ping tool.
type Pinger struct {
	Runner runner.Runner
}

// Ping sends one echo request to address.
func (p Pinger) Ping(ctx context.Context, address string) error {
	return p.Runner.Run(ctx, runner.Command{
		Name:     "ping",
		Args:     pingArgs(runtime.GOOS, address),
		Suppress: true,
	})
}

func pingArgs(goos, address string) []string {
	if goos == "windows" {
		return []string{"-n", "1", address}
	}
	return []string{"-c", "1", address}
}

// Candidates returns the addresses a team's roboRIO may answer on, in the
// order they should be tried: the mDNS hostname, the static 10.TE.AM.2
// address, the first address of the radio's DHCP pool, and the USB address.
func Candidates(team int) []string {
	te, am := team/100, team%100
	return []string{
		fmt.Sprintf("roborio-%d-frc.local", team),
		fmt.Sprintf("10.%d.%d.2", te, am),
		fmt.Sprintf("10.%d.%d.20", te, am),
		config.StaticAddress,
	}
}

// Discover pings each candidate in order and returns the first that answers.
func Discover(ctx context.Context, prober Prober, candidates []string) (string, error) {
	for _, address := range candidates {
		logger.Progress("Pinging %s... ", address)

		err := prober.Ping(ctx, address)
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Plain("")
			return "", ctxErr
		}
		if err == nil {
			logger.Plain("Success")
			return address, nil
		}

		logger.Plain("Fail")
		logger.Debug("ping %s: %v", address, err)
	}

	return "", ErrNoRoborio
}
