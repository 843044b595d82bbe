package deploy

import (
	"fmt"
	"strconv"

	"frc-deploy/internal/config"

	"github.com/alessio/shellescape"
)

// RemoteCommand is one shell command run on the roboRIO.
type RemoteCommand struct {
	Name    string
	Command string
}

const (
	killRobot    = ". /etc/profile.d/natinst-path.sh; /usr/local/frc/bin/frcKillRobot.sh -t 2> /dev/null"
	restartRobot = ". /etc/profile.d/natinst-path.sh; /usr/local/frc/bin/frcKillRobot.sh -t -r 2> /dev/null"
)

// BuildArgs returns the cargo arguments that build the robot package.
func BuildArgs(opts config.Options) []string {
	args := []string{"build", "-p", opts.Package}
	if !opts.Debug {
		args = append(args, "--release")
	}
	return args
}

// LibraryCommands fix ownership of the third-party library directory and
// refresh the dynamic linker cache after libraries are copied.
func LibraryCommands() []RemoteCommand {
	dir := strconv.Quote(config.RemoteLibDir)
	owner := config.RemoteProgramUser + ":" + config.RemoteLibGroup
	return []RemoteCommand{
		{"fix library permissions", fmt.Sprintf("chmod -R 777 %s || true; chown -R %s %s", dir, owner, dir)},
		{"refresh linker cache", "ldconfig"},
	}
}

// PredeployCommands stop the running program and remove the previous
// executable.
func PredeployCommands(executable string) []RemoteCommand {
	return []RemoteCommand{
		{"stop robot program", killRobot},
		{"remove old executable", "rm -f " + shellescape.Quote(executable)},
	}
}

// PostdeployCommands point the launcher at the new executable, fix its
// permissions, and restart it.
func PostdeployCommands(executable string, setCapability bool) []RemoteCommand {
	exe := shellescape.Quote(executable)
	launcher := config.RobotCommandFile
	user := config.RemoteProgramUser

	cmds := []RemoteCommand{
		{"write robotCommand", fmt.Sprintf("echo %s > %s", strconv.Quote(executable), launcher)},
		{"permission robotCommand", fmt.Sprintf("chmod +x %s; chown %s %s", launcher, user, launcher)},
		{"permission executable", fmt.Sprintf("chmod +x %s; chown %s %s", exe, user, exe)},
	}
	if setCapability {
		cmds = append(cmds, RemoteCommand{"grant scheduling priority", "setcap cap_sys_nice+eip " + strconv.Quote(executable)})
	}
	return append(cmds,
		RemoteCommand{"flush filesystem", "sync"},
		RemoteCommand{"refresh linker cache", "ldconfig"},
		RemoteCommand{"restart robot program", restartRobot},
	)
}
