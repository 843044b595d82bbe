package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// These variables will be set at build time using -ldflags
var (
	DefaultTeamNumber = "846"
	DefaultUser       = "admin"
	DefaultProfile    = ProfilePackage
)

// Environment variables that override the build-time defaults.
const (
	EnvTeam    = "FRC_DEPLOY_TEAM"
	EnvUser    = "FRC_DEPLOY_USER"
	EnvProfile = "FRC_DEPLOY_PROFILE"
	EnvAddress = "FRC_DEPLOY_ADDRESS"
)

// Fixed layout of the roboRIO filesystem.
const (
	RemoteHomeDir     = "/home/lvuser/"
	RemoteLibDir      = "/usr/local/frc/third-party/lib"
	RobotCommandFile  = "/home/lvuser/robotCommand"
	RemoteProgramUser = "lvuser"
	RemoteLibGroup    = "ni"
)

// StaticAddress is the roboRIO's fixed address on its USB network interface.
const StaticAddress = "172.22.11.2"

// Options represents a single deploy invocation, built from flags once and
// read for the rest of the run.
type Options struct {
	Package   string
	Build     bool
	SkipLibs  bool
	Debug     bool
	Verbose   bool
	KeepGoing bool
	Profile   string
	Team      int
	User      string
	Address   string
}

// BuildMode returns the cargo profile directory name for the options.
func (o Options) BuildMode() string {
	if o.Debug {
		return "debug"
	}
	return "release"
}

// Settings are the defaults that apply before command-line flags: build-time
// values, then frc-deploy.yaml, then .env, then the process environment.
type Settings struct {
	Team     int
	User     string
	Profile  string
	Address  string
	Profiles map[string]Profile
}

// Load resolves Settings for a workspace directory.
func Load(dir string) (*Settings, error) {
	if err := LoadEnv(filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	team, err := parseTeam(DefaultTeamNumber)
	if err != nil {
		return nil, fmt.Errorf("invalid build-time team number: %w", err)
	}

	settings := &Settings{
		Team:     team,
		User:     DefaultUser,
		Profile:  DefaultProfile,
		Profiles: Profiles(),
	}

	file, err := LoadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	file.apply(settings)

	if value := os.Getenv(EnvTeam); value != "" {
		team, err := parseTeam(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTeam, err)
		}
		settings.Team = team
	}
	settings.User = getEnv(EnvUser, settings.User)
	settings.Profile = getEnv(EnvProfile, settings.Profile)
	settings.Address = getEnv(EnvAddress, settings.Address)

	return settings, nil
}

// LoadEnv loads a .env file into the process environment. Variables already
// set in the environment win. A missing file is not an error.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LookupProfile returns the named profile from the settings.
func (s *Settings) LookupProfile(name string) (Profile, error) {
	profile, ok := s.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (available: %s, %s)", name, ProfilePackage, ProfileFRC)
	}
	return profile, nil
}

func parseTeam(value string) (int, error) {
	team, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if team <= 0 || team > 25599 {
		return 0, fmt.Errorf("team number %d out of range", team)
	}
	return team, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
