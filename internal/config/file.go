package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FileName is the optional per-workspace configuration file.
const FileName = "frc-deploy.yaml"

// File represents frc-deploy.yaml. Every field is optional.
//
//	team: 846
//	user: admin
//	profile: frc
//	profiles:
//	  frc:
//	    vendor_libs: [CTRE_Phoenix, CTRE_PhoenixCCI]
type File struct {
	Team     int                `yaml:"team"`
	User     string             `yaml:"user"`
	Profile  string             `yaml:"profile"`
	Address  string             `yaml:"address"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// LoadFile reads a config file. A missing file yields an empty File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.Team != 0 {
		if _, err := parseTeam(fmt.Sprint(file.Team)); err != nil {
			return nil, fmt.Errorf("invalid team in %s: %w", path, err)
		}
	}

	return &file, nil
}

func (f *File) apply(s *Settings) {
	if f.Team != 0 {
		s.Team = f.Team
	}
	if f.User != "" {
		s.User = f.User
	}
	if f.Profile != "" {
		s.Profile = f.Profile
	}
	if f.Address != "" {
		s.Address = f.Address
	}
	for name, override := range f.Profiles {
		base, ok := s.Profiles[name]
		if !ok {
			base = Profile{Name: name, SharedLibDir: SharedLibDir}
		}
		s.Profiles[name] = base.merge(override)
	}
}
