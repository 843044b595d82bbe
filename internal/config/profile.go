package config

import (
	"path"
	"path/filepath"
	"slices"
)

// Built-in profile names.
const (
	ProfilePackage = "package"
	ProfileFRC     = "frc"
)

// Local build layout shared by both profiles.
const (
	TargetDir    = "target/arm-unknown-linux-gnueabi"
	SharedLibDir = "frc-sys/lib/linux/athena/shared"
)

// WPILibLibs are the WPILib shared libraries every robot program links against.
var WPILibLibs = []string{
	"cameraserver",
	"ntcore",
	"wpiHal",
	"wpilibc",
	"wpimath",
	"wpiutil",
}

// VendorLibs are the third-party motor controller libraries.
var VendorLibs = []string{
	"CTRE_Phoenix_WPI",
	"CTRE_Phoenix",
	"CTRE_PhoenixCCI",
	"CTRE_PhoenixCore",
	"CTRE_PhoenixDiagnostics",
}

// Profile describes one deployment convention.
type Profile struct {
	Name           string   `yaml:"-"`
	SharedLibDir   string   `yaml:"shared_lib_dir"`
	CoreLibs       []string `yaml:"core_libs"`
	VendorLibs     []string `yaml:"vendor_libs"`
	DebugLibSuffix string   `yaml:"debug_lib_suffix"`
	ProgramName    string   `yaml:"program_name"`
	SetCapability  bool     `yaml:"set_capability"`
}

// Profiles returns fresh copies of the built-in profiles.
//
// The package profile installs the executable under its package name and only
// ships WPILib. The frc profile follows the GradleRIO layout: the executable
// becomes frcUserProgram, vendor libraries are shipped, debug builds use the
// "d" suffixed libraries, and the program may raise its scheduling priority.
func Profiles() map[string]Profile {
	return map[string]Profile{
		ProfilePackage: {
			Name:         ProfilePackage,
			SharedLibDir: SharedLibDir,
			CoreLibs:     slices.Clone(WPILibLibs),
		},
		ProfileFRC: {
			Name:           ProfileFRC,
			SharedLibDir:   SharedLibDir,
			CoreLibs:       slices.Clone(WPILibLibs),
			VendorLibs:     slices.Clone(VendorLibs),
			DebugLibSuffix: "d",
			ProgramName:    "frcUserProgram",
			SetCapability:  true,
		},
	}
}

// ExecutableDir returns the local cargo output directory.
func (p Profile) ExecutableDir(debug bool) string {
	mode := "release"
	if debug {
		mode = "debug"
	}
	return filepath.Join(TargetDir, mode)
}

// Executable returns the local path of the compiled package.
func (p Profile) Executable(pkg string, debug bool) string {
	return filepath.Join(p.ExecutableDir(debug), pkg)
}

// Libraries returns the local shared library paths, core libraries first.
func (p Profile) Libraries(debug bool) []string {
	names := append(slices.Clone(p.CoreLibs), p.VendorLibs...)
	libs := make([]string, 0, len(names))
	for _, name := range names {
		libs = append(libs, filepath.Join(p.SharedLibDir, p.libFile(name, debug)))
	}
	return libs
}

func (p Profile) libFile(name string, debug bool) string {
	if debug {
		name += p.DebugLibSuffix
	}
	return "lib" + name + ".so"
}

// Program returns the file name the executable is installed under.
func (p Profile) Program(pkg string) string {
	if p.ProgramName != "" {
		return p.ProgramName
	}
	return pkg
}

// RemoteExecutable returns the absolute path of the executable on the roboRIO.
func (p Profile) RemoteExecutable(pkg string) string {
	return path.Join(RemoteHomeDir, p.Program(pkg))
}

// merge overlays the non-empty fields of o onto p.
func (p Profile) merge(o Profile) Profile {
	if o.SharedLibDir != "" {
		p.SharedLibDir = o.SharedLibDir
	}
	if o.CoreLibs != nil {
		p.CoreLibs = slices.Clone(o.CoreLibs)
	}
	if o.VendorLibs != nil {
		p.VendorLibs = slices.Clone(o.VendorLibs)
	}
	if o.DebugLibSuffix != "" {
		p.DebugLibSuffix = o.DebugLibSuffix
	}
	if o.ProgramName != "" {
		p.ProgramName = o.ProgramName
	}
	if o.SetCapability {
		p.SetCapability = true
	}
	return p
}
