package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Executable(t *testing.T) {
	p := Profiles()[ProfilePackage]

	assert.Equal(t, filepath.Join("target", "arm-unknown-linux-gnueabi", "release", "rswerve"), p.Executable("rswerve", false))
	assert.Equal(t, filepath.Join("target", "arm-unknown-linux-gnueabi", "debug", "rswerve"), p.Executable("rswerve", true))
}

func TestProfile_Program(t *testing.T) {
	profiles := Profiles()

	assert.Equal(t, "rswerve", profiles[ProfilePackage].Program("rswerve"))
	assert.Equal(t, "/home/lvuser/rswerve", profiles[ProfilePackage].RemoteExecutable("rswerve"))
	assert.Equal(t, "frcUserProgram", profiles[ProfileFRC].Program("rswerve"))
	assert.Equal(t, "/home/lvuser/frcUserProgram", profiles[ProfileFRC].RemoteExecutable("rswerve"))
}

func TestProfile_Libraries(t *testing.T) {
	profiles := Profiles()
	lib := func(name string) string { return filepath.Join(SharedLibDir, name) }

	tests := []struct {
		name    string
		profile Profile
		debug   bool
		first   string
		last    string
		count   int
	}{
		{"package release", profiles[ProfilePackage], false, lib("libcameraserver.so"), lib("libwpiutil.so"), 6},
		{"package debug keeps names", profiles[ProfilePackage], true, lib("libcameraserver.so"), lib("libwpiutil.so"), 6},
		{"frc release", profiles[ProfileFRC], false, lib("libcameraserver.so"), lib("libCTRE_PhoenixDiagnostics.so"), 11},
		{"frc debug suffix", profiles[ProfileFRC], true, lib("libcameraserverd.so"), lib("libCTRE_PhoenixDiagnosticsd.so"), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			libs := tt.profile.Libraries(tt.debug)
			assert.Len(t, libs, tt.count)
			assert.Equal(t, tt.first, libs[0])
			assert.Equal(t, tt.last, libs[len(libs)-1])
		})
	}
}

func TestProfiles_AreIndependentCopies(t *testing.T) {
	a := Profiles()
	a[ProfilePackage].CoreLibs[0] = "changed"

	assert.Equal(t, "cameraserver", Profiles()[ProfilePackage].CoreLibs[0])
	assert.Equal(t, "cameraserver", WPILibLibs[0])
}
