package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvTeam, EnvUser, EnvProfile, EnvAddress} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	settings, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 846, settings.Team)
	assert.Equal(t, "admin", settings.User)
	assert.Equal(t, ProfilePackage, settings.Profile)
	assert.Empty(t, settings.Address)
	assert.Contains(t, settings.Profiles, ProfilePackage)
	assert.Contains(t, settings.Profiles, ProfileFRC)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	yaml := `team: 1234
user: operator
profile: frc
profiles:
  frc:
    vendor_libs: [CTRE_Phoenix]
  sim:
    core_libs: [wpiutil]
    program_name: simProgram
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644))
	t.Setenv(EnvUser, "lvadmin")

	settings, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1234, settings.Team)
	assert.Equal(t, "lvadmin", settings.User, "environment wins over the file")
	assert.Equal(t, ProfileFRC, settings.Profile)

	frc, err := settings.LookupProfile(ProfileFRC)
	require.NoError(t, err)
	assert.Equal(t, []string{"CTRE_Phoenix"}, frc.VendorLibs)
	assert.Equal(t, WPILibLibs, frc.CoreLibs, "unset fields keep the built-in value")
	assert.Equal(t, "frcUserProgram", frc.ProgramName)

	sim, err := settings.LookupProfile("sim")
	require.NoError(t, err)
	assert.Equal(t, "sim", sim.Name)
	assert.Equal(t, SharedLibDir, sim.SharedLibDir)
	assert.Equal(t, "simProgram", sim.Program("rswerve"))
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FRC_DEPLOY_TEAM=254\nFRC_DEPLOY_ADDRESS=10.2.54.2\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv(EnvTeam)
		os.Unsetenv(EnvAddress)
	})

	// godotenv does not override variables that are already set, even to "".
	os.Unsetenv(EnvTeam)
	os.Unsetenv(EnvAddress)

	settings, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 254, settings.Team)
	assert.Equal(t, "10.2.54.2", settings.Address)
}

func TestLoad_InvalidTeam(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTeam, "not-a-team")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, EnvTeam)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	require.NoError(t, os.WriteFile(path, []byte("team: [1, 2"), 0644))
	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse config")

	require.NoError(t, os.WriteFile(path, []byte("team: 99999"), 0644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "out of range")
}

func TestLookupProfile_Unknown(t *testing.T) {
	settings := &Settings{Profiles: Profiles()}
	_, err := settings.LookupProfile("gradle")
	assert.ErrorContains(t, err, `unknown profile "gradle"`)
}

func TestOptions_BuildMode(t *testing.T) {
	assert.Equal(t, "release", Options{}.BuildMode())
	assert.Equal(t, "debug", Options{Debug: true}.BuildMode())
}
