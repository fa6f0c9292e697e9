package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithExplicitRoot(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, p.ScriptsRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvScriptsRoot, dir)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, dir, p.ScriptsRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFallsBackToCwd(t *testing.T) {
	t.Setenv(EnvScriptsRoot, "")

	p, err := New("")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, p.ScriptsRoot())
	assert.True(t, p.UsedFallback())
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, dir, p.ConfigDir())
	assert.Equal(t, filepath.Join(dir, UserConfigFile), p.UserConfigPath())
}

func TestSourceConfigPath(t *testing.T) {
	dir := t.TempDir()

	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, SourceConfigFile), p.SourceConfigPath())
}

func TestLogFilePathRespectsStateHome(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(state, AppDirName, LogFileName), p.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "scripts"), ExpandHome("~/scripts"))
	assert.Equal(t, "/opt/scripts", ExpandHome("/opt/scripts"))
	assert.Equal(t, "~user/scripts", ExpandHome("~user/scripts"))
}

func TestNormalizePath(t *testing.T) {
	p, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = p.NormalizePath("")
	assert.Error(t, err)

	got, err := p.NormalizePath("/a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", got)
}
