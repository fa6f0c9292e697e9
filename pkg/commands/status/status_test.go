package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pybin/pkg/commands/install"
	"github.com/arthur-debert/pybin/pkg/commands/status"
	"github.com/arthur-debert/pybin/pkg/testutil"
	"github.com/arthur-debert/pybin/pkg/types"
)

func installScripts(t *testing.T, env *testutil.TestEnvironment) {
	t.Helper()
	_, err := install.InstallScripts(install.InstallScriptsOptions{
		ScriptsRoot: env.ScriptsRoot,
		Config:      env.Config,
		FileSystem:  env.FS,
	})
	require.NoError(t, err)
}

func TestStatusEmptyBinDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	result, err := status.Status(status.StatusOptions{
		Config:     env.Config,
		FileSystem: env.FS,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Aliases)
}

func TestStatusHealthyAliases(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteScript("hello.py", "print('hello')")
	installScripts(t, env)

	result, err := status.Status(status.StatusOptions{
		Config:     env.Config,
		FileSystem: env.FS,
	})

	require.NoError(t, err)
	require.Len(t, result.Aliases, 1)
	assert.Equal(t, "hello", result.Aliases[0].Name)
	assert.Equal(t, types.AliasOK, result.Aliases[0].State)
}

func TestStatusDanglingAlias(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteScript("hello.py", "print('hello')")
	installScripts(t, env)

	require.NoError(t, os.Remove(env.InstalledPath("hello.py")))

	result, err := status.Status(status.StatusOptions{
		Config:     env.Config,
		FileSystem: env.FS,
	})

	require.NoError(t, err)
	require.Len(t, result.Aliases, 1)
	assert.Equal(t, types.AliasDangling, result.Aliases[0].State)
}

func TestStatusNotExecutable(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteScript("hello.py", "print('hello')")
	installScripts(t, env)

	require.NoError(t, os.Chmod(env.InstalledPath("hello.py"), 0644))

	result, err := status.Status(status.StatusOptions{
		Config:     env.Config,
		FileSystem: env.FS,
	})

	require.NoError(t, err)
	require.Len(t, result.Aliases, 1)
	assert.Equal(t, types.AliasNotExecutable, result.Aliases[0].State)
}

func TestStatusIgnoresForeignEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteScript("hello.py", "print('hello')")
	installScripts(t, env)

	// A plain file and a symlink pointing elsewhere
	require.NoError(t, os.WriteFile(filepath.Join(env.BinDir, "other"), []byte("#!/bin/sh\n"), 0755))
	foreign := filepath.Join(t.TempDir(), "foreign")
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0644))
	require.NoError(t, os.Symlink(foreign, filepath.Join(env.BinDir, "elsewhere")))

	result, err := status.Status(status.StatusOptions{
		Config:     env.Config,
		FileSystem: env.FS,
	})

	require.NoError(t, err)
	require.Len(t, result.Aliases, 1)
	assert.Equal(t, "hello", result.Aliases[0].Name)
}
