// Package testutil provides shared helpers for pybin's tests:
// isolated on-disk environments wired through the same configuration
// the commands consume.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/filesystem"
	"github.com/arthur-debert/pybin/pkg/paths"
	"github.com/arthur-debert/pybin/pkg/types"
)

// TestEnvironment provides an isolated filesystem layout for a test:
// a scripts root, an install directory, and a bin directory, all under
// a temp dir that is cleaned up automatically.
type TestEnvironment struct {
	ScriptsRoot string
	InstallDir  string
	BinDir      string
	ConfigDir   string

	Config *config.Config
	FS     types.FS

	t *testing.T
}

// NewTestEnvironment creates an isolated environment and points the
// PYBIN_* environment variables at it.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	base := t.TempDir()
	env := &TestEnvironment{
		ScriptsRoot: filepath.Join(base, "scripts"),
		InstallDir:  filepath.Join(base, "lib"),
		BinDir:      filepath.Join(base, "bin"),
		ConfigDir:   filepath.Join(base, "config"),
		FS:          filesystem.NewOS(),
		t:           t,
	}

	if err := os.MkdirAll(env.ScriptsRoot, 0755); err != nil {
		t.Fatalf("failed to create scripts root: %v", err)
	}

	t.Setenv(paths.EnvScriptsRoot, env.ScriptsRoot)
	t.Setenv(paths.EnvInstallDir, env.InstallDir)
	t.Setenv(paths.EnvBinDir, env.BinDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)

	env.Config = &config.Config{
		InstallDir: env.InstallDir,
		BinDir:     env.BinDir,
		Suffix:     ".py",
	}

	return env
}

// WriteScript creates a file under the scripts root
func (env *TestEnvironment) WriteScript(relPath, content string) {
	env.t.Helper()

	path := filepath.Join(env.ScriptsRoot, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create script directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write script: %v", err)
	}
}

// InstalledPath returns the expected copy path for a filename
func (env *TestEnvironment) InstalledPath(filename string) string {
	return filepath.Join(env.InstallDir, filename)
}

// AliasPath returns the expected alias path for a command name
func (env *TestEnvironment) AliasPath(command string) string {
	return filepath.Join(env.BinDir, command)
}
