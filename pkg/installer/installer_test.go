package installer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/filesystem"
	"github.com/arthur-debert/pybin/pkg/installer"
	"github.com/arthur-debert/pybin/pkg/types"
)

type fixture struct {
	root string
	cfg  *config.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	base := t.TempDir()
	return &fixture{
		root: filepath.Join(base, "scripts"),
		cfg: &config.Config{
			InstallDir: filepath.Join(base, "lib"),
			BinDir:     filepath.Join(base, "bin"),
			Suffix:     ".py",
		},
	}
}

func (f *fixture) writeScript(t *testing.T, relPath, content string) {
	t.Helper()
	path := filepath.Join(f.root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func (f *fixture) install(t *testing.T, opts installer.Options) (*types.InstallResult, error) {
	t.Helper()
	return installer.New(filesystem.NewOS(), f.cfg, opts).Install(f.root)
}

func TestInstallCopiesAndAliases(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")
	f.writeScript(t, "tools/combine.py", "print('combine')")

	result, err := f.install(t, installer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.False(t, result.DryRun)

	// Copy has the source content and the executable bit
	copyPath := filepath.Join(f.cfg.InstallDir, "hello.py")
	data, err := os.ReadFile(copyPath)
	require.NoError(t, err)
	assert.Equal(t, "print('hello')", string(data))

	info, err := os.Stat(copyPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111, "copy should be executable")

	// Alias resolves to the copy
	alias := filepath.Join(f.cfg.BinDir, "combine")
	target, err := os.Readlink(alias)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.InstallDir, "combine.py"), target)
}

func TestInstallIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")

	first, err := f.install(t, installer.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, first.Count)

	second, err := f.install(t, installer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Count)
	assert.True(t, second.Installed[0].Replaced)

	data, err := os.ReadFile(filepath.Join(f.cfg.InstallDir, "hello.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hello')", string(data))

	target, err := os.Readlink(filepath.Join(f.cfg.BinDir, "hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.InstallDir, "hello.py"), target)
}

func TestInstallCollisionLastWriteWins(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "a/hello.py", "print('a')")
	f.writeScript(t, "b/hello.py", "print('b')")

	result, err := f.install(t, installer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	// Exactly one alias exists and it points at the single copy
	entries, err := os.ReadDir(f.cfg.BinDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Name())

	target, err := os.Readlink(filepath.Join(f.cfg.BinDir, "hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.InstallDir, "hello.py"), target)

	// The copy is whichever candidate was processed last
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, []string{"print('a')", "print('b')"}, string(data))
}

func TestInstallZeroCandidates(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.root, 0755))

	result, err := f.install(t, installer.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Installed)
}

func TestInstallMissingRootMutatesNothing(t *testing.T) {
	f := newFixture(t)
	// root is never created

	_, err := f.install(t, installer.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound))

	_, statErr := os.Stat(f.cfg.InstallDir)
	assert.True(t, os.IsNotExist(statErr), "install dir must not be created")
	_, statErr = os.Stat(f.cfg.BinDir)
	assert.True(t, os.IsNotExist(statErr), "bin dir must not be created")
}

func TestInstallDryRunMutatesNothing(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")

	var seen []types.InstalledScript
	result, err := f.install(t, installer.Options{
		DryRun:    true,
		OnInstall: func(s types.InstalledScript) { seen = append(seen, s) },
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Count)
	assert.Len(t, seen, 1)

	_, statErr := os.Stat(f.cfg.InstallDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstallReplacesForeignAlias(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")

	// Something else already owns the alias name
	require.NoError(t, os.MkdirAll(f.cfg.BinDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.BinDir, "hello"), []byte("#!/bin/sh\n"), 0755))

	_, err := f.install(t, installer.Options{})
	require.NoError(t, err)

	target, err := os.Readlink(filepath.Join(f.cfg.BinDir, "hello"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.cfg.InstallDir, "hello.py"), target)
}

func TestEnsureInstallDirIdempotent(t *testing.T) {
	f := newFixture(t)
	inst := installer.New(filesystem.NewOS(), f.cfg, installer.Options{})

	require.NoError(t, inst.EnsureInstallDir())
	require.NoError(t, inst.EnsureInstallDir())

	info, err := os.Stat(f.cfg.InstallDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPlanEmitsOperations(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")

	inst := installer.New(filesystem.NewOS(), f.cfg, installer.Options{})
	ops, planned, err := inst.Plan(f.root)
	require.NoError(t, err)
	require.Len(t, planned, 1)

	// Two dir creations, one write, one symlink
	assert.Equal(t, []types.OperationType{
		types.OperationCreateDir,
		types.OperationCreateDir,
		types.OperationWriteFile,
		types.OperationCreateSymlink,
	}, opTypes(ops))
}

func opTypes(ops []types.Operation) []types.OperationType {
	var seen []types.OperationType
	for _, op := range ops {
		seen = append(seen, op.Type)
	}
	return seen
}

func TestPlanRerunEmitsSameOperations(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "hello.py", "print('hello')")

	_, err := f.install(t, installer.Options{})
	require.NoError(t, err)

	// A plan over an already-installed tree must not schedule deletes:
	// the batch executor validates against the pre-run filesystem, so
	// replacement happens there, not in the pipeline.
	inst := installer.New(filesystem.NewOS(), f.cfg, installer.Options{})
	ops, planned, err := inst.Plan(f.root)
	require.NoError(t, err)
	require.Len(t, planned, 1)
	assert.True(t, planned[0].Replaced)

	assert.Equal(t, []types.OperationType{
		types.OperationCreateDir,
		types.OperationCreateDir,
		types.OperationWriteFile,
		types.OperationCreateSymlink,
	}, opTypes(ops))
}

func TestPlanCollisionLastWriteWins(t *testing.T) {
	f := newFixture(t)
	f.writeScript(t, "a/hello.py", "print('a')")
	f.writeScript(t, "b/hello.py", "print('b')")

	inst := installer.New(filesystem.NewOS(), f.cfg, installer.Options{})
	ops, planned, err := inst.Plan(f.root)
	require.NoError(t, err)

	// Both candidates are reported, but only the last-processed one
	// becomes operations: a pipeline rejects duplicate targets.
	require.Len(t, planned, 2)
	assert.Equal(t, []types.OperationType{
		types.OperationCreateDir,
		types.OperationCreateDir,
		types.OperationWriteFile,
		types.OperationCreateSymlink,
	}, opTypes(ops))

	for _, op := range ops {
		if op.Type == types.OperationWriteFile {
			assert.Equal(t, "print('b')", op.Content)
		}
	}
}

func TestPlanEmptyRoot(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.MkdirAll(f.root, 0755))

	inst := installer.New(filesystem.NewOS(), f.cfg, installer.Options{})
	ops, planned, err := inst.Plan(f.root)
	require.NoError(t, err)
	assert.Empty(t, ops)
	assert.Empty(t, planned)
}
