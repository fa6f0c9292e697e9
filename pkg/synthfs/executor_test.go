package synthfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pybin/pkg/types"
)

func modePtr(mode uint32) *uint32 {
	return &mode
}

func TestConvertCreateDir(t *testing.T) {
	e := NewExecutor(false)

	op, err := e.convert(types.Operation{
		Type:        types.OperationCreateDir,
		Target:      "/usr/local/lib/pybin",
		Mode:        modePtr(0755),
		Description: "create install directory",
	})
	require.NoError(t, err)
	assert.NotNil(t, op)
}

func TestConvertWriteFile(t *testing.T) {
	e := NewExecutor(false)

	op, err := e.convert(types.Operation{
		Type:        types.OperationWriteFile,
		Target:      "/usr/local/lib/pybin/hello.py",
		Content:     "print('hello')",
		Mode:        modePtr(0755),
		Description: "install copy of hello.py",
	})
	require.NoError(t, err)
	assert.NotNil(t, op)
}

func TestConvertCreateSymlink(t *testing.T) {
	e := NewExecutor(false)

	op, err := e.convert(types.Operation{
		Type:        types.OperationCreateSymlink,
		Source:      "/usr/local/lib/pybin/hello.py",
		Target:      "/usr/local/bin/hello",
		Description: "alias hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, op)
}

func TestConvertSymlinkRequiresSourceAndTarget(t *testing.T) {
	e := NewExecutor(false)

	_, err := e.convert(types.Operation{
		Type:   types.OperationCreateSymlink,
		Target: "/usr/local/bin/hello",
	})
	assert.Error(t, err)
}

func TestConvertRejectsRelativeTarget(t *testing.T) {
	e := NewExecutor(false)

	_, err := e.convert(types.Operation{
		Type:   types.OperationCreateDir,
		Target: "relative/path",
	})
	assert.Error(t, err)
}

func TestConvertUnsupportedType(t *testing.T) {
	e := NewExecutor(false)

	_, err := e.convert(types.Operation{
		Type:   types.OperationType("checksum"),
		Target: "/somewhere",
	})
	assert.Error(t, err)
}

func TestExecuteOperationsDryRun(t *testing.T) {
	e := NewExecutor(true)

	// Dry run never touches the pipeline, so even an invalid
	// operation list succeeds
	err := e.ExecuteOperations([]types.Operation{
		{Type: types.OperationCreateDir, Target: "/usr/local/lib/pybin"},
		{Type: types.OperationType("bogus")},
	})
	assert.NoError(t, err)
}

func TestExecuteOperationsEmpty(t *testing.T) {
	e := NewExecutor(false)
	assert.NoError(t, e.ExecuteOperations(nil))
}

func TestExecuteOperationsReplacesExistingSymlink(t *testing.T) {
	base := t.TempDir()
	oldTarget := filepath.Join(base, "old.py")
	newTarget := filepath.Join(base, "new.py")
	alias := filepath.Join(base, "hello")

	require.NoError(t, os.WriteFile(oldTarget, []byte("old"), 0755))
	require.NoError(t, os.WriteFile(newTarget, []byte("new"), 0755))
	require.NoError(t, os.Symlink(oldTarget, alias))

	// The pipeline validates against the pre-run state, so the
	// executor must clear the existing link before running
	e := NewExecutor(false)
	err := e.ExecuteOperations([]types.Operation{{
		Type:        types.OperationCreateSymlink,
		Source:      newTarget,
		Target:      alias,
		Description: "alias hello",
	}})
	require.NoError(t, err)

	resolved, err := os.Readlink(alias)
	require.NoError(t, err)
	assert.Equal(t, newTarget, resolved)
}
