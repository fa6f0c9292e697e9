package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pybin/pkg/scripts"
)

func TestAferoFS_BasicOps(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/scripts/tools", 0755))
	require.NoError(t, fsys.WriteFile("/scripts/hello.py", []byte("pass\n"), 0644))

	data, err := fsys.ReadFile("/scripts/hello.py")
	require.NoError(t, err)
	assert.Equal(t, "pass\n", string(data))

	// Reading a directory as a file must fail
	_, err = fsys.ReadFile("/scripts/tools")
	assert.Error(t, err)

	entries, err := fsys.ReadDir("/scripts")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAferoFS_SymlinkSimulation(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/bin", 0755))
	require.NoError(t, fsys.Symlink("/lib/pybin/hello.py", "/bin/hello"))

	target, err := fsys.Readlink("/bin/hello")
	require.NoError(t, err)
	assert.Equal(t, "/lib/pybin/hello.py", target)
}

func TestAferoFS_Discovery(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/scripts/tools", 0755))
	require.NoError(t, fsys.WriteFile("/scripts/hello.py", []byte("pass\n"), 0644))
	require.NoError(t, fsys.WriteFile("/scripts/tools/backup.py", []byte("pass\n"), 0644))
	require.NoError(t, fsys.WriteFile("/scripts/notes.txt", []byte("not a script\n"), 0644))

	found, err := scripts.Discover(fsys, "/scripts", ".py")
	require.NoError(t, err)

	var names []string
	for _, s := range found {
		names = append(names, s.Command)
	}
	assert.ElementsMatch(t, []string{"hello", "backup"}, names)
}
