// Package list implements the list command: a scan of the install
// directory for files matching the recognized suffix. This is the
// authoritative view of what is installed, independent of any
// in-memory state from past runs.
package list

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/logging"
	"github.com/arthur-debert/pybin/pkg/types"
)

// ListScriptsOptions defines the options for the ListScripts command.
type ListScriptsOptions struct {
	Config     *config.Config
	FileSystem types.FS
}

// ListScriptsResult holds the installed files found.
type ListScriptsResult struct {
	Files []types.InstalledFile
}

// ListScripts scans the install directory and returns every file with
// the recognized suffix. A missing install directory means nothing has
// been installed yet and yields an empty result, not an error.
func ListScripts(opts ListScriptsOptions) (*ListScriptsResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("installDir", opts.Config.InstallDir).Msg("Executing command")

	entries, err := opts.FileSystem.ReadDir(opts.Config.InstallDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListScriptsResult{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read install directory").
			WithDetail("path", opts.Config.InstallDir)
	}

	result := &ListScriptsResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, opts.Config.Suffix) {
			continue
		}

		path := filepath.Join(opts.Config.InstallDir, name)
		executable := false
		if info, err := opts.FileSystem.Stat(path); err == nil {
			executable = info.Mode()&0111 != 0
		}

		result.Files = append(result.Files, types.InstalledFile{
			Filename:   name,
			Path:       path,
			Executable: executable,
		})
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Filename < result.Files[j].Filename
	})

	log.Info().Int("count", len(result.Files)).Msg("Command finished")
	return result, nil
}
