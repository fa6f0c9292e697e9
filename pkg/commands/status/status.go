// Package status implements the status command: a health check of
// the command aliases in the bin directory. Only symlinks pointing
// into the install directory are pybin's; everything else in the bin
// directory is left alone and unreported.
package status

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

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	Config     *config.Config
	FileSystem types.FS
}

// StatusResult holds the alias health report.
type StatusResult struct {
	Aliases []types.AliasStatus
}

// Status inspects every symlink in the bin directory that targets the
// install directory and classifies it. The report verifies the
// install invariant: every alias resolves to an executable copy.
func Status(opts StatusOptions) (*StatusResult, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("binDir", opts.Config.BinDir).Msg("Executing command")

	entries, err := opts.FileSystem.ReadDir(opts.Config.BinDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &StatusResult{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read bin directory").
			WithDetail("path", opts.Config.BinDir)
	}

	result := &StatusResult{}
	for _, entry := range entries {
		name := entry.Name()
		aliasPath := filepath.Join(opts.Config.BinDir, name)

		info, err := opts.FileSystem.Lstat(aliasPath)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			continue
		}

		target, err := opts.FileSystem.Readlink(aliasPath)
		if err != nil {
			continue
		}
		if !isWithin(target, opts.Config.InstallDir) {
			// Foreign symlink, not ours
			continue
		}

		result.Aliases = append(result.Aliases, types.AliasStatus{
			Name:   name,
			Path:   aliasPath,
			Target: target,
			State:  classify(opts.FileSystem, target),
		})
	}

	sort.Slice(result.Aliases, func(i, j int) bool {
		return result.Aliases[i].Name < result.Aliases[j].Name
	})

	log.Info().Int("count", len(result.Aliases)).Msg("Command finished")
	return result, nil
}

// classify resolves one alias target
func classify(fsys types.FS, target string) types.AliasState {
	info, err := fsys.Stat(target)
	if err != nil {
		return types.AliasDangling
	}
	if info.Mode()&0111 == 0 {
		return types.AliasNotExecutable
	}
	return types.AliasOK
}

// isWithin checks if path is inside parent
func isWithin(path, parent string) bool {
	rel, err := filepath.Rel(filepath.Clean(parent), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, "../")
}
