// Package scripts discovers candidate files under the scripts root.
// A candidate is any regular file whose name ends with the configured
// suffix; its command name is the filename with the suffix stripped.
package scripts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/logging"
	"github.com/arthur-debert/pybin/pkg/types"
)

// ValidateRoot checks that the scripts root exists and is a directory.
// This is the fatal precondition of every install run: it must pass
// before any mutation is attempted.
func ValidateRoot(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrRootNotFound, "scripts root does not exist").
				WithDetail("path", root)
		}
		return errors.Wrap(err, errors.ErrRootAccess, "cannot access scripts root").
			WithDetail("path", root)
	}

	if !info.IsDir() {
		return errors.New(errors.ErrRootInvalid, "scripts root is not a directory").
			WithDetail("path", root)
	}

	return nil
}

// Discover recursively walks the scripts root and returns every
// regular file whose name ends with suffix. Hidden directories are
// skipped. Order is lexical per directory; callers must not rely on
// any ordering across subdirectories.
func Discover(fsys types.FS, root, suffix string) ([]types.Script, error) {
	logger := logging.GetLogger("scripts.discovery")
	logger.Trace().Str("root", root).Str("suffix", suffix).Msg("Discovering candidates")

	if err := ValidateRoot(fsys, root); err != nil {
		return nil, err
	}

	var found []types.Script
	if err := walk(fsys, root, suffix, &found); err != nil {
		return nil, err
	}

	logger.Debug().Int("count", len(found)).Msg("Discovery finished")
	return found, nil
}

func walk(fsys types.FS, dir, suffix string, found *[]types.Script) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read directory").
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if strings.HasPrefix(name, ".") {
				continue
			}
			if err := walk(fsys, path, suffix, found); err != nil {
				return err
			}
			continue
		}

		if !entry.Type().IsRegular() {
			continue
		}

		if !IsCandidate(name, suffix) {
			continue
		}

		*found = append(*found, types.Script{
			Path:     path,
			Filename: name,
			Command:  CommandName(name, suffix),
		})
	}

	return nil
}

// IsCandidate reports whether filename matches the recognized suffix.
// A file whose whole name is the suffix has no command name left and
// is not a candidate.
func IsCandidate(filename, suffix string) bool {
	return strings.HasSuffix(filename, suffix) && filename != suffix
}

// CommandName derives the command name from a candidate filename
func CommandName(filename, suffix string) string {
	return strings.TrimSuffix(filename, suffix)
}
