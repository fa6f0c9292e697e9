// Package installer materializes discovered scripts: an executable
// copy in the install directory plus a command alias (symlink) in the
// bin directory, one script at a time, fail-fast.
package installer

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/logging"
	"github.com/arthur-debert/pybin/pkg/scripts"
	"github.com/arthur-debert/pybin/pkg/types"
)

// ScriptMode is the mode applied to installed copies
const ScriptMode fs.FileMode = 0755

// Options configures an Installer
type Options struct {
	// DryRun logs planned work without mutating the filesystem
	DryRun bool

	// OnInstall, if set, is called after each script is processed.
	// It exists for progress reporting and is not part of the
	// functional contract.
	OnInstall func(types.InstalledScript)
}

// Installer copies scripts into the install directory and exposes
// them as commands
type Installer struct {
	fs     types.FS
	cfg    *config.Config
	opts   Options
	logger zerolog.Logger
}

// New creates an Installer operating through the given filesystem
func New(fsys types.FS, cfg *config.Config, opts Options) *Installer {
	return &Installer{
		fs:     fsys,
		cfg:    cfg,
		opts:   opts,
		logger: logging.GetLogger("installer"),
	}
}

// EnsureInstallDir creates the install directory if absent. Idempotent.
func (i *Installer) EnsureInstallDir() error {
	if err := i.fs.MkdirAll(i.cfg.InstallDir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create install directory").
			WithDetail("path", i.cfg.InstallDir)
	}
	return nil
}

// Install runs one full pass: validate the scripts root, ensure the
// install directory, then copy and alias every candidate. The first
// failure aborts the run; work already done is not rolled back.
func (i *Installer) Install(root string) (*types.InstallResult, error) {
	done := logging.LogOperationStart(i.logger, "install")
	defer done()

	candidates, err := scripts.Discover(i.fs, root, i.cfg.Suffix)
	if err != nil {
		return nil, err
	}

	result := &types.InstallResult{DryRun: i.opts.DryRun}

	if i.opts.DryRun {
		for _, s := range candidates {
			installed := i.preview(s)
			i.logger.Info().
				Str("script", s.Path).
				Str("target", installed.Target).
				Str("alias", installed.Alias).
				Msg("Would install script")
			result.Installed = append(result.Installed, installed)
			result.Count++
			if i.opts.OnInstall != nil {
				i.opts.OnInstall(installed)
			}
		}
		return result, nil
	}

	if err := i.EnsureInstallDir(); err != nil {
		return nil, err
	}

	for _, s := range candidates {
		installed, err := i.installOne(s)
		if err != nil {
			return nil, err
		}
		result.Installed = append(result.Installed, installed)
		result.Count++
		if i.opts.OnInstall != nil {
			i.opts.OnInstall(installed)
		}
	}

	return result, nil
}

// installOne copies a single script, marks it executable, and
// force-replaces its command alias
func (i *Installer) installOne(s types.Script) (types.InstalledScript, error) {
	installed := i.preview(s)

	i.logger.Debug().
		Str("script", s.Path).
		Str("target", installed.Target).
		Msg("Installing script")

	if installed.Replaced {
		// Repeat run or a base-name collision in another subdirectory.
		// Last write wins.
		i.logger.Debug().
			Str("target", installed.Target).
			Msg("Overwriting existing copy")
	}

	data, err := i.fs.ReadFile(s.Path)
	if err != nil {
		return installed, errors.Wrapf(err, errors.ErrFileAccess, "failed to read script %s", s.Path)
	}

	if err := i.fs.WriteFile(installed.Target, data, ScriptMode); err != nil {
		return installed, errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s", s.Filename).
			WithDetail("target", installed.Target)
	}

	// WriteFile leaves the old mode in place when the copy already
	// existed, so the executable bit is set explicitly.
	if err := i.fs.Chmod(installed.Target, ScriptMode); err != nil {
		return installed, errors.Wrapf(err, errors.ErrFileChmod, "failed to mark %s executable", installed.Target)
	}

	if err := i.createAlias(installed.Target, installed.Alias); err != nil {
		return installed, err
	}

	i.logger.Info().
		Str("command", s.Command).
		Str("alias", installed.Alias).
		Msg("Installed script")

	return installed, nil
}

// createAlias force-creates the command symlink, replacing whatever
// is at the alias path
func (i *Installer) createAlias(target, alias string) error {
	if err := i.fs.MkdirAll(filepath.Dir(alias), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create bin directory").
			WithDetail("path", filepath.Dir(alias))
	}

	if _, err := i.fs.Lstat(alias); err == nil {
		if err := i.fs.Remove(alias); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to remove existing alias %s", alias)
		}
	}

	if err := i.fs.Symlink(target, alias); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create alias %s", alias)
	}

	return nil
}

// preview computes the destination paths for a script without touching
// the filesystem beyond an existence probe
func (i *Installer) preview(s types.Script) types.InstalledScript {
	target := filepath.Join(i.cfg.InstallDir, s.Filename)
	_, err := i.fs.Lstat(target)
	return types.InstalledScript{
		Script:   s,
		Target:   target,
		Alias:    filepath.Join(i.cfg.BinDir, s.Command),
		Replaced: err == nil,
	}
}

// Plan converts a full pass into low-level operations for the batch
// executor. The operation list mirrors what Install does directly:
// ensure directories, write each copy with the executable mode, create
// the symlink. Replacement of pre-existing aliases is the executor's
// job; scheduling a delete in the same pipeline would fail validation,
// which checks every operation against the pre-run filesystem state.
func (i *Installer) Plan(root string) ([]types.Operation, []types.InstalledScript, error) {
	candidates, err := scripts.Discover(i.fs, root, i.cfg.Suffix)
	if err != nil {
		return nil, nil, err
	}

	var ops []types.Operation
	var planned []types.InstalledScript

	if len(candidates) == 0 {
		return ops, planned, nil
	}

	mode := uint32(ScriptMode)
	ops = append(ops,
		types.Operation{
			Type:        types.OperationCreateDir,
			Target:      i.cfg.InstallDir,
			Mode:        &mode,
			Description: "create install directory",
		},
		types.Operation{
			Type:        types.OperationCreateDir,
			Target:      i.cfg.BinDir,
			Mode:        &mode,
			Description: "create bin directory",
		},
	)

	// Base-name collisions collapse to one write: the last-processed
	// candidate wins, matching the direct path's overwrite order. A
	// pipeline rejects two operations on the same target, so the
	// losers never become operations.
	winner := make(map[string]int)
	for idx, s := range candidates {
		winner[filepath.Join(i.cfg.InstallDir, s.Filename)] = idx
	}

	for idx, s := range candidates {
		installed := i.preview(s)
		planned = append(planned, installed)

		if winner[installed.Target] != idx {
			i.logger.Debug().
				Str("script", s.Path).
				Str("target", installed.Target).
				Msg("Base-name collision, last write wins")
			continue
		}

		data, err := i.fs.ReadFile(s.Path)
		if err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read script %s", s.Path)
		}

		ops = append(ops, types.Operation{
			Type:        types.OperationWriteFile,
			Target:      installed.Target,
			Content:     string(data),
			Mode:        &mode,
			Description: "install copy of " + s.Filename,
		})

		ops = append(ops, types.Operation{
			Type:        types.OperationCreateSymlink,
			Source:      installed.Target,
			Target:      installed.Alias,
			Description: "alias " + s.Command,
		})
	}

	return ops, planned, nil
}
