// Package install implements the install command: one full pass that
// copies every candidate script and exposes it as a command.
package install

import (
	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/installer"
	"github.com/arthur-debert/pybin/pkg/logging"
	"github.com/arthur-debert/pybin/pkg/synthfs"
	"github.com/arthur-debert/pybin/pkg/types"
)

// InstallScriptsOptions defines the options for the InstallScripts command.
type InstallScriptsOptions struct {
	// ScriptsRoot is the directory holding the candidate scripts.
	ScriptsRoot string
	// Config carries the resolved install and bin directories.
	Config *config.Config
	// FileSystem is the filesystem to operate through.
	FileSystem types.FS
	// DryRun specifies whether to perform a dry run without making changes.
	DryRun bool
	// Batch executes the pass through the synthfs pipeline executor
	// instead of the direct per-script loop.
	Batch bool
	// OnInstall, if set, receives each processed script for progress display.
	OnInstall func(types.InstalledScript)
}

// InstallScripts runs one install pass and returns the result.
func InstallScripts(opts InstallScriptsOptions) (*types.InstallResult, error) {
	log := logging.GetLogger("commands.install")
	log.Debug().
		Str("scriptsRoot", opts.ScriptsRoot).
		Bool("dryRun", opts.DryRun).
		Bool("batch", opts.Batch).
		Msg("Executing command")

	inst := installer.New(opts.FileSystem, opts.Config, installer.Options{
		DryRun:    opts.DryRun,
		OnInstall: opts.OnInstall,
	})

	var result *types.InstallResult
	var err error
	if opts.Batch {
		result, err = installBatch(inst, opts)
	} else {
		result, err = inst.Install(opts.ScriptsRoot)
	}

	if err != nil {
		log.Error().Err(err).Msg("Install failed")
		return nil, err
	}

	log.Info().Int("count", result.Count).Msg("Command finished")
	return result, nil
}

// installBatch plans the pass and hands the operations to the synthfs
// executor in one pipeline.
func installBatch(inst *installer.Installer, opts InstallScriptsOptions) (*types.InstallResult, error) {
	ops, planned, err := inst.Plan(opts.ScriptsRoot)
	if err != nil {
		return nil, err
	}

	executor := synthfs.NewExecutor(opts.DryRun)
	if err := executor.ExecuteOperations(ops); err != nil {
		return nil, err
	}

	result := &types.InstallResult{DryRun: opts.DryRun}
	for _, s := range planned {
		result.Installed = append(result.Installed, s)
		result.Count++
		if opts.OnInstall != nil {
			opts.OnInstall(s)
		}
	}
	return result, nil
}
