// Package synthfs executes planned operations through a synthfs
// pipeline. It is the batch alternative to the installer's direct
// per-script loop: all operations are validated and added to one
// pipeline, then run in order.
package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/pybin/pkg/errors"
	"github.com/arthur-debert/pybin/pkg/logging"
	"github.com/arthur-debert/pybin/pkg/types"
)

// Executor executes pybin operations using synthfs
type Executor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewExecutor creates a new synthfs-based executor
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		logger:     logging.GetLogger("synthfs.executor"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// ExecuteOperations executes a list of operations through one pipeline.
// The first failing operation aborts the pipeline; completed work is
// not rolled back.
func (e *Executor) ExecuteOperations(ops []types.Operation) error {
	if e.dryRun {
		e.logger.Info().Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			e.logOperation(op)
		}
		return nil
	}

	// Aliases are force-replaced, but synthfs validates every
	// operation against the pre-run filesystem state: an existing
	// symlink fails validation before any delete in the same pipeline
	// could run. Remove existing targets up front.
	for _, op := range ops {
		if op.Type != types.OperationCreateSymlink {
			continue
		}
		if _, err := os.Lstat(op.Target); err == nil {
			e.logger.Debug().
				Str("target", op.Target).
				Msg("Removing existing file to allow overwrite")
			if err := os.Remove(op.Target); err != nil {
				e.logger.Warn().
					Err(err).
					Str("target", op.Target).
					Msg("Failed to remove existing file")
			}
		}
	}

	synthOps := make([]synthfs.Operation, 0, len(ops))
	for _, op := range ops {
		synthOp, err := e.convert(op)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOperationExecute,
				"failed to convert operation: %s", op.Description)
		}
		synthOps = append(synthOps, synthOp)
	}

	if len(synthOps) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrOperationExecute,
				"failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	executor := synthfs.NewExecutor()

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing operations")

	result := executor.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrapf(result.GetError(), errors.ErrOperationExecute,
			"failed to execute operations")
	}

	e.logger.Info().Msg("All operations executed successfully")
	return nil
}

// convert translates a pybin operation to a synthfs operation
func (e *Executor) convert(op types.Operation) (synthfs.Operation, error) {
	switch op.Type {
	case types.OperationCreateDir:
		return e.convertCreateDir(op)
	case types.OperationWriteFile:
		return e.convertWriteFile(op)
	case types.OperationCreateSymlink:
		return e.convertCreateSymlink(op)
	default:
		return nil, errors.Newf(errors.ErrOperationInvalid,
			"unsupported operation type: %s", op.Type)
	}
}

func (e *Executor) convertCreateDir(op types.Operation) (synthfs.Operation, error) {
	relPath, err := e.relTarget(op.Target)
	if err != nil {
		return nil, err
	}

	mode := fs.FileMode(0755)
	if op.Mode != nil {
		mode = fs.FileMode(*op.Mode)
	}

	e.logger.Debug().
		Str("target", op.Target).
		Str("mode", mode.String()).
		Msg("Creating directory operation")

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertWriteFile(op types.Operation) (synthfs.Operation, error) {
	relPath, err := e.relTarget(op.Target)
	if err != nil {
		return nil, err
	}

	mode := fs.FileMode(0644)
	if op.Mode != nil {
		mode = fs.FileMode(*op.Mode)
	}

	e.logger.Debug().
		Str("target", op.Target).
		Str("mode", mode.String()).
		Int("contentLen", len(op.Content)).
		Msg("Creating write file operation")

	opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: []byte(op.Content),
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertCreateSymlink(op types.Operation) (synthfs.Operation, error) {
	if op.Source == "" || op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"symlink operation requires source and target")
	}

	relPath, err := e.relTarget(op.Target)
	if err != nil {
		return nil, err
	}
	relSource, err := e.relTarget(op.Source)
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("source", op.Source).
		Str("target", op.Target).
		Msg("Creating symlink operation")

	opID := core.OperationID(fmt.Sprintf("symlink-%s", op.Target))
	symlinkOp := operations.NewCreateSymlinkOperation(opID, relPath)
	symlinkOp.SetDescriptionDetail("target", relSource)
	symlinkOp.SetItem(&symlinkItem{
		path:   relPath,
		target: relSource,
	})

	return synthfs.NewOperationsPackageAdapter(symlinkOp), nil
}

// relTarget converts an absolute path to the root-relative form
// synthfs expects
func (e *Executor) relTarget(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "operation requires target")
	}
	if !filepath.IsAbs(path) {
		return "", errors.Newf(errors.ErrInvalidInput,
			"operation target must be absolute: %s", path)
	}
	relPath, err := filepath.Rel("/", path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", path)
	}
	return relPath, nil
}

// logOperation logs details about an operation
func (e *Executor) logOperation(op types.Operation) {
	logger := e.logger.With().
		Str("type", string(op.Type)).
		Str("description", op.Description).
		Logger()

	switch op.Type {
	case types.OperationCreateSymlink:
		logger.Info().
			Str("source", op.Source).
			Str("target", op.Target).
			Msg("Would create symlink")
	case types.OperationCreateDir:
		logger.Info().
			Str("target", op.Target).
			Msg("Would create directory")
	case types.OperationWriteFile:
		logger.Info().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Would write file")
	default:
		logger.Info().Msg("Would execute operation")
	}
}

// Item types for synthfs operations

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

// symlinkItem implements the interface needed for symlink operations
type symlinkItem struct {
	path   string
	target string
}

func (s *symlinkItem) Path() string   { return s.path }
func (s *symlinkItem) Type() string   { return "symlink" }
func (s *symlinkItem) Target() string { return s.target }
