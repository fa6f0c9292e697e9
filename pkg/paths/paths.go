// Package paths provides centralized path handling for pybin.
// It follows the XDG Base Directory layout and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pybin/pkg/errors"
)

// Environment variable names
const (
	// EnvScriptsRoot is the primary environment variable for the scripts location
	EnvScriptsRoot = "PYBIN_SCRIPTS_ROOT"

	// EnvInstallDir overrides the install directory
	EnvInstallDir = "PYBIN_INSTALL_DIR"

	// EnvBinDir overrides the bin (link) directory
	EnvBinDir = "PYBIN_BIN_DIR"

	// EnvConfigDir overrides the XDG config directory for pybin
	EnvConfigDir = "PYBIN_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for pybin-specific files
	AppDirName = "pybin"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "pybin.toml"

	// SourceConfigFile is the name of the per-scripts-root configuration file
	SourceConfigFile = ".pybin.toml"

	// LogFileName is the name of the log file
	LogFileName = "pybin.log"
)

// Paths provides centralized path management for pybin
type Paths interface {
	ScriptsRoot() string
	UsedFallback() bool
	ConfigDir() string
	UserConfigPath() string
	SourceConfigPath() string
	StateDir() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	// scriptsRoot is the directory holding the candidate scripts
	scriptsRoot string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given scripts root.
// If scriptsRoot is empty, it will be determined from environment
// variables or defaults.
func New(scriptsRoot string) (Paths, error) {
	p := &paths{}

	if scriptsRoot == "" {
		root, usedFallback, err := findScriptsRoot()
		if err != nil {
			return nil, err
		}
		p.scriptsRoot = root
		p.usedFallback = usedFallback
	} else {
		p.scriptsRoot = expandHome(scriptsRoot)
		p.usedFallback = false
	}

	// Ensure scripts root is absolute
	absRoot, err := filepath.Abs(p.scriptsRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for scripts root")
	}
	p.scriptsRoot = absRoot

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// findScriptsRoot determines the scripts root using the following priority:
// 1. PYBIN_SCRIPTS_ROOT environment variable (if set)
// 2. Current working directory (fallback)
//
// The bool return reports whether the current working directory was
// used as fallback, so callers can warn.
func findScriptsRoot() (string, bool, error) {
	if root := os.Getenv(EnvScriptsRoot); root != "" {
		return expandHome(root), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// ScriptsRoot returns the directory holding the candidate scripts
func (p *paths) ScriptsRoot() string {
	return p.scriptsRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// ConfigDir returns the XDG config directory for pybin
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// UserConfigPath returns the path to the user configuration file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// SourceConfigPath returns the path to the per-scripts-root configuration file
func (p *paths) SourceConfigPath() string {
	return filepath.Join(p.scriptsRoot, SourceConfigFile)
}

// StateDir returns the XDG state directory for pybin
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the pybin log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}
