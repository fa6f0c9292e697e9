package types

// Script is a candidate file discovered under the scripts root.
type Script struct {
	// Path is the absolute path of the source file
	Path string

	// Filename is the base name of the source file
	Filename string

	// Command is the derived command name (filename with the suffix stripped)
	Command string
}

// InstalledScript records where a script ended up after installation.
type InstalledScript struct {
	Script

	// Target is the executable copy in the install directory
	Target string

	// Alias is the symlink in the bin directory pointing at Target
	Alias string

	// Replaced is true when the install overwrote an existing copy,
	// which happens on repeat runs and on base-name collisions.
	Replaced bool
}

// InstallResult is the outcome of one install pass.
type InstallResult struct {
	Installed []InstalledScript
	Count     int
	DryRun    bool
}

// InstalledFile is an entry in the install directory, as reported by list.
type InstalledFile struct {
	Filename   string
	Path       string
	Executable bool
}

// AliasState classifies a command alias found in the bin directory.
type AliasState string

const (
	// AliasOK means the alias resolves to an executable copy in the install directory
	AliasOK AliasState = "ok"

	// AliasDangling means the alias points into the install directory but the copy is gone
	AliasDangling AliasState = "dangling"

	// AliasNotExecutable means the copy exists but lost its executable bit
	AliasNotExecutable AliasState = "not_executable"
)

// AliasStatus is the health of a single command alias.
type AliasStatus struct {
	Name   string
	Path   string
	Target string
	State  AliasState
}
