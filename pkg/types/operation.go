package types

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCreateDir creates a directory
	OperationCreateDir OperationType = "create_dir"

	// OperationWriteFile writes content to a file
	OperationWriteFile OperationType = "write_file"

	// OperationCreateSymlink creates a symbolic link
	OperationCreateSymlink OperationType = "create_symlink"
)

// Operation represents a low-level file system operation.
// These are the actual operations performed by the executors.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Source is the source path (for symlinks)
	Source string

	// Target is the target path
	Target string

	// Content is the content to write (for write operations)
	Content string

	// Mode is the file mode to apply, if any
	Mode *uint32

	// Description is a human readable summary of the operation
	Description string
}
