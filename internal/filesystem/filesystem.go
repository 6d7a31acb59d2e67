// Package filesystem provides the filesystem primitives valet uses, behind an
// interface so the core can be tested without touching the host.
package filesystem

// FileSystem defines the file operations the PHP runtime manager needs.
type FileSystem interface {
	// Exists reports whether a path exists.
	Exists(path string) bool

	// IsDir reports whether a path exists and is a directory.
	IsDir(path string) bool

	// ReadSymlinkTarget returns the fully resolved target of a symbolic link.
	ReadSymlinkTarget(path string) (string, error)

	// ListDir returns the entry names of a directory.
	ListDir(path string) ([]string, error)

	// Get reads a file's contents.
	Get(path string) (string, error)

	// Put writes a file, creating parent directories as needed.
	Put(path, contents string) error

	// WriteAsUser writes a file owned by the given user, creating parent
	// directories as needed.
	WriteAsUser(path, contents, owner string) error

	// DeleteIfExists removes a file when present. Absence is not an error.
	DeleteIfExists(path string) error

	// EnsureDirExists creates a directory (and parents) owned by the given
	// user when it does not already exist.
	EnsureDirExists(path, owner string) error
}
