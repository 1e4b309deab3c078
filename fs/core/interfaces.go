package core

import (
	"context"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
	// FSTypeRemote indicates remote storage such as an S3 bucket.
	FSTypeRemote
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	case FSTypeRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// ReadFS defines the read-only operations every provider MUST support.
type ReadFS interface {
	fs.FS

	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the file is absent.
	Exists(name string) (bool, error)

	// Type returns the underlying filesystem type.
	Type() FSType
}

// Rooted is implemented by providers that can report the location they are
// rooted at. Local providers report a directory, object stores a bucket.
type Rooted interface {
	Root() string
}

// ContextReadFS is implemented by providers whose reads block on the network.
// Callers that hold a context should prefer these methods so cancellation
// reaches the transport.
type ContextReadFS interface {
	OpenContext(ctx context.Context, name string) (fs.File, error)
	ExistsContext(ctx context.Context, name string) (bool, error)
}
