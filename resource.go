package resource

import (
	"context"
	"io"
)

// Resource is a handle on something that can be opened as a byte stream.
// Handles are cheap to create; nothing is read until Open is called.
type Resource interface {
	// Description identifies the resource. Two resources with the same
	// description are the same resource.
	Description() string

	// Protocol returns the protocol the resource was created for, or the
	// empty string for in-memory resources.
	Protocol() string

	// Location returns the fully qualified identifier of the resource, or
	// the empty string for in-memory resources.
	Location() string

	// Exists reports whether the resource can currently be found. Probe
	// failures are reported as false.
	Exists(ctx context.Context) bool

	// Open opens the resource for reading. The caller must close the
	// returned reader.
	Open(ctx context.Context) (io.ReadCloser, error)

	// IsOpen reports whether the resource wraps content that is already
	// available, such as an in-memory string or an open stream.
	IsOpen() bool
}

// Navigable is implemented by resources that can serve as the base for
// relative identifiers. See Loader.ResolveRelative.
type Navigable interface {
	Resource

	// RootLocation returns the part of the location that does not change
	// under relative navigation: a host, a bucket or a bundle name.
	RootLocation() string

	// CurrentPath returns the directory-like part of the location, without
	// leading or trailing separators.
	CurrentPath() string

	// PathSeparators returns the characters that delimit segments of
	// CurrentPath. The first one is used when joining segments.
	PathSeparators() string

	// IsRelative reports whether location should be resolved against this
	// resource rather than used as-is.
	IsRelative(location string) bool
}

// LocalFile is implemented by resources that live on the local filesystem.
type LocalFile interface {
	// Path returns the absolute local path of the resource.
	Path() (string, error)
}

// SupportsRelative reports whether r can resolve relative identifiers.
func SupportsRelative(r Resource) bool {
	_, ok := r.(Navigable)
	return ok
}

// Equal reports whether a and b describe the same resource.
func Equal(a, b Resource) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Description() == b.Description()
}
