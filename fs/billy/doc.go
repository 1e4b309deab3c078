// Package billy provides a go-billy backed implementation of core.ReadFS.
//
// It adapts go-billy's osfs (local disk) and memfs (in-memory) filesystems
// so file resources can be served from either. The in-memory variant is what
// the resource tests use to stage files without touching disk.
//
// Usage:
//
//	// Local filesystem rooted at "/"
//	fsys := billy.NewLocal("/")
//	data, err := fsys.ReadFile("/etc/app/config.cue")
//
//	// In-memory filesystem, seeded through the underlying billy.Filesystem
//	mem := billy.NewMemory()
//	err := util.WriteFile(mem.Unwrap(), "templates/index.html", data, 0o644)
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines.
// File handles are not.
package billy
