// Package core defines the read-only filesystem contract consumed by the
// file-backed and object-storage-backed resources.
//
// Resources only ever read: they probe existence, stat, and open streams.
// The contract therefore stops at ReadFS, which extends io/fs.FS so any
// provider also works with fs.WalkDir, fs.ReadFile and friends.
//
// Providers live in sibling packages:
//
//   - github.com/jmgilman/go/resource/fs/billy - go-billy local and in-memory filesystems
//   - github.com/jmgilman/go/resource/fs/minio - MinIO/S3 buckets
//
// # Usage Example
//
//	func probe(fsys core.ReadFS, name string) bool {
//	    ok, err := fsys.Exists(name)
//	    return err == nil && ok
//	}
package core
