package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/resource/fs/core"
)

// FS adapts a billy.Filesystem to core.ReadFS.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
	root   string
}

// NewLocal creates a go-billy backed local filesystem rooted at root.
// An empty root means the filesystem root ("/").
func NewLocal(root string) *FS {
	if root == "" {
		root = string(filepath.Separator)
	}
	return &FS{
		bfs:    osfs.New(root),
		fsType: core.FSTypeLocal,
		root:   root,
	}
}

// NewMemory creates an empty go-billy backed in-memory filesystem.
func NewMemory() *FS {
	return &FS{
		bfs:    memfs.New(),
		fsType: core.FSTypeMemory,
		root:   "/",
	}
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem, fsType core.FSType) *FS {
	return &FS{
		bfs:    bfs,
		fsType: fsType,
		root:   bfs.Root(),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Root returns the directory the filesystem is rooted at.
func (f *FS) Root() string {
	return f.root
}

// Type returns the filesystem type.
func (f *FS) Type() core.FSType {
	return f.fsType
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	info, err := f.bfs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
	}
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by filename.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	// billy returns []fs.FileInfo already sorted by name
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	bf, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Compile-time interface checks.
var (
	_ core.ReadFS = (*FS)(nil)
	_ core.Rooted = (*FS)(nil)
)
