package minio

import (
	"io/fs"
	"path"
	"strings"
	"time"
)

// objectKey cleans name into a slash-separated S3 key without leading or
// trailing slashes. The bucket root is ".".
func objectKey(name string) string {
	key := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	key = strings.Trim(key, "/")
	if key == "" {
		return "."
	}
	return key
}

// keyPrefix normalizes a configured prefix; the bucket root is "".
func keyPrefix(prefix string) string {
	if key := objectKey(prefix); key != "." {
		return key
	}
	return ""
}

// joinKey places name under prefix.
func joinKey(prefix, name string) string {
	key := objectKey(name)
	switch {
	case key == ".":
		return prefix
	case prefix == "":
		return key
	}
	return prefix + "/" + key
}

// objectInfo describes an object or a virtual directory.
type objectInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (i objectInfo) Name() string       { return i.name }
func (i objectInfo) Size() int64        { return i.size }
func (i objectInfo) ModTime() time.Time { return i.modTime }
func (i objectInfo) IsDir() bool        { return i.dir }
func (i objectInfo) Sys() any           { return nil }

func (i objectInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

// Type and Info let objectInfo double as a directory entry.
func (i objectInfo) Type() fs.FileMode          { return i.Mode().Type() }
func (i objectInfo) Info() (fs.FileInfo, error) { return i, nil }

var (
	_ fs.FileInfo = objectInfo{}
	_ fs.DirEntry = objectInfo{}
)
