package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/resource/fs/core"
	"github.com/jmgilman/go/resource/fs/minio/internal/errs"
)

// MinioFS implements core.ReadFS for a single MinIO/S3 bucket.
//
//nolint:revive // MinioFS name matches the provider naming used across the fs packages
type MinioFS struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIO creates a MinIO-backed filesystem.
// Returns error if the configuration is invalid or the client cannot be created.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = NewClient(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
		if err != nil {
			return nil, err
		}
	}

	return &MinioFS{
		client: client,
		bucket: cfg.Bucket,
		prefix: keyPrefix(cfg.Prefix),
	}, nil
}

// Root returns the bucket (and prefix, when set) the filesystem is rooted at.
func (m *MinioFS) Root() string {
	if m.prefix == "" {
		return m.bucket
	}
	return m.bucket + "/" + m.prefix
}

// Type returns core.FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

func (m *MinioFS) joinPath(name string) string {
	return joinKey(m.prefix, name)
}

// Open opens the named object for streaming reads.
func (m *MinioFS) Open(name string) (fs.File, error) {
	return m.OpenContext(context.Background(), name)
}

// OpenContext opens the named object for streaming reads using ctx for the
// metadata and download requests.
func (m *MinioFS) OpenContext(ctx context.Context, name string) (fs.File, error) {
	return newStreamingFile(ctx, m, m.joinPath(name), name)
}

// Stat returns object metadata for the named file.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	return m.stat(context.Background(), name)
}

func (m *MinioFS) stat(ctx context.Context, name string) (fs.FileInfo, error) {
	info, err := m.client.StatObject(ctx, m.bucket, m.joinPath(name), minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("stat", name, errs.Translate(err))
	}

	return objectInfo{name: path.Base(name), size: info.Size, modTime: info.LastModified}, nil
}

// ReadDir lists the objects and common prefixes directly below name.
func (m *MinioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	key := m.joinPath(name)
	if key != "" && !strings.HasSuffix(key, "/") {
		key += "/"
	}

	var entries []fs.DirEntry
	for object := range m.client.ListObjects(context.Background(), m.bucket, minio.ListObjectsOptions{
		Prefix:    key,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("readdir", name, errs.Translate(object.Err))
		}
		if object.Key == key {
			continue
		}

		relName := strings.TrimPrefix(object.Key, key)
		isDir := strings.HasSuffix(object.Key, "/")
		relName = strings.TrimSuffix(relName, "/")
		if relName == "" {
			continue
		}

		entries = append(entries, objectInfo{name: relName, size: object.Size, modTime: object.LastModified, dir: isDir})
	}

	// MinIO returns keys sorted, but fs.ReadDir promises it so enforce it
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

// ReadFile reads the named object and returns its contents.
func (m *MinioFS) ReadFile(name string) ([]byte, error) {
	f, err := m.OpenContext(context.Background(), name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, _ := f.Stat()
	buf := make([]byte, info.Size())
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errs.PathError("readfile", name, err)
	}
	return buf, nil
}

// Exists reports whether the named object exists.
func (m *MinioFS) Exists(name string) (bool, error) {
	return m.ExistsContext(context.Background(), name)
}

// ExistsContext reports whether the named object exists using ctx for the request.
func (m *MinioFS) ExistsContext(ctx context.Context, name string) (bool, error) {
	_, err := m.stat(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Compile-time interface checks.
var (
	_ core.ReadFS        = (*MinioFS)(nil)
	_ core.ContextReadFS = (*MinioFS)(nil)
	_ core.Rooted        = (*MinioFS)(nil)
)
