package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/resource/fs/minio/internal/errs"
)

// streamingFile is a read-only object handle that streams content instead
// of buffering the whole object.
type streamingFile struct {
	fs     *MinioFS
	key    string
	name   string
	obj    *minio.Object
	info   minio.ObjectInfo
	offset int64
	closed bool
}

// newStreamingFile stats the object, then opens it for streaming.
// The stat surfaces a missing key as fs.ErrNotExist before any body is requested.
func newStreamingFile(ctx context.Context, mfs *MinioFS, key, name string) (*streamingFile, error) {
	info, err := mfs.client.StatObject(ctx, mfs.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	obj, err := mfs.client.GetObject(ctx, mfs.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}

	return &streamingFile{
		fs:   mfs,
		key:  key,
		name: name,
		obj:  obj,
		info: info,
	}, nil
}

// Read reads up to len(p) bytes into p from the object stream.
func (f *streamingFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errs.PathError("read", f.name, fs.ErrClosed)
	}
	n, err := f.obj.Read(p)
	f.offset += int64(n)

	// Only report EOF once no data is returned
	if n > 0 && errors.Is(err, io.EOF) {
		return n, nil
	}
	return n, err
}

// Close releases the underlying object stream.
func (f *streamingFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.obj.Close()
}

// Stat returns object metadata captured when the file was opened.
func (f *streamingFile) Stat() (fs.FileInfo, error) {
	return objectInfo{name: path.Base(f.name), size: f.info.Size, modTime: f.info.LastModified}, nil
}

// Name returns the name passed to Open.
func (f *streamingFile) Name() string {
	return f.name
}

// Seek reopens the object with a range request starting at the new offset.
func (f *streamingFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, errs.PathError("seek", f.name, fs.ErrClosed)
	}

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = f.offset + offset
	case io.SeekEnd:
		newOffset = f.info.Size + offset
	default:
		return 0, errs.PathError("seek", f.name, fs.ErrInvalid)
	}

	if newOffset < 0 {
		return 0, errs.PathError("seek", f.name, fs.ErrInvalid)
	}
	if newOffset == f.offset {
		return newOffset, nil
	}

	opts := minio.GetObjectOptions{}
	if newOffset > 0 {
		if err := opts.SetRange(newOffset, 0); err != nil {
			return 0, errs.PathError("seek", f.name, err)
		}
	}

	// nolint:contextcheck // fs.File.Seek cannot accept context
	obj, err := f.fs.client.GetObject(context.Background(), f.fs.bucket, f.key, opts)
	if err != nil {
		return 0, errs.PathError("seek", f.name, errs.Translate(err))
	}

	// The current object stays usable until the replacement is open.
	_ = f.obj.Close()
	f.obj = obj
	f.offset = newOffset
	return newOffset, nil
}

var (
	_ fs.File   = (*streamingFile)(nil)
	_ io.Seeker = (*streamingFile)(nil)
)
