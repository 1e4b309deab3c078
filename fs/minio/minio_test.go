package minio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resource/fs/core"
	"github.com/jmgilman/go/resource/fs/minio/internal/errs"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing bucket",
			cfg:     Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
		{
			name:    "missing endpoint",
			cfg:     Config{Bucket: "b", AccessKey: "a", SecretKey: "s"},
			wantErr: "endpoint is required",
		},
		{
			name:    "missing access key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", SecretKey: "s"},
			wantErr: "access key is required",
		},
		{
			name:    "missing secret key",
			cfg:     Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a"},
			wantErr: "secret key is required",
		},
		{
			name: "static credentials",
			cfg:  Config{Bucket: "b", Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewMinIO_WithClient(t *testing.T) {
	client, err := NewClient("localhost:9000", "minioadmin", "minioadmin", false)
	require.NoError(t, err)

	fsys, err := NewMinIO(Config{Client: client, Bucket: "assets", Prefix: "/static/"})
	require.NoError(t, err)

	assert.Equal(t, "assets/static", fsys.Root())
	assert.Equal(t, core.FSTypeRemote, fsys.Type())
	assert.Equal(t, "static/css/site.css", fsys.joinPath("css/site.css"))
}

func TestStreamingFile_SeekKeepsObjectOnFailure(t *testing.T) {
	client, err := NewClient("localhost:9000", "minioadmin", "minioadmin", false)
	require.NoError(t, err)

	// GetObject does no I/O until the first read.
	obj, err := client.GetObject(context.Background(), "assets", "a.txt", minio.GetObjectOptions{})
	require.NoError(t, err)

	// A one-letter bucket fails validation, so the reopen errors immediately.
	f := &streamingFile{
		fs:   &MinioFS{client: client, bucket: "x"},
		key:  "a.txt",
		name: "a.txt",
		obj:  obj,
		info: minio.ObjectInfo{Size: 10},
	}

	_, err = f.Seek(5, io.SeekStart)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrInvalid)
	assert.Same(t, obj, f.obj)
	assert.Equal(t, int64(0), f.offset)
	assert.NoError(t, obj.Close(), "object closed by a failed seek")
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "a", "s", false)
	assert.Error(t, err)
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", fs.ErrNotExist},
		{"NoSuchBucket", fs.ErrNotExist},
		{"AccessDenied", fs.ErrPermission},
		{"InvalidBucketName", fs.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := errs.Translate(minio.ErrorResponse{Code: tt.code})
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	assert.NoError(t, errs.Translate(nil))
	other := errs.Translate(errors.New("connection reset"))
	assert.Contains(t, other.Error(), "minio: connection reset")
}

func TestObjectKeys(t *testing.T) {
	tests := []struct {
		prefix string
		name   string
		want   string
	}{
		{"", "", ""},
		{"", "key", "key"},
		{"", "/a//b/", "a/b"},
		{"", `a\b`, "a/b"},
		{"pre", ".", "pre"},
		{"pre", "/key", "pre/key"},
		{keyPrefix("./"), "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix+"|"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinKey(tt.prefix, tt.name))
		})
	}
}

func TestObjectInfo(t *testing.T) {
	dir := objectInfo{name: "logs", dir: true}
	assert.True(t, dir.IsDir())
	assert.Equal(t, fs.ModeDir, dir.Type())

	obj := objectInfo{name: "a.txt", size: 3}
	info, err := obj.Info()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
	assert.True(t, info.Mode().IsRegular())
}
