package resource

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/jmgilman/go/resource/errors"
	"github.com/jmgilman/go/resource/fs/core"
)

// S3Resource is an object in S3-compatible storage, addressed as
// s3://<bucket>/<key>.
type S3Resource struct {
	fsys     core.ReadFS
	bucket   string
	key      string
	location string
}

func newS3Resource(l *Loader, location string) (Resource, error) {
	ctx := map[string]interface{}{"location": location}

	bucket, key, ok := strings.Cut(StripProtocol(location), "/")
	key = strings.TrimLeft(key, "/")
	if !ok || bucket == "" || key == "" {
		return nil, errors.NewWithContext(errors.CodeInvalidFormat, "invalid s3 location, expected s3://<bucket>/<key>", ctx)
	}

	fsys, err := l.buckets(bucket)
	if err != nil {
		ctx["bucket"] = bucket
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "unable to open bucket", ctx)
	}

	return &S3Resource{
		fsys:     fsys,
		bucket:   bucket,
		key:      key,
		location: "s3://" + bucket + "/" + key,
	}, nil
}

// Bucket returns the bucket holding the object.
func (r *S3Resource) Bucket() string { return r.bucket }

// Key returns the object key.
func (r *S3Resource) Key() string { return r.key }

// Description implements Resource.
func (r *S3Resource) Description() string {
	return "s3 [" + r.bucket + "/" + r.key + "]"
}

// Protocol implements Resource.
func (r *S3Resource) Protocol() string { return "s3" }

// Location implements Resource.
func (r *S3Resource) Location() string { return r.location }

// IsOpen implements Resource.
func (r *S3Resource) IsOpen() bool { return false }

// Exists implements Resource.
func (r *S3Resource) Exists(ctx context.Context) bool {
	return existsFS(ctx, r.fsys, r.key)
}

// Open implements Resource.
//
// Returns CodeNotFound when the object does not exist and CodeIOFailure for
// any other failure.
func (r *S3Resource) Open(ctx context.Context) (io.ReadCloser, error) {
	return openFS(ctx, r.fsys, r.key, r.location)
}

// RootLocation implements Navigable. It is the bucket name.
func (r *S3Resource) RootLocation() string { return r.bucket }

// CurrentPath implements Navigable.
func (r *S3Resource) CurrentPath() string {
	dir := path.Dir(r.key)
	if dir == "." {
		return ""
	}
	return dir
}

// PathSeparators implements Navigable.
func (r *S3Resource) PathSeparators() string { return "/" }

// IsRelative implements Navigable.
func (r *S3Resource) IsRelative(string) bool { return true }
