package resource

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/resource/errors"
	"github.com/jmgilman/go/resource/fs/core"
)

// BasePathPlaceholder at the start of a file path stands for the loader's
// base directory.
const BasePathPlaceholder = "~"

// FileResource is a file on the loader's filesystem.
type FileResource struct {
	fsys     core.ReadFS
	path     string
	location string
}

func newFileResource(l *Loader, location string) (Resource, error) {
	p := StripProtocol(location)
	if p == "" {
		return nil, errors.NewWithContext(errors.CodeInvalidFormat, "file location has no path", map[string]interface{}{
			"location": location,
		})
	}

	if strings.HasPrefix(p, BasePathPlaceholder) {
		p = filepath.Join(l.baseDir, strings.TrimPrefix(p, BasePathPlaceholder))
	} else if !filepath.IsAbs(p) && !strings.HasPrefix(p, "/") {
		p = filepath.Join(l.baseDir, p)
	}
	p = filepath.Clean(p)

	loc := filepath.ToSlash(p)
	if !strings.HasPrefix(loc, "/") {
		loc = "/" + loc
	}

	return &FileResource{
		fsys:     l.fsys,
		path:     p,
		location: "file://" + loc,
	}, nil
}

// Description implements Resource.
func (r *FileResource) Description() string {
	return "file [" + r.path + "]"
}

// Protocol implements Resource.
func (r *FileResource) Protocol() string { return "file" }

// Location implements Resource.
func (r *FileResource) Location() string { return r.location }

// IsOpen implements Resource.
func (r *FileResource) IsOpen() bool { return false }

// Exists implements Resource.
func (r *FileResource) Exists(ctx context.Context) bool {
	return existsFS(ctx, r.fsys, r.path)
}

// Open implements Resource.
//
// Returns CodeNotFound when the file does not exist and CodeIOFailure for
// any other failure.
func (r *FileResource) Open(ctx context.Context) (io.ReadCloser, error) {
	return openFS(ctx, r.fsys, r.path, r.location)
}

// Path implements LocalFile. Only files on a local filesystem have a path.
func (r *FileResource) Path() (string, error) {
	if r.fsys.Type() != core.FSTypeLocal {
		return "", errors.NewWithContext(errors.CodeNotSupported, "resource is not on the local filesystem", map[string]interface{}{
			"location":   r.location,
			"filesystem": r.fsys.Type().String(),
		})
	}
	if rooted, ok := r.fsys.(core.Rooted); ok {
		return filepath.Join(rooted.Root(), r.path), nil
	}
	return r.path, nil
}

// RootLocation implements Navigable. It is the volume name, which is empty
// on POSIX systems.
func (r *FileResource) RootLocation() string {
	return filepath.VolumeName(r.path)
}

// CurrentPath implements Navigable.
func (r *FileResource) CurrentPath() string {
	dir := filepath.Dir(strings.TrimPrefix(r.path, filepath.VolumeName(r.path)))
	return strings.Trim(filepath.ToSlash(dir), "/")
}

// PathSeparators implements Navigable.
func (r *FileResource) PathSeparators() string {
	if os.PathSeparator == '/' {
		return "/"
	}
	return "/" + string(os.PathSeparator)
}

// IsRelative implements Navigable. Every location without a protocol is
// resolved against the file's directory; locations starting with a
// separator are resolved against its volume.
func (r *FileResource) IsRelative(string) bool { return true }

// existsFS probes name on fsys, preferring the context-aware probe.
func existsFS(ctx context.Context, fsys core.ReadFS, name string) bool {
	var (
		ok  bool
		err error
	)
	if cfs, isCtx := fsys.(core.ContextReadFS); isCtx {
		ok, err = cfs.ExistsContext(ctx, name)
	} else {
		ok, err = fsys.Exists(name)
	}
	return err == nil && ok
}

// openFS opens name on fsys and maps failures to resource error codes.
func openFS(ctx context.Context, fsys core.ReadFS, name, location string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "context cancelled", map[string]interface{}{
			"location": location,
		})
	}

	var (
		f   fs.File
		err error
	)
	if cfs, ok := fsys.(core.ContextReadFS); ok {
		f, err = cfs.OpenContext(ctx, name)
	} else {
		f, err = fsys.Open(name)
	}
	if err != nil {
		return nil, openError(err, location)
	}
	return f, nil
}

func openError(err error, location string) errors.PlatformError {
	ctx := map[string]interface{}{"location": location}
	if errors.Is(err, fs.ErrNotExist) {
		return errors.WrapWithContext(err, errors.CodeNotFound, "resource does not exist", ctx)
	}
	return errors.WrapWithContext(err, errors.CodeIOFailure, "failed to open resource", ctx)
}
