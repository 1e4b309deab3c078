package resource

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/jmgilman/go/resource/bundle"
	"github.com/jmgilman/go/resource/errors"
)

// BundleResource is a resource embedded in a named bundle, addressed as
// assembly://<bundle>/<namespace>/<name>. Inside the bundle the resource
// is known by its dotted name "<namespace>.<name>".
type BundleResource struct {
	bundle    bundle.Bundle
	location  string
	namespace string
	name      string
	logger    *slog.Logger

	once  sync.Once
	names []string
}

func newBundleResource(l *Loader, location string) (Resource, error) {
	ctx := map[string]interface{}{"location": location}

	parts := strings.Split(StripProtocol(location), "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, errors.NewWithContext(errors.CodeInvalidFormat,
			"invalid assembly resource name, expected assembly://<bundle>/<namespace>/<name>", ctx)
	}

	if l.bundles == nil {
		ctx["bundle"] = parts[0]
		return nil, errors.NewWithContext(errors.CodeNotFound, "no bundle source configured", ctx)
	}

	b, err := l.bundles.Load(parts[0])
	if err != nil {
		code := errors.CodeIOFailure
		if errors.HasCode(err, errors.CodeNotFound) || errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		ctx["bundle"] = parts[0]
		return nil, errors.WrapWithContext(err, code, "unable to load bundle", ctx)
	}

	return &BundleResource{
		bundle:    b,
		location:  location,
		namespace: parts[1],
		name:      parts[2],
		logger:    l.logger,
	}, nil
}

// ResourceName returns the dotted name of the resource inside its bundle.
func (r *BundleResource) ResourceName() string {
	return r.namespace + "." + r.name
}

// Description implements Resource.
func (r *BundleResource) Description() string {
	return "assembly [" + r.bundle.Name() + "], resource [" + r.ResourceName() + "]"
}

// Protocol implements Resource.
func (r *BundleResource) Protocol() string { return "assembly" }

// Location implements Resource.
func (r *BundleResource) Location() string { return r.location }

// IsOpen implements Resource.
func (r *BundleResource) IsOpen() bool { return false }

// Exists implements Resource. The bundle's names are listed and sorted on
// the first call and searched on every call.
func (r *BundleResource) Exists(context.Context) bool {
	r.once.Do(func() {
		names, err := r.bundle.Names()
		if err != nil {
			return
		}
		sort.Strings(names)
		r.names = names
	})

	key := r.ResourceName()
	i := sort.SearchStrings(r.names, key)
	return i < len(r.names) && r.names[i] == key
}

// Open implements Resource.
//
// Returns CodeNotFound when the bundle has no such resource.
func (r *BundleResource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "context cancelled", map[string]interface{}{
			"location": r.location,
		})
	}

	rc, err := r.bundle.Open(r.ResourceName())
	if err == nil {
		return rc, nil
	}

	errCtx := map[string]interface{}{
		"location": r.location,
		"bundle":   r.bundle.Name(),
		"resource": r.ResourceName(),
	}
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Error("could not load resource from bundle",
			"resource", r.ResourceName(),
			"bundle", r.bundle.Name(),
			"location", r.location,
			"hint", "URI syntax is assembly://<bundle>/<namespace>/<name>; the resource is looked up as <namespace>.<name>",
		)
		return nil, errors.WrapWithContext(err, errors.CodeNotFound, "resource does not exist in bundle", errCtx)
	}
	return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "failed to open bundle resource", errCtx)
}

// RootLocation implements Navigable. It is the bundle name.
func (r *BundleResource) RootLocation() string { return r.bundle.Name() }

// CurrentPath implements Navigable. It is the dotted namespace.
func (r *BundleResource) CurrentPath() string { return r.namespace }

// PathSeparators implements Navigable.
func (r *BundleResource) PathSeparators() string { return "." }

// IsRelative implements Navigable. Locations that are not a complete
// bundle/namespace/name triple are resolved against this resource.
func (r *BundleResource) IsRelative(location string) bool {
	return strings.HasPrefix(location, "./") ||
		strings.HasPrefix(location, "/") ||
		strings.HasPrefix(location, "../") ||
		len(strings.Split(location, "/")) != 3
}
