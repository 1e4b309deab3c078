// Package bundle provides named collections of embedded resources.
//
// A Bundle plays the role an assembly manifest plays on other platforms: a
// unit, loaded by name, that carries resources addressed by dotted
// namespace-qualified names. A file stored at "templates/mail/welcome.txt"
// inside a bundle is addressed as "templates.mail.welcome.txt".
//
// Bundles are usually built from an embed.FS:
//
//	//go:embed templates
//	var templates embed.FS
//
//	reg := bundle.NewRegistry()
//	reg.Register(bundle.FromFS("app", templates))
//
// and are then reachable as assembly://app/templates.mail/welcome.txt.
package bundle

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/jmgilman/go/resource/errors"
)

// Bundle is a named collection of embedded resources.
type Bundle interface {
	// Name returns the name the bundle is registered under.
	Name() string

	// Names returns the dotted names of every resource in the bundle.
	Names() ([]string, error)

	// Open opens the resource with the given dotted name.
	// Returns an error wrapping fs.ErrNotExist if the bundle has no such resource.
	Open(name string) (io.ReadCloser, error)
}

// Source loads bundles by name.
type Source interface {
	Load(name string) (Bundle, error)
}

// DottedName converts a slash-separated path to the dotted resource name used
// to address it inside a bundle.
func DottedName(p string) string {
	return strings.ReplaceAll(strings.Trim(p, "/"), "/", ".")
}

// fsBundle serves resources from an fs.FS.
type fsBundle struct {
	name string
	fsys fs.FS

	once  sync.Once
	index map[string]string // dotted name -> path
	names []string
	err   error
}

// FromFS creates a Bundle over fsys. The tree is indexed on first use.
func FromFS(name string, fsys fs.FS) Bundle {
	return &fsBundle{name: name, fsys: fsys}
}

func (b *fsBundle) Name() string {
	return b.name
}

func (b *fsBundle) load() error {
	b.once.Do(func() {
		b.index = make(map[string]string)
		b.err = fs.WalkDir(b.fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			dotted := DottedName(p)
			b.index[dotted] = p
			b.names = append(b.names, dotted)
			return nil
		})
		sort.Strings(b.names)
	})
	return b.err
}

func (b *fsBundle) Names() ([]string, error) {
	if err := b.load(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "failed to index bundle", map[string]interface{}{
			"bundle": b.name,
		})
	}
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out, nil
}

func (b *fsBundle) Open(name string) (io.ReadCloser, error) {
	if err := b.load(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "failed to index bundle", map[string]interface{}{
			"bundle": b.name,
		})
	}
	p, ok := b.index[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path.Join(b.name, name), Err: fs.ErrNotExist}
	}
	return b.fsys.Open(p)
}

// Registry is a Source backed by an in-memory set of bundles.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	bundles map[string]Bundle
}

// NewRegistry creates an empty Registry.
func NewRegistry(bundles ...Bundle) *Registry {
	r := &Registry{bundles: make(map[string]Bundle)}
	for _, b := range bundles {
		r.Register(b)
	}
	return r
}

// Register adds b, replacing any bundle already registered under its name.
func (r *Registry) Register(b Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bundles[b.Name()] = b
}

// Load returns the bundle registered under name.
// Returns CodeNotFound if no such bundle exists.
func (r *Registry) Load(name string) (Bundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bundles[name]
	if !ok {
		return nil, errors.NewWithContext(errors.CodeNotFound, "unable to load bundle", map[string]interface{}{
			"bundle": name,
		})
	}
	return b, nil
}

// Names returns the registered bundle names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bundles))
	for name := range r.bundles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
