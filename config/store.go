package config

import (
	"context"
	"strconv"
	"sync"

	"cuelang.org/go/cue"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jmgilman/go/resource/errors"
)

// DefaultCacheSize is the number of rendered sections a Store keeps.
const DefaultCacheSize = 128

// Section is a named value inside one configuration source.
type Section struct {
	// Name is the CUE path the section was looked up by.
	Name string

	// Source names the configuration source that supplied the section.
	Source string

	// Value is the evaluated section.
	Value cue.Value

	generation uint64
	cache      *lru.Cache[string, []byte]
}

// key identifies the rendered section. The generation distinguishes
// sources added under the same name.
func (s *Section) key() string {
	return strconv.FormatUint(s.generation, 10) + "#" + s.Source + "#" + s.Name
}

// YAML renders the section as YAML. Results are cached by the owning store.
func (s *Section) YAML(ctx context.Context) ([]byte, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(s.key()); ok {
			return data, nil
		}
	}

	data, err := EncodeYAML(ctx, s.Value)
	if err != nil {
		return nil, errors.WithContextMap(err, makeContext("section", s.Name, "source", s.Source))
	}

	if s.cache != nil {
		s.cache.Add(s.key(), data)
	}
	return data, nil
}

// JSON renders the section as JSON.
func (s *Section) JSON(ctx context.Context) ([]byte, error) {
	data, err := EncodeJSON(ctx, s.Value)
	if err != nil {
		return nil, errors.WithContextMap(err, makeContext("section", s.Name, "source", s.Source))
	}
	return data, nil
}

// Decode decodes the section into target. See Decode.
func (s *Section) Decode(ctx context.Context, target interface{}) error {
	if err := Decode(ctx, s.Value, target); err != nil {
		return errors.WithContextMap(err, makeContext("section", s.Name, "source", s.Source))
	}
	return nil
}

// SectionSource looks up configuration sections by name.
type SectionSource interface {
	Section(name string) (*Section, bool)
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	schema    *cue.Value
	cacheSize int
}

// WithSchema validates every source added to the store against schema.
func WithSchema(schema cue.Value) StoreOption {
	return func(o *storeOptions) {
		o.schema = &schema
	}
}

// WithCacheSize sets how many rendered sections the store caches.
func WithCacheSize(size int) StoreOption {
	return func(o *storeOptions) {
		o.cacheSize = size
	}
}

type source struct {
	name       string
	value      cue.Value
	generation uint64
}

// Store holds configuration sources and serves sections from them.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	sources []source
	added   uint64
	schema  *cue.Value
	cache   *lru.Cache[string, []byte]
}

// NewStore creates an empty store.
//
// Returns CodeInvalidConfig when the cache size is not positive.
func NewStore(opts ...StoreOption) (*Store, error) {
	o := storeOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	cache, err := lru.New[string, []byte](o.cacheSize)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid section cache size",
			makeContext("cache_size", o.cacheSize))
	}

	return &Store{schema: o.schema, cache: cache}, nil
}

// Add registers value under the source name. Sources added later shadow
// sections of the same name in earlier sources.
//
// Returns CodeConfigValidationFailed when the store has a schema and value
// does not satisfy it.
func (s *Store) Add(ctx context.Context, name string, value cue.Value) error {
	if s.schema != nil {
		if err := Validate(ctx, *s.schema, value); err != nil {
			return errors.WithContext(err, "source", name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.added++
	s.sources = append(s.sources, source{name: name, value: value, generation: s.added})
	s.cache.Purge()
	return nil
}

// LoadFiles loads each path with loader and adds it as a source named by
// its path. Loading stops at the first failure.
func (s *Store) LoadFiles(ctx context.Context, loader *Loader, paths ...string) error {
	for _, p := range paths {
		value, err := loader.LoadFile(ctx, p)
		if err != nil {
			return err
		}
		if err := s.Add(ctx, p, value); err != nil {
			return err
		}
	}
	return nil
}

// Section returns the named section from the most recently added source
// that defines it.
func (s *Store) Section(name string) (*Section, bool) {
	if name == "" {
		return nil, false
	}

	path := cue.ParsePath(name)
	if path.Err() != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.sources) - 1; i >= 0; i-- {
		src := s.sources[i]
		v := src.value.LookupPath(path)
		if !v.Exists() {
			continue
		}
		return &Section{Name: name, Source: src.name, Value: v, generation: src.generation, cache: s.cache}, true
	}
	return nil, false
}

// Render returns the named section as YAML.
//
// Returns CodeNotFound when no source defines the section.
func (s *Store) Render(ctx context.Context, name string) ([]byte, error) {
	sec, ok := s.Section(name)
	if !ok {
		return nil, errors.NewWithContext(errors.CodeNotFound, "configuration section not found",
			makeContext("section", name))
	}
	return sec.YAML(ctx)
}

// Sources returns the source names in the order they were added.
func (s *Store) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.name
	}
	return names
}
