package resource

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/jmgilman/go/resource/bundle"
	"github.com/jmgilman/go/resource/config"
	"github.com/jmgilman/go/resource/errors"
	"github.com/jmgilman/go/resource/fs/billy"
	"github.com/jmgilman/go/resource/fs/core"
)

// Loader resolves identifiers to resources. It is safe for concurrent use.
type Loader struct {
	registry        *Registry
	defaultProtocol string
	logger          *slog.Logger

	fsys    core.ReadFS
	baseDir string
	client  *http.Client
	bundles bundle.Source
	config  config.SectionSource
	buckets BucketOpener
}

// NewLoader creates a loader with the built-in protocols registered.
func NewLoader(opts ...Option) *Loader {
	o := &LoaderOptions{}
	for _, opt := range opts {
		opt(o)
	}

	l := &Loader{
		registry:        NewRegistry(),
		defaultProtocol: o.DefaultProtocol,
		logger:          o.Logger,
		fsys:            o.FileSystem,
		baseDir:         o.BaseDir,
		client:          o.HTTPClient,
		bundles:         o.Bundles,
		config:          o.Config,
		buckets:         o.Buckets,
	}

	if l.defaultProtocol == "" {
		l.defaultProtocol = DefaultProtocol
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	if l.fsys == nil {
		l.fsys = billy.NewLocal("")
	}
	if l.baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = string(filepath.Separator)
		}
		l.baseDir = wd
	}
	if l.client == nil {
		l.client = http.DefaultClient
	}

	builtins := map[string]Constructor{
		"file":     newFileResource,
		"http":     newURLResource,
		"https":    newURLResource,
		"assembly": newBundleResource,
		"config":   newConfigSectionResource,
	}
	if l.buckets != nil {
		builtins["s3"] = newS3Resource
	}
	for protocol, ctor := range builtins {
		_ = l.registry.Register(protocol, ctor)
	}

	// Sorted so the outcome does not depend on map order when a handler is rejected.
	custom := make([]string, 0, len(o.Handlers))
	for protocol := range o.Handlers {
		custom = append(custom, protocol)
	}
	sort.Strings(custom)
	for _, protocol := range custom {
		if err := l.registry.Register(protocol, o.Handlers[protocol]); err != nil {
			l.logger.Error("ignoring invalid resource handler", "protocol", protocol, "error", err)
		}
	}

	return l
}

// DefaultProtocol returns the protocol assigned to unqualified identifiers.
func (l *Loader) DefaultProtocol() string {
	return l.defaultProtocol
}

// Registry returns the loader's protocol registry.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Logger returns the loader's logger.
func (l *Loader) Logger() *slog.Logger {
	return l.logger
}

// Register maps protocol to ctor for subsequent lookups. See Registry.Register.
func (l *Loader) Register(protocol string, ctor Constructor) error {
	return l.registry.Register(protocol, ctor)
}

// HasProtocol reports whether location carries a protocol that has a
// registered handler.
func (l *Loader) HasProtocol(location string) bool {
	protocol, ok := Protocol(location)
	return ok && l.registry.IsRegistered(protocol)
}

// GetResource returns the resource for location. Unqualified locations are
// given the default protocol.
//
// Returns CodeUnknownProtocol when no handler is registered for the
// protocol. Other failures come from the protocol's constructor.
func (l *Loader) GetResource(location string) (Resource, error) {
	protocol, ok := Protocol(location)
	if !ok {
		protocol = l.defaultProtocol
		location = protocol + ProtocolSeparator + location
	}

	ctor, ok := l.registry.Lookup(protocol)
	if !ok {
		return nil, errors.NewWithContext(errors.CodeUnknownProtocol, "no resource handler registered for protocol", map[string]interface{}{
			"protocol": protocol,
			"location": location,
		})
	}

	l.logger.Debug("resolving resource", "protocol", protocol, "location", location)
	return ctor(l, location)
}

var placeholderPattern = regexp.MustCompile(`\$\{([^${}]+)\}`)

// Parse expands ${NAME} placeholders in value from the environment and
// returns the resource for the result. Placeholders naming unset variables
// are left in place.
func (l *Loader) Parse(value string) (Resource, error) {
	return l.GetResource(l.ExpandPlaceholders(value))
}

// ExpandPlaceholders replaces ${NAME} placeholders in value with the
// environment variable NAME. Unset variables are left unexpanded and logged
// at WARN.
func (l *Loader) ExpandPlaceholders(value string) string {
	return placeholderPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		l.logger.Warn("could not resolve placeholder in resource location as an environment variable",
			"placeholder", name, "location", value)
		return match
	})
}
