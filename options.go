package resource

import (
	"log/slog"
	"net/http"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/resource/bundle"
	"github.com/jmgilman/go/resource/config"
	"github.com/jmgilman/go/resource/fs/core"
	fsminio "github.com/jmgilman/go/resource/fs/minio"
)

// DefaultProtocol is used for identifiers that carry no protocol.
const DefaultProtocol = "file"

// BucketOpener returns a filesystem for the named S3 bucket.
type BucketOpener func(bucket string) (core.ReadFS, error)

// LoaderOptions contains configuration options for the Loader.
type LoaderOptions struct {
	// DefaultProtocol is assigned to identifiers without a protocol.
	// Defaults to "file".
	DefaultProtocol string

	// Logger receives resolution diagnostics. If nil, logs are discarded.
	Logger *slog.Logger

	// FileSystem serves file:// resources.
	// If nil, the local filesystem is used.
	FileSystem core.ReadFS

	// BaseDir anchors relative file paths and the "~" placeholder.
	// Defaults to the working directory.
	BaseDir string

	// HTTPClient executes http:// and https:// requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// Bundles serves assembly:// resources.
	Bundles bundle.Source

	// Config serves config:// resources.
	Config config.SectionSource

	// Buckets serves s3:// resources. The s3 protocol is only registered
	// when Buckets is set.
	Buckets BucketOpener

	// Handlers are registered after the built-in protocols, so they can
	// replace them.
	Handlers map[string]Constructor
}

// Option configures a Loader.
type Option func(*LoaderOptions)

// WithDefaultProtocol sets the protocol assigned to unqualified identifiers.
func WithDefaultProtocol(protocol string) Option {
	return func(opts *LoaderOptions) {
		opts.DefaultProtocol = protocol
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// WithFileSystem serves file:// resources from fsys instead of the local disk.
func WithFileSystem(fsys core.ReadFS) Option {
	return func(opts *LoaderOptions) {
		opts.FileSystem = fsys
	}
}

// WithBaseDir sets the directory relative file paths are resolved against.
func WithBaseDir(dir string) Option {
	return func(opts *LoaderOptions) {
		opts.BaseDir = dir
	}
}

// WithHTTPClient sets the client used for http:// and https:// resources.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithBundles sets the source assembly:// resources are loaded from.
func WithBundles(source bundle.Source) Option {
	return func(opts *LoaderOptions) {
		opts.Bundles = source
	}
}

// WithConfig sets the store config:// resources are looked up in.
func WithConfig(source config.SectionSource) Option {
	return func(opts *LoaderOptions) {
		opts.Config = source
	}
}

// WithBuckets enables the s3 protocol, opening buckets with opener.
func WithBuckets(opener BucketOpener) Option {
	return func(opts *LoaderOptions) {
		opts.Buckets = opener
	}
}

// WithS3 enables the s3 protocol against the server client is connected to.
//
// Example:
//
//	client, err := fsminio.NewClient("localhost:9000", access, secret, false)
//	if err != nil {
//	    return err
//	}
//	loader := resource.NewLoader(resource.WithS3(client))
func WithS3(client *minio.Client) Option {
	return WithBuckets(func(bucket string) (core.ReadFS, error) {
		fsys, err := fsminio.NewMinIO(fsminio.Config{Bucket: bucket, Client: client})
		if err != nil {
			return nil, err
		}
		return fsys, nil
	})
}

// WithHandler registers ctor for protocol, replacing any built-in handler.
func WithHandler(protocol string, ctor Constructor) Option {
	return func(opts *LoaderOptions) {
		if opts.Handlers == nil {
			opts.Handlers = make(map[string]Constructor)
		}
		opts.Handlers[protocol] = ctor
	}
}
