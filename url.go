package resource

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmgilman/go/resource/errors"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// URLResource is a resource fetched over HTTP(S). The request is built when
// the resource is created and executed on Open.
type URLResource struct {
	client  *http.Client
	request *http.Request
	url     *url.URL
	root    string
	path    string
}

func newURLResource(l *Loader, location string) (Resource, error) {
	ctx := map[string]interface{}{"location": location}

	u, err := url.Parse(location)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidFormat, "invalid URL", ctx)
	}
	if u.Host == "" {
		return nil, errors.NewWithContext(errors.CodeInvalidFormat, "URL has no host", ctx)
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidFormat, "invalid URL", ctx)
	}

	root := u.Hostname()
	if port := u.Port(); port != "" && port != defaultPorts[u.Scheme] {
		root = net.JoinHostPort(root, port)
	} else if strings.Contains(root, ":") {
		root = "[" + root + "]"
	}

	var dir string
	if n := strings.LastIndex(u.Path, "/"); n > 0 {
		dir = u.Path[1:n]
	}

	return &URLResource{
		client:  l.client,
		request: req,
		url:     u,
		root:    root,
		path:    dir,
	}, nil
}

// URL returns the resource's URL.
func (r *URLResource) URL() *url.URL {
	u := *r.url
	return &u
}

// Description implements Resource.
func (r *URLResource) Description() string {
	return "URL [" + r.url.String() + "]"
}

// Protocol implements Resource.
func (r *URLResource) Protocol() string { return r.url.Scheme }

// Location implements Resource.
func (r *URLResource) Location() string { return r.url.String() }

// IsOpen implements Resource.
func (r *URLResource) IsOpen() bool { return false }

// Exists implements Resource. It issues a HEAD request.
func (r *URLResource) Exists(ctx context.Context) bool {
	req := r.request.Clone(ctx)
	req.Method = http.MethodHead

	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Open implements Resource. It executes the prepared GET request.
//
// Returns CodeNotFound for 404 and 410 responses and CodeIOFailure for
// transport errors and other unsuccessful statuses.
func (r *URLResource) Open(ctx context.Context) (io.ReadCloser, error) {
	errCtx := map[string]interface{}{"location": r.Location()}

	resp, err := r.client.Do(r.request.Clone(ctx))
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIOFailure, "request failed", errCtx)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}
	_ = resp.Body.Close()

	errCtx["status"] = resp.StatusCode
	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return nil, errors.NewWithContext(errors.CodeNotFound, "resource does not exist", errCtx)
	default:
		return nil, errors.NewWithContext(errors.CodeIOFailure, "unexpected response status "+resp.Status, errCtx)
	}
}

// RootLocation implements Navigable. It is the host, with the port when it
// is not the scheme's default.
func (r *URLResource) RootLocation() string { return r.root }

// CurrentPath implements Navigable.
func (r *URLResource) CurrentPath() string { return r.path }

// PathSeparators implements Navigable.
func (r *URLResource) PathSeparators() string { return "/" }

// IsRelative implements Navigable.
func (r *URLResource) IsRelative(string) bool { return true }
