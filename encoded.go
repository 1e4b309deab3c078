package resource

import (
	"context"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodedResource pairs a resource with the text encoding of its content.
type EncodedResource struct {
	resource   Resource
	enc        encoding.Encoding
	autoDetect bool
}

// NewEncoded creates an EncodedResource. A nil enc means UTF-8. With
// autoDetect, a UTF-8 or UTF-16 byte order mark at the start of the content
// overrides enc.
func NewEncoded(r Resource, enc encoding.Encoding, autoDetect bool) *EncodedResource {
	return &EncodedResource{resource: r, enc: enc, autoDetect: autoDetect}
}

// Resource returns the underlying resource.
func (e *EncodedResource) Resource() Resource { return e.resource }

// Encoding returns the declared encoding, or nil for UTF-8.
func (e *EncodedResource) Encoding() encoding.Encoding { return e.enc }

// AutoDetect reports whether byte order marks override the encoding.
func (e *EncodedResource) AutoDetect() bool { return e.autoDetect }

// String returns the underlying resource's description.
func (e *EncodedResource) String() string { return e.resource.Description() }

// Equal reports whether e and other wrap equal resources with the same encoding.
func (e *EncodedResource) Equal(other *EncodedResource) bool {
	if e == nil || other == nil {
		return e == other
	}
	return Equal(e.resource, other.resource) && e.enc == other.enc
}

// OpenReader opens the resource and returns its content decoded to UTF-8.
func (e *EncodedResource) OpenReader(ctx context.Context) (io.ReadCloser, error) {
	rc, err := e.resource.Open(ctx)
	if err != nil {
		return nil, err
	}

	enc := e.enc
	if enc == nil {
		enc = unicode.UTF8
	}

	var t transform.Transformer = enc.NewDecoder()
	if e.autoDetect {
		t = unicode.BOMOverride(t)
	}

	return &decodingReader{Reader: transform.NewReader(rc, t), closer: rc}, nil
}

type decodingReader struct {
	io.Reader
	closer io.Closer
}

func (d *decodingReader) Close() error {
	return d.closer.Close()
}
