package resource

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/text/encoding"

	"github.com/jmgilman/go/resource/errors"
)

// StringResource holds its content in memory. It can be opened any number
// of times.
type StringResource struct {
	content     string
	enc         encoding.Encoding
	description string
}

// NewString creates a resource over content. Open encodes the content with
// enc; a nil enc leaves it as UTF-8. Characters enc cannot represent are
// replaced with the encoding's replacement character.
func NewString(content string, enc encoding.Encoding, description string) *StringResource {
	return &StringResource{content: content, enc: enc, description: description}
}

// Content returns the resource's text.
func (r *StringResource) Content() string { return r.content }

// Encoding returns the encoding Open produces, or nil for UTF-8.
func (r *StringResource) Encoding() encoding.Encoding { return r.enc }

// Description implements Resource.
func (r *StringResource) Description() string { return r.description }

// Protocol implements Resource.
func (r *StringResource) Protocol() string { return "" }

// Location implements Resource.
func (r *StringResource) Location() string { return "" }

// Exists implements Resource.
func (r *StringResource) Exists(context.Context) bool { return true }

// IsOpen implements Resource.
func (r *StringResource) IsOpen() bool { return true }

// Open implements Resource.
func (r *StringResource) Open(context.Context) (io.ReadCloser, error) {
	if r.enc == nil {
		return io.NopCloser(bytes.NewReader([]byte(r.content))), nil
	}

	data, err := encoding.ReplaceUnsupported(r.enc.NewEncoder()).Bytes([]byte(r.content))
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to encode string content", map[string]interface{}{
			"description": r.description,
		})
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
