package resource

import (
	"context"
	"io"
	"sync"

	"github.com/jmgilman/go/resource/errors"
)

// StreamResource wraps a reader that is already open. It can be opened once.
type StreamResource struct {
	mu          sync.Mutex
	r           io.Reader
	description string
}

// NewStream creates a single-use resource over r. If r is an io.ReadCloser,
// closing the reader returned by Open closes r.
func NewStream(r io.Reader, description string) *StreamResource {
	return &StreamResource{r: r, description: description}
}

// Description implements Resource.
func (s *StreamResource) Description() string { return s.description }

// Protocol implements Resource.
func (s *StreamResource) Protocol() string { return "" }

// Location implements Resource.
func (s *StreamResource) Location() string { return "" }

// Exists implements Resource.
func (s *StreamResource) Exists(context.Context) bool { return true }

// IsOpen implements Resource.
func (s *StreamResource) IsOpen() bool { return true }

// Open implements Resource. The first call hands over the wrapped reader.
//
// Returns CodeAlreadyConsumed on every later call.
func (s *StreamResource) Open(context.Context) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.r == nil {
		return nil, errors.NewWithContext(errors.CodeAlreadyConsumed,
			"stream has already been read, use a rereadable resource if the content is needed more than once",
			map[string]interface{}{"description": s.description})
	}

	r := s.r
	s.r = nil
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}
