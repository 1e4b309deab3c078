package resource

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jmgilman/go/resource/errors"
)

func TestStringResource(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		r := NewString("héllo wörld", nil, "greeting")

		assert.True(t, r.Exists(ctx))
		assert.True(t, r.IsOpen())
		assert.False(t, SupportsRelative(r))
		assert.Equal(t, "greeting", r.Description())
		assert.Equal(t, "héllo wörld", readAll(t, r))
		assert.Equal(t, "héllo wörld", readAll(t, r))
	})

	t.Run("declared encoding", func(t *testing.T) {
		r := NewString("café", charmap.Windows1252, "")
		assert.Equal(t, "caf\xe9", readAll(t, r))
	})

	t.Run("relative resolution is not supported", func(t *testing.T) {
		_, err := NewLoader().ResolveRelative(NewString("x", nil, "x"), "y.txt")
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotSupported, errors.GetCode(err))
	})
}

func TestStreamResource(t *testing.T) {
	ctx := context.Background()

	t.Run("single use", func(t *testing.T) {
		r := NewStream(strings.NewReader("payload"), "upload")
		assert.True(t, r.Exists(ctx))
		assert.True(t, r.IsOpen())
		assert.False(t, SupportsRelative(r))

		rc, err := r.Open(ctx)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))

		_, err = r.Open(ctx)
		require.Error(t, err)
		assert.Equal(t, errors.CodeAlreadyConsumed, errors.GetCode(err))
		assert.False(t, errors.IsRetryable(err))
	})

	t.Run("concurrent opens yield one reader", func(t *testing.T) {
		r := NewStream(strings.NewReader("payload"), "upload")

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := r.Open(ctx); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, successes)
	})

	t.Run("closes wrapped closer", func(t *testing.T) {
		rc := &trackingCloser{Reader: strings.NewReader("x")}
		r := NewStream(rc, "tracked")

		got, err := r.Open(ctx)
		require.NoError(t, err)
		require.NoError(t, got.Close())
		assert.True(t, rc.closed)
	})
}

type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestEqual(t *testing.T) {
	a := NewString("a", nil, "same")
	b := NewString("b", nil, "same")
	c := NewString("c", nil, "different")

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, nil))
	assert.True(t, Equal(nil, nil))
}
