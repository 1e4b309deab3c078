package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resource/errors"
	"github.com/jmgilman/go/resource/fs/core"
)

func TestNewLoader_Builtins(t *testing.T) {
	l := NewLoader()
	assert.Equal(t, DefaultProtocol, l.DefaultProtocol())
	assert.Equal(t, []string{"assembly", "config", "file", "http", "https"}, l.Registry().Protocols())

	withS3 := NewLoader(WithBuckets(func(string) (core.ReadFS, error) { return nil, nil }))
	assert.Contains(t, withS3.Registry().Protocols(), "s3")
}

func TestLoader_GetResource(t *testing.T) {
	t.Run("unknown protocol", func(t *testing.T) {
		l := NewLoader()
		_, err := l.GetResource("ftp://example.com/file.txt")
		require.Error(t, err)
		assert.Equal(t, errors.CodeUnknownProtocol, errors.GetCode(err))
		assert.False(t, errors.IsRetryable(err))

		var perr errors.PlatformError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "ftp", perr.Context()["protocol"])
	})

	t.Run("unqualified location gets the default protocol", func(t *testing.T) {
		var seen []string
		l := NewLoader(
			WithDefaultProtocol("proto"),
			WithHandler("proto", func(l *Loader, location string) (Resource, error) {
				seen = append(seen, location)
				return newPathResource(l, location)
			}),
		)

		a, err := l.GetResource("host/a/b.txt")
		require.NoError(t, err)
		b, err := l.GetResource("proto://host/a/b.txt")
		require.NoError(t, err)

		assert.True(t, Equal(a, b))
		assert.Equal(t, []string{"proto://host/a/b.txt", "proto://host/a/b.txt"}, seen)
	})

	t.Run("default file protocol", func(t *testing.T) {
		l := NewLoader(WithFileSystem(newMemFS(t, nil)))

		a, err := l.GetResource("/etc/app.yaml")
		require.NoError(t, err)
		b, err := l.GetResource("file:///etc/app.yaml")
		require.NoError(t, err)

		assert.True(t, Equal(a, b))
		assert.Equal(t, "file:///etc/app.yaml", a.Location())
	})

	t.Run("registry override", func(t *testing.T) {
		l := NewLoader(WithFileSystem(newMemFS(t, nil)))

		original, err := l.GetResource("file://x")
		require.NoError(t, err)
		assert.IsType(t, &FileResource{}, original)

		replacement := NewString("replaced", nil, "replacement")
		require.NoError(t, l.Register("file", func(*Loader, string) (Resource, error) {
			return replacement, nil
		}))

		got, err := l.GetResource("file://x")
		require.NoError(t, err)
		assert.Same(t, replacement, got)
	})

	t.Run("custom handler replaces builtin", func(t *testing.T) {
		l := NewLoader(WithHandler("http", newPathResource))
		r, err := l.GetResource("http://host/a/b.txt")
		require.NoError(t, err)
		assert.IsType(t, &pathResource{}, r)
	})

	t.Run("invalid handler option is ignored", func(t *testing.T) {
		logger, buf := captureLogger()
		l := NewLoader(WithLogger(logger), WithHandler("", newPathResource), WithHandler("nil", nil))

		assert.False(t, l.Registry().IsRegistered(""))
		assert.False(t, l.Registry().IsRegistered("nil"))
		assert.Contains(t, buf.String(), "ignoring invalid resource handler")
	})
}

func TestLoader_HasProtocol(t *testing.T) {
	l := NewLoader()

	tests := []struct {
		location string
		want     bool
	}{
		{location: "file:///etc/app.yaml", want: true},
		{location: "https://example.com", want: true},
		{location: "ftp://example.com", want: false},
		{location: "etc/app.yaml", want: false},
		{location: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, l.HasProtocol(tt.location))
		})
	}
}

func TestLoader_Parse(t *testing.T) {
	t.Setenv("RESOURCE_TEST_DATA_DIR", "/data")

	logger, buf := captureLogger()
	l := NewLoader(WithFileSystem(newMemFS(t, map[string]string{"/data/x.txt": "x"})), WithLogger(logger))

	t.Run("expands environment variables", func(t *testing.T) {
		r, err := l.Parse("file://${RESOURCE_TEST_DATA_DIR}/x.txt")
		require.NoError(t, err)
		assert.Equal(t, "file:///data/x.txt", r.Location())
		assert.True(t, r.Exists(context.Background()))
	})

	t.Run("keeps unresolved placeholders", func(t *testing.T) {
		assert.Equal(t,
			"${RESOURCE_TEST_UNSET_VARIABLE}/x.txt",
			l.ExpandPlaceholders("${RESOURCE_TEST_UNSET_VARIABLE}/x.txt"),
		)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "RESOURCE_TEST_UNSET_VARIABLE")
	})

	t.Run("leaves plain text alone", func(t *testing.T) {
		assert.Equal(t, "file:///data/$HOME/x", l.ExpandPlaceholders("file:///data/$HOME/x"))
	})
}
