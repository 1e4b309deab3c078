package resource

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resource/fs/billy"
)

// pathResource is a minimal Navigable resource for proto://<root>/<path>/<name>.
type pathResource struct {
	root, dir, name string
}

func newPathResource(_ *Loader, location string) (Resource, error) {
	parts := strings.Split(StripProtocol(location), "/")
	r := &pathResource{root: parts[0]}
	if rest := parts[1:]; len(rest) > 0 {
		r.name = rest[len(rest)-1]
		r.dir = strings.Join(rest[:len(rest)-1], "/")
	}
	return r, nil
}

func (r *pathResource) Location() string {
	loc := "proto://" + r.root
	if r.dir != "" {
		loc += "/" + r.dir
	}
	return loc + "/" + r.name
}

func (r *pathResource) Description() string         { return "proto [" + r.Location() + "]" }
func (r *pathResource) Protocol() string            { return "proto" }
func (r *pathResource) Exists(context.Context) bool { return false }
func (r *pathResource) IsOpen() bool                { return false }
func (r *pathResource) RootLocation() string        { return r.root }
func (r *pathResource) CurrentPath() string         { return r.dir }
func (r *pathResource) PathSeparators() string      { return "/" }
func (r *pathResource) IsRelative(string) bool      { return true }
func (r *pathResource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(r.name)), nil
}

// newMemFS returns an in-memory filesystem seeded with files.
func newMemFS(t *testing.T, files map[string]string) *billy.FS {
	t.Helper()
	fsys := billy.NewMemory()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fsys.Unwrap(), name, []byte(content), 0o644))
	}
	return fsys
}

// captureLogger returns a debug-level logger writing text records to the buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), &buf
}

// readAll opens r and returns its full content.
func readAll(t *testing.T, r Resource) string {
	t.Helper()
	rc, err := r.Open(context.Background())
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}
