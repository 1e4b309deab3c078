package bundle

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resource/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"My/Namespace/file.txt":  {Data: []byte("file")},
		"My/Namespace/other.txt": {Data: []byte("other")},
		"My/Other/x.txt":         {Data: []byte("x")},
		"root.txt":               {Data: []byte("root")},
	}
}

func TestDottedName(t *testing.T) {
	assert.Equal(t, "My.Namespace.file.txt", DottedName("My/Namespace/file.txt"))
	assert.Equal(t, "root.txt", DottedName("/root.txt"))
}

func TestFromFS_Names(t *testing.T) {
	b := FromFS("MyAsm", testFS())

	names, err := b.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"My.Namespace.file.txt",
		"My.Namespace.other.txt",
		"My.Other.x.txt",
		"root.txt",
	}, names)

	// returned slice is a copy
	names[0] = "mutated"
	again, err := b.Names()
	require.NoError(t, err)
	assert.Equal(t, "My.Namespace.file.txt", again[0])
}

func TestFromFS_Open(t *testing.T) {
	b := FromFS("MyAsm", testFS())

	rc, err := b.Open("My.Other.x.txt")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	_, err = b.Open("My.Missing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(FromFS("b", testFS()), FromFS("a", testFS()))

	assert.Equal(t, []string{"a", "b"}, reg.Names())

	b, err := reg.Load("a")
	require.NoError(t, err)
	assert.Equal(t, "a", b.Name())

	_, err = reg.Load("missing")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.Equal(t, "missing", errors.ToJSON(err).Context["bundle"])
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry(FromFS("app", fstest.MapFS{"v1.txt": {Data: []byte("1")}}))
	reg.Register(FromFS("app", fstest.MapFS{"v2.txt": {Data: []byte("2")}}))

	b, err := reg.Load("app")
	require.NoError(t, err)
	names, err := b.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"v2.txt"}, names)
}
