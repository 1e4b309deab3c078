package fstest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/resource/fs/core"
)

const (
	testDir  = "testdir"
	testFile = "testdir/testfile.txt"
)

// TestReadFSWithConfig tests read-only operations with behavior configuration.
func TestReadFSWithConfig(t *testing.T, filesystem core.ReadFS, seed Seeder, config FSTestConfig) {
	testContent := []byte("test file content")

	if err := seed(testFile, testContent); err != nil {
		t.Fatalf("seed(%s): setup failed: %v", testFile, err)
	}
	if err := seed("testdir/b.txt", []byte("b")); err != nil {
		t.Fatalf("seed(testdir/b.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem, testContent)
	})
	t.Run("StatFile", func(t *testing.T) {
		testReadFSStatFile(t, filesystem, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem, config)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, testContent)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem, config)
	})
}

func testReadFSOpen(t *testing.T, filesystem core.ReadFS, testContent []byte) {
	f, err := filesystem.Open(testFile)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", testFile, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("Read(): got %q, want %q", data, testContent)
	}
}

func testReadFSStatFile(t *testing.T, filesystem core.ReadFS, testContent []byte) {
	info, err := filesystem.Stat(testFile)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", testFile, err)
		return
	}
	if info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = true, want false", testFile)
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("Stat(%q): Size() = %d, want %d", testFile, info.Size(), len(testContent))
	}
}

func testReadFSStatDir(t *testing.T, filesystem core.ReadFS, config FSTestConfig) {
	if config.VirtualDirectories {
		t.Skip("filesystem has virtual directories")
	}

	info, err := filesystem.Stat(testDir)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", testDir, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", testDir)
	}
}

func testReadFSReadDir(t *testing.T, filesystem core.ReadFS) {
	entries, err := filesystem.ReadDir(testDir)
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", testDir, err)
		return
	}
	if len(entries) != 2 {
		t.Errorf("ReadDir(%q): got %d entries, want 2", testDir, len(entries))
		return
	}
	if entries[0].Name() != "b.txt" || entries[1].Name() != "testfile.txt" {
		t.Errorf("ReadDir(%q): got [%s %s], want sorted [b.txt testfile.txt]",
			testDir, entries[0].Name(), entries[1].Name())
	}
}

func testReadFSReadFile(t *testing.T, filesystem core.ReadFS, testContent []byte) {
	data, err := filesystem.ReadFile(testFile)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", testFile, err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", testFile, data, testContent)
	}
}

func testReadFSOpenNotExist(t *testing.T, filesystem core.ReadFS) {
	_, err := filesystem.Open("nonexistent")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", "nonexistent", err)
	}
}

func testReadFSExists(t *testing.T, filesystem core.ReadFS, config FSTestConfig) {
	paths := map[string]bool{
		testFile:      true,
		"nonexistent": false,
	}
	if !config.VirtualDirectories {
		paths[testDir] = true
	}

	for path, want := range paths {
		exists, err := filesystem.Exists(path)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", path, err)
			continue
		}
		if exists != want {
			t.Errorf("Exists(%q): got %v, want %v", path, exists, want)
		}
	}
}
