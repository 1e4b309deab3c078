// Package fstest provides a conformance suite for core.ReadFS providers.
//
// Providers stage a fixed tree through a Seeder and the suite checks that
// Open, Stat, ReadDir, ReadFile and Exists honour the contract the resource
// layer relies on: missing files report fs.ErrNotExist, Exists never reports
// an error for plain absence, and directories list in name order.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fsys := myprovider.New()
//	    fstest.TestReadFS(t, fsys, func(name string, data []byte) error {
//	        return fsys.Put(name, data)
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/resource/fs/core"
)

// Seeder writes a file into the provider under test, creating parent
// directories as needed.
type Seeder func(name string, data []byte) error

// FSTestConfig configures the suite to match provider behavior.
type FSTestConfig struct {
	// VirtualDirectories indicates directories are virtual (e.g., S3 prefixes)
	// and cannot be stat'd directly.
	VirtualDirectories bool
}

// POSIXTestConfig returns configuration for POSIX-like filesystems (local, memory).
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{VirtualDirectories: false}
}

// S3TestConfig returns configuration for S3-like filesystems (MinIO, S3).
func S3TestConfig() FSTestConfig {
	return FSTestConfig{VirtualDirectories: true}
}

// TestReadFS runs the read-only suite with POSIXTestConfig.
func TestReadFS(t *testing.T, filesystem core.ReadFS, seed Seeder) {
	TestReadFSWithConfig(t, filesystem, seed, POSIXTestConfig())
}
