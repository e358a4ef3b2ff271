// Package filesystem provides the filesystem abstraction for tracksort.
//
// All destination probing and copying goes through the FS interface so the
// placement engine can be tested against an in-memory filesystem.
package filesystem

import (
	"io/fs"
	"time"
)

// FS is the filesystem interface used by the scanner, resolver and pipeline
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Chtimes(name string, atime, mtime time.Time) error
}

// Copier is an optional fast path for FS implementations that can copy
// a file natively instead of going through ReadFile/WriteFile
type Copier interface {
	CopyFile(src, dst string) error
}
