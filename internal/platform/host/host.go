// Package host abstracts the target machine's mutable state behind a narrow
// interface so provisioning phases can be exercised against a fake in tests.
package host

import (
	"context"
	"io/fs"
)

// Host is the capability surface provisioning phases mutate the machine
// through. All command execution and filesystem writes go through it; no
// phase touches os/exec or the filesystem directly.
type Host interface {
	// Run executes a command and returns its combined output. A non-zero
	// exit status is returned as an error that carries the output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunInput is Run with the given string supplied on stdin.
	RunInput(ctx context.Context, stdin, name string, args ...string) ([]byte, error)

	// RunDir is Run with the command's working directory set to dir.
	RunDir(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// LookPath reports the absolute path of a binary, or an error if the
	// binary is not installed.
	LookPath(name string) (string, error)

	// Geteuid returns the effective user ID of the current process.
	Geteuid() int

	WriteFile(path string, data []byte, perm fs.FileMode) error
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string, perm fs.FileMode) error
	Remove(path string) error
	Symlink(oldname, newname string) error

	// Exists reports whether a path exists on the host filesystem.
	Exists(path string) bool
}
