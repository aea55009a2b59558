package host

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
)

// Local executes against the machine the provisioner runs on.
type Local struct{}

// NewLocal returns a Host backed by os/exec and the local filesystem.
func NewLocal() *Local {
	return &Local{}
}

// Run implements Host.
func (l *Local) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return l.run(ctx, "", "", name, args...)
}

// RunInput implements Host.
func (l *Local) RunInput(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
	return l.run(ctx, stdin, "", name, args...)
}

// RunDir implements Host.
func (l *Local) RunDir(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return l.run(ctx, "", dir, name, args...)
}

func (l *Local) run(ctx context.Context, stdin, dir, name string, args ...string) ([]byte, error) {
	// #nosec G204 - command names and arguments come from the step
	// definitions, not from untrusted input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s %s: %w\noutput: %s",
			name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// LookPath implements Host.
func (l *Local) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Geteuid implements Host.
func (l *Local) Geteuid() int {
	return os.Geteuid()
}

// WriteFile implements Host.
func (l *Local) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// ReadFile implements Host.
func (l *Local) ReadFile(path string) ([]byte, error) {
	// #nosec G304 - paths come from internal config
	return os.ReadFile(path)
}

// MkdirAll implements Host.
func (l *Local) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove implements Host.
func (l *Local) Remove(path string) error {
	return os.Remove(path)
}

// Symlink implements Host.
func (l *Local) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// Exists implements Host.
func (l *Local) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
