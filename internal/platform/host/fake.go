package host

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// CommandResult is a canned result for a command matched by prefix.
type CommandResult struct {
	Output string
	Err    error
}

// Fake is an in-memory Host for tests. Commands succeed with empty output
// unless a result is stubbed; every call is recorded for assertions.
type Fake struct {
	mu sync.Mutex

	// Euid is returned by Geteuid. Defaults to 0 (root).
	Euid int

	// MissingTools lists binaries LookPath reports as not installed.
	MissingTools []string

	results  map[string]CommandResult
	files    map[string][]byte
	modes    map[string]fs.FileMode
	symlinks map[string]string
	dirs     map[string]bool

	// Commands records every executed command line in order.
	Commands []string
	// Stdins records the stdin supplied to each RunInput call, keyed by
	// command line.
	Stdins map[string]string
}

// NewFake returns an empty fake host running as root.
func NewFake() *Fake {
	return &Fake{
		results:  make(map[string]CommandResult),
		files:    make(map[string][]byte),
		modes:    make(map[string]fs.FileMode),
		symlinks: make(map[string]string),
		dirs:     make(map[string]bool),
		Stdins:   make(map[string]string),
	}
}

// Stub registers a canned result for any command line starting with prefix.
func (f *Fake) Stub(prefix string, result CommandResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[prefix] = result
}

// StubError is shorthand for stubbing a failing command.
func (f *Fake) StubError(prefix string, err error) {
	f.Stub(prefix, CommandResult{Err: err})
}

// Run implements Host.
func (f *Fake) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f.RunInput(ctx, "", name, args...)
}

// RunDir implements Host. The fake ignores the working directory; tests
// assert on the command line alone.
func (f *Fake) RunDir(ctx context.Context, _, name string, args ...string) ([]byte, error) {
	return f.RunInput(ctx, "", name, args...)
}

// RunInput implements Host.
func (f *Fake) RunInput(_ context.Context, stdin, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	line := name
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	f.Commands = append(f.Commands, line)
	if stdin != "" {
		f.Stdins[line] = stdin
	}

	// Longest stubbed prefix wins so specific stubs shadow broad ones.
	var match string
	for prefix := range f.results {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(match) {
			match = prefix
		}
	}
	if match != "" {
		res := f.results[match]
		return []byte(res.Output), res.Err
	}
	return nil, nil
}

// LookPath implements Host.
func (f *Fake) LookPath(name string) (string, error) {
	for _, missing := range f.MissingTools {
		if missing == name {
			return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// Geteuid implements Host.
func (f *Fake) Geteuid() int {
	return f.Euid
}

// WriteFile implements Host.
func (f *Fake) WriteFile(path string, data []byte, perm fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = append([]byte(nil), data...)
	f.modes[path] = perm
	return nil
}

// ReadFile implements Host.
func (f *Fake) ReadFile(path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	return append([]byte(nil), data...), nil
}

// MkdirAll implements Host.
func (f *Fake) MkdirAll(path string, _ fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
	return nil
}

// Remove implements Host.
func (f *Fake) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, path)
	delete(f.symlinks, path)
	delete(f.dirs, path)
	return nil
}

// Symlink implements Host.
func (f *Fake) Symlink(oldname, newname string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.symlinks[newname]; exists {
		return fmt.Errorf("symlink %s %s: file exists", oldname, newname)
	}
	f.symlinks[newname] = oldname
	return nil
}

// Exists implements Host.
func (f *Fake) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.files[path]; ok {
		return true
	}
	if _, ok := f.symlinks[path]; ok {
		return true
	}
	return f.dirs[path]
}

// File returns the contents of a written file, or nil if absent.
func (f *Fake) File(path string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[path]
}

// Mode returns the permissions a file was written with.
func (f *Fake) Mode(path string) fs.FileMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.modes[path]
}

// SymlinkTarget returns the target of a created symlink.
func (f *Fake) SymlinkTarget(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.symlinks[path]
}

// Ran reports whether any recorded command line starts with prefix.
func (f *Fake) Ran(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, line := range f.Commands {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
