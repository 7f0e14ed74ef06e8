// Package proctest provides deterministic Proc fixtures for command and
// pipeline tests: an in-memory filesystem, a pinned clock and fake system
// listers.
package proctest

import (
	"bytes"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/tabsh/tabsh/core/proc"
)

// New builds a deterministic Proc rooted at /home/user on a MemMapFs with
// the clock pinned to Go's reference time. Output goes to the returned
// buffers.
func New() (p *proc.Proc, stdout, stderr *bytes.Buffer) {
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}

	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/home/user", 0755)

	p = &proc.Proc{
		Dir:    "/home/user",
		FS:     fs,
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Now: func() time.Time {
			// Go's reference timestamp with a different value in each position.
			return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
		},
	}
	return p, stdout, stderr
}

// WriteFile drops a file with the given content and modification time
// onto the fixture's filesystem.
func WriteFile(p *proc.Proc, path string, size int, modTime time.Time) error {
	if err := afero.WriteFile(p.FS, path, bytes.Repeat([]byte{'x'}, size), 0644); err != nil {
		return err
	}
	return p.FS.Chtimes(path, modTime, modTime)
}

// FakeProcesses returns a lister serving a fixed process snapshot.
func FakeProcesses(infos ...proc.ProcessInfo) func() ([]proc.ProcessInfo, error) {
	return func() ([]proc.ProcessInfo, error) {
		return infos, nil
	}
}

// FakeMemory returns a lister serving a fixed memory snapshot.
func FakeMemory(info proc.MemoryInfo) func() (*proc.MemoryInfo, error) {
	return func() (*proc.MemoryInfo, error) {
		return &info, nil
	}
}
