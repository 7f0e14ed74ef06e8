// Package proc carries the per-invocation execution context handed to
// builtin commands. It mirrors the small slice of the OS surface the
// builtins touch so tests can substitute deterministic implementations.
package proc

import (
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// PTY describes the terminal the session is attached to, if any.
type PTY struct {
	Width int
	IsPTY bool
}

// ProcessInfo is one row of the system process snapshot.
type ProcessInfo struct {
	PID     int64
	Name    string
	// Resident set size in bytes.
	RSS     int64
	Threads int64
}

// MemoryInfo is a snapshot of system memory, in bytes.
type MemoryInfo struct {
	Total     uint64
	Used      uint64
	Free      uint64
	Available uint64
}

// Proc is the context for one command invocation.
type Proc struct {
	// Args holds the command line, Args[0] being the command name.
	Args []string
	// Dir is the working directory.
	Dir string
	// FS is the filesystem commands read through.
	FS afero.Fs

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Now is the clock; tests pin it.
	Now func() time.Time

	PTY PTY

	// System listers, injectable for tests. Nil falls back to whatever
	// the host wired in (see commands.SystemProcesses and friends).
	Processes func() ([]ProcessInfo, error)
	Memory    func() (*MemoryInfo, error)
}

// WithArgs returns a copy of the context carrying a new command line.
// Everything else is shared; the copy is what the executor hands to each
// pipeline segment.
func (p *Proc) WithArgs(args []string) *Proc {
	out := *p
	out.Args = args
	return &out
}

// Abs resolves a path against the working directory.
func (p *Proc) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Dir, path)
}

// Time returns the current time from the injected clock, defaulting to
// the wall clock.
func (p *Proc) Time() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
