// Package commands holds tabsh's builtin commands. Producers originate
// typed tables that feed the pipeline stages; plain commands write text.
// Commands register themselves from init so importing the package is
// enough to populate the registries.
package commands

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/table"
)

// ProcessFunc is a plain builtin: runs, writes text, returns an exit code.
type ProcessFunc func(p *proc.Proc) int

// ProducerFunc is a table-producing builtin.
type ProducerFunc func(p *proc.Proc) (*table.Table, error)

// AllCommands holds the plain builtins by name.
var AllCommands = make(map[string]ProcessFunc)

// Producers holds the table-producing builtins by name.
var Producers = make(map[string]ProducerFunc)

func mustAddCommand(name string, cmd ProcessFunc) {
	if _, ok := AllCommands[name]; ok {
		panic(fmt.Sprintf("duplicate command: %s", name))
	}
	AllCommands[name] = cmd
}

func mustAddProducer(name string, cmd ProducerFunc) {
	if _, ok := Producers[name]; ok {
		panic(fmt.Sprintf("duplicate producer: %s", name))
	}
	Producers[name] = cmd
}

// ResolveProducer adapts the producer registry to the executor's
// resolver signature.
func ResolveProducer(name string) ProducerFunc {
	return Producers[name]
}

// SimpleCommand wraps getopt flag parsing with the usual help plumbing so
// builtins stay small.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, the default help flag isn't added.
	ShowHelp *bool
	// NeverBail skips the usage dump on bad flags and always runs the
	// callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, on success, calls the callback.
func (s *SimpleCommand) Run(p *proc.Proc, callback func() int) int {
	opts := s.Flags()

	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(p.Args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(p.Stderr, "error: %s\n\n", err)
		s.PrintHelp(p.Stdout)
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(p.Stdout)
		return 0
	}

	return callback()
}
