// Package pipeline implements tabsh's structured-data pipeline: the five
// filter stages, their grammar-backed validation, and the executor that
// threads a table from a producing command through each stage and into
// the renderer.
package pipeline

import (
	"fmt"
	"strings"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/schema"
	"github.com/tabsh/tabsh/core/table"
)

// ProducerFunc originates a table from a builtin command.
type ProducerFunc func(p *proc.Proc) (*table.Table, error)

// ProducerResolver maps a command name to its table producer, or nil when
// the command does not produce tables.
type ProducerResolver func(name string) ProducerFunc

// PlainFunc runs a command that emits plain text: a non-table builtin or
// an external program. It reports whether the command was found at all.
type PlainFunc func(p *proc.Proc, argv []string) (handled bool, exitCode int)

// Executor runs one command line at a time: split on pipes, produce a
// table, thread it through the stages, render the survivor. Strictly
// sequential; each stage exclusively owns the table it receives and the
// executor drops it as soon as the replacement exists.
type Executor struct {
	Grammar   *schema.Registry
	Producers ProducerResolver
	Plain     PlainFunc
}

// Execute runs the line and returns its exit code. Pipeline errors are
// reported to p.Stderr and abort the line, never the caller.
func (e *Executor) Execute(p *proc.Proc, line string) int {
	segments, err := splitPipeline(line)
	if err != nil {
		fmt.Fprintf(p.Stderr, "tabsh: %v\n", err)
		return 1
	}
	if len(segments) == 0 {
		return 0
	}

	first := segments[0]
	producer := e.resolveProducer(first[0])
	if producer == nil {
		// Plain output cannot feed filter stages; reject before running
		// the command rather than after, for the better diagnostic.
		if len(segments) > 1 {
			fmt.Fprintf(p.Stderr, "tabsh: %s: command does not produce a table, it cannot start a pipeline\n", first[0])
			return 1
		}
		handled, code := e.Plain(p.WithArgs(first), first)
		if !handled {
			fmt.Fprintf(p.Stderr, "tabsh: %s: command not found\n", first[0])
			return 127
		}
		return code
	}

	// Validate every stage against the grammar before producing anything,
	// so a malformed tail fails fast with a shape diagnostic.
	for _, argv := range segments[1:] {
		if err := e.validateStage(argv); err != nil {
			fmt.Fprintf(p.Stderr, "tabsh: %v\n", err)
			return 1
		}
	}

	tbl, err := producer(p.WithArgs(first))
	if err != nil {
		fmt.Fprintf(p.Stderr, "tabsh: %s: %v\n", first[0], err)
		return 1
	}

	for _, argv := range segments[1:] {
		stage := Stages[argv[0]]
		next, err := stage(tbl, argv[1:])
		if err != nil {
			fmt.Fprintf(p.Stderr, "tabsh: %v\n", err)
			return 1
		}
		// Single-owner hand-off: the prior table is dead from here on.
		tbl = next
	}

	if err := table.Render(p.Stdout, tbl); err != nil {
		fmt.Fprintf(p.Stderr, "tabsh: %v\n", err)
		return 1
	}
	return 0
}

func (e *Executor) resolveProducer(name string) ProducerFunc {
	if e.Producers == nil {
		return nil
	}
	return e.Producers(name)
}

// validateStage checks a stage invocation's shape against the grammar:
// the stage must exist, the argument count must fit, and operator and
// direction positions must hold what the grammar expects. Field existence
// is left to the stage itself, which sees the live table.
func (e *Executor) validateStage(argv []string) error {
	shape, ok := e.Grammar.Stage(argv[0])
	if !ok {
		return errUnknownStage(argv[0])
	}

	args := argv[1:]
	if len(args) < shape.MinArgs() {
		return errArity(shape.Name, fmt.Sprintf("want at least %d arguments, got %d", shape.MinArgs(), len(args)))
	}
	if len(args) > len(shape.Args) {
		return errArity(shape.Name, fmt.Sprintf("want at most %d arguments, got %d", len(shape.Args), len(args)))
	}

	for i, arg := range args {
		switch shape.Args[i].Role {
		case schema.RoleOperator:
			if !table.IsOp(arg) {
				return errArity(shape.Name, fmt.Sprintf("expected a comparison operator, got %q", arg))
			}
		case schema.RoleDirection:
			switch strings.ToLower(arg) {
			case "asc", "desc":
			default:
				return errArity(shape.Name, fmt.Sprintf("direction must be asc or desc, got %q", arg))
			}
		}
	}
	return nil
}

// splitPipeline breaks the raw line on the pipe separator and tokenizes
// each segment. Empty segments (dangling pipes) are a syntax error.
func splitPipeline(line string) ([][]string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	var segments [][]string
	for _, segment := range strings.Split(line, "|") {
		tokens, err := shlex.Split(strings.TrimSpace(segment), true)
		if err != nil {
			return nil, fmt.Errorf("syntax error: %v", err)
		}
		if len(tokens) == 0 {
			return nil, fmt.Errorf("syntax error near %q", "|")
		}
		segments = append(segments, tokens)
	}
	return segments, nil
}
