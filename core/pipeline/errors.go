package pipeline

import "fmt"

// ErrorKind classifies pipeline failures.
type ErrorKind int

const (
	// UnknownField means a stage referenced a column the table lacks.
	UnknownField ErrorKind = iota
	// UnknownStage means pipeline position two or later named something
	// that is not a registered filter stage.
	UnknownStage
	// ArityMismatch means a stage's arguments did not fit its grammar.
	ArityMismatch
	// PlainOutput means a non-table command was piped into a stage.
	PlainOutput
)

// Error is a pipeline failure tied to the stage that caused it. All kinds
// abort the current line; none of them abort the shell.
type Error struct {
	Kind   ErrorKind
	Stage  string
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Detail)
}

func errUnknownField(stage, field string) error {
	return &Error{Kind: UnknownField, Stage: stage, Detail: fmt.Sprintf("unknown field %q", field)}
}

func errUnknownStage(name string) error {
	return &Error{Kind: UnknownStage, Stage: name, Detail: "not a filter stage"}
}

func errArity(stage, detail string) error {
	return &Error{Kind: ArityMismatch, Stage: stage, Detail: detail}
}
