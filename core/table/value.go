package table

import (
	"fmt"
	"strconv"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	// KindText holds free-form text compared lexicographically.
	KindText Kind = iota
	// KindInt holds a signed 64-bit integer.
	KindInt
	// KindFloat holds a double-precision float.
	KindFloat
	// KindSize holds a human-readable byte count such as "10.50 MB".
	// Unlike KindText it compares by magnitude, not by spelling.
	KindSize
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single table cell. The variant is fixed when the producing
// command builds the row and never changes across copies.
//
// Size values carry both the display string and the parsed byte count so
// comparisons never re-parse the text.
type Value struct {
	kind  Kind
	text  string
	num   int64
	real  float64
	bytes int64
}

// TextValue builds a text cell.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// IntValue builds an integer cell.
func IntValue(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// FloatValue builds a floating point cell.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, real: f}
}

// SizeValue builds a size cell from already-formatted text like "2.00 MB".
// The byte count is derived up front via ExtractBytes.
func SizeValue(display string) Value {
	return Value{kind: KindSize, text: display, bytes: ExtractBytes(display)}
}

// SizeFromBytes builds a size cell from a raw byte count, formatting the
// display text with FormatSize.
func SizeFromBytes(n int64) Value {
	return Value{kind: KindSize, text: FormatSize(n), bytes: n}
}

func (v Value) Kind() Kind { return v.kind }

// Text returns the textual payload of a text or size cell.
func (v Value) Text() string { return v.text }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.num }

// Float returns the floating point payload.
func (v Value) Float() float64 { return v.real }

// Bytes returns the byte magnitude of a size cell.
func (v Value) Bytes() int64 { return v.bytes }

// String formats the cell for display. Floats are fixed at two decimals.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.real, 'f', 2, 64)
	default:
		return v.text
	}
}
