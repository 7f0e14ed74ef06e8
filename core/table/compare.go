package table

import (
	"strconv"
	"strings"
)

// Ops lists the relational operators accepted by the where stage.
var Ops = []string{">", "<", ">=", "<=", "=="}

// IsOp reports whether s is a supported relational operator.
func IsOp(s string) bool {
	for _, op := range Ops {
		if s == op {
			return true
		}
	}
	return false
}

// Compare orders two cells of the same column. Both sides carry the same
// variant by construction; the dispatch below is exhaustive over Kind.
//
//   - size cells compare by byte magnitude
//   - text cells compare case-insensitively
//   - integer cells compare as signed integers
//   - float cells compare by IEEE ordering, ties treated as equal
func Compare(a, b Value) int {
	switch a.kind {
	case KindSize:
		return compareInt64(a.bytes, b.bytes)
	case KindInt:
		return compareInt64(a.num, b.num)
	case KindFloat:
		switch {
		case a.real < b.real:
			return -1
		case a.real > b.real:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(strings.ToLower(a.text), strings.ToLower(b.text))
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// EvalOp maps a relational operator onto the sign of a Compare result.
// Unsupported operators report ok == false.
func EvalOp(op string, sign int) (holds, ok bool) {
	switch op {
	case ">":
		return sign > 0, true
	case "<":
		return sign < 0, true
	case ">=":
		return sign >= 0, true
	case "<=":
		return sign <= 0, true
	case "==":
		return sign == 0, true
	default:
		return false, false
	}
}

// ParseLiteral converts a stage's textual literal into a Value matching
// the column's runtime variant. Like ParseSize it is total: a malformed
// numeric literal degrades to zero rather than failing, which keeps
// filtering permissive.
func ParseLiteral(kind Kind, text string) Value {
	switch kind {
	case KindSize:
		return Value{kind: KindSize, text: text, bytes: ParseSize(text)}
	case KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			n = 0
		}
		return IntValue(n)
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			f = 0
		}
		return FloatValue(f)
	default:
		return TextValue(text)
	}
}
