package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		sign int
	}{
		{"text equal ignores case", TextValue("Readme"), TextValue("README"), 0},
		{"text less", TextValue("alpha"), TextValue("beta"), -1},
		{"text greater", TextValue("zeta"), TextValue("beta"), 1},
		{"size by magnitude not spelling", SizeValue("2.00 MB"), SizeValue("500.00 KB"), 1},
		{"size equal", SizeValue("1.00 KB"), SizeValue("1024"), 0},
		{"int less", IntValue(-5), IntValue(3), -1},
		{"int equal", IntValue(7), IntValue(7), 0},
		{"float greater", FloatValue(2.5), FloatValue(1.5), 1},
		{"float ties equal", FloatValue(1.0), FloatValue(1.0), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compare(tc.a, tc.b)
			switch {
			case tc.sign < 0:
				assert.Negative(t, got)
			case tc.sign > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestEvalOp(t *testing.T) {
	cases := []struct {
		op    string
		sign  int
		holds bool
	}{
		{">", 1, true},
		{">", 0, false},
		{"<", -1, true},
		{"<", 1, false},
		{">=", 0, true},
		{"<=", -1, true},
		{"==", 0, true},
		{"==", 1, false},
	}
	for _, tc := range cases {
		holds, ok := EvalOp(tc.op, tc.sign)
		assert.True(t, ok, tc.op)
		assert.Equal(t, tc.holds, holds, "%s with sign %d", tc.op, tc.sign)
	}

	_, ok := EvalOp("!=", 0)
	assert.False(t, ok)
}

func TestParseLiteral(t *testing.T) {
	t.Run("size literals accept shorthand units", func(t *testing.T) {
		v := ParseLiteral(KindSize, "10kb")
		assert.Equal(t, KindSize, v.Kind())
		assert.Equal(t, int64(10240), v.Bytes())
	})

	t.Run("numeric literals", func(t *testing.T) {
		assert.Equal(t, int64(42), ParseLiteral(KindInt, "42").Int())
		assert.Equal(t, 2.5, ParseLiteral(KindFloat, "2.5").Float())
	})

	t.Run("malformed numerics degrade to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), ParseLiteral(KindInt, "many").Int())
		assert.Equal(t, 0.0, ParseLiteral(KindFloat, "lots").Float())
		assert.Equal(t, int64(0), ParseLiteral(KindSize, "junk").Bytes())
	})

	t.Run("text passes through", func(t *testing.T) {
		v := ParseLiteral(KindText, "log")
		assert.Equal(t, KindText, v.Kind())
		assert.Equal(t, "log", v.Text())
	})
}
