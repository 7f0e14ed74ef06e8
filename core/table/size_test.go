package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleFormatSize() {
	fmt.Println(FormatSize(512))
	fmt.Println(FormatSize(5 * 1024))
	fmt.Println(FormatSize(1572864))
	fmt.Println(FormatSize(3 << 30))

	// Output: 512 B
	// 5.00 KB
	// 1.50 MB
	// 3.00 GB
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		{"1KB", 1024},
		{"1kb", 1024},
		{"1k", 1024},
		{"1.5MB", 1572864},
		{"2.5 MB", 2621440},
		{"10kb", 10240},
		{"1g", 1 << 30},
		{"1 GB", 1 << 30},
		{"500", 500},
		{"345 B", 345},
		{"12.9", 12},
		// Unrecognized units fall back to the bare magnitude.
		{"3 parsecs", 3},
		// Malformed input degrades to zero, never fails.
		{"abc", 0},
		{"", 0},
		{"   ", 0},
		{"MB", 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseSize(tc.input))
		})
	}
}

func TestExtractBytes(t *testing.T) {
	cases := []struct {
		input    string
		expected int64
	}{
		// The two-token form produced by FormatSize.
		{"10.00 KB", 10240},
		{"2.00 MB", 2097152},
		{"500.00 KB", 512000},
		{"345 B", 345},
		// Everything else falls back to ParseSize.
		{"10kb", 10240},
		{"500", 500},
		{"junk", 0},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractBytes(tc.input))
		})
	}
}

func TestFormatSizeRoundTrips(t *testing.T) {
	for _, bytes := range []int64{0, 1, 512, 10240, 1572864, 5 << 30} {
		v := SizeFromBytes(bytes)
		assert.Equal(t, bytes, ExtractBytes(v.Text()), "display %q", v.Text())
	}
}
