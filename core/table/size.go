package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Size units accepted on input, longest suffix first so "kb" wins over "b".
var sizeUnits = []struct {
	suffix string
	mult   int64
}{
	{"gb", 1 << 30},
	{"mb", 1 << 20},
	{"kb", 1 << 10},
	{"g", 1 << 30},
	{"m", 1 << 20},
	{"k", 1 << 10},
	{"b", 1},
}

// ParseSize converts a human-readable size such as "2.5 MB", "10kb" or
// "500" into bytes. Units are case-insensitive and may be separated from
// the magnitude by whitespace. The function is total: input without a
// parseable leading number yields 0, and an unrecognized unit leaves the
// bare magnitude truncated to an integer.
func ParseSize(text string) int64 {
	s := strings.ToLower(strings.TrimSpace(text))

	end := 0
	for ; end < len(s); end++ {
		c := s[end]
		if c >= '0' && c <= '9' || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			continue
		}
		break
	}

	mag, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}

	unit := strings.TrimSpace(s[end:])
	for _, u := range sizeUnits {
		if unit == u.suffix {
			return int64(mag * float64(u.mult))
		}
	}
	return int64(mag)
}

// FormatSize renders a byte count with two decimal places and the largest
// unit for which the magnitude is at least one. Counts below 1 KB print
// as plain bytes.
func FormatSize(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
	} {
		if bytes >= e.power {
			return fmt.Sprintf("%.2f %s", float64(bytes)/float64(e.power), e.unit)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// ExtractBytes recovers the byte count from formatted size text. It first
// tries the two-token "magnitude unit" form produced by FormatSize and
// falls back to ParseSize for everything else.
func ExtractBytes(display string) int64 {
	fields := strings.Fields(display)
	if len(fields) == 2 {
		if mag, err := strconv.ParseFloat(fields[0], 64); err == nil {
			unit := strings.ToLower(fields[1])
			for _, u := range sizeUnits {
				if unit == u.suffix {
					return int64(mag * float64(u.mult))
				}
			}
		}
	}
	return ParseSize(display)
}
