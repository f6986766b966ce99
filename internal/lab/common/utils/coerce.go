package utils

import (
	"strconv"
	"strings"
)

// CoerceInt parses a decimal field value, treating empty or malformed
// input as zero. The views never reject numeric input; bad text simply
// encodes as zero.
func CoerceInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// CoerceUint64 parses an unsigned decimal field value, treating empty,
// negative or malformed input as zero. Values wider than the target wire
// field are kept: the encoders truncate them, not the parser.
func CoerceUint64(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
