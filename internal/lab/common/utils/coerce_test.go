package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"-3", -3},
		{"", 0},
		{"abc", 0},
		{"1.5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceInt(tt.input), "input %q", tt.input)
	}
}

func TestCoerceUint64(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"4294967296", 4294967296}, // wider than 32 bits, kept
		{"0", 0},
		{"-1", 0},
		{"", 0},
		{"x", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceUint64(tt.input), "input %q", tt.input)
	}
}
