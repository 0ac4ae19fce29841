package main

import (
	"errors"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		bits  int
		want  uint64
		err   bool
	}{
		{"0x90", 8, 0x90, false},
		{"144", 8, 144, false},
		{"0xFF", 8, 0xFF, false},
		{"256", 8, 0, true},
		{"0x1234", 16, 0x1234, false},
		{"0x10000", 16, 0, true},
		{"banana", 8, 0, true},
		{"", 8, 0, true},
	}

	for _, tt := range tests {
		got, err := parseValue(tt.input, tt.bits)
		if tt.err {
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("parseValue(%q, %d) error = %v, want ErrInvalidValue", tt.input, tt.bits, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseValue(%q, %d) unexpected error: %v", tt.input, tt.bits, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseValue(%q, %d) = %#x, want %#x", tt.input, tt.bits, got, tt.want)
		}
	}
}
