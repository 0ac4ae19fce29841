// Package cpu models the register file and condition flags of the Sharp SM83.
//
// It is a pure state container: an instruction-execution engine reads and
// writes these fields around each instruction, but no instruction semantics,
// bus access, or timing live here.
package cpu

import "strings"

// Flags is the SM83 flags register, a bit set packed into the high nibble of
// a byte. Values combine with the usual bitwise operators; all four flags are
// independent, so any of the 16 combinations is valid.
//
// The internal byte may carry a non-zero low nibble (for example after unary
// ^ or FlagsFromBits with arbitrary input); only Bits strips it. This matters
// for AF writes, which retain the raw low nibble until the next export.
type Flags uint8

const (
	FlagC Flags = 1 << 4 // Carry flag (bit 4)
	FlagH Flags = 1 << 5 // Half-carry flag (bit 5)
	FlagN Flags = 1 << 6 // Subtraction flag (bit 6)
	FlagZ Flags = 1 << 7 // Zero flag (bit 7)

	// FlagsNone is the empty flag set.
	FlagsNone Flags = 0
)

// flagBits masks the canonical flag positions.
const flagBits = 0xF0

// FlagsFromBits creates a flag set from its byte representation. All 256
// inputs are accepted and every bit is kept, including the low nibble.
func FlagsFromBits(bits uint8) Flags {
	return Flags(bits)
}

// Bits returns the canonical byte representation: the high nibble of the
// internal value with the low nibble forced to zero.
func (f Flags) Bits() uint8 {
	return uint8(f) & flagBits
}

// Has reports whether any flag in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask != 0
}

// String lists the set flags in the order Z, N, H, C, or "<empty>" if none
// are set. Diagnostic output only; the low nibble is ignored.
func (f Flags) String() string {
	if f.Bits() == 0 {
		return "<empty>"
	}
	names := make([]string, 0, 4)
	if f.Has(FlagZ) {
		names = append(names, "Z")
	}
	if f.Has(FlagN) {
		names = append(names, "N")
	}
	if f.Has(FlagH) {
		names = append(names, "H")
	}
	if f.Has(FlagC) {
		names = append(names, "C")
	}
	return strings.Join(names, " | ")
}
