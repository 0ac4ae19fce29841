// Package main provides the sm83 CLI, a small inspector for the register
// core. It decodes flag bytes and AF values the way an execution engine
// would see them.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/dmgcore/sm83/internal/cpu"
)

// ErrInvalidValue indicates an argument is not a number that fits its
// register width.
var ErrInvalidValue = errors.New("invalid value")

// CLI represents the command-line interface structure.
type CLI struct {
	Flags FlagsCmd `cmd:"" help:"Decode a flags byte."`
	AF    AFCmd    `cmd:"" name:"af" help:"Decode a 16-bit AF value."`
}

// FlagsCmd decodes a raw flags byte into its canonical form and flag names.
type FlagsCmd struct {
	Byte string `arg:"" help:"Flags byte (decimal or 0x-prefixed hex)."`
}

// Run executes the flags command.
func (c *FlagsCmd) Run() error {
	b, err := parseValue(c.Byte, 8)
	if err != nil {
		return err
	}

	f := cpu.FlagsFromBits(uint8(b)) //nolint:gosec // G115: parseValue bounds the result to 8 bits
	fmt.Printf("Flags:\n")
	fmt.Printf("  Raw byte:       0x%02X\n", b)
	fmt.Printf("  Canonical byte: 0x%02X\n", f.Bits())
	fmt.Printf("  Set flags:      %s\n", f)

	return nil
}

// AFCmd writes a value through SetAF and shows the resulting register state.
type AFCmd struct {
	Value string `arg:"" help:"16-bit AF value (decimal or 0x-prefixed hex)."`
}

// Run executes the af command.
func (c *AFCmd) Run() error {
	v, err := parseValue(c.Value, 16)
	if err != nil {
		return err
	}

	var r cpu.Registers
	r.SetAF(uint16(v)) //nolint:gosec // G115: parseValue bounds the result to 16 bits

	fmt.Printf("AF write 0x%04X:\n", v)
	fmt.Printf("  A:             0x%02X\n", r.A)
	fmt.Printf("  F (canonical): 0x%02X (%s)\n", r.F.Bits(), r.F)
	fmt.Printf("  AF read-back:  0x%04X\n", r.AF())

	return nil
}

// parseValue parses a decimal or 0x-prefixed hex value of the given bit width.
func parseValue(s string, bits int) (uint64, error) {
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
		base = 16
	}

	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %d-bit value", ErrInvalidValue, s, bits)
	}
	return v, nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sm83"),
		kong.Description("An inspector for the SM83 register file and flags."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
