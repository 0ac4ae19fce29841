package cpu

// Registers is the SM83 register file: six general-purpose 8-bit registers,
// the accumulator, the flags register, and the two 16-bit pointer registers.
// All nine fields are stored directly; the 16-bit pair views are computed on
// access and never cached.
type Registers struct {
	A  uint8  // Accumulator
	F  Flags  // Flags (low byte of AF; only the high nibble is observable)
	B  uint8  // General purpose
	C  uint8  // General purpose
	D  uint8  // General purpose
	E  uint8  // General purpose
	H  uint8  // General purpose (high byte of HL pointer)
	L  uint8  // General purpose (low byte of HL pointer)
	SP uint16 // Stack pointer
	PC uint16 // Program counter
}

// NewRegisters creates a register file with the DMG post-boot-ROM values.
// Engines emulating other models can construct Registers directly.
func NewRegisters() *Registers {
	return &Registers{
		A:  0x01,
		F:  FlagZ | FlagH | FlagC, // 0xB0
		B:  0x00,
		C:  0x13,
		D:  0x00,
		E:  0xD8,
		H:  0x01,
		L:  0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

// 16-bit register pair getters

// AF returns the 16-bit AF register pair. The low nibble of the F byte is
// always zero here, whatever was last written through SetAF.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Bits())
}

// BC returns the 16-bit BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// DE returns the 16-bit DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// HL returns the 16-bit HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// 16-bit register pair setters

// SetAF sets the 16-bit AF register pair. The low byte is stored in F as-is,
// raw low nibble included; it is stripped on the next AF or F.Bits read.
func (r *Registers) SetAF(value uint16) {
	r.A = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.F = FlagsFromBits(uint8(value))
}

// SetBC sets the 16-bit BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.C = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// SetDE sets the 16-bit DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.E = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// SetHL sets the 16-bit HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = uint8(value >> 8) //nolint:gosec // G115: Intentional byte extraction from 16-bit register
	r.L = uint8(value)      //nolint:gosec // G115: Intentional byte extraction from 16-bit register
}

// Flag operations

// GetFlag checks if a flag is set.
func (r *Registers) GetFlag(flag Flags) bool {
	return r.F.Has(flag)
}

// SetFlag sets a flag to 1.
func (r *Registers) SetFlag(flag Flags) {
	r.F |= flag
}

// ClearFlag sets a flag to 0.
func (r *Registers) ClearFlag(flag Flags) {
	r.F &^= flag
}

// SetFlagTo sets a flag to a specific boolean value.
func (r *Registers) SetFlagTo(flag Flags, value bool) {
	if value {
		r.SetFlag(flag)
	} else {
		r.ClearFlag(flag)
	}
}

// Individual flag getters

// ZeroFlag returns the Zero flag state.
func (r *Registers) ZeroFlag() bool {
	return r.GetFlag(FlagZ)
}

// SubtractFlag returns the Subtract flag state.
func (r *Registers) SubtractFlag() bool {
	return r.GetFlag(FlagN)
}

// HalfCarryFlag returns the Half-carry flag state.
func (r *Registers) HalfCarryFlag() bool {
	return r.GetFlag(FlagH)
}

// CarryFlag returns the Carry flag state.
func (r *Registers) CarryFlag() bool {
	return r.GetFlag(FlagC)
}
