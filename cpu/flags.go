package cpu

import "snescpu/width"

// Flags bundles the subset of status flags that check_flags_for_value
// derives from a value. It generalizes the teacher repo's setNegativeM7 /
// setZero helpers (cpu/instructions.go in "gone"), which set Negative and
// Zero directly on the Cpu one flag at a time, into a single width-aware
// computation shared by every instruction family.
type Flags struct {
	Negative bool
	Overflow bool
	Zero     bool
	Carry    bool
}

// CheckFlagsForValue derives Negative, Overflow, and Zero from value at
// the given width. Carry is always false: carry is never derived from a
// bare value, only produced by the operation that computes it (Rotate,
// ADC/SBC, compares). Overflow here is a structural inspection of bit
// 6/14 of value, as spec.md §4.2 and the Open Questions note — it is not
// signed ADC/SBC overflow, which callers must precompute themselves.
func CheckFlagsForValue(value uint16, w width.Width) Flags {
	return Flags{
		Negative: value&w.SignBit() != 0,
		Overflow: value&w.OverflowBit() != 0,
		Zero:     value == 0,
		Carry:    false,
	}
}

// Direction selects the rotation direction for Rotate.
type Direction int

const (
	Left Direction = iota
	Right
)

// Rotate performs a single-step left or right shift of value at the given
// width, returning the shifted result and the bit that fell off the end.
// It does not fold a carry-in bit back into the result — ROL/ROR compose
// that themselves from the returned bit-out and the CPU's prior carry
// flag (see opcode/shift.go), matching spec.md §4.2 and §4.5.3.
//
//	Rotate(0x80, Bit8,  Left)  == (0x00,   true)
//	Rotate(0x80, Bit16, Left)  == (0x0100, false)
//	Rotate(0xFF, Bit8,  Right) == (0x7F,   true)
func Rotate(value uint16, w width.Width, dir Direction) (result uint16, bitOut bool) {
	if dir == Left {
		bitOut = value&w.SignBit() != 0
		result = (value << 1) & w.Mask()
		return result, bitOut
	}
	bitOut = value&0x0001 != 0
	result = value >> 1
	return result, bitOut
}
