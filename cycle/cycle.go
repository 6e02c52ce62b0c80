// Package cycle implements the cycle-cost calculator: a list of
// conditional cycle-delta pairs summed against a CPU's runtime state.
//
// This generalizes the teacher repo's per-opcode fixed Cycles field
// (cpu/opcodes.go in "gone", where every Opcode carries a single constant
// cycle count) into the composable conditional-cost list the 65C816 needs,
// since its timing depends on accumulator/index width, direct-page
// alignment, emulation mode, and page-boundary crossings.
package cycle

import (
	"snescpu/cpu"
	"snescpu/width"
)

// Mod is a single conditional cycle-cost contribution: delta cycles are
// added to the total iff Predicate reports true for the given CPU.
type Mod struct {
	Delta     int32
	Predicate func(c *cpu.CPU) bool
}

// Calc sums the delta of every Mod whose predicate holds against c.
func Calc(c *cpu.CPU, mods []Mod) uint32 {
	var total int32
	for _, m := range mods {
		if m.Predicate(c) {
			total += m.Delta
		}
	}
	if total < 0 {
		return 0
	}
	return uint32(total)
}

// Constant always contributes n.
func Constant(n int32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool { return true }}
}

// AccIs16Bit contributes n iff the accumulator is currently 16-bit.
func AccIs16Bit(n int32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool { return c.AccSize() == width.Bit16 }}
}

// IndexIs16Bit contributes n iff the index registers are currently 16-bit.
func IndexIs16Bit(n int32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool { return c.IndexSize() == width.Bit16 }}
}

// NativeMode contributes n iff the CPU is in native mode.
func NativeMode(n int32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool { return c.EmuMode == cpu.Native }}
}

// LowDirectPageNotZero contributes n iff the low byte of the direct page
// register is nonzero.
func LowDirectPageNotZero(n int32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool { return c.DirectPage&0xFF != 0 }}
}

// IndexValue reads one of the CPU's index registers, used by
// CheckPageBoundary to compute the post-index address without depending on
// the addressing package (which itself may need cycle's Mod type for
// pre-index bookkeeping, were it to import cycle — keeping the dependency
// one-directional keeps addressing, cycle, and opcode free of import
// cycles).
type IndexValue func(c *cpu.CPU) uint16

// IndexX reads the X register.
func IndexX(c *cpu.CPU) uint16 { return c.X() }

// IndexY reads the Y register.
func IndexY(c *cpu.CPU) uint16 { return c.Y() }

// CheckPageBoundary contributes n iff adding the named index register's
// value to initial24 changes the high 16 bits of the 24-bit address (a
// page/bank boundary crossing).
func CheckPageBoundary(n int32, initial24 uint32, r IndexValue) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool {
		next := (initial24 + uint32(r(c))) & 0xFFFFFF
		return initial24&0xFFFF00 != next&0xFFFF00
	}}
}

// CheckPageBoundaryAndEmulationMode contributes n iff the CPU is in
// emulation mode and initial24 and new24 differ in their high 16 bits.
func CheckPageBoundaryAndEmulationMode(n int32, initial24, new24 uint32) Mod {
	return Mod{Delta: n, Predicate: func(c *cpu.CPU) bool {
		if c.EmuMode != cpu.Emulation {
			return false
		}
		return initial24&0xFFFF00 != new24&0xFFFF00
	}}
}
