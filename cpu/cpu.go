// Package cpu implements the WDC 65C816 programmer-visible state: the
// hybrid 8/16-bit register file, the emulation/native mode switch, and the
// width-aware accessors that route every register and memory access
// through the CPU's current accumulator and index widths. It generalizes
// the teacher repo's 6502 Cpu struct (cpu/cpu.go in the "gone" reference
// repo) to the 65C816's variable-width register file; the fixed-width
// 6502 fields (Accumulator, X, Y byte) become 16-bit storage with
// width-aware accessors instead.
package cpu

import (
	"github.com/golang/glog"

	"snescpu/mem"
	"snescpu/width"
)

// EmuMode selects between 8-bit 6502-compatible emulation mode and the
// 65C816's native 16-bit mode.
type EmuMode int

const (
	Native EmuMode = iota
	Emulation
)

// CPU holds the full programmer-visible register and flag state. Every
// register is stored at its maximum width (16 bits, or 8 for the bank
// registers); accessors apply the width and mode rules of spec.md §3.
//
// State is mutated in place via pointer receiver, following the teacher
// repo's in-place style (design notes §9 permit either persistent-value or
// in-place mutation; a 65C816 instruction stream mutates one CPU value at
// a time and has no aliasing concern that would favor immutability here).
type CPU struct {
	acc       uint16
	accSize   width.Width
	x, y      uint16
	indexSize width.Width

	DataBank    uint8
	DirectPage  uint16
	ProgramBank uint8
	StackPtr    uint16
	PC          uint16
	EmuMode     EmuMode

	Negative    bool
	Overflow    bool
	Carry       bool
	Zero        bool
	IrqDisable  bool
	DecimalMode bool

	Memory *mem.Memory
}

// New creates a CPU bound to the given memory, reset into emulation mode
// with 8-bit accumulator and index registers — the 65C816's power-on
// state.
func New(m *mem.Memory) *CPU {
	return &CPU{
		Memory:    m,
		EmuMode:   Emulation,
		accSize:   width.Bit8,
		indexSize: width.Bit8,
		StackPtr:  0x01FF,
	}
}

// AccSize returns the logical accumulator width. In emulation mode this is
// always Bit8 regardless of the stored field (spec.md §3).
func (c *CPU) AccSize() width.Width {
	if c.EmuMode == Emulation {
		return width.Bit8
	}
	return c.accSize
}

// SetAccSize sets the stored accumulator width. Has no observable effect
// while EmuMode is Emulation, since AccSize forces Bit8 in that mode.
func (c *CPU) SetAccSize(w width.Width) {
	c.accSize = w
}

// IndexSize returns the logical index-register width, forced to Bit8 in
// emulation mode.
func (c *CPU) IndexSize() width.Width {
	if c.EmuMode == Emulation {
		return width.Bit8
	}
	return c.indexSize
}

// SetIndexSize sets the stored index-register width.
func (c *CPU) SetIndexSize(w width.Width) {
	c.indexSize = w
}

// Acc reads the accumulator, masked to the logical accumulator width.
func (c *CPU) Acc() uint16 {
	return c.acc & c.AccSize().Mask()
}

// SetAcc writes the accumulator. In 8-bit mode only the low byte (A) is
// replaced; the high byte (B) is preserved, matching 65C816 hardware
// behavior (switching to 16-bit mode later exposes the old B unchanged).
func (c *CPU) SetAcc(v uint16) {
	if c.AccSize() == width.Bit8 {
		c.acc = (c.acc &^ 0x00FF) | (v & 0x00FF)
		return
	}
	c.acc = v
}

// A returns the low byte of the accumulator regardless of width.
func (c *CPU) A() uint8 { return uint8(c.acc & 0x00FF) }

// B returns the high byte of the accumulator regardless of width.
func (c *CPU) B() uint8 { return uint8((c.acc & 0xFF00) >> 8) }

// C returns the full 16-bit accumulator regardless of width.
func (c *CPU) C() uint16 { return c.acc }

// SetC sets the full 16-bit accumulator directly, bypassing the width
// rule in SetAcc. Used by XBA, which must set both halves at once.
func (c *CPU) SetC(v uint16) { c.acc = v }

// X reads the X index register, masked to the logical index width.
func (c *CPU) X() uint16 { return c.x & c.IndexSize().Mask() }

// SetX writes the X index register. In 8-bit mode the high byte is
// zeroed, matching 65C816 hardware (unlike the accumulator, index
// registers do not preserve a hidden high byte across width changes).
func (c *CPU) SetX(v uint16) {
	if c.IndexSize() == width.Bit8 {
		c.x = v & 0x00FF
		return
	}
	c.x = v
}

// Y reads the Y index register, masked to the logical index width.
func (c *CPU) Y() uint16 { return c.y & c.IndexSize().Mask() }

// SetY writes the Y index register, zeroing the high byte in 8-bit mode.
func (c *CPU) SetY(v uint16) {
	if c.IndexSize() == width.Bit8 {
		c.y = v & 0x00FF
		return
	}
	c.y = v
}

// EffectivePC returns the full 24-bit instruction fetch address:
// (ProgramBank << 16) | PC.
func (c *CPU) EffectivePC() uint32 {
	return (uint32(c.ProgramBank)<<16 | uint32(c.PC)) & 0xFFFFFF
}

// Break reports the emulation-mode break flag, which is not separately
// stored: it is the inverse of the index width (spec.md §3). Toggling it
// toggles IndexSize. The aliasing is only meaningful while EmuMode is
// Emulation, but the accessor computes the same way regardless of mode,
// matching the spec's description of it as pure accessor logic rather
// than a stored bit.
func (c *CPU) Break() bool {
	return c.indexSize == width.Bit8
}

// SetBreak toggles the aliased index width per Break's rule.
func (c *CPU) SetBreak(b bool) {
	if b {
		c.indexSize = width.Bit8
	} else {
		c.indexSize = width.Bit16
	}
}

// StackWidth returns the width of the stack pointer: 8 bits in emulation
// mode (high byte fixed at 0x01), 16 bits in native mode.
func (c *CPU) StackWidth() width.Width {
	if c.EmuMode == Emulation {
		return width.Bit8
	}
	return width.Bit16
}

// Push8 pushes a single byte and decrements the stack pointer, wrapping
// within page 1 in emulation mode.
func (c *CPU) Push8(v uint8) {
	c.Memory.WriteByte(uint32(c.StackPtr), v)
	c.decrementStack(1)
}

// Pop8 increments the stack pointer and pulls a single byte.
func (c *CPU) Pop8() uint8 {
	c.incrementStack(1)
	return c.Memory.ReadByte(uint32(c.StackPtr))
}

// Push16 pushes a 16-bit value high-byte-first, so that the low byte ends
// up at the lower address (matching the little-endian memory layout once
// popped back with Pop16).
func (c *CPU) Push16(v uint16) {
	c.Push8(uint8(v >> 8))
	c.Push8(uint8(v))
}

// Pop16 pulls a 16-bit value pushed by Push16.
func (c *CPU) Pop16() uint16 {
	lo := uint16(c.Pop8())
	hi := uint16(c.Pop8())
	return hi<<8 | lo
}

func (c *CPU) decrementStack(n uint16) {
	if c.StackWidth() == width.Bit8 {
		lo := uint8(c.StackPtr) - uint8(n)
		c.StackPtr = 0x0100 | uint16(lo)
		return
	}
	c.StackPtr -= n
}

func (c *CPU) incrementStack(n uint16) {
	if c.StackWidth() == width.Bit8 {
		lo := uint8(c.StackPtr) + uint8(n)
		c.StackPtr = 0x0100 | uint16(lo)
		return
	}
	c.StackPtr += n
}

// ReadData reads a value from addr at the current accumulator width —
// one byte if AccSize is Bit8, a little-endian word otherwise. This is
// the width routing spec.md §3 describes for memory access performed by
// addressing-mode fetch/store.
func (c *CPU) ReadData(addr uint32) uint16 {
	if c.AccSize() == width.Bit8 {
		return uint16(c.Memory.ReadByte(addr))
	}
	return c.Memory.ReadWord(addr)
}

// WriteData writes v to addr at the current accumulator width.
func (c *CPU) WriteData(addr uint32, v uint16) {
	if c.AccSize() == width.Bit8 {
		c.Memory.WriteByte(addr, uint8(v))
		return
	}
	c.Memory.WriteWord(addr, v)
}

// ReadDataAt reads a value from addr at an explicitly given width,
// independent of the accumulator width.
func (c *CPU) ReadDataAt(addr uint32, w width.Width) uint16 {
	if w == width.Bit8 {
		return uint16(c.Memory.ReadByte(addr))
	}
	return c.Memory.ReadWord(addr)
}

// WriteDataAt writes v to addr at an explicitly given width.
func (c *CPU) WriteDataAt(addr uint32, w width.Width, v uint16) {
	if w == width.Bit8 {
		c.Memory.WriteByte(addr, uint8(v))
		return
	}
	c.Memory.WriteWord(addr, v)
}

// ReadIndirectPointer reads an n-byte (2 or 3) little-endian pointer at
// addr, used by Indirect addressing to fetch the bank-relative or long
// offset it points through.
func (c *CPU) ReadIndirectPointer(addr uint32, n int) uint32 {
	switch n {
	case 2:
		return uint32(c.Memory.ReadWord(addr))
	case 3:
		return c.Memory.ReadLong(addr)
	default:
		glog.Warningf("cpu: ReadIndirectPointer called with invalid n=%d", n)
		return 0
	}
}
