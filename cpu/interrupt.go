package cpu

import (
	"github.com/golang/glog"

	"snescpu/width"
)

// Vectors holds the six 16-bit interrupt vectors the CPU core consumes,
// per spec.md §6.2 ("The CPU core consumes only (RESET, IRQ, NMI, ABORT,
// BREAK, COP) as 16-bit addresses"). Assembling these from a ROM header is
// the loader's job — see the rom package — so Vectors is a plain value
// type with no dependency on ROM parsing.
type Vectors struct {
	Reset uint16
	IRQ   uint16
	NMI   uint16
	Abort uint16
	Break uint16
	COP   uint16
}

// InterruptKind selects which vector an Interrupt dispatch uses.
type InterruptKind int

const (
	KindReset InterruptKind = iota
	KindIRQ
	KindNMI
	KindAbort
	KindBreak
	KindCOP
)

func (k InterruptKind) String() string {
	switch k {
	case KindReset:
		return "RESET"
	case KindIRQ:
		return "IRQ"
	case KindNMI:
		return "NMI"
	case KindAbort:
		return "ABORT"
	case KindBreak:
		return "BREAK"
	case KindCOP:
		return "COP"
	default:
		return "UNKNOWN"
	}
}

func (v Vectors) pick(k InterruptKind) uint16 {
	switch k {
	case KindReset:
		return v.Reset
	case KindIRQ:
		return v.IRQ
	case KindNMI:
		return v.NMI
	case KindAbort:
		return v.Abort
	case KindBreak:
		return v.Break
	case KindCOP:
		return v.COP
	default:
		return 0
	}
}

// Interrupt dispatches a RESET/IRQ/NMI/ABORT/BREAK/COP event: pushes PC
// (and, in native mode, the program bank) and the flag byte to the stack
// at the current stack width, disables further IRQs, clears decimal mode,
// resets the program bank to 0, and loads PC from the selected vector.
// RESET additionally drops the CPU into emulation mode with 8-bit
// registers, matching 65C816 power-on/reset behavior; it does not touch
// the stack.
//
// This generalizes the teacher repo's nmi/reset/irq methods (cpu/cpu.go
// in "gone"), which push to a fixed 8-bit stack and jump via a hardcoded
// 0xfffa/0xfffc/0xfffe, to the 65C816's variable stack width and
// dual (native/emulation) vector tables threaded in via vectors.
func (c *CPU) Interrupt(kind InterruptKind, vectors Vectors) {
	glog.V(1).Infof("cpu: dispatching %s vector", kind)

	if kind == KindReset {
		c.EmuMode = Emulation
		c.accSize = width.Bit8
		c.indexSize = width.Bit8
		c.IrqDisable = true
		c.DecimalMode = false
		c.ProgramBank = 0
		c.PC = vectors.Reset
		return
	}

	if c.EmuMode == Native {
		c.Push8(c.ProgramBank)
	}
	c.Push16(c.PC)
	c.Push8(c.flagsByte())

	c.DecimalMode = false
	c.IrqDisable = true
	c.ProgramBank = 0
	c.PC = vectors.pick(kind)
}

// flagsByte packs the status flags into the classic 65C816 P-register
// layout: N V M/1 X/B D I Z C (bit 5 is the accumulator-width M flag in
// native mode, the always-set bit in emulation mode; bit 4 is the index
// width X flag in native mode, the break flag in emulation mode).
func (c *CPU) flagsByte() uint8 {
	var p uint8
	if c.Negative {
		p |= 0x80
	}
	if c.Overflow {
		p |= 0x40
	}
	if c.EmuMode == Emulation {
		p |= 0x20 // unused, always set in emulation mode
		if c.Break() {
			p |= 0x10
		}
	} else {
		if c.accSize == width.Bit8 {
			p |= 0x20
		}
		if c.indexSize == width.Bit8 {
			p |= 0x10
		}
	}
	if c.DecimalMode {
		p |= 0x08
	}
	if c.IrqDisable {
		p |= 0x04
	}
	if c.Zero {
		p |= 0x02
	}
	if c.Carry {
		p |= 0x01
	}
	return p
}
