package opcode

import (
	"fmt"

	"snescpu/cpu"
	"snescpu/mask"
	"snescpu/width"
)

type statusOp struct {
	opcode byte
	name   string
	size   int
	cycles int32
	run    func(c *cpu.CPU, operand uint8)
}

func operandAddr(c *cpu.CPU) uint32 {
	return (c.EffectivePC() + 1) & 0xFFFFFF
}

var statusTable = map[byte]statusOp{
	0x18: {0x18, "CLC", 1, 2, func(c *cpu.CPU, _ uint8) { c.Carry = false }},
	0x38: {0x38, "SEC", 1, 2, func(c *cpu.CPU, _ uint8) { c.Carry = true }},
	0xD8: {0xD8, "CLD", 1, 2, func(c *cpu.CPU, _ uint8) { c.DecimalMode = false }},
	0xF8: {0xF8, "SED", 1, 2, func(c *cpu.CPU, _ uint8) { c.DecimalMode = true }},
	0x78: {0x78, "SEI", 1, 2, func(c *cpu.CPU, _ uint8) { c.IrqDisable = true }},
	0x58: {0x58, "CLI", 1, 2, func(c *cpu.CPU, _ uint8) { c.IrqDisable = false }},
	0xB8: {0xB8, "CLV", 1, 2, func(c *cpu.CPU, _ uint8) { c.Overflow = false }},
	0xEA: {0xEA, "NOP", 1, 2, func(c *cpu.CPU, _ uint8) {}},
	0xFB: {0xFB, "XCE", 1, 2, execXCE},
	0xEB: {0xEB, "XBA", 1, 3, execXBA},
	0xC2: {0xC2, "REP", 2, 3, execREP},
	0xE2: {0xE2, "SEP", 2, 3, execSEP},
}

func execXBA(c *cpu.CPU, _ uint8) {
	a := c.A()
	b := c.B()
	v := uint16(b) | uint16(a)<<8
	c.SetC(v)
	c.Negative = v > 0x7FFF
	c.Zero = v == 0x0000
}

func execXCE(c *cpu.CPU, _ uint8) {
	switch {
	case c.Carry && c.EmuMode == cpu.Emulation:
	case !c.Carry && c.EmuMode == cpu.Native:
	case c.Carry && c.EmuMode == cpu.Native:
		c.Carry = false
		c.EmuMode = cpu.Emulation
	case !c.Carry && c.EmuMode == cpu.Emulation:
		c.Carry = true
		c.EmuMode = cpu.Native
		c.SetAccSize(width.Bit8)
		c.SetIndexSize(width.Bit8)
	}
}

// execREP and execSEP clear/set the flags selected by the REP/SEP mask
// byte; applyFlagMask reads its individual bits with the teacher repo's
// 1-indexed mask.IsSet (mask/mask.go in "gone").
func execREP(c *cpu.CPU, operand uint8) { applyFlagMask(c, operand, false) }
func execSEP(c *cpu.CPU, operand uint8) { applyFlagMask(c, operand, true) }

func applyFlagMask(c *cpu.CPU, operand uint8, set bool) {
	if mask.IsSet(operand, mask.I1) {
		c.Negative = set
	}
	if mask.IsSet(operand, mask.I2) {
		c.Overflow = set
	}
	if mask.IsSet(operand, mask.I3) && c.EmuMode == cpu.Native {
		if set {
			c.SetAccSize(width.Bit8)
		} else {
			c.SetAccSize(width.Bit16)
		}
	}
	if mask.IsSet(operand, mask.I4) && c.EmuMode == cpu.Native {
		if set {
			c.SetIndexSize(width.Bit8)
		} else {
			c.SetIndexSize(width.Bit16)
		}
	}
	if mask.IsSet(operand, mask.I5) {
		c.DecimalMode = set
	}
	if mask.IsSet(operand, mask.I6) {
		c.IrqDisable = set
	}
	if mask.IsSet(operand, mask.I7) {
		c.Zero = set
	}
	if mask.IsSet(operand, mask.I8) {
		c.Carry = set
	}
}

func (o statusOp) ByteSize(c *cpu.CPU) int { return o.size }

func (o statusOp) TotalCycles(c *cpu.CPU) uint32 { return uint32(o.cycles) }

func (o statusOp) Execute(c *cpu.CPU) {
	var operand uint8
	if o.size == 2 {
		operand = c.Memory.ReadByte(operandAddr(c))
	}
	o.run(c, operand)
}

func (o statusOp) Disasm(c *cpu.CPU) string {
	if o.size == 2 {
		return fmt.Sprintf("%s #%s", o.name, width.Hex2(c.Memory.ReadByte(operandAddr(c))))
	}
	return o.name
}

func decodeStatus(b byte) (Opcode, bool) {
	op, ok := statusTable[b]
	return op, ok
}
