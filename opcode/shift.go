package opcode

import (
	"snescpu/addressing"
	"snescpu/cpu"
	"snescpu/cycle"
	"snescpu/width"
)

var shiftMnemonics = [4]string{"ASL", "ROL", "LSR", "ROR"}
var shiftDirections = [4]cpu.Direction{cpu.Left, cpu.Left, cpu.Right, cpu.Right}
var shiftUsesCarryIn = [4]bool{false, true, false, true}

type shiftOp struct {
	group      int
	mode       addressing.Mode
	baseCycles int32
	extraMods  []cycle.Mod
}

func (o shiftOp) ByteSize(c *cpu.CPU) int { return o.mode.ByteSize(c) + 1 }

func (o shiftOp) TotalCycles(c *cpu.CPU) uint32 {
	mods := make([]cycle.Mod, 0, len(o.extraMods)+1)
	mods = append(mods, cycle.Constant(o.baseCycles))
	mods = append(mods, o.extraMods...)
	return cycle.Calc(c, mods)
}

func (o shiftOp) Execute(c *cpu.CPU) {
	value := o.mode.Fetch(c)
	w := c.AccSize()
	dir := shiftDirections[o.group]
	result, bitOut := cpu.Rotate(value, w, dir)

	if shiftUsesCarryIn[o.group] && c.Carry {
		switch {
		case dir == cpu.Left:
			result |= 0x0001
		case w == width.Bit8:
			result |= 0x0080
		default:
			result |= 0x8000
		}
	}

	flags := cpu.CheckFlagsForValue(result, w)
	o.mode.Store(c, result)
	c.Negative = flags.Negative
	c.Zero = flags.Zero
	c.Carry = bitOut
}

func (o shiftOp) Disasm(c *cpu.CPU) string {
	return shiftMnemonics[o.group] + " " + o.mode.Disasm(c)
}

// decodeShift recognizes the bit-masked ASL/ROL/LSR/ROR family: the high
// nibble pair selects the operation, and the low nibble selects the
// addressing mode (0x0A register, 0x0E/0x1E absolute/indexed-x, 0x06/0x16
// direct-page/indexed-x), matching spec.md §4.5.3.
func decodeShift(b byte) (Opcode, bool) {
	high := b >> 4
	var group int
	switch high {
	case 0x0, 0x1:
		group = 0 // ASL
	case 0x2, 0x3:
		group = 1 // ROL
	case 0x4, 0x5:
		group = 2 // LSR
	case 0x6, 0x7:
		group = 3 // ROR
	default:
		return nil, false
	}
	odd := high%2 == 1
	low := b & 0x0F

	switch low {
	case 0x0A:
		if odd {
			return nil, false
		}
		return shiftOp{group: group, mode: addressing.Register(addressing.RegisterA), baseCycles: 2}, true
	case 0x0E:
		if odd {
			return shiftOp{
				group:      group,
				mode:       addressing.Indexed{Base: absData(), Reg: addressing.RegX},
				baseCycles: 7,
				extraMods:  []cycle.Mod{cycle.AccIs16Bit(2)},
			}, true
		}
		return shiftOp{
			group:      group,
			mode:       absData(),
			baseCycles: 6,
			extraMods:  []cycle.Mod{cycle.AccIs16Bit(2)},
		}, true
	case 0x06:
		if odd {
			return shiftOp{
				group:      group,
				mode:       addressing.Indexed{Base: dpMode(), Reg: addressing.RegX},
				baseCycles: 6,
				extraMods:  []cycle.Mod{cycle.AccIs16Bit(1), dpnz},
			}, true
		}
		return shiftOp{
			group:      group,
			mode:       dpMode(),
			baseCycles: 5,
			extraMods:  []cycle.Mod{cycle.AccIs16Bit(1), dpnz},
		}, true
	default:
		return nil, false
	}
}
