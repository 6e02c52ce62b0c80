package opcode

import (
	"snescpu/addressing"
	"snescpu/cpu"
	"snescpu/cycle"
	"snescpu/width"
)

type incDecDirection int

const (
	incDirInc incDecDirection = iota
	incDirDec
)

// incDecTarget selects whether an instruction reads/writes through an
// addressing mode (memory or the accumulator via Register) or directly
// through an index register, since index forms are sized by IndexSize
// rather than AccSize.
type incDecTarget int

const (
	targetMode incDecTarget = iota
	targetX
	targetY
)

type incDecEntry struct {
	opcode     byte
	dir        incDecDirection
	target     incDecTarget
	mode       func() addressing.Mode
	mnemonic   string
	baseCycles int32
	extraMods  []cycle.Mod
}

var incDecTable = []incDecEntry{
	{0x1A, incDirInc, targetMode, func() addressing.Mode { return addressing.Register(addressing.RegisterA) }, "INC", 2, nil},
	{0xEE, incDirInc, targetMode, absData, "INC", 6, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0xE6, incDirInc, targetMode, dpMode, "INC", 5, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
	{0xFE, incDirInc, targetMode, func() addressing.Mode {
		return addressing.Indexed{Base: absData(), Reg: addressing.RegX}
	}, "INC", 7, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0xF6, incDirInc, targetMode, func() addressing.Mode {
		return addressing.Indexed{Base: dpMode(), Reg: addressing.RegX}
	}, "INC", 6, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
	{0xE8, incDirInc, targetX, nil, "INX", 2, nil},
	{0xC8, incDirInc, targetY, nil, "INY", 2, nil},

	{0x3A, incDirDec, targetMode, func() addressing.Mode { return addressing.Register(addressing.RegisterA) }, "DEC", 2, nil},
	{0xCE, incDirDec, targetMode, absData, "DEC", 6, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0xC6, incDirDec, targetMode, dpMode, "DEC", 5, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
	{0xDE, incDirDec, targetMode, func() addressing.Mode {
		return addressing.Indexed{Base: absData(), Reg: addressing.RegX}
	}, "DEC", 7, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0xD6, incDirDec, targetMode, func() addressing.Mode {
		return addressing.Indexed{Base: dpMode(), Reg: addressing.RegX}
	}, "DEC", 6, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
	{0xCA, incDirDec, targetX, nil, "DEX", 2, nil},
	{0x88, incDirDec, targetY, nil, "DEY", 2, nil},
}

type incDecOp struct {
	dir        incDecDirection
	target     incDecTarget
	mode       addressing.Mode
	mnemonic   string
	baseCycles int32
	extraMods  []cycle.Mod
}

func (o incDecOp) width(c *cpu.CPU) width.Width {
	if o.target == targetMode {
		return c.AccSize()
	}
	return c.IndexSize()
}

func (o incDecOp) ByteSize(c *cpu.CPU) int {
	if o.target != targetMode {
		return 1
	}
	return o.mode.ByteSize(c) + 1
}

func (o incDecOp) TotalCycles(c *cpu.CPU) uint32 {
	mods := make([]cycle.Mod, 0, len(o.extraMods)+1)
	mods = append(mods, cycle.Constant(o.baseCycles))
	mods = append(mods, o.extraMods...)
	return cycle.Calc(c, mods)
}

func step(value uint16, w width.Width, dir incDecDirection) uint16 {
	mask := w.Mask()
	if dir == incDirInc {
		return (value + 1) & mask
	}
	if value == 0 {
		return mask
	}
	return (value - 1) & mask
}

func (o incDecOp) Execute(c *cpu.CPU) {
	w := o.width(c)
	var value uint16
	switch o.target {
	case targetX:
		value = c.X()
	case targetY:
		value = c.Y()
	default:
		value = o.mode.Fetch(c)
	}

	result := step(value, w, o.dir)
	flags := cpu.CheckFlagsForValue(result, w)

	switch o.target {
	case targetX:
		c.SetX(result)
	case targetY:
		c.SetY(result)
	default:
		o.mode.Store(c, result)
	}
	c.Negative = flags.Negative
	c.Zero = flags.Zero
}

func (o incDecOp) Disasm(c *cpu.CPU) string {
	if o.target != targetMode {
		return o.mnemonic
	}
	return o.mnemonic + " " + o.mode.Disasm(c)
}

func decodeIncDec(b byte) (Opcode, bool) {
	for _, e := range incDecTable {
		if e.opcode != b {
			continue
		}
		var m addressing.Mode
		if e.mode != nil {
			m = e.mode()
		}
		return incDecOp{
			dir:        e.dir,
			target:     e.target,
			mode:       m,
			mnemonic:   e.mnemonic,
			baseCycles: e.baseCycles,
			extraMods:  e.extraMods,
		}, true
	}
	return nil, false
}
