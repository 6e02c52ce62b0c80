package opcode

import (
	"snescpu/addressing"
	"snescpu/cpu"
	"snescpu/cycle"
)

type bitTestKind int

const (
	kindBIT bitTestKind = iota
	kindTRB
	kindTSB
)

type bitTestEntry struct {
	opcode     byte
	kind       bitTestKind
	mode       func() addressing.Mode
	preIndex   func() addressing.Mode
	indexReg   cycle.IndexValue
	baseCycles int32
	extraMods  []cycle.Mod
}

var bitTestTable = []bitTestEntry{
	{0x89, kindBIT, func() addressing.Mode { return addressing.Immediate{} }, nil, nil, 2, nil},
	{0x2C, kindBIT, absData, nil, nil, 4, nil},
	{0x24, kindBIT, dpMode, nil, nil, 3, []cycle.Mod{dpnz}},
	{0x3C, kindBIT, func() addressing.Mode {
		return addressing.Indexed{Base: absData(), Reg: addressing.RegX}
	}, absData, cycle.IndexX, 4, nil},
	{0x34, kindBIT, func() addressing.Mode {
		return addressing.Indexed{Base: dpMode(), Reg: addressing.RegX}
	}, nil, nil, 4, []cycle.Mod{dpnz}},
	{0x1C, kindTRB, absData, nil, nil, 6, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0x14, kindTRB, dpMode, nil, nil, 5, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
	{0x0C, kindTSB, absData, nil, nil, 6, []cycle.Mod{cycle.AccIs16Bit(2)}},
	{0x04, kindTSB, dpMode, nil, nil, 5, []cycle.Mod{cycle.AccIs16Bit(2), dpnz}},
}

type bitTestOp struct {
	kind       bitTestKind
	mode       addressing.Mode
	preIndex   addressing.Mode
	indexReg   cycle.IndexValue
	baseCycles int32
	extraMods  []cycle.Mod
}

func (o bitTestOp) ByteSize(c *cpu.CPU) int { return o.mode.ByteSize(c) + 1 }

func (o bitTestOp) TotalCycles(c *cpu.CPU) uint32 {
	mods := make([]cycle.Mod, 0, len(o.extraMods)+3)
	mods = append(mods, cycle.Constant(o.baseCycles))
	if o.kind == kindBIT {
		mods = append(mods, cycle.AccIs16Bit(1))
	}
	mods = append(mods, o.extraMods...)
	if o.preIndex != nil {
		addr := o.preIndex.Address(c)
		mods = append(mods, cycle.CheckPageBoundary(1, addr, o.indexReg))
	}
	return cycle.Calc(c, mods)
}

func (o bitTestOp) Execute(c *cpu.CPU) {
	data := o.mode.Fetch(c)
	w := c.AccSize()
	acc := c.Acc()

	switch o.kind {
	case kindBIT:
		c.Negative = data&w.SignBit() != 0
		c.Overflow = data&w.OverflowBit() != 0
		c.Zero = acc&data == 0
	case kindTRB:
		result := acc &^ data & w.Mask()
		o.mode.Store(c, result)
		c.Zero = acc&data == 0
	case kindTSB:
		result := (acc | data) & w.Mask()
		o.mode.Store(c, result)
		c.Zero = acc&data == 0
	}
}

func (o bitTestOp) Disasm(c *cpu.CPU) string {
	names := [...]string{"BIT", "TRB", "TSB"}
	return names[o.kind] + " " + o.mode.Disasm(c)
}

func decodeBitTest(b byte) (Opcode, bool) {
	for _, e := range bitTestTable {
		if e.opcode != b {
			continue
		}
		var preIndex addressing.Mode
		if e.preIndex != nil {
			preIndex = e.preIndex()
		}
		return bitTestOp{
			kind:       e.kind,
			mode:       e.mode(),
			preIndex:   preIndex,
			indexReg:   e.indexReg,
			baseCycles: e.baseCycles,
			extraMods:  e.extraMods,
		}, true
	}
	return nil, false
}
