package opcode

import (
	"snescpu/addressing"
	"snescpu/cpu"
	"snescpu/cycle"
)

var dpnz = cycle.LowDirectPageNotZero(1)

type logicalEntry struct {
	oraByte, andByte byte
	mode             func() addressing.Mode
	preIndex         func() addressing.Mode
	indexReg         cycle.IndexValue
	baseCycles       int32
	extraMods        []cycle.Mod
}

func dpMode() addressing.Mode   { return addressing.DirectPage{} }
func absData() addressing.Mode  { return addressing.Absolute{Kind: addressing.AbsoluteData} }
func absLong() addressing.Mode  { return addressing.Absolute{Kind: addressing.AbsoluteLong} }

var logicalTable = []logicalEntry{
	{0x09, 0x29, func() addressing.Mode { return addressing.Immediate{} }, nil, nil, 2, nil},
	{0x0D, 0x2D, absData, nil, nil, 4, nil},
	{0x0F, 0x2F, absLong, nil, nil, 5, nil},
	{0x05, 0x25, dpMode, nil, nil, 3, []cycle.Mod{dpnz}},
	{0x12, 0x32, func() addressing.Mode {
		return addressing.Indirect{Base: dpMode(), Kind: addressing.IndirectData}
	}, nil, nil, 5, []cycle.Mod{dpnz}},
	{0x07, 0x27, func() addressing.Mode {
		return addressing.Indirect{Base: dpMode(), Kind: addressing.IndirectLong}
	}, nil, nil, 6, []cycle.Mod{dpnz}},
	{0x1D, 0x3D, func() addressing.Mode {
		return addressing.Indexed{Base: absData(), Reg: addressing.RegX}
	}, absData, cycle.IndexX, 4, nil},
	{0x1F, 0x3F, func() addressing.Mode {
		return addressing.Indexed{Base: absLong(), Reg: addressing.RegX}
	}, nil, nil, 5, nil},
	{0x19, 0x39, func() addressing.Mode {
		return addressing.Indexed{Base: absData(), Reg: addressing.RegY}
	}, absData, cycle.IndexY, 4, nil},
	{0x15, 0x35, func() addressing.Mode {
		return addressing.Indexed{Base: dpMode(), Reg: addressing.RegX}
	}, nil, nil, 4, []cycle.Mod{dpnz}},
	{0x01, 0x21, func() addressing.Mode {
		return addressing.Indirect{Base: addressing.Indexed{Base: dpMode(), Reg: addressing.RegX}, Kind: addressing.IndirectData}
	}, nil, nil, 6, []cycle.Mod{dpnz}},
	{0x11, 0x31, func() addressing.Mode {
		return addressing.Indexed{Base: addressing.Indirect{Base: dpMode(), Kind: addressing.IndirectData}, Reg: addressing.RegY}
	}, nil, nil, 5, []cycle.Mod{dpnz}},
	{0x17, 0x37, func() addressing.Mode {
		return addressing.Indexed{Base: addressing.Indirect{Base: dpMode(), Kind: addressing.IndirectLong}, Reg: addressing.RegY}
	}, nil, nil, 6, []cycle.Mod{dpnz}},
	{0x03, 0x23, func() addressing.Mode { return addressing.Stack{} }, nil, nil, 4, nil},
	{0x13, 0x33, func() addressing.Mode {
		return addressing.Indexed{Base: addressing.Indirect{Base: addressing.Stack{}, Kind: addressing.IndirectData}, Reg: addressing.RegY}
	}, nil, nil, 7, nil},
}

// logicalOp implements ORA and AND: fetch through mode, combine with the
// accumulator via combine, and set N/Z from the result.
type logicalOp struct {
	mnemonic   string
	mode       addressing.Mode
	preIndex   addressing.Mode
	indexReg   cycle.IndexValue
	baseCycles int32
	extraMods  []cycle.Mod
	combine    func(acc, data uint16) uint16
}

func (o logicalOp) ByteSize(c *cpu.CPU) int { return o.mode.ByteSize(c) + 1 }

func (o logicalOp) TotalCycles(c *cpu.CPU) uint32 {
	mods := make([]cycle.Mod, 0, len(o.extraMods)+3)
	mods = append(mods, cycle.Constant(o.baseCycles), cycle.AccIs16Bit(1))
	mods = append(mods, o.extraMods...)
	if o.preIndex != nil {
		addr := o.preIndex.Address(c)
		mods = append(mods, cycle.CheckPageBoundary(1, addr, o.indexReg))
	}
	return cycle.Calc(c, mods)
}

func (o logicalOp) Execute(c *cpu.CPU) {
	data := o.mode.Fetch(c)
	result := o.combine(c.Acc(), data)
	flags := cpu.CheckFlagsForValue(result, c.AccSize())
	c.SetAcc(result)
	c.Negative = flags.Negative
	c.Zero = flags.Zero
}

func (o logicalOp) Disasm(c *cpu.CPU) string {
	return o.mnemonic + " " + o.mode.Disasm(c)
}

func decodeLogical(b byte) (Opcode, bool) {
	for _, e := range logicalTable {
		var mnemonic string
		switch b {
		case e.oraByte:
			mnemonic = "ORA"
		case e.andByte:
			mnemonic = "AND"
		default:
			continue
		}
		combine := func(acc, data uint16) uint16 { return acc | data }
		if mnemonic == "AND" {
			combine = func(acc, data uint16) uint16 { return acc & data }
		}
		var preIndex addressing.Mode
		if e.preIndex != nil {
			preIndex = e.preIndex()
		}
		return logicalOp{
			mnemonic:   mnemonic,
			mode:       e.mode(),
			preIndex:   preIndex,
			indexReg:   e.indexReg,
			baseCycles: e.baseCycles,
			extraMods:  e.extraMods,
			combine:    combine,
		}, true
	}
	return nil, false
}
