package addressing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snescpu/cpu"
	"snescpu/mem"
	"snescpu/width"
)

func newCPU() *cpu.CPU {
	return cpu.New(mem.New(0x20000))
}

func TestImmediateEightBit(t *testing.T) {
	c := newCPU()
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0xF0)
	m := Immediate{}
	assert.Equal(t, 1, m.ByteSize(c))
	assert.Equal(t, uint16(0xF0), m.Fetch(c))
	assert.Equal(t, "#$F0", m.Disasm(c))
}

func TestImmediateSixteenBit(t *testing.T) {
	c := newCPU()
	c.EmuMode = cpu.Native
	c.SetAccSize(width.Bit16)
	c.PC = 0x8000
	c.Memory.WriteWord(0x8001, 0xBEEF)
	m := Immediate{}
	assert.Equal(t, 2, m.ByteSize(c))
	assert.Equal(t, uint16(0xBEEF), m.Fetch(c))
	assert.Equal(t, "#$BEEF", m.Disasm(c))
}

func TestAbsoluteDataUsesDBR(t *testing.T) {
	c := cpu.New(mem.New(0x1000000)) // full 24-bit space: the test reads bank $7E
	c.DataBank = 0x7E
	c.PC = 0x8000
	c.Memory.WriteWord(0x8001, 0x1000)
	c.Memory.WriteByte(0x7E1000, 0x42)
	m := Absolute{Kind: AbsoluteData}
	assert.Equal(t, uint32(0x7E1000), m.Address(c))
	assert.Equal(t, 2, m.ByteSize(c))
	assert.Equal(t, uint16(0x42), m.Fetch(c))
	assert.Equal(t, "$1000", m.Disasm(c))
}

func TestAbsoluteProgramUsesPBR(t *testing.T) {
	c := newCPU()
	c.ProgramBank = 0x01
	c.PC = 0x8000
	c.Memory.WriteWord(0x8001, 0x2000)
	m := Absolute{Kind: AbsoluteProgram}
	assert.Equal(t, uint32(0x012000), m.Address(c))
}

func TestAbsoluteLongUsesOwnBank(t *testing.T) {
	c := newCPU()
	c.PC = 0x8000
	c.Memory.WriteLong(0x8001, 0x7E3000)
	m := Absolute{Kind: AbsoluteLong}
	assert.Equal(t, uint32(0x7E3000), m.Address(c))
	assert.Equal(t, 3, m.ByteSize(c))
	assert.Equal(t, "$7E3000", m.Disasm(c))
}

func TestDirectPageWrapsWithinBank0(t *testing.T) {
	c := newCPU()
	c.DirectPage = 0x0010
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x05)
	m := DirectPage{}
	assert.Equal(t, uint32(0x0015), m.Address(c))
	assert.Equal(t, "$05", m.Disasm(c))
}

func TestStackRelative(t *testing.T) {
	c := newCPU()
	c.StackPtr = 0x01F0
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x04)
	m := Stack{}
	assert.Equal(t, uint32(0x01F4), m.Address(c))
	assert.Equal(t, "$04,S", m.Disasm(c))
}

func TestRegisterFetchStore(t *testing.T) {
	c := newCPU()
	c.EmuMode = cpu.Native
	c.SetAccSize(width.Bit16)
	c.SetAcc(0x1234)
	m := Register(RegisterA)
	assert.Equal(t, 0, m.ByteSize(c))
	assert.Equal(t, uint16(0x1234), m.Fetch(c))
	m.Store(c, 0x5678)
	assert.Equal(t, uint16(0x5678), c.Acc())
	assert.Equal(t, "A", m.Disasm(c))

	mx := Register(RegisterX)
	assert.Equal(t, "X", mx.Disasm(c))
	my := Register(RegisterY)
	assert.Equal(t, "Y", my.Disasm(c))
}

func TestIndexedAddsIndexRegister(t *testing.T) {
	c := newCPU()
	c.EmuMode = cpu.Native
	c.SetIndexSize(width.Bit16)
	c.SetX(0x0005)
	c.DataBank = 0x00
	c.PC = 0x8000
	c.Memory.WriteWord(0x8001, 0x1000)
	base := Absolute{Kind: AbsoluteData}
	m := Indexed{Base: base, Reg: RegX}
	assert.Equal(t, uint32(0x1005), m.Address(c))
	assert.Equal(t, "$1000,X", m.Disasm(c))
}

func TestIndirectDataUsesDBR(t *testing.T) {
	c := newCPU()
	c.DataBank = 0x80
	c.DirectPage = 0
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x10) // DP operand
	c.Memory.WriteWord(0x0010, 0x2000) // pointer stored at DP addr
	m := Indirect{Base: DirectPage{}, Kind: IndirectData}
	assert.Equal(t, uint32(0x802000), m.Address(c))
	assert.Equal(t, "($10)", m.Disasm(c))
}

func TestIndirectLongIsFullyDetermined(t *testing.T) {
	c := newCPU()
	c.DirectPage = 0
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x20)
	c.Memory.WriteLong(0x0020, 0x7F4000)
	m := Indirect{Base: DirectPage{}, Kind: IndirectLong}
	assert.Equal(t, uint32(0x7F4000), m.Address(c))
	assert.Equal(t, "[$20]", m.Disasm(c))
}

func TestIndexedIndirectComposesBaseModes(t *testing.T) {
	// Indirect(Indexed(DP,x), data): the 01/21 family addressing mode.
	c := newCPU()
	c.EmuMode = cpu.Native
	c.SetIndexSize(width.Bit16)
	c.SetX(0x0002)
	c.DataBank = 0x00
	c.DirectPage = 0
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x10)
	c.Memory.WriteWord(0x0012, 0x3000)
	m := Indirect{Base: Indexed{Base: DirectPage{}, Reg: RegX}, Kind: IndirectData}
	assert.Equal(t, uint32(0x003000), m.Address(c))
}

func TestIndexedIndirectAltOrderComposesBaseModes(t *testing.T) {
	// Indexed(Indirect(DP,data), y): the 11/31 family addressing mode.
	c := newCPU()
	c.EmuMode = cpu.Native
	c.SetIndexSize(width.Bit16)
	c.SetY(0x0004)
	c.DataBank = 0x00
	c.DirectPage = 0
	c.PC = 0x8000
	c.Memory.WriteByte(0x8001, 0x10)
	c.Memory.WriteWord(0x0010, 0x3000)
	m := Indexed{Base: Indirect{Base: DirectPage{}, Kind: IndirectData}, Reg: RegY}
	assert.Equal(t, uint32(0x003004), m.Address(c))
}

func TestStaticFixtureIsCpuIndependent(t *testing.T) {
	c := newCPU()
	var stored uint16
	m := Static{Addr: 0x1234, Size: 2, Data: 0xABCD, Stored: &stored, Text: "$1234"}
	assert.Equal(t, uint32(0x1234), m.Address(c))
	assert.Equal(t, 2, m.ByteSize(c))
	assert.Equal(t, uint16(0xABCD), m.Fetch(c))
	m.Store(c, 0x55AA)
	assert.Equal(t, uint16(0x55AA), stored)
	assert.Equal(t, "$1234", m.Disasm(c))
}
