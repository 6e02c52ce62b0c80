package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snescpu/mem"
	"snescpu/width"
)

func newTestCPU() *CPU {
	return New(mem.New(0x10000))
}

func TestEmulationModeForcesBit8Widths(t *testing.T) {
	c := newTestCPU()
	c.SetAccSize(width.Bit16)
	c.SetIndexSize(width.Bit16)
	assert.Equal(t, width.Bit8, c.AccSize())
	assert.Equal(t, width.Bit8, c.IndexSize())
}

func TestEmulationModeMasksAccAndIndexWrites(t *testing.T) {
	c := newTestCPU()
	c.SetAcc(0x1234)
	assert.Equal(t, uint16(0x0034), c.Acc())
	c.SetX(0xFFAB)
	assert.Equal(t, uint16(0x00AB), c.X())
}

func TestNativeMode16BitAccumulator(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetAccSize(width.Bit16)
	c.SetAcc(0xBEEF)
	assert.Equal(t, uint16(0xBEEF), c.Acc())
}

func TestSetAccPreservesBInEightBitMode(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetAccSize(width.Bit16)
	c.SetAcc(0xABCD)
	c.SetAccSize(width.Bit8)
	c.SetAcc(0x11)
	assert.Equal(t, uint8(0x11), c.A())
	assert.Equal(t, uint8(0xAB), c.B())
	assert.Equal(t, uint16(0xAB11), c.C())
}

func TestSetXZeroesHighByteInEightBitMode(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetIndexSize(width.Bit16)
	c.SetX(0x1234)
	c.SetIndexSize(width.Bit8)
	c.SetX(0x56)
	assert.Equal(t, uint16(0x0056), c.x)
}

func TestABCAccessors(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetAccSize(width.Bit16)
	c.SetAcc(0xCAFE)
	assert.Equal(t, uint8(0xFE), c.A())
	assert.Equal(t, uint8(0xCA), c.B())
	assert.Equal(t, uint16(0xCAFE), c.C())
}

func TestEffectivePC(t *testing.T) {
	c := newTestCPU()
	c.ProgramBank = 0x7E
	c.PC = 0x1234
	assert.Equal(t, uint32(0x7E1234), c.EffectivePC())
}

func TestBreakAliasesIndexWidth(t *testing.T) {
	c := newTestCPU()
	c.SetIndexSize(width.Bit8)
	assert.True(t, c.Break())
	c.SetBreak(false)
	assert.Equal(t, width.Bit16, c.indexSize)
	assert.False(t, c.Break())
}

func TestStackWidthEmulationIsEightBit(t *testing.T) {
	c := newTestCPU()
	c.StackPtr = 0x01FF
	c.Push8(0x42)
	assert.Equal(t, uint16(0x01FE), c.StackPtr)
	assert.Equal(t, uint8(0x42), c.Pop8())
	assert.Equal(t, uint16(0x01FF), c.StackPtr)
}

func TestStackWidthNativeIsSixteenBit(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.StackPtr = 0x1FFF
	c.Push16(0xABCD)
	assert.Equal(t, uint16(0x1FFD), c.StackPtr)
	assert.Equal(t, uint16(0xABCD), c.Pop16())
}

func TestReadWriteDataRoutesThroughAccWidth(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetAccSize(width.Bit8)
	c.WriteData(0x10, 0x1234)
	assert.Equal(t, uint16(0x34), c.ReadData(0x10))

	c.SetAccSize(width.Bit16)
	c.WriteData(0x20, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), c.ReadData(0x20))
}

func TestResetInterruptEntersEmulationMode(t *testing.T) {
	c := newTestCPU()
	c.EmuMode = Native
	c.SetAccSize(width.Bit16)
	c.SetIndexSize(width.Bit16)
	c.Interrupt(KindReset, Vectors{Reset: 0x8000})
	assert.Equal(t, Emulation, c.EmuMode)
	assert.Equal(t, width.Bit8, c.AccSize())
	assert.Equal(t, width.Bit8, c.IndexSize())
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestNMIInterruptPushesPCAndFlags(t *testing.T) {
	c := newTestCPU()
	c.PC = 0x1234
	c.StackPtr = 0x01FF
	c.Negative = true
	c.Interrupt(KindNMI, Vectors{NMI: 0x9000})
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.IrqDisable)
	// 3 bytes pushed in emulation mode: PC hi, PC lo, flags
	assert.Equal(t, uint16(0x01FC), c.StackPtr)
}

// Universal invariant: check_flags_for_value.zero iff v == 0.
func TestCheckFlagsForValueZero(t *testing.T) {
	assert.True(t, CheckFlagsForValue(0, width.Bit8).Zero)
	assert.False(t, CheckFlagsForValue(1, width.Bit8).Zero)
	assert.True(t, CheckFlagsForValue(0, width.Bit16).Zero)
}

func TestCheckFlagsForValueNegative(t *testing.T) {
	assert.True(t, CheckFlagsForValue(0x80, width.Bit8).Negative)
	assert.False(t, CheckFlagsForValue(0x7F, width.Bit8).Negative)
	assert.True(t, CheckFlagsForValue(0x8000, width.Bit16).Negative)
	assert.False(t, CheckFlagsForValue(0x7FFF, width.Bit16).Negative)
}

func TestCheckFlagsForValueCarryAlwaysFalse(t *testing.T) {
	assert.False(t, CheckFlagsForValue(0xFF, width.Bit8).Carry)
}

func TestRotateExamplesFromSpec(t *testing.T) {
	v, bit := Rotate(0x80, width.Bit8, Left)
	assert.Equal(t, uint16(0x00), v)
	assert.True(t, bit)

	v, bit = Rotate(0x80, width.Bit16, Left)
	assert.Equal(t, uint16(0x0100), v)
	assert.False(t, bit)

	v, bit = Rotate(0x7FFF, width.Bit16, Left)
	assert.Equal(t, uint16(0xFFFE), v)
	assert.False(t, bit)

	v, bit = Rotate(0xFFFF, width.Bit16, Left)
	assert.Equal(t, uint16(0xFFFE), v)
	assert.True(t, bit)

	v, bit = Rotate(0xFF, width.Bit8, Right)
	assert.Equal(t, uint16(0x7F), v)
	assert.True(t, bit)

	v, bit = Rotate(0x8000, width.Bit16, Right)
	assert.Equal(t, uint16(0x4000), v)
	assert.False(t, bit)
}

func TestRotateZeroIsAlwaysZeroFalse(t *testing.T) {
	for _, w := range []width.Width{width.Bit8, width.Bit16} {
		for _, d := range []Direction{Left, Right} {
			v, bit := Rotate(0, w, d)
			assert.Equal(t, uint16(0), v)
			assert.False(t, bit)
		}
	}
}
