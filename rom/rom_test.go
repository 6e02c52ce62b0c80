package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHeader(makeup byte) []byte {
	b := make([]byte, 64)
	copy(b, []byte("TEST GAME            ")) // 21 bytes title, space padded
	b[21] = makeup
	b[23] = 0x03 // rom size raw -> 0x400 << 3 = 0x2000
	b[24] = 0x01 // sram size raw -> 0x400 << 1 = 0x800
	b[25] = 0x01 // license id
	b[27] = 0x02 // version
	b[28] = 0x34 // complement lo
	b[29] = 0x12 // complement hi
	b[30] = 0x78 // checksum lo
	b[31] = 0x56 // checksum hi

	// native vector table at offset 32, reset at +12
	b[32+12] = 0x00
	b[32+13] = 0x80
	// emulation vector table at offset 48, IRQ/BRK shared slot at +14
	b[48+14] = 0x00
	b[48+15] = 0xF0

	return b
}

func TestParseValidHeader(t *testing.T) {
	h, err := Parse(buildHeader(byte(LoROM)))
	require.NoError(t, err)
	assert.Equal(t, LoROM, h.Makeup)
	assert.Equal(t, 0x2000, h.ROMSize)
	assert.Equal(t, 0x800, h.SRAMSize)
	assert.Equal(t, uint16(0x8000), h.NativeVecs.Reset)
	assert.Equal(t, uint16(0xF000), h.EmuVecs.IRQorBRK)
}

func TestParseRejectsUnknownMakeupByte(t *testing.T) {
	_, err := Parse(buildHeader(0x99))
	require.Error(t, err)
	var hi HeaderInvalid
	require.ErrorAs(t, err, &hi)
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := Parse(make([]byte, 10))
	require.Error(t, err)
}

func TestToCPUVectorsProjectsSixVectors(t *testing.T) {
	h, err := Parse(buildHeader(byte(HiROM)))
	require.NoError(t, err)
	v := h.ToCPUVectors()
	assert.Equal(t, uint16(0x8000), v.Reset)
	assert.Equal(t, uint16(0xF000), v.Break)
}
