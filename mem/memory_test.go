package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteReadWrite(t *testing.T) {
	m := New(16)
	m.WriteByte(4, 0xAB)
	assert.Equal(t, uint8(0xAB), m.ReadByte(4))
}

func TestWordLittleEndianRoundTrip(t *testing.T) {
	m := New(16)
	m.WriteWord(2, 0x1234)
	assert.Equal(t, uint8(0x34), m.ReadByte(2))
	assert.Equal(t, uint8(0x12), m.ReadByte(3))
	assert.Equal(t, uint16(0x1234), m.ReadWord(2))
}

func TestLongLittleEndianRoundTrip(t *testing.T) {
	m := New(16)
	m.WriteLong(0, 0x7E1234)
	assert.Equal(t, uint8(0x34), m.ReadByte(0))
	assert.Equal(t, uint8(0x12), m.ReadByte(1))
	assert.Equal(t, uint8(0x7E), m.ReadByte(2))
	assert.Equal(t, uint32(0x7E1234), m.ReadLong(0))
}

func TestOutOfRangeAccessPanics(t *testing.T) {
	m := New(4)
	assert.Panics(t, func() { m.ReadByte(4) })
	assert.Panics(t, func() { m.WriteWord(3, 0) })
}

func TestNewFromBytes(t *testing.T) {
	m := NewFromBytes([]byte{0x01, 0x02, 0x03})
	assert.Equal(t, uint16(0x0201), m.ReadWord(0))
}
