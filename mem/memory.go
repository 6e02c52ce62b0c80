// Package mem provides the byte-addressable memory the CPU core reads and
// writes through. It replaces the teacher repo's 64 kB "Bus" with a
// 24-bit-addressable store, since the 65C816 banks 256 pages of 64 kB.
package mem

import "fmt"

// Memory is a linear byte-addressable store of up to 24-bit address space.
// ROM loading and bank partitioning are the loader's job (spec §1); Memory
// only knows how to read and write bytes, words, and longs at a given
// address.
type Memory struct {
	data []byte
}

// New allocates a Memory of the given size in bytes (up to 0x1000000).
func New(size int) *Memory {
	if size <= 0 || size > 0x1000000 {
		panic(fmt.Sprintf("mem: invalid size %d", size))
	}
	return &Memory{data: make([]byte, size)}
}

// NewFromBytes wraps an existing byte slice as Memory without copying.
func NewFromBytes(data []byte) *Memory {
	return &Memory{data: data}
}

// Len returns the addressable size of the memory, in bytes.
func (m *Memory) Len() int {
	return len(m.data)
}

func (m *Memory) checkAddr(addr uint32, n int) {
	if int(addr)+n > len(m.data) {
		panic(fmt.Sprintf("mem: out-of-range access at $%06X (len %d)", addr, n))
	}
}

// ReadByte reads a single byte at addr.
func (m *Memory) ReadByte(addr uint32) uint8 {
	m.checkAddr(addr, 1)
	return m.data[addr]
}

// WriteByte writes a single byte at addr.
func (m *Memory) WriteByte(addr uint32, v uint8) {
	m.checkAddr(addr, 1)
	m.data[addr] = v
}

// ReadWord reads a little-endian 16-bit value at addr: low byte at addr,
// high byte at addr+1.
func (m *Memory) ReadWord(addr uint32) uint16 {
	m.checkAddr(addr, 2)
	lo := uint16(m.data[addr])
	hi := uint16(m.data[addr+1])
	return hi<<8 | lo
}

// WriteWord writes a little-endian 16-bit value at addr.
func (m *Memory) WriteWord(addr uint32, v uint16) {
	m.checkAddr(addr, 2)
	m.data[addr] = byte(v)
	m.data[addr+1] = byte(v >> 8)
}

// ReadLong reads a little-endian 24-bit value at addr: low byte at addr,
// middle byte at addr+1, high byte at addr+2.
func (m *Memory) ReadLong(addr uint32) uint32 {
	m.checkAddr(addr, 3)
	lo := uint32(m.data[addr])
	mid := uint32(m.data[addr+1])
	hi := uint32(m.data[addr+2])
	return hi<<16 | mid<<8 | lo
}

// WriteLong writes a little-endian 24-bit value at addr. The top byte of v
// is discarded.
func (m *Memory) WriteLong(addr uint32, v uint32) {
	m.checkAddr(addr, 3)
	m.data[addr] = byte(v)
	m.data[addr+1] = byte(v >> 8)
	m.data[addr+2] = byte(v >> 16)
}
