// Package rom parses the 64-byte SNES cartridge header and hands the CPU
// core the handful of fields it actually consumes: the interrupt vector
// table. It is a genuinely external collaborator — the CPU core (package
// cpu) depends only on the plain cpu.Vectors struct, never on this
// package — matching spec.md §1's framing of ROM loading as out of the
// core's scope.
//
// Grounded on the cartridge-header parsers of the retrieved reference
// repos (yoshiomiyamae-gones' pkg/cartridge/cartridge.go and jyane-jnes'
// nes/cartridge.go), which parse a fixed header block into typed fields
// and return (*Cartridge, error) from a validated read.
package rom

import (
	"fmt"
	"unicode/utf8"

	"github.com/golang/glog"

	"snescpu/cpu"
)

const headerSize = 64

// MakeupByte enumerates the recognized ROM makeup (memory map) bytes.
type MakeupByte uint8

const (
	LoROM      MakeupByte = 0x20
	HiROM      MakeupByte = 0x21
	SA1ROM     MakeupByte = 0x23
	LoFastROM  MakeupByte = 0x30
	HiFastROM  MakeupByte = 0x31
	ExLoROM    MakeupByte = 0x32
	ExHiROM    MakeupByte = 0x35
)

func (m MakeupByte) valid() bool {
	switch m {
	case LoROM, HiROM, SA1ROM, LoFastROM, HiFastROM, ExLoROM, ExHiROM:
		return true
	default:
		return false
	}
}

// HeaderInvalid is returned when the header block is not 64 bytes long, its
// title is not valid UTF-8, or its makeup byte is not one of the seven
// recognized values. The CPU core
// never raises this — it is purely a loader-side concern.
type HeaderInvalid struct {
	Reason string
}

func (e HeaderInvalid) Error() string {
	return fmt.Sprintf("rom: invalid header: %s", e.Reason)
}

// Header is the parsed 64-byte SNES cartridge header.
type Header struct {
	Title       string
	Makeup      MakeupByte
	ROMType     string
	ROMSize     int
	SRAMSize    int
	LicenseID   uint8
	Version     uint8
	Checksum    uint16
	Complement  uint16
	NativeVecs  VectorTable
	EmuVecs     VectorTable
}

// VectorTable holds the eight little-endian 16-bit slots of one of the
// header's two vector tables, in their on-disk order.
type VectorTable struct {
	Unknown1 uint16
	Unknown2 uint16
	COP      uint16
	BreakOrUnknown3 uint16
	Abort    uint16
	NMI      uint16
	Reset    uint16
	IRQorBRK uint16
}

// Parse reads a 64-byte header block. It returns HeaderInvalid if the
// block is not 64 bytes long, the title isn't valid UTF-8, or the makeup
// byte is unrecognized.
func Parse(block []byte) (*Header, error) {
	if len(block) != headerSize {
		return nil, HeaderInvalid{Reason: fmt.Sprintf("header block must be %d bytes, got %d", headerSize, len(block))}
	}

	title := string(block[0:21])
	if !utf8.ValidString(title) {
		glog.Errorf("rom: header title is not valid UTF-8: %q", title)
		return nil, HeaderInvalid{Reason: "title is not valid UTF-8"}
	}

	makeup := MakeupByte(block[21])
	if !makeup.valid() {
		glog.Errorf("rom: unrecognized makeup byte 0x%02X", block[21])
		return nil, HeaderInvalid{Reason: fmt.Sprintf("unrecognized makeup byte 0x%02X", block[21])}
	}

	romSizeRaw := block[23]
	sramSizeRaw := block[24]

	h := &Header{
		Title:      title,
		Makeup:     makeup,
		ROMType:    "rom",
		ROMSize:    0x400 << romSizeRaw,
		SRAMSize:   0x400 << sramSizeRaw,
		LicenseID:  block[25],
		Version:    block[27],
		Checksum:   readWord(block, 30),
		Complement: readWord(block, 28),
	}

	h.NativeVecs = readVectorTable(block, 32)
	h.EmuVecs = readVectorTable(block, 48)

	return h, nil
}

func readWord(b []byte, offset int) uint16 {
	return uint16(b[offset]) | uint16(b[offset+1])<<8
}

func readVectorTable(b []byte, offset int) VectorTable {
	return VectorTable{
		Unknown1:        readWord(b, offset+0),
		Unknown2:        readWord(b, offset+2),
		COP:             readWord(b, offset+4),
		BreakOrUnknown3: readWord(b, offset+6),
		Abort:           readWord(b, offset+8),
		NMI:             readWord(b, offset+10),
		Reset:           readWord(b, offset+12),
		IRQorBRK:        readWord(b, offset+14),
	}
}

// ToCPUVectors projects the six vectors the CPU core consumes out of the
// header's native and emulation tables, per spec.md §6.2: the emulation
// table shares a single slot for BREAK and IRQ.
func (h *Header) ToCPUVectors() cpu.Vectors {
	return cpu.Vectors{
		Reset: h.NativeVecs.Reset,
		IRQ:   h.NativeVecs.IRQorBRK,
		NMI:   h.NativeVecs.NMI,
		Abort: h.NativeVecs.Abort,
		Break: h.EmuVecs.IRQorBRK,
		COP:   h.NativeVecs.COP,
	}
}
