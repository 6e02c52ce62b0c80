// Package opcode decodes a single opcode byte into an Opcode value exposing
// the uniform byte-size/cycle-count/execute/disasm protocol. Decoding looks
// at the byte alone; accumulator/index width is read from the CPU passed to
// each protocol method.
//
// This generalizes the teacher repo's Opcodes map (cpu/opcodes.go in
// "gone", `map[byte]Opcode{AddressingMode, Cycles, Instruction, Name}`
// with a single fixed addressing mode and cycle count per entry) into
// per-family decoders whose cycle cost and addressing mode both depend on
// runtime CPU state, as the 65C816 requires.
package opcode

import (
	"github.com/golang/glog"

	"snescpu/cpu"
)

// Opcode is the uniform interface every decoded instance exposes.
type Opcode interface {
	ByteSize(c *cpu.CPU) int
	TotalCycles(c *cpu.CPU) uint32
	Execute(c *cpu.CPU)
	Disasm(c *cpu.CPU) string
}

type familyDecoder func(b byte) (Opcode, bool)

var families = []familyDecoder{
	decodeLogical,
	decodeBitTest,
	decodeShift,
	decodeIncDec,
	decodeStatus,
}

// Decode tries every instruction family against b in turn and returns the
// first match. If no family claims the byte, it returns cpu.DecodeFailure.
func Decode(b byte) (Opcode, error) {
	for _, fam := range families {
		if op, ok := fam(b); ok {
			return op, nil
		}
	}
	glog.Warningf("opcode: byte 0x%02X unclaimed by any decoder family", b)
	return nil, cpu.DecodeFailure{Byte: b}
}
