// Package addressing implements the 65C816 addressing-mode algebra: a
// family of types that each compute a 24-bit effective address, a
// byte-length, a width-correct fetched value, a stored-value continuation,
// and a disassembly string, given a CPU.
//
// This generalizes the teacher repo's opcode/instruction tables (gone's
// cpu/instructions.go, which hardcodes a single 6502 addressing rule per
// mnemonic) into the polymorphic tagged-variant family the 65C816 needs:
// Mode is the dispatch interface, and each addressing-mode constructor is a
// small struct holding only configuration, never CPU state, following the
// "no runtime dynamic dispatch beyond an interface call" design in the
// source material.
package addressing

import (
	"fmt"

	"snescpu/cpu"
	"snescpu/width"
)

// Mode is the uniform interface every addressing-mode variant implements.
type Mode interface {
	Address(c *cpu.CPU) uint32
	ByteSize(c *cpu.CPU) int
	Fetch(c *cpu.CPU) uint16
	Store(c *cpu.CPU, v uint16)
	Disasm(c *cpu.CPU) string
}

// operandAddr returns the address of the byte immediately following the
// opcode byte at the CPU's current effective PC, where every mode's operand
// lives.
func operandAddr(c *cpu.CPU) uint32 {
	return (c.EffectivePC() + 1) & 0xFFFFFF
}

func operandByte(c *cpu.CPU) uint8  { return c.Memory.ReadByte(operandAddr(c)) }
func operandWord(c *cpu.CPU) uint16 { return c.Memory.ReadWord(operandAddr(c)) }
func operandLong(c *cpu.CPU) uint32 { return c.Memory.ReadLong(operandAddr(c)) }

// AbsoluteOffset folds an 8-bit bank and a 16-bit address into a 24-bit
// effective address.
func AbsoluteOffset(bank uint8, addr16 uint16) uint32 {
	return (uint32(bank)<<16 | uint32(addr16)) & 0xFFFFFF
}

// CalcOffset adds two 16-bit values with 16-bit wraparound.
func CalcOffset(a, b uint16) uint16 {
	return (a + b) & 0xFFFF
}

// IndexedAddr adds the given index register's value to a 24-bit base
// address, wrapping within the 24-bit address space.
func IndexedAddr(addr24 uint32, c *cpu.CPU, r IndexReg) uint32 {
	return (addr24 + uint32(r.Value(c))) & 0xFFFFFF
}

// ReadIndirect reads an n-byte (2 or 3) little-endian pointer at addr.
func ReadIndirect(c *cpu.CPU, addr uint32, n int) uint32 {
	return c.ReadIndirectPointer(addr, n)
}

// IndexReg selects which index register an Indexed mode adds in.
type IndexReg int

const (
	RegX IndexReg = iota
	RegY
)

// Value reads the selected index register, masked to its logical width.
func (r IndexReg) Value(c *cpu.CPU) uint16 {
	if r == RegX {
		return c.X()
	}
	return c.Y()
}

// Suffix is the disassembly suffix for the selected index register.
func (r IndexReg) Suffix() string {
	if r == RegX {
		return ",X"
	}
	return ",Y"
}

// readData and writeData implement the "fetch/store issues read_data/
// write_data at acc_size" rule shared by every non-Register, non-Immediate
// mode (spec §4.3).
func readData(c *cpu.CPU, addr uint32) uint16     { return c.ReadData(addr) }
func writeData(c *cpu.CPU, addr uint32, v uint16) { c.WriteData(addr, v) }

// Immediate reads its operand directly following the opcode, sized by the
// current accumulator width, and never computes an address.
type Immediate struct{}

func (Immediate) Address(c *cpu.CPU) uint32 { return 0 }

func (Immediate) ByteSize(c *cpu.CPU) int {
	if c.AccSize() == width.Bit8 {
		return 1
	}
	return 2
}

func (m Immediate) Fetch(c *cpu.CPU) uint16 {
	if c.AccSize() == width.Bit8 {
		return uint16(operandByte(c))
	}
	return operandWord(c)
}

func (Immediate) Store(c *cpu.CPU, v uint16) {}

func (m Immediate) Disasm(c *cpu.CPU) string {
	if c.AccSize() == width.Bit8 {
		return "#" + width.Hex2(uint8(m.Fetch(c)))
	}
	return "#" + width.Hex4(m.Fetch(c))
}

// AbsoluteKind selects which bank register an Absolute mode folds in, or
// whether it carries its own 24-bit operand.
type AbsoluteKind int

const (
	AbsoluteData AbsoluteKind = iota
	AbsoluteProgram
	AbsoluteLong
)

// Absolute addresses a 16-bit operand combined with DBR or PBR, or carries
// a full 24-bit operand of its own (AbsoluteLong).
type Absolute struct {
	Kind AbsoluteKind
}

func (a Absolute) Address(c *cpu.CPU) uint32 {
	switch a.Kind {
	case AbsoluteProgram:
		return AbsoluteOffset(c.ProgramBank, operandWord(c))
	case AbsoluteLong:
		return operandLong(c) & 0xFFFFFF
	default:
		return AbsoluteOffset(c.DataBank, operandWord(c))
	}
}

func (a Absolute) ByteSize(c *cpu.CPU) int {
	if a.Kind == AbsoluteLong {
		return 3
	}
	return 2
}

func (a Absolute) Fetch(c *cpu.CPU) uint16     { return readData(c, a.Address(c)) }
func (a Absolute) Store(c *cpu.CPU, v uint16)  { writeData(c, a.Address(c), v) }

func (a Absolute) Disasm(c *cpu.CPU) string {
	if a.Kind == AbsoluteLong {
		return width.Hex6(a.Address(c))
	}
	return width.Hex4(operandWord(c))
}

// DirectPage addresses an 8-bit operand offset from the direct page
// register, wrapping within bank 0.
type DirectPage struct{}

func (DirectPage) Address(c *cpu.CPU) uint32 {
	return uint32(CalcOffset(uint16(operandByte(c)), c.DirectPage))
}

func (DirectPage) ByteSize(c *cpu.CPU) int { return 1 }

func (d DirectPage) Fetch(c *cpu.CPU) uint16    { return readData(c, d.Address(c)) }
func (d DirectPage) Store(c *cpu.CPU, v uint16) { writeData(c, d.Address(c), v) }

func (DirectPage) Disasm(c *cpu.CPU) string { return width.Hex2(operandByte(c)) }

// Stack addresses an 8-bit operand offset from the stack pointer
// (stack-relative addressing).
type Stack struct{}

func (Stack) Address(c *cpu.CPU) uint32 {
	return uint32(CalcOffset(c.StackPtr, uint16(operandByte(c))))
}

func (Stack) ByteSize(c *cpu.CPU) int { return 1 }

func (s Stack) Fetch(c *cpu.CPU) uint16    { return readData(c, s.Address(c)) }
func (s Stack) Store(c *cpu.CPU, v uint16) { writeData(c, s.Address(c), v) }

func (Stack) Disasm(c *cpu.CPU) string {
	return fmt.Sprintf("%s,S", width.Hex2(operandByte(c)))
}

// Register selects one of A, X, or Y directly, with no memory access and no
// operand byte.
type Register int

const (
	RegisterA Register = iota
	RegisterX
	RegisterY
)

func (Register) Address(c *cpu.CPU) uint32 { return 0 }
func (Register) ByteSize(c *cpu.CPU) int   { return 0 }

func (r Register) Fetch(c *cpu.CPU) uint16 {
	switch r {
	case RegisterX:
		return c.X()
	case RegisterY:
		return c.Y()
	default:
		return c.Acc()
	}
}

func (r Register) Store(c *cpu.CPU, v uint16) {
	switch r {
	case RegisterX:
		c.SetX(v)
	case RegisterY:
		c.SetY(v)
	default:
		c.SetAcc(v)
	}
}

func (r Register) Disasm(c *cpu.CPU) string {
	switch r {
	case RegisterX:
		return "X"
	case RegisterY:
		return "Y"
	default:
		return "A"
	}
}

// Indexed adds an index register's value to a base mode's address.
type Indexed struct {
	Base Mode
	Reg  IndexReg
}

func (m Indexed) Address(c *cpu.CPU) uint32 {
	return IndexedAddr(m.Base.Address(c), c, m.Reg)
}

func (m Indexed) ByteSize(c *cpu.CPU) int { return m.Base.ByteSize(c) }

func (m Indexed) Fetch(c *cpu.CPU) uint16    { return readData(c, m.Address(c)) }
func (m Indexed) Store(c *cpu.CPU, v uint16) { writeData(c, m.Address(c), v) }

func (m Indexed) Disasm(c *cpu.CPU) string {
	return m.Base.Disasm(c) + m.Reg.Suffix()
}

// IndirectKind selects the pointer width and bank rule an Indirect mode
// reads through.
type IndirectKind int

const (
	IndirectData IndirectKind = iota
	IndirectProgram
	IndirectLong
)

// Indirect reads a pointer through base's address, then addresses through
// that pointer (combined with DBR/PBR for the 2-byte forms, or used
// directly as a 24-bit address for the long form).
type Indirect struct {
	Base Mode
	Kind IndirectKind
}

func (m Indirect) Address(c *cpu.CPU) uint32 {
	indirectAddr := m.Base.Address(c)
	switch m.Kind {
	case IndirectLong:
		return ReadIndirect(c, indirectAddr, 3) & 0xFFFFFF
	case IndirectProgram:
		offset16 := uint16(ReadIndirect(c, indirectAddr, 2))
		return AbsoluteOffset(c.ProgramBank, offset16)
	default:
		offset16 := uint16(ReadIndirect(c, indirectAddr, 2))
		return AbsoluteOffset(c.DataBank, offset16)
	}
}

func (m Indirect) ByteSize(c *cpu.CPU) int { return m.Base.ByteSize(c) }

func (m Indirect) Fetch(c *cpu.CPU) uint16    { return readData(c, m.Address(c)) }
func (m Indirect) Store(c *cpu.CPU, v uint16) { writeData(c, m.Address(c), v) }

func (m Indirect) Disasm(c *cpu.CPU) string {
	if m.Kind == IndirectLong {
		return "[" + m.Base.Disasm(c) + "]"
	}
	return "(" + m.Base.Disasm(c) + ")"
}

// Static is a test-only fixture mode with fixed responses, independent of
// CPU state.
type Static struct {
	Addr    uint32
	Size    int
	Data    uint16
	Stored  *uint16
	Text    string
}

func (s Static) Address(c *cpu.CPU) uint32 { return s.Addr }
func (s Static) ByteSize(c *cpu.CPU) int   { return s.Size }
func (s Static) Fetch(c *cpu.CPU) uint16   { return s.Data }
func (s Static) Store(c *cpu.CPU, v uint16) {
	if s.Stored != nil {
		*s.Stored = v
	}
}
func (s Static) Disasm(c *cpu.CPU) string { return s.Text }
