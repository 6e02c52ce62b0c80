// Package debugtui is an interactive single-step TUI debugger over a CPU
// and its memory. It generalizes the teacher repo's cpu/debugger.go —
// which renders a fixed 6502 page table and flag row and single-steps via
// Cpu.tick() — to the 65C816's variable-width register file and to
// stepping via opcode.Decode/Execute instead of a hardcoded opcode table.
package debugtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"snescpu/cpu"
	"snescpu/opcode"
	"snescpu/width"
)

type model struct {
	cpu *cpu.CPU

	offset uint32 // only for drawing the page table
	prevPC uint16
	err    error
}

// Init performs no initial command; the CPU is already loaded by the
// caller before Run is invoked.
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			b := m.cpu.Memory.ReadByte(m.cpu.EffectivePC())
			op, err := opcode.Decode(b)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.prevPC = m.cpu.PC
			op.Execute(m.cpu)
			m.cpu.PC += uint16(op.ByteSize(m.cpu))
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line, highlighting the
// current effective PC.
func (m model) renderPage(start uint32) string {
	s := fmt.Sprintf("%06X | ", start)
	for i := uint32(0); i < 16; i++ {
		b := m.cpu.Memory.ReadByte(start + i)
		if start+i == m.cpu.EffectivePC() {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func flagRow(flags []bool) string {
	var s string
	for _, f := range flags {
		if f {
			s += "/ "
		} else {
			s += "  "
		}
	}
	return s
}

func (m model) status() string {
	c := m.cpu
	mode := "native"
	if c.EmuMode == cpu.Emulation {
		mode = "emulation"
	}
	return fmt.Sprintf(`
mode: %s
  PC: %04X (prev %04X)
 DBR: %02X  PBR: %02X  D: %04X  S: %04X
   C: %04X  A: %02X  B: %02X
   X: %04X  Y: %04X
N V _ X D I Z C
`,
		mode,
		c.PC, m.prevPC,
		c.DataBank, c.ProgramBank, c.DirectPage, c.StackPtr,
		c.C(), c.A(), c.B(),
		c.X(), c.Y(),
	) + flagRow([]bool{
		c.Negative,
		c.Overflow,
		c.AccSize() == width.Bit16,
		c.IndexSize() == width.Bit16,
		c.DecimalMode,
		c.IrqDisable,
		c.Zero,
		c.Carry,
	})
}

func (m model) pageTable() string {
	header := "addr   | "
	for b := range 16 {
		header += fmt.Sprintf("  %01X  ", b)
	}
	lines := []string{header}

	base := m.cpu.EffectivePC() &^ 0xF
	for i := 0; i < 5; i++ {
		lines = append(lines, m.renderPage(base+uint32(i*16)))
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	b := m.cpu.Memory.ReadByte(m.cpu.EffectivePC())
	op, err := opcode.Decode(b)
	var dump string
	if err == nil {
		dump = spew.Sdump(op)
	} else {
		dump = err.Error()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		dump,
	)
}

// Run starts an interactive single-step debugger over c, beginning at the
// CPU's current program counter.
func Run(c *cpu.CPU) error {
	finalModel, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
