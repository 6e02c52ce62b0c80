// Command wdc65816 is a small CLI over the core: disassemble a flat binary
// with per-instruction cycle counts, or hex-dump a binary for inspection.
//
// Grounded on the oisee-z80-optimizer reference repo's cmd/z80opt/main.go
// cobra command tree (root command plus flag-bearing subcommands built
// with spf13/cobra and spf13/pflag).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snescpu/cpu"
	"snescpu/hexdump"
	"snescpu/mem"
	"snescpu/opcode"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wdc65816",
		Short: "Tools for inspecting 65C816 binaries",
	}

	var disasmOffset uint16
	var disasmCount int

	disasmCmd := &cobra.Command{
		Use:   "disasm [file]",
		Short: "Disassemble a flat binary with per-instruction cycle counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(args[0], disasmOffset, disasmCount)
		},
	}
	disasmCmd.Flags().Uint16Var(&disasmOffset, "offset", 0x8000, "starting program counter")
	disasmCmd.Flags().IntVar(&disasmCount, "count", 32, "maximum instructions to decode")

	var hexdumpOffset uint32

	hexdumpCmd := &cobra.Command{
		Use:   "hexdump [file]",
		Short: "Print a 16-bytes-per-line hex dump of a binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Print(hexdump.Dump(hexdumpOffset, data))
			return nil
		},
	}
	hexdumpCmd.Flags().Uint32Var(&hexdumpOffset, "base", 0, "base address shown in the index column")

	rootCmd.AddCommand(disasmCmd, hexdumpCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDisasm(path string, offset uint16, count int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	m := mem.NewFromBytes(data)
	c := cpu.New(m)
	c.PC = offset

	for i := 0; i < count; i++ {
		b := m.ReadByte(c.EffectivePC())
		op, err := opcode.Decode(b)
		if err != nil {
			fmt.Printf("%06X  %02X       ???\n", c.EffectivePC(), b)
			c.PC++
			continue
		}
		size := op.ByteSize(c)
		cycles := op.TotalCycles(c)
		fmt.Printf("%06X  %-24s ; %d cycles\n", c.EffectivePC(), op.Disasm(c), cycles)
		c.PC += uint16(size)
	}
	return nil
}
