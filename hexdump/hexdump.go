// Package hexdump formats a byte slice as a 16-bytes-per-line diagnostic
// dump: a "bb ppppp" bank/offset index, hex bytes, and a pipe-delimited
// ASCII column. It is a standalone formatter over a []byte, not wired to
// mem.Memory directly, so it can dump a ROM image or a memory snapshot
// alike (spec.md §6.3).
package hexdump

import (
	"fmt"
	"strings"
)

const bytesPerLine = 16

// Dump renders data starting at the given 24-bit base address.
func Dump(base uint32, data []byte) string {
	var b strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]
		addr := base + uint32(offset)

		fmt.Fprintf(&b, "%02X %05X  ", (addr>>16)&0xFF, addr&0xFFFF)

		for i := 0; i < bytesPerLine; i++ {
			if i < len(line) {
				fmt.Fprintf(&b, "%02X ", line[i])
			} else {
				b.WriteString("   ")
			}
		}

		b.WriteString(" |")
		for _, v := range line {
			b.WriteByte(asciiOrDot(v))
		}
		b.WriteString("|\n")
	}
	return b.String()
}

func asciiOrDot(v byte) byte {
	if v < 32 || v > 127 {
		return '.'
	}
	return v
}
