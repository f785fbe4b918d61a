// Package loader provides ELF binary inspection for ARM64 executables,
// backing the disassembler CLI's -elf mode.
package loader

import (
	"debug/elf"
	"fmt"
)

// Code is a chunk of executable instruction words with its load address,
// as extracted from an ELF binary's .text section.
type Code struct {
	// Addr is the virtual address of the first word.
	Addr uint64
	// Words holds the raw instruction words in host byte order, already
	// converted from the section's little-endian on-disk encoding.
	Words []uint32
}

// TextSection opens the ARM64 ELF binary at path and returns the contents
// of its .text section decoded as a sequence of 32-bit instruction words.
func TextSection(path string) (Code, error) {
	f, err := elf.Open(path)
	if err != nil {
		return Code{}, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS64 {
		return Code{}, fmt.Errorf("not a 64-bit ELF file")
	}
	if f.Machine != elf.EM_AARCH64 {
		return Code{}, fmt.Errorf("not an ARM64 ELF file (machine type: %v)", f.Machine)
	}

	sec := f.Section(".text")
	if sec == nil {
		return Code{}, fmt.Errorf("no .text section found")
	}

	data, err := sec.Data()
	if err != nil {
		return Code{}, fmt.Errorf("failed to read .text section: %w", err)
	}
	if len(data)%4 != 0 {
		return Code{}, fmt.Errorf(".text section size %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[4*i]) | uint32(data[4*i+1])<<8 |
			uint32(data[4*i+2])<<16 | uint32(data[4*i+3])<<24
	}

	return Code{Addr: sec.Addr, Words: words}, nil
}
