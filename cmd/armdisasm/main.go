// Package main provides the entry point for armdisasm.
// armdisasm is an A64 (ARMv8-A, 64-bit) single-instruction disassembler.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/armdisasm/insts"
	"github.com/sarchlab/armdisasm/loader"
)

var (
	elfMode = flag.Bool("elf", false, "Treat the input file as an ARM64 ELF binary and disassemble its .text section")
	rawMode = flag.Bool("raw", false, "Treat the input file as a flat binary blob of instruction words")
	base    = flag.Uint64("base", 0, "Base address for hex-text and -raw modes")
	verbose = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: armdisasm [options] <file>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	path := flag.Arg(0)

	var addr uint64
	var words []uint32
	var err error

	switch {
	case *elfMode:
		var code loader.Code
		code, err = loader.TextSection(path)
		addr, words = code.Addr, code.Words
	case *rawMode:
		addr = *base
		words, err = readRawWords(path)
	default:
		addr = *base
		words, err = readHexWords(path)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Input: %s\n", path)
		fmt.Printf("Base address: 0x%x\n", addr)
		fmt.Printf("Words: %d\n", len(words))
	}

	for i, word := range words {
		disassembleOne(addr+4*uint64(i), word)
	}
}

// disassembleOne decodes and prints a single instruction word.
func disassembleOne(address uint64, word uint32) {
	inst, ok := insts.Decode(word, address)
	if !ok {
		fmt.Printf("%08x: %08x  unknown\n", address, word)
		return
	}
	fmt.Printf("%08x: %08x  %s\n", address, word, insts.Format(inst))
}

// readHexWords reads a text file of one hex-encoded 32-bit word per line,
// ignoring blank lines and "#"-prefixed comments.
func readHexWords(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var words []uint32
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "0x")
		word, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed hex word on line %d: %q", lineNum, line)
		}
		words = append(words, uint32(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return words, nil
}

// readRawWords reads a flat binary blob and decodes it as a sequence of
// little-endian 32-bit instruction words.
func readRawWords(path string) ([]uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of 4", len(data))
	}

	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = uint32(data[4*i]) | uint32(data[4*i+1])<<8 |
			uint32(data[4*i+2])<<16 | uint32(data[4*i+3])<<24
	}
	return words, nil
}
