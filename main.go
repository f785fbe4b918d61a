// Package main provides a pointer to the armdisasm CLI.
// armdisasm is an A64 (ARMv8-A, 64-bit) single-instruction disassembler.
//
// For the full CLI, use: go run ./cmd/armdisasm
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("armdisasm - A64 instruction disassembler")
	fmt.Println("")
	fmt.Println("Usage: armdisasm [options] <file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -elf       Treat the input file as an ARM64 ELF binary")
	fmt.Println("  -raw       Treat the input file as a flat binary blob of words")
	fmt.Println("  -base      Base address for hex-text and -raw modes")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/armdisasm' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/armdisasm' instead.")
	}
}
