// Package main provides a property-check tool for the decoder.
// It samples random 32-bit words and checks the invariants that the
// package-level Decode function is required to uphold on every call.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"unicode"

	"github.com/sarchlab/armdisasm/insts"
)

var sampleCount = 1000000

func main() {
	if len(os.Args) > 1 {
		n, err := fmt.Sscanf(os.Args[1], "%d", &sampleCount)
		if err != nil || n != 1 {
			fmt.Fprintf(os.Stderr, "usage: fuzzcheck [sample-count]\n")
			os.Exit(1)
		}
	}

	fmt.Printf("checking %d random words for decode invariants...\n", sampleCount)

	failures := 0
	failures += checkDeterminism()
	failures += checkMnemonicShape()
	failures += checkFormatNeverPanics()

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d invariant violations found\n", failures)
		os.Exit(1)
	}

	fmt.Println("all invariants held")
}

// checkDeterminism verifies that decoding the same word twice, from either
// the package function or a fresh Decoder, produces identical records.
func checkDeterminism() int {
	decoder := insts.NewDecoder()
	failures := 0

	for i := 0; i < sampleCount; i++ {
		word := rand.Uint32()
		address := rand.Uint64()

		inst1, ok1 := insts.Decode(word, address)
		inst2, ok2 := insts.Decode(word, address)
		inst3, ok3 := decoder.Decode(word, address)

		if ok1 != ok2 || inst1 != inst2 {
			fmt.Printf("nondeterministic decode for word 0x%08x\n", word)
			failures++
		}
		if ok1 != ok3 || inst1 != inst3 {
			fmt.Printf("Decoder.Decode diverges from Decode for word 0x%08x\n", word)
			failures++
		}
	}

	return failures
}

// checkMnemonicShape verifies that every successful decode produces a
// non-empty, lowercase mnemonic, and that every failed decode leaves
// Type == TypeUnknown and Mnemonic == "unknown".
func checkMnemonicShape() int {
	failures := 0

	for i := 0; i < sampleCount; i++ {
		word := rand.Uint32()
		address := rand.Uint64()

		inst, ok := insts.Decode(word, address)
		if !ok {
			if inst.Type != insts.TypeUnknown || inst.Mnemonic != "unknown" {
				fmt.Printf("failed decode left a non-unknown record for word 0x%08x\n", word)
				failures++
			}
			continue
		}

		if inst.Mnemonic == "" {
			fmt.Printf("successful decode of word 0x%08x has an empty mnemonic\n", word)
			failures++
			continue
		}
		for _, r := range inst.Mnemonic {
			if unicode.IsUpper(r) {
				fmt.Printf("mnemonic %q for word 0x%08x is not lowercase\n", inst.Mnemonic, word)
				failures++
				break
			}
		}
	}

	return failures
}

// checkFormatNeverPanics verifies that Format always returns, including for
// the zero-valued Instruction and for records from failed decodes.
func checkFormatNeverPanics() (failures int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Format panicked: %v\n", r)
			failures++
		}
	}()

	_ = insts.Format(insts.Instruction{})

	for i := 0; i < sampleCount/100; i++ {
		word := rand.Uint32()
		inst, _ := insts.Decode(word, rand.Uint64())
		_ = insts.Format(inst)
	}

	return failures
}
