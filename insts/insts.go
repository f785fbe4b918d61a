// Package insts implements the A64 (ARMv8-A, 64-bit) single-instruction
// decoder and formatter: given a 32-bit instruction word and its virtual
// address, Decode produces a structured Instruction record, and Format
// renders that record as disassembly text.
package insts

// Type enumerates the semantic instruction families the decoder recognizes.
// The zero value, TypeUnknown, is the state of a failed decode.
type Type uint16

const (
	TypeUnknown Type = iota
	TypeADD
	TypeADDS
	TypeSUB
	TypeSUBS
	TypeCMP
	TypeCMN
	TypeNEG
	TypeAND
	TypeORR
	TypeEOR
	TypeMOV
	TypeMVN
	TypeTST
	TypeMOVZ
	TypeMOVN
	TypeMOVK
	TypeADR
	TypeADRP
	TypeLSL
	TypeLSR
	TypeASR
	TypeROR
	TypeSBFM
	TypeBFM
	TypeUBFM
	TypeEXTR
	TypeMUL
	TypeMNEG
	TypeMADD
	TypeMSUB
	TypeUDIV
	TypeSDIV
	TypeRBIT
	TypeREV
	TypeREV16
	TypeREV32
	TypeCLZ
	TypeCLS
	TypeCSEL
	TypeCSINC
	TypeCSINV
	TypeCSNEG
	TypeCSET
	TypeCSETM
	TypeCINC
	TypeCINV
	TypeCNEG
	TypeB
	TypeBL
	TypeBCond
	TypeCBZ
	TypeCBNZ
	TypeTBZ
	TypeTBNZ
	TypeBR
	TypeBLR
	TypeRET
	TypeHint
	TypeMRS
	TypeLDR
	TypeLDRB
	TypeLDRH
	TypeLDRSB
	TypeLDRSH
	TypeLDRSW
	TypeSTR
	TypeSTRB
	TypeSTRH
	TypeLDP
	TypeSTP
	TypeLDXR
	TypeLDAXR
	TypeSTXR
	TypeSTLXR
	TypeLDXP
	TypeLDAXP
	TypeSTXP
	TypeSTLXP
	TypeLDAR
	TypeSTLR
	TypeLDLAR
	TypeSTLLR
	TypeLDADD
	TypeLDCLR
	TypeLDEOR
	TypeLDSET
	TypeLDSMAX
	TypeLDSMIN
	TypeLDUMAX
	TypeLDUMIN
	TypeSWP
	TypeCAS
	TypeFMOV
	TypeFABS
	TypeFNEG
	TypeFSQRT
	TypeFCVT
	TypeFRINT
	TypeFMUL
	TypeFDIV
	TypeFADD
	TypeFSUB
	TypeFMAX
	TypeFMIN
	TypeFMADD
	TypeFMSUB
	TypeFNMADD
	TypeFNMSUB
	TypeFCMP
	TypeFCMPE
	TypeFCCMP
	TypeFCSEL
	TypeFCVTZS
	TypeFCVTZU
	TypeSCVTF
	TypeUCVTF
	TypeSIMDScalar
)

// RegType enumerates a register slot's width/role class. The decoder, never
// the formatter, resolves which class an encoded index of 31 belongs to.
type RegType uint8

const (
	RegNone RegType = iota
	RegX
	RegW
	RegSP
	RegXZR
	RegWZR
	RegB
	RegH
	RegS
	RegD
	RegQ
	RegV
)

// AddrMode enumerates the memory-operand shape for load/store instructions.
type AddrMode uint8

const (
	AddrNone AddrMode = iota
	AddrImmUnsigned
	AddrImmSigned
	AddrPreIndex
	AddrPostIndex
	AddrRegOffset
	AddrRegExtend
	AddrLiteral
)

// ExtendType enumerates the register-operand modifier: the eight UXT/SXT
// extend kinds, followed immediately by LSL/LSR/ASR/ROR so that shift kinds
// for a shifted-register operand and extend kinds for a register-offset
// memory operand share one small contiguous enumeration.
type ExtendType uint8

const (
	ExtendUXTB ExtendType = iota
	ExtendUXTH
	ExtendUXTW
	ExtendUXTX
	ExtendSXTB
	ExtendSXTH
	ExtendSXTW
	ExtendSXTX
	ExtendLSL
	ExtendLSR
	ExtendASR
	ExtendROR
)

// Cond is an A64 4-bit condition code.
type Cond uint8

const (
	CondEQ Cond = iota
	CondNE
	CondCS
	CondCC
	CondMI
	CondPL
	CondVS
	CondVC
	CondHI
	CondLS
	CondGE
	CondLT
	CondGT
	CondLE
	CondAL
	CondNV
)

var condNames = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

// String returns the canonical lowercase condition mnemonic suffix.
func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return "??"
}

// invert returns the logical complement of a condition code, used by the
// CSET/CSETM/CINC/CINV/CNEG alias rewrites.
func (c Cond) invert() Cond {
	return c ^ 1
}

// Instruction is the decoded record produced by Decode and consumed
// read-only by Format and the query helpers. The zero value represents an
// unknown/failed decode.
type Instruction struct {
	Raw     uint32
	Address uint64

	Type     Type
	Mnemonic string

	Rd, Rn, Rm, Rt2, Ra    uint8
	RdType, RnType, RmType RegType

	Imm    int64
	HasImm bool

	AddrMode    AddrMode
	ExtendType  ExtendType
	ShiftAmount uint8

	Cond Cond

	Is64Bit   bool
	SetFlags  bool
	IsAcquire bool
	IsRelease bool
}
