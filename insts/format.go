package insts

import "fmt"

var xRegNames = [32]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "x29", "x30", "xzr",
}

var wRegNames = [32]string{
	"w0", "w1", "w2", "w3", "w4", "w5", "w6", "w7",
	"w8", "w9", "w10", "w11", "w12", "w13", "w14", "w15",
	"w16", "w17", "w18", "w19", "w20", "w21", "w22", "w23",
	"w24", "w25", "w26", "w27", "w28", "w29", "w30", "wzr",
}

var extendNames = [12]string{
	"uxtb", "uxth", "uxtw", "uxtx", "sxtb", "sxth", "sxtw", "sxtx",
	"lsl", "lsr", "asr", "ror",
}

// regName renders one operand register given its resolved type. The decoder,
// not this function, is responsible for having already chosen SP vs. ZR for
// register index 31.
func regName(idx uint8, rt RegType) string {
	switch rt {
	case RegX:
		return xRegNames[idx]
	case RegW:
		return wRegNames[idx]
	case RegSP:
		if idx == 31 {
			return "sp"
		}
		return xRegNames[idx]
	case RegXZR:
		return "xzr"
	case RegWZR:
		return "wzr"
	case RegB:
		return fmt.Sprintf("b%d", idx)
	case RegH:
		return fmt.Sprintf("h%d", idx)
	case RegS:
		return fmt.Sprintf("s%d", idx)
	case RegD:
		return fmt.Sprintf("d%d", idx)
	case RegQ:
		return fmt.Sprintf("q%d", idx)
	case RegV:
		return fmt.Sprintf("v%d", idx)
	default:
		return "?"
	}
}

// systemRegEntry names one MRS-addressable system register by its exact
// op0/op1/CRn/CRm/op2 tuple.
type systemRegEntry struct {
	op0, op1, crn, crm, op2 uint32
	name                    string
}

var systemRegTable = []systemRegEntry{
	{3, 3, 4, 2, 0, "NZCV"},
	{3, 3, 4, 2, 1, "DAIF"},
	{3, 0, 4, 2, 2, "CurrentEL"},
	{3, 0, 4, 2, 0, "SPSel"},
	{3, 0, 4, 1, 0, "SP_EL0"},
	{3, 4, 4, 1, 0, "SP_EL1"},
	{3, 6, 4, 1, 0, "SP_EL2"},
	{3, 7, 4, 1, 0, "SP_EL3"},
	{3, 0, 4, 0, 0, "SPSR_EL1"},
	{3, 0, 4, 0, 1, "ELR_EL1"},
	{3, 4, 4, 0, 0, "SPSR_EL2"},
	{3, 4, 4, 0, 1, "ELR_EL2"},
	{3, 5, 4, 0, 0, "SPSR_EL12"},
	{3, 5, 4, 0, 1, "ELR_EL12"},
	{3, 6, 4, 0, 0, "SPSR_EL3"},
	{3, 6, 4, 0, 1, "ELR_EL3"},
	{3, 3, 13, 0, 2, "TPIDR_EL0"},
	{3, 3, 13, 0, 3, "TPIDRRO_EL0"},
	{3, 3, 13, 0, 5, "TPIDR2_EL0"},
	{3, 0, 13, 0, 4, "TPIDR_EL1"},
	{3, 4, 13, 0, 2, "TPIDR_EL2"},
	{3, 6, 13, 0, 2, "TPIDR_EL3"},
	{3, 3, 4, 4, 0, "FPCR"},
	{3, 3, 4, 4, 1, "FPSR"},
}

// systemRegName resolves the system-register operand of an MRS instruction
// from its raw word, falling back to the generic S<op0>_<op1>_C<CRn>_C<CRm>_<op2>
// spelling for any tuple the named table does not cover.
func systemRegName(word uint32) string {
	op0 := bits(word, 19, 20)
	op1 := bits(word, 16, 18)
	crn := bits(word, 12, 15)
	crm := bits(word, 8, 11)
	op2 := bits(word, 5, 7)

	for _, e := range systemRegTable {
		if e.op0 == op0 && e.op1 == op1 && e.crn == crn && e.crm == crm && e.op2 == op2 {
			return e.name
		}
	}
	return fmt.Sprintf("S%d_%d_C%d_C%d_%d", op0, op1, crn, crm, op2)
}

// formatMemoryOperand renders the [Rn, ...] addressing expression for a
// load/store instruction, keyed on its resolved AddrMode. Memory offsets are
// always decimal; a literal (PC-relative) operand is instead rendered as its
// absolute target address in hex, like a branch target.
func formatMemoryOperand(inst Instruction) string {
	base := regName(inst.Rn, RegSP)

	switch inst.AddrMode {
	case AddrImmUnsigned, AddrImmSigned:
		if inst.Imm == 0 {
			return fmt.Sprintf("[%s]", base)
		}
		return fmt.Sprintf("[%s, #%d]", base, inst.Imm)
	case AddrPreIndex:
		return fmt.Sprintf("[%s, #%d]!", base, inst.Imm)
	case AddrPostIndex:
		return fmt.Sprintf("[%s], #%d", base, inst.Imm)
	case AddrRegOffset, AddrRegExtend:
		rm := regName(inst.Rm, inst.RmType)
		ext := extendNames[inst.ExtendType]
		if inst.ExtendType == ExtendUXTX {
			if inst.ShiftAmount == 0 {
				return fmt.Sprintf("[%s, %s]", base, rm)
			}
			ext = "lsl"
		}
		if inst.ShiftAmount != 0 {
			return fmt.Sprintf("[%s, %s, %s #%d]", base, rm, ext, inst.ShiftAmount)
		}
		return fmt.Sprintf("[%s, %s, %s]", base, rm, ext)
	case AddrLiteral:
		return fmt.Sprintf("0x%x", uint64(int64(inst.Address)+inst.Imm))
	default:
		return fmt.Sprintf("[%s]", base)
	}
}

// Format renders a decoded Instruction as disassembly text in the
// "mnemonic operands" form: the mnemonic padded to 8 columns followed by a
// comma-separated operand list, or the bare mnemonic when there are none.
func Format(inst Instruction) string {
	if inst.Type == TypeUnknown {
		return "unknown"
	}

	operands := formatOperands(inst)
	if operands == "" {
		return inst.Mnemonic
	}
	return fmt.Sprintf("%-8s %s", inst.Mnemonic, operands)
}

func formatOperands(inst Instruction) string {
	rd := func() string { return regName(inst.Rd, inst.RdType) }
	rn := func() string { return regName(inst.Rn, inst.RnType) }
	rm := func() string { return regName(inst.Rm, inst.RmType) }
	target := func() uint64 { return uint64(int64(inst.Address) + inst.Imm) }

	switch inst.Type {
	case TypeB, TypeBL, TypeBCond:
		return fmt.Sprintf("0x%x", target())
	case TypeCBZ, TypeCBNZ:
		return fmt.Sprintf("%s, 0x%x", rd(), target())
	case TypeTBZ, TypeTBNZ:
		return fmt.Sprintf("%s, #%d, 0x%x", rd(), inst.ShiftAmount, target())
	case TypeBR, TypeBLR:
		return rn()
	case TypeRET:
		if inst.Rn == 30 || inst.Mnemonic != "ret" {
			return ""
		}
		return rn()
	case TypeHint:
		return ""
	case TypeMRS:
		return fmt.Sprintf("%s, %s", rd(), systemRegName(inst.Raw))

	case TypeADR, TypeADRP:
		return fmt.Sprintf("%s, 0x%x", rd(), target())

	case TypeCMP, TypeCMN, TypeTST:
		if inst.HasImm {
			return fmt.Sprintf("%s, #0x%x", rn(), inst.Imm)
		}
		return fmt.Sprintf("%s, %s", rn(), rm())
	case TypeMOV:
		if inst.HasImm {
			return fmt.Sprintf("%s, #0x%x", rd(), inst.Imm)
		}
		return fmt.Sprintf("%s, %s", rd(), rm())
	case TypeMVN, TypeNEG:
		return fmt.Sprintf("%s, %s", rd(), rm())
	case TypeMOVZ, TypeMOVN, TypeMOVK:
		if inst.ShiftAmount != 0 {
			return fmt.Sprintf("%s, #0x%x, lsl #%d", rd(), inst.Imm, inst.ShiftAmount)
		}
		return fmt.Sprintf("%s, #0x%x", rd(), inst.Imm)

	case TypeADD, TypeADDS, TypeSUB, TypeSUBS, TypeAND, TypeORR, TypeEOR:
		if inst.HasImm {
			if inst.ShiftAmount != 0 {
				return fmt.Sprintf("%s, %s, #0x%x, lsl #%d", rd(), rn(), inst.Imm, inst.ShiftAmount)
			}
			return fmt.Sprintf("%s, %s, #0x%x", rd(), rn(), inst.Imm)
		}
		if inst.ShiftAmount != 0 {
			return fmt.Sprintf("%s, %s, %s, %s #%d", rd(), rn(), rm(), extendNames[inst.ExtendType], inst.ShiftAmount)
		}
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())

	case TypeSBFM, TypeBFM, TypeUBFM:
		return fmt.Sprintf("%s, %s, #%d, #%d", rd(), rn(), inst.ShiftAmount, inst.Imm&0x3F)
	case TypeLSL, TypeLSR, TypeASR:
		if inst.HasImm {
			return fmt.Sprintf("%s, %s, #%d", rd(), rn(), inst.ShiftAmount)
		}
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())
	case TypeROR:
		if inst.HasImm {
			return fmt.Sprintf("%s, %s, #%d", rd(), rn(), inst.Imm)
		}
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())
	case TypeEXTR:
		return fmt.Sprintf("%s, %s, %s, #%d", rd(), rn(), rm(), inst.Imm)

	case TypeMUL, TypeMNEG, TypeUDIV, TypeSDIV:
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())
	case TypeMADD, TypeMSUB:
		return fmt.Sprintf("%s, %s, %s, %s", rd(), rn(), rm(), regName(inst.Ra, inst.RdType))
	case TypeRBIT, TypeREV, TypeREV16, TypeREV32, TypeCLZ, TypeCLS:
		return fmt.Sprintf("%s, %s", rd(), rn())

	case TypeCSEL, TypeCSINC, TypeCSINV, TypeCSNEG:
		return fmt.Sprintf("%s, %s, %s, %s", rd(), rn(), rm(), inst.Cond.String())
	case TypeCSET, TypeCSETM:
		return fmt.Sprintf("%s, %s", rd(), inst.Cond.String())
	case TypeCINC, TypeCINV, TypeCNEG:
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), inst.Cond.String())

	case TypeLDR, TypeLDRB, TypeLDRH, TypeLDRSB, TypeLDRSH, TypeLDRSW,
		TypeSTR, TypeSTRB, TypeSTRH:
		return fmt.Sprintf("%s, %s", rd(), formatMemoryOperand(inst))
	case TypeLDP, TypeSTP:
		return fmt.Sprintf("%s, %s, %s", rd(), regName(inst.Rt2, inst.RdType), formatMemoryOperand(inst))

	case TypeLDXR, TypeLDAXR, TypeLDAR, TypeLDLAR, TypeSTLR, TypeSTLLR:
		return fmt.Sprintf("%s, [%s]", rd(), regName(inst.Rn, RegSP))
	case TypeSTXR, TypeSTLXR:
		return fmt.Sprintf("%s, %s, [%s]", regName(inst.Rm, inst.RmType), rd(), regName(inst.Rn, RegSP))
	case TypeLDXP, TypeLDAXP:
		return fmt.Sprintf("%s, %s, [%s]", rd(), regName(inst.Rt2, inst.RdType), regName(inst.Rn, RegSP))
	case TypeSTXP, TypeSTLXP:
		return fmt.Sprintf("%s, %s, %s, [%s]", regName(inst.Rm, inst.RmType), rd(), regName(inst.Rt2, inst.RdType), regName(inst.Rn, RegSP))
	case TypeLDADD, TypeLDCLR, TypeLDEOR, TypeLDSET, TypeLDSMAX, TypeLDSMIN,
		TypeLDUMAX, TypeLDUMIN, TypeSWP, TypeCAS:
		return fmt.Sprintf("%s, %s, [%s]", rm(), rd(), regName(inst.Rn, RegSP))

	case TypeFMOV:
		if inst.HasImm {
			return fmt.Sprintf("%s, #%d", rd(), inst.Imm)
		}
		return fmt.Sprintf("%s, %s", rd(), rn())
	case TypeFABS, TypeFNEG, TypeFSQRT, TypeFCVT, TypeFRINT, TypeFCVTZS,
		TypeFCVTZU, TypeSCVTF, TypeUCVTF:
		return fmt.Sprintf("%s, %s", rd(), rn())
	case TypeFMUL, TypeFDIV, TypeFADD, TypeFSUB, TypeFMAX, TypeFMIN:
		return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())
	case TypeFMADD, TypeFMSUB, TypeFNMADD, TypeFNMSUB:
		return fmt.Sprintf("%s, %s, %s, %s", rd(), rn(), rm(), regName(inst.Ra, inst.RdType))
	case TypeFCMP, TypeFCMPE:
		if inst.HasImm {
			return fmt.Sprintf("%s, #0.0", rn())
		}
		return fmt.Sprintf("%s, %s", rn(), rm())
	case TypeFCCMP:
		return fmt.Sprintf("%s, %s, #%d, %s", rn(), rm(), inst.Imm, inst.Cond.String())
	case TypeFCSEL:
		return fmt.Sprintf("%s, %s, %s, %s", rd(), rn(), rm(), inst.Cond.String())

	case TypeSIMDScalar:
		if inst.RmType == RegV {
			return fmt.Sprintf("%s, %s, %s", rd(), rn(), rm())
		}
		return fmt.Sprintf("%s, %s", rd(), rn())

	default:
		return ""
	}
}
