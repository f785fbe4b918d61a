package insts

// BranchTarget returns the absolute target address of a PC-relative branch
// and true, or (0, false) for any instruction whose target is not a simple
// PC + immediate computation (register-indirect branches, non-branches).
func BranchTarget(inst Instruction) (uint64, bool) {
	switch inst.Type {
	case TypeB, TypeBL, TypeBCond, TypeCBZ, TypeCBNZ, TypeTBZ, TypeTBNZ,
		TypeADR, TypeADRP:
		return uint64(int64(inst.Address) + inst.Imm), true
	default:
		return 0, false
	}
}

// IsBranch reports whether inst transfers control flow, directly or
// indirectly, conditionally or not.
func IsBranch(inst Instruction) bool {
	switch inst.Type {
	case TypeB, TypeBL, TypeBCond, TypeCBZ, TypeCBNZ, TypeTBZ, TypeTBNZ,
		TypeBR, TypeBLR, TypeRET:
		return true
	default:
		return false
	}
}

// IsLoadStore reports whether inst accesses memory.
func IsLoadStore(inst Instruction) bool {
	switch inst.Type {
	case TypeLDR, TypeLDRB, TypeLDRH, TypeLDRSB, TypeLDRSH, TypeLDRSW,
		TypeSTR, TypeSTRB, TypeSTRH, TypeLDP, TypeSTP,
		TypeLDXR, TypeLDAXR, TypeSTXR, TypeSTLXR, TypeLDAR, TypeSTLR,
		TypeLDXP, TypeLDAXP, TypeSTXP, TypeSTLXP, TypeLDLAR, TypeSTLLR,
		TypeLDADD, TypeLDCLR, TypeLDEOR, TypeLDSET, TypeLDSMAX, TypeLDSMIN,
		TypeLDUMAX, TypeLDUMIN, TypeSWP, TypeCAS:
		return true
	default:
		return false
	}
}

// Immediate returns inst's normalized immediate operand and true, or
// (0, false) if inst carries no immediate.
func Immediate(inst Instruction) (int64, bool) {
	if !inst.HasImm {
		return 0, false
	}
	return inst.Imm, true
}

// UsedRegisters returns the distinct architectural register indices inst
// reads or writes, in Rd, Rn, Rm, Ra, Rt2 order, skipping any slot the
// decoder left unpopulated (RegNone) and any slot encoded as index 31 unless
// that slot is typed as SP — index 31 otherwise denotes the zero register,
// which is not a real architectural register and is never "used".
func UsedRegisters(inst Instruction) []uint8 {
	var regs []uint8
	seen := make(map[uint8]bool)

	add := func(idx uint8, rt RegType) {
		if rt == RegNone {
			return
		}
		if idx == 31 && rt != RegSP {
			return
		}
		if seen[idx] {
			return
		}
		seen[idx] = true
		regs = append(regs, idx)
	}

	add(inst.Rd, inst.RdType)
	add(inst.Rn, inst.RnType)
	add(inst.Rm, inst.RmType)
	if inst.Type == TypeMADD || inst.Type == TypeMSUB ||
		inst.Type == TypeFMADD || inst.Type == TypeFMSUB ||
		inst.Type == TypeFNMADD || inst.Type == TypeFNMSUB {
		add(inst.Ra, inst.RdType)
	}
	if inst.Type == TypeLDP || inst.Type == TypeSTP ||
		inst.Type == TypeLDXP || inst.Type == TypeLDAXP ||
		inst.Type == TypeSTXP || inst.Type == TypeSTLXP {
		add(inst.Rt2, inst.RdType)
	}

	return regs
}
