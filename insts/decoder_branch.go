package insts

var hintNames = [6]string{"nop", "yield", "wfe", "wfi", "sev", "sevl"}

// decodeUncondBranchImm decodes B/BL: op|00101|imm26.
func decodeUncondBranchImm(word uint32, addr uint64, rec *Instruction) bool {
	op := bit(word, 31)
	imm26 := bits(word, 0, 25)

	rec.Imm = signExtend(imm26, 26) << 2
	rec.HasImm = true

	if op == 0 {
		rec.Mnemonic = "b"
		rec.Type = TypeB
	} else {
		rec.Mnemonic = "bl"
		rec.Type = TypeBL
	}
	return true
}

// decodeCondBranchImm decodes B.cond: 0101010|0|imm19|0|cond.
func decodeCondBranchImm(word uint32, addr uint64, rec *Instruction) bool {
	imm19 := bits(word, 5, 23)
	cond := Cond(bits(word, 0, 3))

	rec.Imm = signExtend(imm19, 19) << 2
	rec.HasImm = true
	rec.Type = TypeBCond
	rec.Cond = cond
	rec.Mnemonic = "b." + cond.String()
	return true
}

// decodeCompareBranch decodes CBZ/CBNZ: sf|011010|op|imm19|Rt.
func decodeCompareBranch(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	op := bit(word, 24)
	imm19 := bits(word, 5, 23)
	rt := uint8(bits(word, 0, 4))

	rec.Rd = rt
	rec.RdType = widthType(sf)
	rec.Imm = signExtend(imm19, 19) << 2
	rec.HasImm = true
	rec.Is64Bit = sf != 0

	if op == 0 {
		rec.Mnemonic = "cbz"
		rec.Type = TypeCBZ
	} else {
		rec.Mnemonic = "cbnz"
		rec.Type = TypeCBNZ
	}
	return true
}

// decodeTestBranch decodes TBZ/TBNZ: b5|011011|op|b40|imm14|Rt.
func decodeTestBranch(word uint32, addr uint64, rec *Instruction) bool {
	b5 := bit(word, 31)
	op := bit(word, 24)
	b40 := bits(word, 19, 23)
	imm14 := bits(word, 5, 18)
	rt := uint8(bits(word, 0, 4))

	bitPos := uint8(b5<<5 | b40)

	rec.Rd = rt
	if bitPos < 32 {
		rec.RdType = RegW
	} else {
		rec.RdType = RegX
	}
	rec.Imm = signExtend(imm14, 14) << 2
	rec.ShiftAmount = bitPos
	rec.HasImm = true
	rec.Is64Bit = bitPos >= 32

	if op == 0 {
		rec.Mnemonic = "tbz"
		rec.Type = TypeTBZ
	} else {
		rec.Mnemonic = "tbnz"
		rec.Type = TypeTBNZ
	}
	return true
}

// decodeUncondBranchReg decodes BR/BLR/RET/ERET/DRPS:
// 1101011|opc|op2|op3|Rn|op4.
func decodeUncondBranchReg(word uint32, addr uint64, rec *Instruction) bool {
	opc := bits(word, 21, 24)
	op2 := bits(word, 16, 20)
	op3 := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	op4 := bits(word, 0, 4)

	if op2 != 0x1F || op4 != 0 {
		return false
	}

	rec.Rn = rn
	rec.RnType = RegX
	rec.HasImm = false
	rec.Is64Bit = true

	switch opc {
	case 0x00:
		if op3 != 0 {
			return false
		}
		rec.Mnemonic = "br"
		rec.Type = TypeBR
		return true
	case 0x01:
		if op3 != 0 {
			return false
		}
		rec.Mnemonic = "blr"
		rec.Type = TypeBLR
		return true
	case 0x02:
		if op3 != 0 {
			return false
		}
		rec.Mnemonic = "ret"
		rec.Type = TypeRET
		return true
	case 0x04:
		if op3 != 0 || rn != 31 {
			return false
		}
		rec.Mnemonic = "eret"
		rec.Type = TypeRET
		return true
	case 0x05:
		if op3 != 0 || rn != 31 {
			return false
		}
		rec.Mnemonic = "drps"
		rec.Type = TypeRET
		return true
	}
	return false
}

// decodeSystem decodes HINT/NOP/MRS:
// 1101010100|L|op0|op1|CRn|CRm|op2|Rt.
func decodeSystem(word uint32, addr uint64, rec *Instruction) bool {
	op0 := bits(word, 19, 20)
	op1 := bits(word, 16, 18)
	crn := bits(word, 12, 15)
	crm := bits(word, 8, 11)
	op2 := bits(word, 5, 7)
	rt := uint8(bits(word, 0, 4))
	l := bit(word, 21)

	if op0 == 0 && op1 == 3 && crn == 2 && rt == 31 {
		if crm == 0 && op2 < uint32(len(hintNames)) {
			rec.Mnemonic = hintNames[op2]
			rec.Type = TypeHint
			return true
		}
	}

	if l == 1 && rt != 31 {
		rec.Rd = rt
		rec.RdType = RegX
		rec.Is64Bit = true
		rec.HasImm = false
		rec.Mnemonic = "mrs"
		rec.Type = TypeMRS
		return true
	}

	return false
}

var branchDecodeTable = []decodeEntry{
	{0x7C000000, 0x14000000, decodeUncondBranchImm, "uncond_branch_imm"},
	{0x7E000000, 0x34000000, decodeCompareBranch, "compare_branch"},
	{0x7E000000, 0x36000000, decodeTestBranch, "test_branch"},
	{0xFF000010, 0x54000000, decodeCondBranchImm, "cond_branch_imm"},
	{0xFE000000, 0xD6000000, decodeUncondBranchReg, "uncond_branch_reg"},
	{0xFFC00000, 0xD5000000, decodeSystem, "system"},
}

func decodeBranch(word uint32, addr uint64, rec *Instruction) bool {
	return decodeWithTable(branchDecodeTable, word, addr, rec)
}
