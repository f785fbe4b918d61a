package insts

// decodeAddSubShiftedReg decodes ADD/ADDS/SUB/SUBS (shifted register):
// sf|op|S|01011|shift|0|Rm|imm6|Rn|Rd.
func decodeAddSubShiftedReg(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	shift := bits(word, 22, 23)
	rm := uint8(bits(word, 16, 20))
	imm6 := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if shift == 3 {
		return false
	}
	if sf == 0 && imm6 >= 32 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.ShiftAmount = uint8(imm6)
	rec.ExtendType = ExtendType(int(ExtendLSL) + int(shift))
	rec.Is64Bit = sf != 0
	rec.SetFlags = s != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	if op == 0 {
		if s != 0 {
			rec.Mnemonic = "adds"
			rec.Type = TypeADDS
		} else {
			rec.Mnemonic = "add"
			rec.Type = TypeADD
		}
	} else {
		if s != 0 {
			rec.Mnemonic = "subs"
			rec.Type = TypeSUBS
		} else {
			rec.Mnemonic = "sub"
			rec.Type = TypeSUB
		}
		if rn == 31 && s == 0 {
			rec.Mnemonic = "neg"
			rec.Type = TypeNEG
		}
	}

	if s != 0 && rd == 31 {
		if op == 1 {
			rec.Mnemonic = "cmp"
			rec.Type = TypeCMP
		} else {
			rec.Mnemonic = "cmn"
			rec.Type = TypeCMN
		}
	}

	if s == 0 && rec.Type != TypeNEG {
		if rn == 31 {
			rec.RnType = RegSP
		}
		if rd == 31 {
			rec.RdType = RegSP
		}
	}
	return true
}

// decodeLogicalShiftedReg decodes AND/BIC/ORR/ORN/EOR/EON/ANDS/BICS
// (shifted register): sf|opc|01010|shift|N|Rm|imm6|Rn|Rd.
func decodeLogicalShiftedReg(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	opc := bits(word, 29, 30)
	shift := bits(word, 22, 23)
	n := bit(word, 21)
	rm := uint8(bits(word, 16, 20))
	imm6 := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if sf == 0 && imm6 >= 32 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.ShiftAmount = uint8(imm6)
	rec.ExtendType = ExtendType(int(ExtendLSL) + int(shift))
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	switch opc<<1 | n {
	case 0:
		rec.Mnemonic = "and"
		rec.Type = TypeAND
	case 1:
		rec.Mnemonic = "bic"
		rec.Type = TypeAND
	case 2:
		rec.Mnemonic = "orr"
		rec.Type = TypeORR
		if rn == 31 && shift == 0 && imm6 == 0 {
			rec.Mnemonic = "mov"
			rec.Type = TypeMOV
		}
	case 3:
		rec.Mnemonic = "orn"
		rec.Type = TypeORR
		if rn == 31 {
			rec.Mnemonic = "mvn"
			rec.Type = TypeMVN
		}
	case 4:
		rec.Mnemonic = "eor"
		rec.Type = TypeEOR
	case 5:
		rec.Mnemonic = "eon"
		rec.Type = TypeEOR
	case 6:
		rec.Mnemonic = "ands"
		rec.Type = TypeAND
		rec.SetFlags = true
		if rd == 31 {
			rec.Mnemonic = "tst"
			rec.Type = TypeTST
		}
	case 7:
		rec.Mnemonic = "bics"
		rec.Type = TypeAND
		rec.SetFlags = true
	default:
		return false
	}
	return true
}

// decodeCondSelect decodes CSEL/CSINC/CSINV/CSNEG:
// sf|op|S|11010100|Rm|cond|op2|Rn|Rd.
func decodeCondSelect(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	rm := uint8(bits(word, 16, 20))
	cond := Cond(bits(word, 12, 15))
	op2 := bits(word, 10, 11)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if s != 0 || (op2 != 0 && op2 != 1) {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.Cond = cond
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	switch op<<1 | op2 {
	case 0:
		rec.Mnemonic = "csel"
		rec.Type = TypeCSEL
	case 1:
		rec.Mnemonic = "csinc"
		rec.Type = TypeCSINC
		if rn == rm && rn != 31 && cond != CondAL && cond != CondNV {
			rec.Mnemonic = "cinc"
			rec.Type = TypeCINC
			rec.Cond = cond.invert()
		} else if rn == 31 && rm == 31 && cond != CondAL && cond != CondNV {
			rec.Mnemonic = "cset"
			rec.Type = TypeCSET
			rec.Cond = cond.invert()
		}
	case 2:
		rec.Mnemonic = "csinv"
		rec.Type = TypeCSINV
		if rn == rm && rn != 31 && cond != CondAL && cond != CondNV {
			rec.Mnemonic = "cinv"
			rec.Type = TypeCINV
			rec.Cond = cond.invert()
		} else if rn == 31 && rm == 31 && cond != CondAL && cond != CondNV {
			rec.Mnemonic = "csetm"
			rec.Type = TypeCSETM
			rec.Cond = cond.invert()
		}
	case 3:
		rec.Mnemonic = "csneg"
		rec.Type = TypeCSNEG
		if rn == rm && rn != 31 && cond != CondAL && cond != CondNV {
			rec.Mnemonic = "cneg"
			rec.Type = TypeCNEG
			rec.Cond = cond.invert()
		}
	}
	return true
}

// decodeDataProc1Src decodes RBIT/REV16/REV/REV32/CLZ/CLS:
// sf|1|S|11010110|opcode2|opcode|Rn|Rd.
func decodeDataProc1Src(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	s := bit(word, 29)
	opcode2 := bits(word, 16, 20)
	opcode := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if s != 0 || opcode2 != 0 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)

	switch opcode {
	case 0x00:
		rec.Mnemonic = "rbit"
		rec.Type = TypeRBIT
	case 0x01:
		rec.Mnemonic = "rev16"
		rec.Type = TypeREV16
	case 0x02:
		if sf == 0 {
			rec.Mnemonic = "rev"
			rec.Type = TypeREV
		} else {
			rec.Mnemonic = "rev32"
			rec.Type = TypeREV32
		}
	case 0x03:
		if sf == 0 {
			return false
		}
		rec.Mnemonic = "rev"
		rec.Type = TypeREV
	case 0x04:
		rec.Mnemonic = "clz"
		rec.Type = TypeCLZ
	case 0x05:
		rec.Mnemonic = "cls"
		rec.Type = TypeCLS
	default:
		return false
	}
	return true
}

// decodeDataProc2Src decodes UDIV/SDIV/LSLV/LSRV/ASRV/RORV:
// sf|0|S|11010110|Rm|opcode|Rn|Rd.
func decodeDataProc2Src(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	s := bit(word, 29)
	rm := uint8(bits(word, 16, 20))
	opcode := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if s != 0 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	switch opcode {
	case 0x02:
		rec.Mnemonic = "udiv"
		rec.Type = TypeUDIV
	case 0x03:
		rec.Mnemonic = "sdiv"
		rec.Type = TypeSDIV
	case 0x08:
		rec.Mnemonic = "lsl"
		rec.Type = TypeLSL
	case 0x09:
		rec.Mnemonic = "lsr"
		rec.Type = TypeLSR
	case 0x0A:
		rec.Mnemonic = "asr"
		rec.Type = TypeASR
	case 0x0B:
		rec.Mnemonic = "ror"
		rec.Type = TypeROR
	default:
		return false
	}
	return true
}

// decodeDataProc3Src decodes MADD/MSUB (and MUL/MNEG aliases):
// sf|00|11011|op54|Rm|o0|Ra|Rn|Rd.
func decodeDataProc3Src(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	op54 := bits(word, 29, 30)
	rm := uint8(bits(word, 16, 20))
	o0 := bit(word, 15)
	ra := uint8(bits(word, 10, 14))
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if op54 != 0 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.Ra = ra
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	if o0 == 0 {
		rec.Mnemonic = "madd"
		rec.Type = TypeMADD
		if ra == 31 {
			rec.Mnemonic = "mul"
			rec.Type = TypeMUL
		}
	} else {
		rec.Mnemonic = "msub"
		rec.Type = TypeMSUB
		if ra == 31 {
			rec.Mnemonic = "mneg"
			rec.Type = TypeMNEG
		}
	}
	return true
}

var dataProcRegDecodeTable = []decodeEntry{
	{0x1FE00000, 0x1A800000, decodeCondSelect, "cond_select"},
	{0x5FE00000, 0x5AC00000, decodeDataProc1Src, "data_proc_1src"},
	{0x5FE00000, 0x1AC00000, decodeDataProc2Src, "data_proc_2src"},
	{0x1F000000, 0x1B000000, decodeDataProc3Src, "data_proc_3src"},
	{0x1F200000, 0x0B000000, decodeAddSubShiftedReg, "add_sub_shifted_reg"},
	{0x1F000000, 0x0A000000, decodeLogicalShiftedReg, "logical_shifted_reg"},
}

func decodeDataProcReg(word uint32, addr uint64, rec *Instruction) bool {
	return decodeWithTable(dataProcRegDecodeTable, word, addr, rec)
}
