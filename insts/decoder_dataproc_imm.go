package insts

// decodePCRelAddr decodes ADR/ADRP: op|immlo|10000|immhi|Rd.
func decodePCRelAddr(word uint32, addr uint64, rec *Instruction) bool {
	op := bit(word, 31)
	immhi := bits(word, 5, 23)
	immlo := bits(word, 29, 30)
	rd := uint8(bits(word, 0, 4))

	imm21 := immhi<<2 | immlo
	offset := signExtend(imm21, 21)

	rec.Rd = rd
	rec.RdType = RegX
	rec.HasImm = true
	rec.Is64Bit = true

	if op == 0 {
		rec.Mnemonic = "adr"
		rec.Type = TypeADR
		rec.Imm = offset
	} else {
		rec.Mnemonic = "adrp"
		rec.Type = TypeADRP
		rec.Imm = offset << 12
	}
	return true
}

// decodeAddSubImm decodes ADD/ADDS/SUB/SUBS (immediate):
// sf|op|S|100010|shift|imm12|Rn|Rd.
func decodeAddSubImm(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	op := bit(word, 30)
	s := bit(word, 29)
	shift := bits(word, 22, 23)
	imm12 := bits(word, 10, 21)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if shift > 1 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Imm = int64(imm12) << (12 * shift)
	rec.HasImm = true
	rec.Is64Bit = sf != 0
	rec.SetFlags = s != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)

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
	}

	if s != 0 && rd == 31 {
		if op == 1 {
			rec.Mnemonic = "cmp"
			rec.Type = TypeCMP
		} else {
			rec.Mnemonic = "cmn"
			rec.Type = TypeCMN
		}
		rec.RdType = widthType(sf)
	} else if s == 0 && shift == 0 && imm12 == 0 && op == 0 {
		rec.Mnemonic = "mov"
		rec.Type = TypeMOV
		rec.Rm = rn
		rec.RmType = widthType(sf)
		rec.HasImm = false
	}

	if s == 0 {
		if rn == 31 {
			rec.RnType = RegSP
			if rec.Type == TypeMOV {
				rec.RmType = RegSP
			}
		}
		if rd == 31 {
			rec.RdType = RegSP
		}
	}

	return true
}

// decodeLogicalImm decodes AND/ORR/EOR/ANDS (immediate):
// sf|opc|100100|N|immr|imms|Rn|Rd.
func decodeLogicalImm(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	opc := bits(word, 29, 30)
	immr := bits(word, 16, 21)
	imms := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	rec.Imm = int64(immr<<6 | imms)
	rec.Rd = rd
	rec.Rn = rn
	rec.HasImm = true
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)

	switch opc {
	case 0:
		rec.Mnemonic = "and"
		rec.Type = TypeAND
	case 1:
		rec.Mnemonic = "orr"
		rec.Type = TypeORR
		if rn == 31 {
			rec.Mnemonic = "mov"
			rec.Type = TypeMOV
		}
	case 2:
		rec.Mnemonic = "eor"
		rec.Type = TypeEOR
	case 3:
		rec.Mnemonic = "ands"
		rec.Type = TypeAND
		rec.SetFlags = true
		if rd == 31 {
			rec.Mnemonic = "tst"
			rec.Type = TypeTST
		}
	default:
		return false
	}
	return true
}

// decodeMoveWideImm decodes MOVN/MOVZ/MOVK: sf|opc|100101|hw|imm16|Rd.
func decodeMoveWideImm(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	opc := bits(word, 29, 30)
	hw := bits(word, 21, 22)
	imm16 := bits(word, 5, 20)
	rd := uint8(bits(word, 0, 4))

	if sf == 0 && hw >= 2 {
		return false
	}

	rec.Rd = rd
	rec.Imm = int64(imm16)
	rec.ShiftAmount = uint8(hw * 16)
	rec.HasImm = true
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)

	switch opc {
	case 0:
		rec.Mnemonic = "movn"
		rec.Type = TypeMOVN
	case 2:
		rec.Mnemonic = "movz"
		rec.Type = TypeMOVZ
	case 3:
		rec.Mnemonic = "movk"
		rec.Type = TypeMOVK
	default:
		return false
	}
	return true
}

// decodeBitfield decodes SBFM/BFM/UBFM: sf|opc|100110|N|immr|imms|Rn|Rd.
func decodeBitfield(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	opc := bits(word, 29, 30)
	n := bit(word, 22)
	immr := bits(word, 16, 21)
	imms := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if n != sf {
		return false
	}

	width := uint32(31)
	if sf != 0 {
		width = 63
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.HasImm = true
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.Imm = int64(immr<<6 | imms)
	rec.ShiftAmount = uint8(immr)

	switch opc {
	case 0:
		rec.Mnemonic = "sbfm"
		rec.Type = TypeSBFM
		if immr != 0 && imms == width {
			rec.Mnemonic = "asr"
			rec.Type = TypeASR
		}
	case 1:
		rec.Mnemonic = "bfm"
		rec.Type = TypeBFM
	case 2:
		rec.Mnemonic = "ubfm"
		rec.Type = TypeUBFM
		if imms == width {
			rec.Mnemonic = "lsr"
			rec.Type = TypeLSR
		}
		if immr == 0 && imms < width {
			rec.Mnemonic = "lsl"
			rec.Type = TypeLSL
		}
	default:
		return false
	}
	return true
}

// decodeExtract decodes EXTR: sf|00|100111|N|0|Rm|imms|Rn|Rd.
func decodeExtract(word uint32, addr uint64, rec *Instruction) bool {
	sf := bit(word, 31)
	n := bit(word, 22)
	rm := uint8(bits(word, 16, 20))
	imms := bits(word, 10, 15)
	rn := uint8(bits(word, 5, 9))
	rd := uint8(bits(word, 0, 4))

	if sf != n {
		return false
	}
	if sf == 0 && imms >= 32 {
		return false
	}

	rec.Rd = rd
	rec.Rn = rn
	rec.Rm = rm
	rec.Imm = int64(imms)
	rec.HasImm = true
	rec.Is64Bit = sf != 0
	rec.RdType = widthType(sf)
	rec.RnType = widthType(sf)
	rec.RmType = widthType(sf)

	if rn == rm {
		rec.Mnemonic = "ror"
		rec.Type = TypeROR
	} else {
		rec.Mnemonic = "extr"
		rec.Type = TypeEXTR
	}
	return true
}

var dataProcImmDecodeTable = []decodeEntry{
	{0x7FA00000, 0x13800000, decodeExtract, "extract"},
	{0x1F000000, 0x10000000, decodePCRelAddr, "pc_rel_addr"},
	{0x1F000000, 0x11000000, decodeAddSubImm, "add_sub_imm"},
	{0x1F800000, 0x12000000, decodeLogicalImm, "logical_imm"},
	{0x1F800000, 0x12800000, decodeMoveWideImm, "move_wide_imm"},
	{0x1F800000, 0x13000000, decodeBitfield, "bitfield"},
}

func decodeDataProcImm(word uint32, addr uint64, rec *Instruction) bool {
	return decodeWithTable(dataProcImmDecodeTable, word, addr, rec)
}
